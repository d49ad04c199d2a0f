package mysql

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql" // side-effect
	"github.com/zeptools/sqlbuild/sqldb"
)

type Client struct {
	Conf *sqldb.Conf

	// db fields are implementation details, not exported
	db  *sql.DB
	dsn string
}

func (c *Client) Init() error {
	var err error
	if c.Conf.DSN != "" {
		c.dsn = c.Conf.DSN
	} else {
		c.dsn = fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=%s&sql_mode=ANSI_QUOTES",
			c.Conf.User,
			c.Conf.PW,
			c.Conf.Host,
			c.Conf.Port,
			c.Conf.DB,
			c.Conf.TZ,
		)
	}
	if c.db, err = sql.Open("mysql", c.dsn); err != nil {
		return err
	}
	c.db.SetConnMaxLifetime(time.Minute * 3)
	c.db.SetMaxOpenConns(10)
	c.db.SetMaxIdleConns(10)
	if err = c.db.Ping(); err != nil {
		return err
	}
	log.Println("[INFO] mysql client initialized")
	return nil
}

func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	log.Println("[INFO] closing mysql client")
	err := c.db.Close()
	if err != nil {
		return err
	}
	log.Println("[INFO] mysql client closed")
	return nil
}

func (c *Client) Conn() sqldb.Conn {
	return &Conn{db: c.db}
}
