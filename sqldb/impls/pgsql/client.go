package pgsql

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zeptools/sqlbuild/sqldb"
)

type Client struct {
	Conf *sqldb.Conf

	pool  *pgxpool.Pool
	store *sqldb.StmtStore
	dsn   string
}

func (c *Client) Init() error {
	if c.Conf.DSN != "" {
		c.dsn = c.Conf.DSN
	} else {
		// NOTE: sslmode=disable is often used for local dev, adjust as needed.
		c.dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
			c.Conf.Host,
			c.Conf.Port,
			c.Conf.User,
			c.Conf.PW,
			c.Conf.DB,
			c.Conf.TZ,
		)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	config, err := pgxpool.ParseConfig(c.dsn)
	if err != nil {
		return fmt.Errorf("failed to parse pgx config: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 3 * time.Minute
	c.pool, err = pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to connect pgx Pool: %w", err)
	}
	if err = c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	c.store = sqldb.NewStmtStore()
	log.Println("[INFO] pgsql client initialized")
	return nil
}

func (c *Client) Close() error {
	if c.pool == nil {
		return nil
	}
	log.Println("[INFO] closing pgsql client")
	c.pool.Close()
	log.Println("[INFO] pgsql client closed")
	return nil
}

func (c *Client) Conn() sqldb.Conn {
	return &Conn{pool: c.pool, store: c.store}
}
