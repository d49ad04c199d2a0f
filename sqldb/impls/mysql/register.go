package mysql

import "github.com/zeptools/sqlbuild/sqldb"

// Ensure mysql.Client implements sqldb.Client interface
var _ sqldb.Client = (*Client)(nil)

// Register makes this implementation available through sqldb.New("mysql", conf).
func Register() {
	sqldb.RegisterFactory("mysql", func(conf *sqldb.Conf) (sqldb.Client, error) {
		return &Client{Conf: conf}, nil
	})
}
