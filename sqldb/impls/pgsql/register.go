package pgsql

import "github.com/zeptools/sqlbuild/sqldb"

// Ensure pgsql.Client implements sqldb.Client interface
var _ sqldb.Client = (*Client)(nil)

// Register makes this implementation available through sqldb.New("pgsql", conf).
func Register() {
	sqldb.RegisterFactory("pgsql", func(conf *sqldb.Conf) (sqldb.Client, error) {
		return &Client{Conf: conf}, nil
	})
}
