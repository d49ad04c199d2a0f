package mysql

import (
	"context"
	"database/sql"

	"github.com/zeptools/sqlbuild/sqldb"
)

type Conn struct {
	db *sql.DB
}

// Ensure mysql.Conn implements sqldb.Conn interface
var _ sqldb.Conn = (*Conn)(nil)

// Prepare prepares the statement as-is; MySQL takes bare '?' placeholders.
func (c *Conn) Prepare(ctx context.Context, query string) (sqldb.Stmt, error) {
	stmt, err := c.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Stmt{stmt: stmt}, nil
}
