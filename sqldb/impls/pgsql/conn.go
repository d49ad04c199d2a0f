package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zeptools/sqlbuild/sqldb"
)

type Conn struct {
	pool  *pgxpool.Pool
	store *sqldb.StmtStore
}

// Ensure pgsql.Conn implements sqldb.Conn interface
var _ sqldb.Conn = (*Conn)(nil)

// Prepare rewrites the bare '?' markers to $1, $2, ... and pins one pooled
// connection to the returned statement. The rewrite is cached in the client's
// statement store. Closing the statement releases the connection.
func (c *Conn) Prepare(ctx context.Context, query string) (sqldb.Stmt, error) {
	rewritten, exists := c.store.Get(query)
	if !exists {
		rewritten = sqldb.ReplaceStaticPlaceholders(query, sqldb.PlaceholderPrefixForDBType["pgsql"])
		c.store.Set(query, rewritten)
	}
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return &Stmt{conn: conn, sql: rewritten}, nil
}
