package sqldb

// Client owns a database connection pool and hands out Conns.
type Client interface {
	Init() error
	Close() error
	Conn() Conn
}
