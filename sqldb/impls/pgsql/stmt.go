package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/zeptools/sqlbuild/sqldb"
)

type Stmt struct {
	sqldb.ArgBuffer

	conn *pgxpool.Conn
	sql  string // placeholders already rewritten to $1, $2, ...
}

// Ensure pgsql.Stmt implements sqldb.Stmt interface
var _ sqldb.Stmt = (*Stmt)(nil)

func (s *Stmt) SetInt(index int, v int32) error {
	return s.Set(index, v)
}

func (s *Stmt) SetLong(index int, v int64) error {
	return s.Set(index, v)
}

func (s *Stmt) SetDouble(index int, v float64) error {
	return s.Set(index, v)
}

// SetNull binds a typed NULL. pgx infers the type from the statement, so the
// code only validates the index.
func (s *Stmt) SetNull(index int, _ sqldb.TypeCode) error {
	return s.Set(index, nil)
}

func (s *Stmt) SetString(index int, v *string) error {
	if v == nil {
		return s.Set(index, nil)
	}
	return s.Set(index, *v)
}

// SetDate binds the date portion only; the time of day is dropped.
func (s *Stmt) SetDate(index int, v *time.Time) error {
	if v == nil {
		return s.Set(index, nil)
	}
	return s.Set(index, v.Format("2006-01-02"))
}

func (s *Stmt) SetDateTime(index int, v *time.Time) error {
	if v == nil {
		return s.Set(index, nil)
	}
	return s.Set(index, *v)
}

func (s *Stmt) SetDecimal(index int, v *decimal.Decimal) error {
	if v == nil {
		return s.Set(index, nil)
	}
	return s.Set(index, *v)
}

func (s *Stmt) AddBatch() error {
	s.Push()
	return nil
}

// ExecuteBatch sends all pending rows in one pgx pipelined batch and collects
// one affected-row count per row. The pending batch is cleared even on
// failure.
func (s *Stmt) ExecuteBatch(ctx context.Context) ([]int64, error) {
	pending := s.Pending()
	defer s.Clear()

	batch := &pgx.Batch{}
	for _, row := range pending {
		batch.Queue(s.sql, row...)
	}
	results := s.conn.SendBatch(ctx, batch)
	defer results.Close()

	counts := make([]int64, 0, len(pending))
	for range pending {
		tag, err := results.Exec()
		if err != nil {
			return nil, err
		}
		counts = append(counts, tag.RowsAffected())
	}
	if err := results.Close(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *Stmt) Exec(ctx context.Context) (sqldb.Result, error) {
	tag, err := s.conn.Exec(ctx, s.sql, s.Row()...)
	if err != nil {
		return nil, err
	}
	return &Result{tag: tag}, nil
}

func (s *Stmt) Close() error {
	s.conn.Release()
	return nil
}
