package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zeptools/sqlbuild/sqldb"
)

type Stmt struct {
	sqldb.ArgBuffer

	stmt *sql.Stmt
}

// Ensure mysql.Stmt implements sqldb.Stmt interface
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

// SetNull binds a typed NULL. database/sql needs no wire type, so the code
// only validates the index.
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

// ExecuteBatch executes each pending row as one statement call. database/sql
// has no batching API, so the rows run sequentially over the prepared
// statement. The pending batch is cleared even on failure.
func (s *Stmt) ExecuteBatch(ctx context.Context) ([]int64, error) {
	pending := s.Pending()
	defer s.Clear()

	counts := make([]int64, 0, len(pending))
	for _, row := range pending {
		result, err := s.stmt.ExecContext(ctx, row...)
		if err != nil {
			return nil, err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func (s *Stmt) Exec(ctx context.Context) (sqldb.Result, error) {
	result, err := s.stmt.ExecContext(ctx, s.Row()...)
	if err != nil {
		return nil, err
	}
	return &Result{result: result}, nil
}

func (s *Stmt) Close() error {
	return s.stmt.Close()
}
