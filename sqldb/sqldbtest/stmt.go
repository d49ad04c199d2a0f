// Package sqldbtest provides in-memory fakes of the sqldb interfaces for
// tests that need to observe binding and execution without a database.
package sqldbtest

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zeptools/sqlbuild/sqldb"
)

// Conn hands out recording statements and remembers every prepared query.
type Conn struct {
	Prepared []string
	Stmts    []*Stmt

	// PrepareErr, when set, makes Prepare fail.
	PrepareErr error
	// StmtExecuteBatchErr, when set, is installed on every statement handed
	// out by Prepare.
	StmtExecuteBatchErr error
}

var _ sqldb.Conn = (*Conn)(nil)

func (c *Conn) Prepare(_ context.Context, query string) (sqldb.Stmt, error) {
	if c.PrepareErr != nil {
		return nil, c.PrepareErr
	}
	c.Prepared = append(c.Prepared, query)
	stmt := &Stmt{RowsAffectedPerRow: 1, ExecuteBatchErr: c.StmtExecuteBatchErr}
	c.Stmts = append(c.Stmts, stmt)
	return stmt, nil
}

// Stmt records bound rows and batch executions.
type Stmt struct {
	sqldb.ArgBuffer

	// Batches holds the rows of each ExecuteBatch call.
	Batches [][][]any
	// RowsAffectedPerRow is the count reported for every batched row.
	RowsAffectedPerRow int64

	Execs  [][]any
	Closed bool

	// ExecuteBatchErr, when set, makes ExecuteBatch fail.
	ExecuteBatchErr error
}

var _ sqldb.Stmt = (*Stmt)(nil)

func (s *Stmt) SetInt(index int, v int32) error      { return s.Set(index, v) }
func (s *Stmt) SetLong(index int, v int64) error     { return s.Set(index, v) }
func (s *Stmt) SetDouble(index int, v float64) error { return s.Set(index, v) }

func (s *Stmt) SetNull(index int, _ sqldb.TypeCode) error {
	return s.Set(index, nil)
}

func (s *Stmt) SetString(index int, v *string) error {
	if v == nil {
		return s.Set(index, nil)
	}
	return s.Set(index, *v)
}

func (s *Stmt) SetDate(index int, v *time.Time) error {
	if v == nil {
		return s.Set(index, nil)
	}
	return s.Set(index, *v)
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

func (s *Stmt) ExecuteBatch(_ context.Context) ([]int64, error) {
	if s.ExecuteBatchErr != nil {
		return nil, s.ExecuteBatchErr
	}
	pending := s.Pending()
	rows := make([][]any, len(pending))
	for i, row := range pending {
		rows[i] = append([]any(nil), row...)
	}
	s.Batches = append(s.Batches, rows)
	s.Clear()

	counts := make([]int64, len(rows))
	for i := range counts {
		counts[i] = s.RowsAffectedPerRow
	}
	return counts, nil
}

func (s *Stmt) Exec(_ context.Context) (sqldb.Result, error) {
	row := append([]any(nil), s.Row()...)
	s.Execs = append(s.Execs, row)
	return Result{Affected: s.RowsAffectedPerRow}, nil
}

func (s *Stmt) Close() error {
	s.Closed = true
	return nil
}

// Result is a canned sqldb.Result.
type Result struct {
	Affected int64
	InsertID int64
}

var _ sqldb.Result = Result{}

func (r Result) RowsAffected() (int64, error) { return r.Affected, nil }

func (r Result) LastInsertId() (int64, error) {
	if r.InsertID == 0 {
		return 0, fmt.Errorf("no insert id recorded")
	}
	return r.InsertID, nil
}
