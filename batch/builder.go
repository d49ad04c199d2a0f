// Package batch bulk-inserts datasets through a prepared statement,
// splitting the work into size-bounded chunks.
package batch

import (
	"errors"
	"strings"

	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/sqldb"
)

// ErrInvalidBuilder reports an incomplete or contradictory insert builder:
// missing table, no columns, or INSERT IGNORE combined with an upsert clause.
var ErrInvalidBuilder = errors.New("batch: insert builder is not valid")

// Retriever extracts one column's parameter from a dataset item.
type Retriever[T any] func(item T) param.Parameter

// InsertBuilder assembles a multi-row INSERT for a dataset of T. Columns are
// configured once with a retriever each; the runner later calls the
// retrievers per row, in column order.
//
//	runner, err := batch.NewInsert[User]().
//	    Into("users").
//	    Insert("name", func(u User) param.Parameter { return param.String(u.Name) }).
//	    Insert("age", func(u User) param.Parameter { return param.Int(u.Age) }).
//	    Runner()
type InsertBuilder[T any] struct {
	table        string
	insertIgnore bool
	upsertCols   []string
	cols         []string
	retrievers   map[string]Retriever[T]
}

func NewInsert[T any]() *InsertBuilder[T] {
	return &InsertBuilder[T]{retrievers: make(map[string]Retriever[T])}
}

// Into sets the target table.
func (b *InsertBuilder[T]) Into(table string) *InsertBuilder[T] {
	b.table = table
	return b
}

// Insert adds a column with its retriever. Re-adding a column replaces the
// retriever but keeps the column's original position.
func (b *InsertBuilder[T]) Insert(col string, r Retriever[T]) *InsertBuilder[T] {
	if _, exists := b.retrievers[col]; !exists {
		b.cols = append(b.cols, col)
	}
	b.retrievers[col] = r
	return b
}

// InsertIgnore switches to INSERT IGNORE syntax (MariaDB/MySQL). Cannot be
// combined with OnDuplicateKeyUpdate.
func (b *InsertBuilder[T]) InsertIgnore() *InsertBuilder[T] {
	b.insertIgnore = true
	return b
}

// OnDuplicateKeyUpdate appends an ON DUPLICATE KEY UPDATE clause updating
// the given columns with their inserted values, i.e. col=VALUES(col)
// (MariaDB/MySQL). The update can only reuse the inserted value; a separate
// update value is not supported.
func (b *InsertBuilder[T]) OnDuplicateKeyUpdate(cols ...string) *InsertBuilder[T] {
	b.upsertCols = append(b.upsertCols, cols...)
	return b
}

// InsertOnDuplicateUpdate is shorthand for Insert followed by
// OnDuplicateKeyUpdate of the same column.
func (b *InsertBuilder[T]) InsertOnDuplicateUpdate(col string, r Retriever[T]) *InsertBuilder[T] {
	return b.Insert(col, r).OnDuplicateKeyUpdate(col)
}

func (b *InsertBuilder[T]) valid() bool {
	if b.table == "" || len(b.cols) == 0 {
		return false
	}
	// INSERT IGNORE and ON DUPLICATE KEY UPDATE are mutually exclusive
	return !(b.insertIgnore && len(b.upsertCols) > 0)
}

// baseSQL is everything before the per-row value tuple,
// e.g. "INSERT INTO my_table (col1,col2) VALUES".
func (b *InsertBuilder[T]) baseSQL() string {
	var sb strings.Builder
	if b.insertIgnore {
		sb.WriteString("INSERT IGNORE INTO ")
	} else {
		sb.WriteString("INSERT INTO ")
	}
	sb.WriteString(b.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(b.cols, ","))
	sb.WriteString(") VALUES")
	return sb.String()
}

// tupleSQL is the per-row placeholder tuple, e.g. "(?,?)".
func (b *InsertBuilder[T]) tupleSQL() string {
	return "(" + sqldb.Placeholders(len(b.cols)) + ")"
}

// suffixSQL is the part after the value tuples; empty without an upsert.
func (b *InsertBuilder[T]) suffixSQL() string {
	if len(b.upsertCols) == 0 {
		return ""
	}
	parts := make([]string, 0, len(b.upsertCols))
	for _, col := range b.upsertCols {
		parts = append(parts, col+"=VALUES("+col+")")
	}
	return "ON DUPLICATE KEY UPDATE " + strings.Join(parts, ",")
}

// SQL returns the complete single-row parameterized statement.
func (b *InsertBuilder[T]) SQL() (string, error) {
	if !b.valid() {
		return "", ErrInvalidBuilder
	}
	return joinSQL(b.baseSQL(), b.tupleSQL(), b.suffixSQL()), nil
}

// Runner builds the executable batch runner from this configuration.
func (b *InsertBuilder[T]) Runner() (*Runner[T], error) {
	if !b.valid() {
		return nil, ErrInvalidBuilder
	}
	retrievers := make([]Retriever[T], 0, len(b.cols))
	for _, col := range b.cols {
		retrievers = append(retrievers, b.retrievers[col])
	}
	return newRunner(b.baseSQL(), b.tupleSQL(), b.suffixSQL(), retrievers), nil
}

func joinSQL(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
