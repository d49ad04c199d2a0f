package sqldb

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TypeCode identifies the SQL wire type used when binding a typed NULL.
// Only the numeric kinds need one: their ordinary setters take plain values,
// so a NULL has to travel through SetNull with an explicit type.
type TypeCode int

const (
	TypeInteger TypeCode = iota + 1
	TypeBigInt
	TypeDouble
)

func (c TypeCode) String() string {
	switch c {
	case TypeInteger:
		return "INTEGER"
	case TypeBigInt:
		return "BIGINT"
	case TypeDouble:
		return "DOUBLE"
	}
	return "UNKNOWN"
}

// Stmt is a prepared statement handle. Parameter indexes are 1-based.
//
// Setters for string, date, datetime and decimal accept nil directly.
// The numeric setters do not; a numeric NULL must go through SetNull
// with the matching TypeCode.
type Stmt interface {
	SetInt(index int, v int32) error
	SetLong(index int, v int64) error
	SetDouble(index int, v float64) error
	SetNull(index int, code TypeCode) error

	SetString(index int, v *string) error
	SetDate(index int, v *time.Time) error
	SetDateTime(index int, v *time.Time) error
	SetDecimal(index int, v *decimal.Decimal) error

	// AddBatch moves the currently bound row into the pending batch.
	AddBatch() error

	// ExecuteBatch executes all pending rows and returns one affected-row
	// count per row, in row order. The pending batch is cleared.
	ExecuteBatch(ctx context.Context) ([]int64, error)

	// Exec executes the statement once with the currently bound row.
	Exec(ctx context.Context) (Result, error)

	Close() error
}

// Conn is the minimal connection surface this library needs. Transaction
// and commit control stay with the caller.
type Conn interface {
	Prepare(ctx context.Context, query string) (Stmt, error)
}

type Result interface {
	RowsAffected() (int64, error)
	LastInsertId() (int64, error)
}
