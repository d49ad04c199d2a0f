package builder

import (
	"strings"

	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/statement"
)

// InsertBuilder assembles a single-row INSERT. For bulk work over a dataset
// use the batch package instead.
type InsertBuilder struct {
	table        string
	insertIgnore bool

	cols   []string
	vals   []param.Parameter
	orders map[string]int

	upsertCols []string
	upsertVals []param.Parameter
}

var _ Buildable = (*InsertBuilder)(nil)

func NewInsertOne() *InsertBuilder {
	return &InsertBuilder{orders: make(map[string]int)}
}

// Into sets the target table.
func (b *InsertBuilder) Into(table string) *InsertBuilder {
	b.table = table
	return b
}

// Insert adds a column and its value. Re-adding a column replaces the value
// but keeps the column's original position.
func (b *InsertBuilder) Insert(col string, val param.Parameter) *InsertBuilder {
	if pos, exists := b.orders[col]; exists {
		b.vals[pos] = val
		return b
	}
	b.orders[col] = len(b.cols)
	b.cols = append(b.cols, col)
	b.vals = append(b.vals, val)
	return b
}

// InsertIgnore switches to INSERT IGNORE syntax (MariaDB/MySQL). Cannot be
// combined with OnDuplicateKeyUpdate.
func (b *InsertBuilder) InsertIgnore() *InsertBuilder {
	b.insertIgnore = true
	return b
}

// OnDuplicateKeyUpdate appends "col = ?" to the ON DUPLICATE KEY UPDATE
// clause with the given value (MariaDB/MySQL). Upsert values bind after the
// inserted values.
func (b *InsertBuilder) OnDuplicateKeyUpdate(col string, val param.Parameter) *InsertBuilder {
	b.upsertCols = append(b.upsertCols, col)
	b.upsertVals = append(b.upsertVals, val)
	return b
}

// ParamList returns inserted values first, then upsert values, matching the
// order their placeholders appear in the output SQL.
func (b *InsertBuilder) ParamList() []param.Parameter {
	params := make([]param.Parameter, 0, len(b.vals)+len(b.upsertVals))
	params = append(params, b.vals...)
	params = append(params, b.upsertVals...)
	return params
}

// SQL returns the parameterized INSERT statement.
func (b *InsertBuilder) SQL() (string, error) {
	if b.table == "" || len(b.cols) == 0 {
		return "", ErrInvalidBuilder
	}
	if b.insertIgnore && len(b.upsertCols) > 0 {
		return "", ErrInvalidBuilder
	}

	var sb strings.Builder
	if b.insertIgnore {
		sb.WriteString("INSERT IGNORE INTO ")
	} else {
		sb.WriteString("INSERT INTO ")
	}
	sb.WriteString(b.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(b.cols, ", "))
	sb.WriteString(") VALUES (")
	for i := range b.cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
	}
	sb.WriteString(")")

	if len(b.upsertCols) > 0 {
		sb.WriteString(" ON DUPLICATE KEY UPDATE ")
		for i, col := range b.upsertCols {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(col)
			sb.WriteString(" = ?")
		}
	}

	return tidy(sb.String()), nil
}

// Build validates and returns the statement artifact.
func (b *InsertBuilder) Build() (*statement.Statement, error) {
	return build(b)
}
