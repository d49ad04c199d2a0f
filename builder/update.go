package builder

import (
	"strings"

	"github.com/zeptools/sqlbuild/condition"
	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/statement"
)

// UpdateBuilder assembles an UPDATE statement. A WHERE condition is
// mandatory: a full-table update must be written by hand, never produced by
// accident.
type UpdateBuilder struct {
	table string

	setCols []string
	setVals []param.Parameter
	orders  map[string]int

	where      condition.Condition
	condParams []param.Parameter
}

var _ Buildable = (*UpdateBuilder)(nil)

func NewUpdate() *UpdateBuilder {
	return &UpdateBuilder{orders: make(map[string]int)}
}

// Table sets the table to update.
func (b *UpdateBuilder) Table(table string) *UpdateBuilder {
	b.table = table
	return b
}

// Set adds "col = ?" with the given value. Re-adding a column replaces the
// value but keeps the column's original position.
func (b *UpdateBuilder) Set(col string, val param.Parameter) *UpdateBuilder {
	if pos, exists := b.orders[col]; exists {
		b.setVals[pos] = val
		return b
	}
	b.orders[col] = len(b.setCols)
	b.setCols = append(b.setCols, col)
	b.setVals = append(b.setVals, val)
	return b
}

// Where sets the WHERE condition. A later call overwrites an earlier one.
func (b *UpdateBuilder) Where(cond condition.Condition) *UpdateBuilder {
	b.where = cond
	return b
}

// Params appends the values for the '?' markers of the WHERE condition, in
// marker order.
func (b *UpdateBuilder) Params(params ...param.Parameter) *UpdateBuilder {
	b.condParams = append(b.condParams, params...)
	return b
}

// ParamList returns SET values first, then condition parameters, matching the
// order their placeholders appear in the output SQL.
func (b *UpdateBuilder) ParamList() []param.Parameter {
	params := make([]param.Parameter, 0, len(b.setVals)+len(b.condParams))
	params = append(params, b.setVals...)
	params = append(params, b.condParams...)
	return params
}

// SQL returns the parameterized UPDATE statement.
func (b *UpdateBuilder) SQL() (string, error) {
	if b.table == "" || len(b.setCols) == 0 || condition.IsEmpty(b.where) {
		return "", ErrInvalidBuilder
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")
	for i, col := range b.setCols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col)
		sb.WriteString(" = ?")
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(b.where.SQL())

	return tidy(sb.String()), nil
}

// Build validates and returns the statement artifact.
func (b *UpdateBuilder) Build() (*statement.Statement, error) {
	return build(b)
}
