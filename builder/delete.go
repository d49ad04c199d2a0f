package builder

import (
	"strings"

	"github.com/zeptools/sqlbuild/condition"
	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/statement"
)

// DeleteBuilder assembles a DELETE statement. A WHERE condition is
// mandatory, same rationale as UpdateBuilder.
type DeleteBuilder struct {
	table      string
	where      condition.Condition
	condParams []param.Parameter
}

var _ Buildable = (*DeleteBuilder)(nil)

func NewDelete() *DeleteBuilder {
	return &DeleteBuilder{}
}

// From sets the table to delete from.
func (b *DeleteBuilder) From(table string) *DeleteBuilder {
	b.table = table
	return b
}

// Where sets the WHERE condition. A later call overwrites an earlier one.
func (b *DeleteBuilder) Where(cond condition.Condition) *DeleteBuilder {
	b.where = cond
	return b
}

// Params appends the values for the '?' markers of the WHERE condition, in
// marker order.
func (b *DeleteBuilder) Params(params ...param.Parameter) *DeleteBuilder {
	b.condParams = append(b.condParams, params...)
	return b
}

// ParamList returns the condition parameters in marker order.
func (b *DeleteBuilder) ParamList() []param.Parameter {
	params := make([]param.Parameter, 0, len(b.condParams))
	return append(params, b.condParams...)
}

// SQL returns the parameterized DELETE statement.
func (b *DeleteBuilder) SQL() (string, error) {
	if b.table == "" || condition.IsEmpty(b.where) {
		return "", ErrInvalidBuilder
	}

	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(b.table)
	sb.WriteString(" WHERE ")
	sb.WriteString(b.where.SQL())

	return tidy(sb.String()), nil
}

// Build validates and returns the statement artifact.
func (b *DeleteBuilder) Build() (*statement.Statement, error) {
	return build(b)
}
