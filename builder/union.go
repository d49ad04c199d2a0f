package builder

import (
	"strings"

	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/statement"
)

// UnionBuilder combines two or more selects with UNION or UNION ALL.
// Parameters concatenate across the member selects in order; an ORDER BY, if
// any, applies to the combined result.
type UnionBuilder struct {
	selects   []*SelectBuilder
	operators []string // between selects, len(selects)-1 once valid
	orderCols []string
}

var _ Buildable = (*UnionBuilder)(nil)

// NewUnion starts a union from its first member select.
func NewUnion(first *SelectBuilder) *UnionBuilder {
	return &UnionBuilder{selects: []*SelectBuilder{first}}
}

// Union appends a member with the duplicate-eliminating UNION operator.
func (b *UnionBuilder) Union(sel *SelectBuilder) *UnionBuilder {
	b.selects = append(b.selects, sel)
	b.operators = append(b.operators, "UNION")
	return b
}

// UnionAll appends a member with the duplicate-keeping UNION ALL operator.
func (b *UnionBuilder) UnionAll(sel *SelectBuilder) *UnionBuilder {
	b.selects = append(b.selects, sel)
	b.operators = append(b.operators, "UNION ALL")
	return b
}

// OrderBy adds an ORDER BY column for the combined result; call order is
// output order.
func (b *UnionBuilder) OrderBy(column string) *UnionBuilder {
	b.orderCols = append(b.orderCols, column)
	return b
}

// ParamList returns the member selects' parameters concatenated in member order.
func (b *UnionBuilder) ParamList() []param.Parameter {
	var params []param.Parameter
	for _, sel := range b.selects {
		params = append(params, sel.ParamList()...)
	}
	return params
}

// SQL returns the parameterized union statement. At least two member selects
// are required.
func (b *UnionBuilder) SQL() (string, error) {
	if len(b.selects) < 2 {
		return "", ErrInvalidBuilder
	}

	var sb strings.Builder
	for i, sel := range b.selects {
		sql, err := sel.SQL()
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteString(" ")
			sb.WriteString(b.operators[i-1])
			sb.WriteString(" ")
		}
		sb.WriteString(sql)
	}

	if len(b.orderCols) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderCols, ", "))
	}

	return tidy(sb.String()), nil
}

// Build validates and returns the statement artifact.
func (b *UnionBuilder) Build() (*statement.Statement, error) {
	return build(b)
}
