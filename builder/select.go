package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zeptools/sqlbuild/condition"
	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/statement"
)

// SelectBuilder assembles a SELECT statement, optionally with CTEs, joins,
// grouping and pagination. Clause ordering in the output is fixed:
// WITH, SELECT [DISTINCT], FROM, JOINs, WHERE, GROUP BY, HAVING, ORDER BY,
// LIMIT [OFFSET], FETCH FIRST.
type SelectBuilder struct {
	withTables []string
	withParams []param.Parameter

	selectCols []string
	distinct   bool
	mainTable  string
	joins      []joinData

	where      condition.Condition
	condParams []param.Parameter

	groupCols []string
	having    condition.Condition
	orderCols []string

	limitRow *int
	offset   *int
	fetchRow *int

	err error
}

var _ Buildable = (*SelectBuilder)(nil)

func NewSelect() *SelectBuilder {
	return &SelectBuilder{}
}

// Select adds one column to the select list; it may carry an alias or a more
// complex expression. A bare "*" is rejected: statements should name what
// they read.
func (b *SelectBuilder) Select(column string) *SelectBuilder {
	column = strings.TrimSpace(column)
	if column == "*" {
		b.fail(fmt.Errorf("%w: 'SELECT *' is not allowed", ErrInvalidBuilder))
		return b
	}
	b.selectCols = append(b.selectCols, column)
	return b
}

// From sets the primary table. Use the join methods for further tables.
func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.mainTable = table
	return b
}

// Distinct switches to SELECT DISTINCT. Irreversible.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

// InnerJoin adds "INNER JOIN <table> ON <on>". May be called repeatedly.
func (b *SelectBuilder) InnerJoin(table string, on condition.Condition) *SelectBuilder {
	b.joins = append(b.joins, joinData{typ: joinInner, table: table, on: on})
	return b
}

// LeftJoin adds "LEFT JOIN <table> ON <on>". May be called repeatedly.
func (b *SelectBuilder) LeftJoin(table string, on condition.Condition) *SelectBuilder {
	b.joins = append(b.joins, joinData{typ: joinLeft, table: table, on: on})
	return b
}

// Where sets the WHERE condition. A later call overwrites an earlier one.
func (b *SelectBuilder) Where(cond condition.Condition) *SelectBuilder {
	b.where = cond
	return b
}

// Params appends the values for the '?' markers of the WHERE condition, in
// marker order.
func (b *SelectBuilder) Params(params ...param.Parameter) *SelectBuilder {
	b.condParams = append(b.condParams, params...)
	return b
}

// GroupBy adds a GROUP BY column; call order is output order.
func (b *SelectBuilder) GroupBy(column string) *SelectBuilder {
	b.groupCols = append(b.groupCols, column)
	return b
}

// Having sets the HAVING condition.
func (b *SelectBuilder) Having(cond condition.Condition) *SelectBuilder {
	b.having = cond
	return b
}

// OrderBy adds an ORDER BY column; "col DESC" style suffixes are allowed
// and call order is output order.
func (b *SelectBuilder) OrderBy(column string) *SelectBuilder {
	b.orderCols = append(b.orderCols, column)
	return b
}

// Limit sets LIMIT. A later call overwrites an earlier one.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limitRow = &n
	return b
}

// LimitOffset sets LIMIT with OFFSET. A later call overwrites an earlier one.
func (b *SelectBuilder) LimitOffset(limit, offset int) *SelectBuilder {
	b.limitRow = &limit
	b.offset = &offset
	return b
}

// FetchFirst sets "FETCH FIRST n ROWS ONLY". A later call overwrites an
// earlier one.
func (b *SelectBuilder) FetchFirst(n int) *SelectBuilder {
	b.fetchRow = &n
	return b
}

// With prepends a CTE built from another select, e.g. WITH name AS (...).
// May be called repeatedly; the sub-select's parameters are carried over and
// bind before this builder's own condition parameters.
func (b *SelectBuilder) With(name string, sub *SelectBuilder) *SelectBuilder {
	subSQL, err := sub.SQL()
	if err != nil {
		b.fail(err)
		return b
	}
	b.withParams = append(b.withParams, sub.ParamList()...)
	b.withTables = append(b.withTables, fmt.Sprintf("%s AS (%s)", name, subSQL))
	return b
}

func (b *SelectBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// ParamList returns WITH parameters first, then condition parameters, matching
// the order their placeholders appear in the output SQL.
func (b *SelectBuilder) ParamList() []param.Parameter {
	params := make([]param.Parameter, 0, len(b.withParams)+len(b.condParams))
	params = append(params, b.withParams...)
	params = append(params, b.condParams...)
	return params
}

// SQL returns the parameterized SELECT statement.
func (b *SelectBuilder) SQL() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.mainTable == "" || len(b.selectCols) == 0 {
		return "", ErrInvalidBuilder
	}

	var sb strings.Builder

	if len(b.withTables) > 0 {
		sb.WriteString("WITH ")
		sb.WriteString(strings.Join(b.withTables, ", "))
		sb.WriteString(" ")
	}

	if b.distinct {
		sb.WriteString("SELECT DISTINCT ")
	} else {
		sb.WriteString("SELECT ")
	}
	sb.WriteString(strings.Join(b.selectCols, ", "))

	sb.WriteString(" FROM ")
	sb.WriteString(b.mainTable)

	for _, j := range b.joins {
		sb.WriteString(" ")
		sb.WriteString(j.sql())
	}

	if !condition.IsEmpty(b.where) {
		sb.WriteString(" WHERE ")
		sb.WriteString(b.where.SQL())
	}

	if len(b.groupCols) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(b.groupCols, ", "))
	}

	if !condition.IsEmpty(b.having) {
		sb.WriteString(" HAVING ")
		sb.WriteString(b.having.SQL())
	}

	if len(b.orderCols) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderCols, ", "))
	}

	if b.limitRow != nil && b.offset != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(*b.limitRow))
		sb.WriteString(" OFFSET ")
		sb.WriteString(strconv.Itoa(*b.offset))
	} else if b.limitRow != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(*b.limitRow))
	}

	if b.fetchRow != nil {
		sb.WriteString(" FETCH FIRST ")
		sb.WriteString(strconv.Itoa(*b.fetchRow))
		sb.WriteString(" ROWS ONLY")
	}

	return tidy(sb.String()), nil
}

// Build validates and returns the statement artifact.
func (b *SelectBuilder) Build() (*statement.Statement, error) {
	return build(b)
}
