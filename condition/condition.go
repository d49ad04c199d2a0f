// Package condition builds composable boolean SQL fragments for WHERE, ON
// and HAVING clauses.
//
// A Condition carries fragment text only. Parameters for any '?' markers
// inside the text travel separately, supplied by the caller in the same
// order the markers appear; the fragment itself never verifies that
// correspondence.
package condition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zeptools/sqlbuild/sqldb"
)

var (
	ErrEmptyValues        = errors.New("condition: value list cannot be empty")
	ErrUnsupportedElem    = errors.New("condition: unsupported element type, only int and string are allowed")
	ErrNonPositiveCount   = errors.New("condition: placeholder count must be positive")
	ErrPlaceholderOperand = errors.New("condition: EqTo operand cannot be '?', use New(\"col = ?\") instead")
)

// Condition is an immutable SQL condition fragment. The zero value is the
// canonical empty condition, which is the identity element for And and Or.
type Condition struct {
	sql string
}

// New creates a condition from raw SQL text, e.g. New("col1 = col2") or
// New("col1 = ?") with the parameter supplied separately.
func New(sql string) Condition {
	return Condition{sql: sql}
}

// Empty returns the canonical empty condition. It is ignored by And and Or,
// which makes it the natural value for "no extra filtering", e.g.
//
//	cond := condition.Empty()
//	if !includeExpired {
//	    cond = condition.IsNull("expiry_date")
//	}
func Empty() Condition {
	return Condition{}
}

// IsEmpty reports whether cond holds no usable text. All-whitespace text
// counts as empty.
func IsEmpty(cond Condition) bool {
	return strings.TrimSpace(cond.sql) == ""
}

// SQL returns the fragment text.
func (c Condition) SQL() string {
	return c.sql
}

// ===================== Constructors =====================

// EqTo builds "<lhs> = <rhs>" for column-to-column or column-to-literal
// comparison, e.g. EqTo("t1.id", "t2.ref_id"). A bare '?' operand is
// rejected: parameterized comparison belongs in New("col = ?") so the
// placeholder stays visible at the call site.
func EqTo(lhs, rhs string) (Condition, error) {
	if lhs == "?" || rhs == "?" {
		return Condition{}, ErrPlaceholderOperand
	}
	return Condition{sql: lhs + " = " + rhs}, nil
}

// MustEqTo is EqTo that panics on invalid operands.
func MustEqTo(lhs, rhs string) Condition {
	c, err := EqTo(lhs, rhs)
	if err != nil {
		panic(err)
	}
	return c
}

// IsNull builds "<column> IS NULL".
func IsNull(column string) Condition {
	return Condition{sql: column + " IS NULL"}
}

// IsNotNull builds "<column> IS NOT NULL".
func IsNotNull(column string) Condition {
	return Condition{sql: column + " IS NOT NULL"}
}

// In builds "<column> IN (v1,v2,...)" with literal values. Only int and
// string elements are supported; ints render bare, strings render
// single-quoted with NO escaping. Not designed for '?' placeholders —
// use InPlaceholders for that.
func In(column string, values []any) (Condition, error) {
	quoted, err := quoteList(values)
	if err != nil {
		return Condition{}, err
	}
	return Condition{sql: fmt.Sprintf("%s IN (%s)", column, strings.Join(quoted, ","))}, nil
}

// MustIn is In that panics on invalid input.
func MustIn(column string, values []any) Condition {
	c, err := In(column, values)
	if err != nil {
		panic(err)
	}
	return c
}

// NotIn builds "<column> NOT IN (v1,v2,...)" with literal values, under the
// same element rules as In.
func NotIn(column string, values []any) (Condition, error) {
	quoted, err := quoteList(values)
	if err != nil {
		return Condition{}, err
	}
	return Condition{sql: fmt.Sprintf("%s NOT IN (%s)", column, strings.Join(quoted, ","))}, nil
}

// MustNotIn is NotIn that panics on invalid input.
func MustNotIn(column string, values []any) Condition {
	c, err := NotIn(column, values)
	if err != nil {
		panic(err)
	}
	return c
}

// InPlaceholders builds "<column> IN (?,?,...)" with count markers.
func InPlaceholders(column string, count int) (Condition, error) {
	if count <= 0 {
		return Condition{}, ErrNonPositiveCount
	}
	return Condition{sql: fmt.Sprintf("%s IN (%s)", column, sqldb.Placeholders(count))}, nil
}

// MustInPlaceholders is InPlaceholders that panics on invalid count.
func MustInPlaceholders(column string, count int) Condition {
	c, err := InPlaceholders(column, count)
	if err != nil {
		panic(err)
	}
	return c
}

// NotInPlaceholders builds "<column> NOT IN (?,?,...)" with count markers.
func NotInPlaceholders(column string, count int) (Condition, error) {
	if count <= 0 {
		return Condition{}, ErrNonPositiveCount
	}
	return Condition{sql: fmt.Sprintf("%s NOT IN (%s)", column, sqldb.Placeholders(count))}, nil
}

// MustNotInPlaceholders is NotInPlaceholders that panics on invalid count.
func MustNotInPlaceholders(column string, count int) Condition {
	c, err := NotInPlaceholders(column, count)
	if err != nil {
		panic(err)
	}
	return c
}

func quoteList(values []any) ([]string, error) {
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}
	quoted := make([]string, 0, len(values))
	for _, val := range values {
		switch v := val.(type) {
		case int:
			quoted = append(quoted, strconv.Itoa(v))
		case string:
			quoted = append(quoted, "'"+v+"'")
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedElem, val)
		}
	}
	return quoted, nil
}

// Bracket wraps the fragment text in parentheses verbatim. Bracketing an
// empty condition produces the literal "()"; callers must avoid that.
func Bracket(cond Condition) Condition {
	return Condition{sql: "(" + cond.sql + ")"}
}

// PickByFlag selects a condition by a tri-state flag: ifTrue when the flag
// points at true, ifFalse when it points at false, and the canonical empty
// condition when the flag is nil.
func PickByFlag(flag *bool, ifTrue, ifFalse Condition) Condition {
	if flag == nil {
		return Empty()
	}
	if *flag {
		return ifTrue
	}
	return ifFalse
}

// ===================== Combinators =====================

// And combines two conditions with AND. An empty side is absorbed: the
// other side comes back unchanged, and two empty conditions stay empty.
func (c Condition) And(other Condition) Condition {
	if IsEmpty(other) {
		return c
	}
	if IsEmpty(c) {
		return other
	}
	return Condition{sql: c.sql + " AND " + other.sql}
}

// AndSQL is shorthand for And(New(sql)).
func (c Condition) AndSQL(sql string) Condition {
	return c.And(New(sql))
}

// Or combines two conditions with OR, absorbing empty sides like And.
func (c Condition) Or(other Condition) Condition {
	if IsEmpty(other) {
		return c
	}
	if IsEmpty(c) {
		return other
	}
	return Condition{sql: c.sql + " OR " + other.sql}
}

// OrSQL is shorthand for Or(New(sql)).
func (c Condition) OrSQL(sql string) Condition {
	return c.Or(New(sql))
}

// AndBracket is shorthand for And(Bracket(other)).
func (c Condition) AndBracket(other Condition) Condition {
	return c.And(Bracket(other))
}

// OrBracket is shorthand for Or(Bracket(other)).
func (c Condition) OrBracket(other Condition) Condition {
	return c.Or(Bracket(other))
}
