// Package builder assembles full SELECT/INSERT/UPDATE/DELETE/UNION
// statements from condition fragments and parameters. The builders are
// mechanical string concatenation; placeholder/parameter validation happens
// once, inside statement.New, when Build is called.
package builder

import (
	"errors"
	"strings"

	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/statement"
)

// ErrInvalidBuilder reports a builder whose configuration cannot produce a
// statement, e.g. a missing table or an UPDATE without a WHERE condition.
var ErrInvalidBuilder = errors.New("builder: builder state cannot produce SQL")

// Buildable is the common surface of every statement builder.
type Buildable interface {
	// ParamList returns the parameter list in placeholder order.
	ParamList() []param.Parameter
	// SQL returns the parameterized SQL text.
	SQL() (string, error)
	// Build produces the validated statement artifact.
	Build() (*statement.Statement, error)
}

// tidy removes doubled spaces left over from optional clause concatenation.
func tidy(sql string) string {
	return strings.TrimSpace(strings.ReplaceAll(sql, "  ", " "))
}

func build(b Buildable) (*statement.Statement, error) {
	sql, err := b.SQL()
	if err != nil {
		return nil, err
	}
	return statement.New(sql, b.ParamList())
}
