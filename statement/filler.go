package statement

import (
	"errors"
	"strings"

	"github.com/zeptools/sqlbuild/param"
)

// ErrParamCountMismatch reports that the number of '?' markers in a SQL
// string does not equal the number of parameters supplied for it.
var ErrParamCountMismatch = errors.New("statement: placeholder and parameter count is not matched")

// Normalize collapses multi-line SQL into a single line: lines are split,
// trimmed, blank lines dropped, and the rest rejoined with single spaces.
// Purely cosmetic for log output; placeholder count and order are untouched.
func Normalize(sql string) string {
	lines := strings.Split(sql, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

// DebugSQL renders sql with every '?' replaced by the next parameter's debug
// literal, in order. Every literal '?' character counts as a placeholder.
// The result is for logging only; it is not guaranteed to be valid,
// executable SQL on any particular engine.
func DebugSQL(sql string, params []param.Parameter) (string, error) {
	sql = Normalize(sql)

	var b strings.Builder
	b.Grow(len(sql) + 16*len(params))

	next := 0
	for i := 0; i < len(sql); i++ {
		c := sql[i]
		if c != '?' {
			b.WriteByte(c)
			continue
		}
		if next >= len(params) {
			return "", ErrParamCountMismatch
		}
		b.WriteString(params[next].DebugSQL())
		next++
	}
	if next < len(params) {
		return "", ErrParamCountMismatch
	}
	return b.String(), nil
}
