package sqldb

import (
	"strconv"
	"strings"
)

// PlaceholderPrefixForDBType maps a database type to its positional
// placeholder prefix. A zero byte means the database accepts bare '?'.
var PlaceholderPrefixForDBType = map[string]byte{
	"mysql":  '?',
	"pgsql":  '$',
	"mssql":  '@',
	"oracle": ':',
	"sqlite": 0, // NOTE: sqlite supports all of them
}

// ReplaceStaticPlaceholders rewrites every '?' in sql to an ordinal
// placeholder with the given prefix, e.g. $1, $2, ... for pgsql.
// Every literal '?' character counts as a placeholder; the library never
// parses SQL to find quoted contexts.
func ReplaceStaticPlaceholders(sql string, prefix byte) string {
	if prefix == '?' || prefix == 0 {
		return sql
	}
	var b strings.Builder
	b.Grow(len(sql) + 8)
	cnt := 1
	for i := 0; i < len(sql); i++ {
		if sql[i] != '?' {
			b.WriteByte(sql[i])
			continue
		}
		b.WriteByte(prefix)
		b.WriteString(strconv.Itoa(cnt))
		cnt++
	}
	return b.String()
}

// Placeholders returns n bare '?' markers joined by commas, e.g. "?,?,?".
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(2*n - 1)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('?')
	}
	return b.String()
}
