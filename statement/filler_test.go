package statement_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeptools/sqlbuild/param"
	"github.com/zeptools/sqlbuild/statement"
)

func TestNormalizeCollapsesMultiline(t *testing.T) {
	sql := "SELECT col1, col2\nFROM my_table\nWHERE col1 = ?"
	require.Equal(t, "SELECT col1, col2 FROM my_table WHERE col1 = ?", statement.Normalize(sql))
}

func TestNormalizeTrimsAndDropsBlankLines(t *testing.T) {
	sql := "  SELECT col1  \n\n   \n  FROM my_table  \n"
	require.Equal(t, "SELECT col1 FROM my_table", statement.Normalize(sql))
}

func TestNormalizeKeepsSingleLine(t *testing.T) {
	require.Equal(t, "SELECT 1", statement.Normalize("SELECT 1"))
	require.Equal(t, "", statement.Normalize(""))
	require.Equal(t, "", statement.Normalize("\n\n"))
}

func TestNormalizeKeepsInnerSpacing(t *testing.T) {
	// Only line structure is normalized; spacing inside a line stays.
	require.Equal(t, "SELECT  col1", statement.Normalize("SELECT  col1"))
}

func TestDebugSQLSubstitutesInOrder(t *testing.T) {
	sql := "UPDATE my_table SET col1 = ? WHERE col2 = ? AND col3 = ?"
	got, err := statement.DebugSQL(sql, []param.Parameter{
		param.String("abc"),
		param.Int(42),
		param.LongPtr(nil),
	})
	require.NoError(t, err)
	require.Equal(t, "UPDATE my_table SET col1 = 'abc' WHERE col2 = 42 AND col3 = NULL", got)
}

func TestDebugSQLNormalizesFirst(t *testing.T) {
	sql := "SELECT col1\nFROM my_table\nWHERE col2 = ?"
	got, err := statement.DebugSQL(sql, []param.Parameter{param.Int(1)})
	require.NoError(t, err)
	require.Equal(t, "SELECT col1 FROM my_table WHERE col2 = 1", got)
}

func TestDebugSQLCountMismatch(t *testing.T) {
	// More markers than parameters.
	_, err := statement.DebugSQL("col1 = ? AND col2 = ?", []param.Parameter{param.Int(1)})
	require.ErrorIs(t, err, statement.ErrParamCountMismatch)

	// More parameters than markers.
	_, err = statement.DebugSQL("col1 = ?", []param.Parameter{param.Int(1), param.Int(2)})
	require.ErrorIs(t, err, statement.ErrParamCountMismatch)
}

func TestDebugSQLNoPlaceholders(t *testing.T) {
	got, err := statement.DebugSQL("SELECT 1", nil)
	require.NoError(t, err)
	require.Equal(t, "SELECT 1", got)

	_, err = statement.DebugSQL("SELECT 1", []param.Parameter{param.Int(1)})
	require.ErrorIs(t, err, statement.ErrParamCountMismatch)
}
