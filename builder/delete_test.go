package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeptools/sqlbuild/builder"
	"github.com/zeptools/sqlbuild/condition"
	"github.com/zeptools/sqlbuild/param"
)

func TestDeleteSQL(t *testing.T) {
	b := builder.NewDelete().
		From("my_table").
		Where(condition.New("col1 = ?").AndSQL("col2 IS NOT NULL")).
		Params(param.Int(1))

	sql, err := b.SQL()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM my_table WHERE col1 = ? AND col2 IS NOT NULL", sql)

	s, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM my_table WHERE col1 = 1 AND col2 IS NOT NULL", s.DebugSQL())
}

func TestDeleteRequiresWhere(t *testing.T) {
	_, err := builder.NewDelete().From("my_table").SQL()
	require.ErrorIs(t, err, builder.ErrInvalidBuilder)
}

func TestDeleteRequiresTable(t *testing.T) {
	_, err := builder.NewDelete().Where(condition.New("col1 = 1")).SQL()
	require.ErrorIs(t, err, builder.ErrInvalidBuilder)
}
