package sqldb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeptools/sqlbuild/sqldb"
)

func TestArgBufferSetGrowsRow(t *testing.T) {
	var b sqldb.ArgBuffer
	require.NoError(t, b.Set(3, "c"))
	require.Equal(t, []any{nil, nil, "c"}, b.Row())

	require.NoError(t, b.Set(1, "a"))
	require.Equal(t, []any{"a", nil, "c"}, b.Row())
}

func TestArgBufferSetRejectsNonPositiveIndex(t *testing.T) {
	var b sqldb.ArgBuffer
	require.Error(t, b.Set(0, "x"))
	require.Error(t, b.Set(-1, "x"))
}

func TestArgBufferPushCopiesRow(t *testing.T) {
	var b sqldb.ArgBuffer
	require.NoError(t, b.Set(1, 1))
	b.Push()

	// Overwriting the live row must not disturb the queued copy.
	require.NoError(t, b.Set(1, 2))
	b.Push()

	require.Equal(t, [][]any{{1}, {2}}, b.Pending())
}

func TestArgBufferClearKeepsRow(t *testing.T) {
	var b sqldb.ArgBuffer
	require.NoError(t, b.Set(1, "a"))
	b.Push()
	b.Clear()

	require.Empty(t, b.Pending())
	require.Equal(t, []any{"a"}, b.Row())
}
