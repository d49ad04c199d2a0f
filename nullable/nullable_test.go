package nullable_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zeptools/sqlbuild/nullable"
)

func TestIntZeroValueIsNil(t *testing.T) {
	var n nullable.Int
	require.True(t, n.IsNil())
	require.Nil(t, n.Ptr())
	require.Equal(t, int64(0), n.ForceValue())
}

func TestIntOf(t *testing.T) {
	n := nullable.IntOf(42)
	require.False(t, n.IsNil())
	require.Equal(t, int64(42), n.ForceValue())
	require.Equal(t, int64(42), *n.Ptr())
}

func TestPtrReturnsCopy(t *testing.T) {
	n := nullable.IntOf(1)
	p := n.Ptr()
	*p = 99
	require.Equal(t, int64(1), n.ForceValue())
}

func TestFloat(t *testing.T) {
	require.True(t, nullable.Float{}.IsNil())
	require.Equal(t, 2.5, nullable.FloatOf(2.5).ForceValue())
}

func TestString(t *testing.T) {
	require.True(t, nullable.String{}.IsNil())
	require.Equal(t, "x", nullable.StringOf("x").ForceValue())
	// An explicit empty string is present, not NULL.
	require.False(t, nullable.StringOf("").IsNil())
}

func TestTime(t *testing.T) {
	require.True(t, nullable.Time{}.IsNil())
	ts := time.Date(2024, 3, 20, 14, 23, 56, 0, time.UTC)
	require.Equal(t, ts, nullable.TimeOf(ts).ForceValue())
	require.Equal(t, ts, *nullable.TimeOf(ts).Ptr())
}
