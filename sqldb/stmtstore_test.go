package sqldb_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeptools/sqlbuild/sqldb"
)

func TestStmtStoreSetGet(t *testing.T) {
	store := sqldb.NewStmtStore()

	_, exists := store.Get("missing")
	require.False(t, exists)

	store.Set("a = ?", "a = $1")
	got, exists := store.Get("a = ?")
	require.True(t, exists)
	require.Equal(t, "a = $1", got)
	require.Equal(t, 1, store.Len())
}

func TestStmtStoreConcurrentAccess(t *testing.T) {
	store := sqldb.NewStmtStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Set("key", "value")
				_, _ = store.Get("key")
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, store.Len())
}
