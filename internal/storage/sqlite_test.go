package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its parent directories")
}

func TestStoreOpenInvalidPath(t *testing.T) {
	// A regular file cannot be used as a parent directory
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o600))

	_, err := Open(filepath.Join(parent, "test.db"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "storage: "))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.breakout/breakout.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".breakout/breakout.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}

func TestStoreKeyValue(t *testing.T) {
	store, _ := openTestStore(t)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", "1"))
	v, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	// Overwrite
	require.NoError(t, store.Set("k", "2"))
	v, _, err = store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	require.NoError(t, store.Delete("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Delete("k"), "deleting a missing key is fine")
}

func TestStoreRounds(t *testing.T) {
	store, _ := openTestStore(t)

	for _, score := range []int{100, 50, 200, 50} {
		_, err := store.SaveRound(score)
		require.NoError(t, err)
	}

	top, err := store.TopRounds(3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 200, top[0].Score)
	assert.Equal(t, 100, top[1].Score)
	assert.Equal(t, 50, top[2].Score)

	recent, err := store.RecentRounds(10)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	assert.Equal(t, 50, recent[0].Score, "newest first")
	assert.Equal(t, 100, recent[3].Score)
	assert.Greater(t, recent[0].ID, recent[1].ID)
}

func TestStoreRoundsDefaultLimit(t *testing.T) {
	store, _ := openTestStore(t)

	for i := range 15 {
		_, err := store.SaveRound(i)
		require.NoError(t, err)
	}

	rounds, err := store.TopRounds(0)
	require.NoError(t, err)
	assert.Len(t, rounds, 10)
}

func TestStoreStats(t *testing.T) {
	store, _ := openTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Rounds)
	assert.Equal(t, 0, stats.BestRound)
	assert.True(t, stats.LastPlayed.IsZero())

	for _, score := range []int{10, 20, 30} {
		_, err := store.SaveRound(score)
		require.NoError(t, err)
	}

	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rounds)
	assert.Equal(t, 30, stats.BestRound)
	assert.InDelta(t, 20.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(60), stats.TotalScore)

	require.NoError(t, store.ClearRounds())
	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Rounds)
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store1.SaveRound(999)
	require.NoError(t, err)
	require.NoError(t, store1.Set("k", "v"))
	store1.Close()

	store2, err := Open(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	top, err := store2.TopRounds(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 999, top[0].Score)

	v, ok, err := store2.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
