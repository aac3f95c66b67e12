package storage

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighScoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	require.NoError(t, err)
	NewHighScore(store1, nil).Save(42)
	require.NoError(t, store1.Close())

	// A fresh store and keeper see the saved value
	store2, err := Open(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	assert.Equal(t, 42, NewHighScore(store2, nil).Load())

	raw, ok, err := store2.Get(HighScoreKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", raw, "stored as a base-10 string")
}

func TestHighScoreMissingLoadsZero(t *testing.T) {
	store, _ := openTestStore(t)
	assert.Equal(t, 0, NewHighScore(store, nil).Load())
}

func TestHighScoreMalformedValues(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"17", 17},
		{" 17\n", 17},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"3.5", 0},
		{"-5", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			store, _ := openTestStore(t)
			require.NoError(t, store.Set(HighScoreKey, tt.raw))

			assert.Equal(t, tt.want, NewHighScore(store, nil).Load())
		})
	}
}

func TestHighScoreClosedStore(t *testing.T) {
	store, _ := openTestStore(t)
	keeper := NewHighScore(store, nil)
	keeper.Save(5)
	require.NoError(t, store.Close())

	// Neither call may panic or surface the error
	assert.Equal(t, 0, keeper.Load())
	keeper.Save(6)
}

func TestMemoryHighScore(t *testing.T) {
	var m MemoryHighScore
	assert.Equal(t, 0, m.Load())

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m.Save(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, m.Load())

	m.Save(4)
	assert.Equal(t, 10, m.Load())
}

func TestHighScoreNeverLowers(t *testing.T) {
	store, _ := openTestStore(t)
	a := NewHighScore(store, nil)
	b := NewHighScore(store, nil)

	a.Save(15)
	b.Save(11)

	assert.Equal(t, 15, a.Load())
	assert.Equal(t, 15, b.Load())

	b.Save(16)
	assert.Equal(t, 16, a.Load())
}

func TestHighScoreOverwritesMalformed(t *testing.T) {
	store, _ := openTestStore(t)
	require.NoError(t, store.Set(HighScoreKey, "garbage"))

	keeper := NewHighScore(store, nil)
	keeper.Save(3)

	assert.Equal(t, 3, keeper.Load())
}
