package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aish-sh/aish/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndRecords(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(domain.HistoryRecord{
		Intent:     "list files",
		Command:    "ls -la",
		Model:      "llama3.2",
		Safe:       true,
		DurationMS: 420,
	}))
	require.NoError(t, store.Save(domain.HistoryRecord{
		Intent:  "delete everything",
		Command: "rm -rf /",
		Model:   "llama3.2",
		Safe:    false,
	}))

	records, err := store.Records(10, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.NotEmpty(t, record.ID)
		assert.False(t, record.Timestamp.IsZero())
	}
}

func TestRecordsSearch(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(domain.HistoryRecord{Intent: "show disk usage", Command: "df -h", Safe: true}))
	require.NoError(t, store.Save(domain.HistoryRecord{Intent: "list files", Command: "ls", Safe: true}))

	records, err := store.Records(10, "disk")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "df -h", records[0].Command)
}

func TestRecordsOrderAndLimit(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(domain.HistoryRecord{
			Intent:    "intent",
			Command:   "cmd",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := store.Records(3, "")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].Timestamp.After(records[1].Timestamp))
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.HistoryRecord{Intent: "x", Command: "y"}))

	require.NoError(t, store.Clear())

	records, err := store.Records(10, "")
	require.NoError(t, err)
	assert.Empty(t, records)
}
