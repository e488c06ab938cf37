package history

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "request_history.json"))
}

func TestAppendAndList(t *testing.T) {
	store := newTestStore(t)

	rec, err := store.Append("cost", map[string]int{"requests_per_day": 1000}, map[string]float64{"total": 42.5})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "cost", rec.Kind)
	assert.False(t, rec.CreatedAt.IsZero())

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)

	var req map[string]int
	require.NoError(t, json.Unmarshal(records[0].Request, &req))
	assert.Equal(t, 1000, req["requests_per_day"])
}

func TestListEmpty(t *testing.T) {
	store := newTestStore(t)

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFind(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Append("decision", nil, nil)
	require.NoError(t, err)
	second, err := store.Append("canary", nil, nil)
	require.NoError(t, err)

	found, err := store.Find(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "canary", found.Kind)

	found, err = store.Find(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "decision", found.Kind)
}

func TestFindMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Find("no-such-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendCapsOldestFirst(t *testing.T) {
	store := newTestStore(t)
	store.max = 3

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		rec, err := store.Append("benchmark", i, nil)
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[4], records[2].ID)

	_, err = store.Find(ids[0])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersistsAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request_history.json")

	first := NewStore(path)
	rec, err := first.Append("evaluate", "req", "res")
	require.NoError(t, err)

	second := NewStore(path)
	found, err := second.Find(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "evaluate", found.Kind)
}

func TestExportArchive(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Append("cost", nil, map[string]string{"note": "archived"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportArchive(&buf))

	gz, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	defer gz.Close() //nolint:errcheck

	var records []Record
	require.NoError(t, json.NewDecoder(gz).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "cost", records[0].Kind)
}
