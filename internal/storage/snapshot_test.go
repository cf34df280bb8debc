package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adnangad/RDBMS/internal/catalog"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "memory.json"), nil)
}

func sampleCatalog() *catalog.Catalog {
	cat := catalog.New()
	table := &catalog.Table{
		Name: "users",
		Columns: []catalog.Column{
			{Name: "id", Type: catalog.ColumnTypeInt, PrimaryKey: true},
			{Name: "name", Type: catalog.ColumnTypeText},
			{Name: "score", Type: catalog.ColumnTypeFloat},
			{Name: "active", Type: catalog.ColumnTypeBool, Unique: false},
		},
		Rows: []catalog.Row{
			{"id": int64(1), "name": "alice", "score": 9.5, "active": true},
			{"id": int64(2), "name": "bob", "score": 7.0, "active": false},
		},
	}
	catalog.BuildIndexes(table, nil)
	cat.Tables["users"] = table
	return cat
}

func TestLoadMissingFileIsEmptyCatalog(t *testing.T) {
	store := tempStore(t)

	cat, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, cat.Tables)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(sampleCatalog()))

	cat, err := store.Load()
	require.NoError(t, err)

	table, ok := cat.Table("users")
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name", "score", "active"}, table.ColumnNames())
	assert.Equal(t, "id", table.PrimaryKey())
	require.Len(t, table.Rows, 2)

	// JSON numbers come back as float64; Int columns must be normalized
	// to int64, floats left alone.
	assert.Equal(t, int64(1), table.Rows[0]["id"])
	assert.Equal(t, 9.5, table.Rows[0]["score"])
	assert.Equal(t, true, table.Rows[0]["active"])
	assert.Equal(t, "bob", table.Rows[1]["name"])
}

func TestLoadRebuildsIndexes(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(sampleCatalog()))

	cat, err := store.Load()
	require.NoError(t, err)

	table, _ := cat.Table("users")
	require.Contains(t, table.Indexes, "id")
	idx := table.Indexes["id"]
	assert.Equal(t, []int{1}, idx.Lookup(int64(2)))
}

func TestLoadIgnoresStaleIndexEntries(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(sampleCatalog()))

	// Corrupt the persisted index: point id=1 at a bogus position. The
	// load must rebuild from rows and never trust persisted entries.
	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	var doc map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["users"]["indexes"] = map[string]map[string][]int{
		"id": {"1": {99}},
	}
	corrupted, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.path, corrupted, 0o644))

	cat, err := store.Load()
	require.NoError(t, err)
	table, _ := cat.Table("users")
	assert.Equal(t, []int{0}, table.Indexes["id"].Lookup(int64(1)))
}

func TestLoadRejectsMalformedSnapshot(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestLoadRejectsValueOfWrongType(t *testing.T) {
	store := tempStore(t)
	doc := snapshotDoc{
		"t": {
			Columns:       []string{"id"},
			Types:         map[string]string{"id": "int"},
			UniqueColumns: []string{},
			Rows:          []map[string]interface{}{{"id": "not-a-number"}},
		},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.path, data, 0o644))

	_, err = store.Load()
	assert.Error(t, err)
}

func TestSaveOverwritesWholeSnapshot(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(sampleCatalog()))

	// Save an empty catalog; the old tables must be gone.
	require.NoError(t, store.Save(catalog.New()))

	cat, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, cat.Tables)
}
