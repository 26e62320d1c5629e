package iocache

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/hiresignal/schema"
)

func TestMigrateHistory_Unsupported(t *testing.T) {
	var out bytes.Buffer
	err := MigrateHistory(schema.NoneBackend, "", -1, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")

	assert.Error(t, MigrateHistory(schema.RedisBackend, "redis://localhost", -1, &out))
}

func TestMigrateHistory_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	var out bytes.Buffer

	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1, &out))
	assert.Contains(t, out.String(), "to version 3")
	assert.FileExists(t, dbPath)

	out.Reset()
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1, &out))
	assert.Contains(t, out.String(), "already at the latest version")

	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 1, &out))
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 0, &out))
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 3, &out))

	// The migrated schema serves the store
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	_, err = store.GetStatus()
	assert.NoError(t, err)
}

func TestMigrateHistory_AfterStoreCreatedTables(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	var out bytes.Buffer
	assert.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1, &out))
}

func TestMigrationsEmbedded(t *testing.T) {
	for _, backend := range []string{"sqlite", "mysql", "postgresql"} {
		entries, err := migrationsFS.ReadDir("migrations/" + backend)
		require.NoError(t, err)
		assert.Len(t, entries, 6, backend)
	}
}
