package iocache

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// resetGlobals lets a test run InitStores and CloseStores again.
func resetGlobals(t *testing.T) {
	t.Helper()
	initOnce = sync.Once{}
	closeOnce = sync.Once{}
	Manager = &StoreManagerImpl{}
}

func TestStores(t *testing.T) {
	t.Run("sqlite setup", func(t *testing.T) {
		resetGlobals(t)
		dir := t.TempDir()
		cachePath := filepath.Join(dir, "cache.db")
		historyPath := filepath.Join(dir, "history.db")

		err := InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, historyPath)
		require.NoError(t, err)
		assert.NotNil(t, Manager.GetCacheStore())
		assert.NotNil(t, Manager.GetHistoryStore())
		CloseStores()

		_, err = os.Stat(cachePath)
		assert.NoError(t, err, "cache database file should be created")
		_, err = os.Stat(historyPath)
		assert.NoError(t, err, "history database file should be created")
	})

	t.Run("idempotent setup", func(t *testing.T) {
		resetGlobals(t)
		path := filepath.Join(t.TempDir(), "cache.db")

		assert.NoError(t, InitStores(schema.SQLiteBackend, path, "", ""))
		assert.NoError(t, InitStores(schema.SQLiteBackend, path, "", ""))
		assert.Nil(t, Manager.GetHistoryStore(), "empty history backend leaves the store unset")

		CloseStores()
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		resetGlobals(t)
		require.NoError(t, InitStores(schema.NoneBackend, "", schema.NoneBackend, ""))
		assert.NotNil(t, Manager.GetCacheStore())
		assert.NotNil(t, Manager.GetHistoryStore())
		CloseStores()
	})

	t.Run("bad backend", func(t *testing.T) {
		resetGlobals(t)
		err := InitStores(schema.DatabaseBackend("oracle"), "", "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported cache backend")
	})
}

// TestValidateTableName tests the validateTableName function with various inputs.
func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		wantErr   bool
	}{
		{"valid simple name", "test_table", false},
		{"valid name with numbers", "test_table_123", false},
		{"valid name starting with underscore", "_test_table", false},
		{"valid mixed case", "TestTable_123", false},
		{"empty name", "", true},
		{"starts with number", "123_table", true},
		{"contains dash", "test-table", true},
		{"contains space", "test table", true},
		{"sql injection attempt", "test'; DROP TABLE users; --", true},
		{"contains dot", "test.table", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestQuoteTableName tests the quoteTableName function for all backends.
func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		backend schema.DatabaseBackend
		want    string
	}{
		{schema.SQLiteBackend, `"test_table"`},
		{schema.MySQLBackend, "`test_table`"},
		{schema.PostgreSQLBackend, `"test_table"`},
		{schema.NoneBackend, `"test_table"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.want, quoteTableName("test_table", tt.backend))
		})
	}
}

// TestRebind tests placeholder rewriting per backend.
func TestRebind(t *testing.T) {
	query := "UPDATE t SET a = ?, b = ? WHERE id = ?"
	assert.Equal(t, query, rebind(query, schema.SQLiteBackend))
	assert.Equal(t, query, rebind(query, schema.MySQLBackend))
	assert.Equal(t, "UPDATE t SET a = $1, b = $2 WHERE id = $3", rebind(query, schema.PostgreSQLBackend))
}

// TestDriverFor tests driver names of SQL backends.
func TestDriverFor(t *testing.T) {
	for backend, want := range map[schema.DatabaseBackend]string{
		schema.SQLiteBackend:     "sqlite",
		schema.MySQLBackend:      "mysql",
		schema.PostgreSQLBackend: "pgx",
	} {
		got, err := driverFor(backend)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := driverFor(schema.RedisBackend)
	assert.Error(t, err)
}

// TestSQLiteCacheStore tests the full lifecycle of SQLite cache operations.
func TestSQLiteCacheStore(t *testing.T) {
	newStore := func(t *testing.T) contract.CacheStore {
		t.Helper()
		store, err := NewCacheStore("test_table", schema.SQLiteBackend, filepath.Join(t.TempDir(), "cache.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		return store
	}

	t.Run("set and get", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set("profile:octocat", []byte(`{"user":{}}`), 1, 1234567890))

		value, version, ts, err := store.Get("profile:octocat")
		require.NoError(t, err)
		assert.Equal(t, `{"user":{}}`, string(value))
		assert.Equal(t, 1, version)
		assert.Equal(t, int64(1234567890), ts)
	})

	t.Run("upsert", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Set("k", []byte("initial"), 1, 1000))
		require.NoError(t, store.Set("k", []byte("updated"), 2, 2000))

		value, version, ts, err := store.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "updated", string(value))
		assert.Equal(t, 2, version)
		assert.Equal(t, int64(2000), ts)
	})

	t.Run("missing key", func(t *testing.T) {
		store := newStore(t)
		_, _, _, err := store.Get("nope")
		assert.ErrorIs(t, err, contract.ErrCacheMiss)
	})

	t.Run("delete and clear", func(t *testing.T) {
		store := newStore(t)
		for i, key := range []string{"a", "b", "c"} {
			require.NoError(t, store.Set(key, []byte(key), 1, int64(1000+i)))
		}

		require.NoError(t, store.Delete("a"))
		require.NoError(t, store.Delete("missing"))
		_, _, _, err := store.Get("a")
		assert.ErrorIs(t, err, contract.ErrCacheMiss)
		_, _, _, err = store.Get("b")
		assert.NoError(t, err)

		require.NoError(t, store.Clear())
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, 0, status.TotalEntries)
	})

	t.Run("status", func(t *testing.T) {
		store := newStore(t)
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, 0, status.TotalEntries)

		require.NoError(t, store.Set("old", []byte("x"), 1, 1000))
		require.NoError(t, store.Set("new", []byte("y"), 1, 5000))
		status, err = store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, 2, status.TotalEntries)
		assert.Equal(t, time.Unix(5000, 0), status.LastEntryTime)
		assert.Equal(t, time.Unix(1000, 0), status.OldestEntryTime)
		assert.Greater(t, status.TableSizeBytes, int64(0))
	})
}

// TestNoneCacheStore tests that the none backend never holds anything.
func TestNoneCacheStore(t *testing.T) {
	store, err := NewCacheStore("test_table", schema.NoneBackend, "")
	require.NoError(t, err)

	_, _, _, err = store.Get("k")
	assert.ErrorIs(t, err, contract.ErrCacheMiss)
	assert.NoError(t, store.Set("k", []byte("v"), 1, 1))
	_, _, _, err = store.Get("k")
	assert.ErrorIs(t, err, contract.ErrCacheMiss)
	assert.NoError(t, store.Delete("k"))
	assert.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

// TestNewCacheStoreErrors tests constructor validation.
func TestNewCacheStoreErrors(t *testing.T) {
	_, err := NewCacheStore("bad-name", schema.SQLiteBackend, ":memory:")
	assert.Error(t, err)

	_, err = NewCacheStore("ok", schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)

	_, err = NewCacheStore("ok", schema.RedisBackend, "not a url")
	assert.Error(t, err)
}

// TestClearCache tests clearing per backend.
func TestClearCache(t *testing.T) {
	t.Run("sqlite removes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.db")
		store, err := NewCacheStore(bundleTable, schema.SQLiteBackend, path)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearCache(schema.SQLiteBackend, path, ""))
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		// Missing file is fine
		assert.NoError(t, ClearCache(schema.SQLiteBackend, path, ""))
	})

	t.Run("sqlite needs a path", func(t *testing.T) {
		assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
	})

	t.Run("none", func(t *testing.T) {
		assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
		assert.NoError(t, ClearHistory(schema.NoneBackend, "", ""))
	})

	t.Run("unsupported", func(t *testing.T) {
		assert.Error(t, ClearCache(schema.DatabaseBackend("oracle"), "", ""))
		assert.Error(t, ClearHistory(schema.RedisBackend, "", ""))
	})
}

type failingCloser struct{ err error }

func (f failingCloser) Close() error { return f.err }

// captureStderr returns what fn writes to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// TestCloseStoreWarns tests that close failures are reported instead of dropped.
func TestCloseStoreWarns(t *testing.T) {
	out := captureStderr(t, func() {
		closeStore("report history", failingCloser{err: errors.New("connection reset")})
	})
	assert.Equal(t, "Warn Failed to close report history: connection reset\n", out)

	out = captureStderr(t, func() {
		closeStore("bundle cache", failingCloser{})
		closeStore("bundle cache", nil)
	})
	assert.Empty(t, out)
}
