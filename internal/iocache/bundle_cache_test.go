package iocache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

func sampleBundle() *schema.UserBundle {
	return &schema.UserBundle{
		User: schema.UserProfile{Login: "octocat", Name: "The Octocat", Followers: 10},
		Repositories: []schema.Repository{{
			Name:          "hello-world",
			Description:   "My first repository",
			Topics:        []string{"demo"},
			Languages:     []schema.LanguageShare{{Name: "Go", Bytes: 100, Percentage: 100}},
			MarkdownFiles: []schema.MarkdownFile{},
			Readme:        &schema.Readme{Content: "# Hello", Length: 7, HasReadme: true},
		}},
		FetchedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestBundleKey(t *testing.T) {
	assert.Equal(t, "profile:octocat", BundleKey("octocat"))
}

func TestBundleCacheRoundTrip(t *testing.T) {
	store, err := NewCacheStore(bundleTable, schema.SQLiteBackend, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	cache := NewBundleCache(store, time.Hour, nil)
	_, err = cache.Get("octocat")
	assert.ErrorIs(t, err, contract.ErrCacheMiss)

	require.NoError(t, cache.Put("octocat", sampleBundle()))
	got, err := cache.Get("octocat")
	require.NoError(t, err)
	assert.Equal(t, sampleBundle(), got)

	require.NoError(t, cache.Invalidate("octocat"))
	_, err = cache.Get("octocat")
	assert.ErrorIs(t, err, contract.ErrCacheMiss)
}

func TestBundleCacheExpiry(t *testing.T) {
	store, err := NewCacheStore(bundleTable, schema.SQLiteBackend, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cache := NewBundleCache(store, 24*time.Hour, nil)
	cache.now = func() time.Time { return now }
	require.NoError(t, cache.Put("octocat", sampleBundle()))

	now = now.Add(23 * time.Hour)
	_, err = cache.Get("octocat")
	assert.NoError(t, err, "fresh entry is a hit")

	now = now.Add(2 * time.Hour)
	_, err = cache.Get("octocat")
	assert.ErrorIs(t, err, contract.ErrCacheMiss, "stale entry is a miss")

	cache.ttl = 0
	_, err = cache.Get("octocat")
	assert.NoError(t, err, "zero ttl never expires")
}

func TestBundleCacheRejects(t *testing.T) {
	t.Run("old version", func(t *testing.T) {
		store := &MockCacheStore{}
		store.On("Get", "profile:octocat").Return([]byte(`{}`), bundleCacheVersion+1, time.Now().Unix(), nil)
		_, err := NewBundleCache(store, 0, nil).Get("octocat")
		assert.ErrorIs(t, err, contract.ErrCacheMiss)
	})

	t.Run("unreadable entry", func(t *testing.T) {
		store := &MockCacheStore{}
		store.On("Get", "profile:octocat").Return([]byte(`{not json`), bundleCacheVersion, time.Now().Unix(), nil)
		_, err := NewBundleCache(store, 0, nil).Get("octocat")
		assert.ErrorIs(t, err, contract.ErrCacheMiss)
	})

	t.Run("storage error passes through", func(t *testing.T) {
		boom := errors.New("boom")
		store := &MockCacheStore{}
		store.On("Get", "profile:octocat").Return([]byte(nil), 0, int64(0), boom)
		_, err := NewBundleCache(store, 0, nil).Get("octocat")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nil store", func(t *testing.T) {
		cache := NewBundleCache(nil, time.Hour, nil)
		_, err := cache.Get("octocat")
		assert.ErrorIs(t, err, contract.ErrCacheMiss)
		assert.NoError(t, cache.Put("octocat", sampleBundle()))
		assert.NoError(t, cache.Invalidate(""))
	})
}

func TestBundleCacheInvalidateAll(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Clear").Return(nil).Once()
	store.On("Delete", "profile:octocat").Return(nil).Once()

	cache := NewBundleCache(store, 0, nil)
	require.NoError(t, cache.Invalidate(""))
	require.NoError(t, cache.Invalidate("octocat"))
	store.AssertExpectations(t)
}

func TestBundleCachePutWritesVersion(t *testing.T) {
	store := &MockCacheStore{}
	store.On("Set", "profile:octocat", mock.AnythingOfType("[]uint8"), bundleCacheVersion, int64(1700000000)).Return(nil)

	cache := NewBundleCache(store, 0, nil)
	cache.now = func() time.Time { return time.Unix(1700000000, 0) }
	require.NoError(t, cache.Put("octocat", sampleBundle()))
	store.AssertExpectations(t)
}
