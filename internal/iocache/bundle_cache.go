package iocache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// bundleCacheVersion is bumped whenever schema.UserBundle changes shape.
// Entries written with another version are treated as misses.
const bundleCacheVersion = 1

// BundleKey is the cache key of a user's fetched bundle.
func BundleKey(username string) string {
	return "profile:" + username
}

// BundleCache stores fetched user bundles as JSON in a CacheStore.
type BundleCache struct {
	store contract.CacheStore
	ttl   time.Duration
	now   func() time.Time
	log   *zap.Logger
}

// NewBundleCache wraps store. A ttl of zero keeps entries forever.
func NewBundleCache(store contract.CacheStore, ttl time.Duration, log *zap.Logger) *BundleCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &BundleCache{store: store, ttl: ttl, now: time.Now, log: log}
}

// Get returns the cached bundle of username. Missing, stale, outdated or
// unreadable entries all yield contract.ErrCacheMiss.
func (bc *BundleCache) Get(username string) (*schema.UserBundle, error) {
	if bc.store == nil {
		return nil, contract.ErrCacheMiss
	}
	key := BundleKey(username)
	value, version, ts, err := bc.store.Get(key)
	if err != nil {
		if errors.Is(err, contract.ErrCacheMiss) {
			return nil, contract.ErrCacheMiss
		}
		return nil, err
	}

	if version != bundleCacheVersion {
		bc.log.Debug("Ignoring cache entry with old version", zap.String("key", key), zap.Int("version", version))
		return nil, contract.ErrCacheMiss
	}
	if bc.ttl > 0 && bc.now().Sub(time.Unix(ts, 0)) > bc.ttl {
		bc.log.Debug("Ignoring expired cache entry", zap.String("key", key), zap.Int64("timestamp", ts))
		return nil, contract.ErrCacheMiss
	}

	var bundle schema.UserBundle
	if err := json.Unmarshal(value, &bundle); err != nil {
		bc.log.Warn("Ignoring unreadable cache entry", zap.String("key", key), zap.Error(err))
		return nil, contract.ErrCacheMiss
	}
	return &bundle, nil
}

// Put stores bundle under the key of username.
func (bc *BundleCache) Put(username string, bundle *schema.UserBundle) error {
	if bc.store == nil || bundle == nil {
		return nil
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}
	return bc.store.Set(BundleKey(username), data, bundleCacheVersion, bc.now().Unix())
}

// Invalidate drops the entry of username, or every entry when username is empty.
func (bc *BundleCache) Invalidate(username string) error {
	if bc.store == nil {
		return nil
	}
	if username == "" {
		return bc.store.Clear()
	}
	return bc.store.Delete(BundleKey(username))
}
