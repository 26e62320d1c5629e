// Package iocache persists fetched GitHub bundles and generated reports.
package iocache

import (
	"sync"

	"github.com/huangsam/hiresignal/internal/contract"
)

// StoreManagerImpl holds the cache and history stores used by the application.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	cache        contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// NewStoreManager returns a manager over already opened stores.
func NewStoreManager(cache contract.CacheStore, history contract.HistoryStore) *StoreManagerImpl {
	return &StoreManagerImpl{cache: cache, history: history}
}

// GetCacheStore returns the bundle CacheStore.
func (mgr *StoreManagerImpl) GetCacheStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.cache
}

// GetHistoryStore returns the report HistoryStore.
func (mgr *StoreManagerImpl) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
