// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/hiresignal/schema"
)

// Fetcher retrieves everything the analyzer needs about one GitHub user.
// This allows the report service to be tested without network access.
type Fetcher interface {
	// FetchBundle returns the profile and the enriched repositories of username.
	FetchBundle(ctx context.Context, username string) (schema.UserBundle, error)
}

// StoreManager defines the interface for managing the storage backends.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetCacheStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Delete(key string) error
	Clear() error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking report runs and storing reports.
type HistoryStore interface {
	// BeginRun creates a new report run and returns its unique ID
	BeginRun(requestID, username string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the report run with completion data
	EndRun(runID int64, endTime time.Time, status string) error

	// RecordReport stores the summary and the JSON body of a generated report
	RecordReport(runID int64, record schema.ReportRecord) error

	// LatestReport returns the most recent report stored for username
	LatestReport(username string) (schema.ReportRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every recorded run, oldest first
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllReports returns every recorded report, oldest first
	GetAllReports() ([]schema.ReportRecord, error)

	// Clear removes every run and report
	Clear() error

	// Close closes the underlying connection
	Close() error
}
