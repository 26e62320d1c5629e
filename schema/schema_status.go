package schema

import "time"

// CacheStatus represents the status of the bundle cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the report history store.
type HistoryStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalReports  int              `json:"total_reports"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// RunRecord represents a row from the hiresignal_report_runs table.
type RunRecord struct {
	RunID         int64
	RequestID     string
	Username      string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	Status        *string
	ConfigParams  *string
}

// ReportRecord represents a row from the hiresignal_reports table.
type ReportRecord struct {
	RunID         int64
	Username      string
	ReportTime    time.Time
	PrimaryDomain string
	PrimaryRole   string
	Seniority     string
	OverallScore  float64
	TotalRepos    int32
	DataSource    string
	Provider      string
	ReportJSON    string
}
