package iocache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// Table names for report history.
const (
	reportRunsTable = "hiresignal_report_runs"
	reportsTable    = "hiresignal_reports"
)

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	switch backend {
	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{backend: backend}, nil
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", backend)
	}

	db, err := openSQL(backend, connStr, GetHistoryDBFilePath())
	if err != nil {
		return nil, err
	}

	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{db: db, backend: backend}, nil
}

// createHistoryTables creates the report history tables.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{reportRunsTable, getCreateReportRunsQuery(backend)},
		{reportsTable, getCreateReportsQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}
	return nil
}

// getCreateReportRunsQuery returns the CREATE TABLE query for hiresignal_report_runs.
func getCreateReportRunsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(reportRunsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				request_id VARCHAR(64) NOT NULL,
				username VARCHAR(64) NOT NULL,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				run_duration_ms INT,
				status VARCHAR(32),
				config_params TEXT
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				request_id TEXT NOT NULL,
				username TEXT NOT NULL,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ,
				run_duration_ms INT,
				status TEXT,
				config_params TEXT
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				request_id TEXT NOT NULL,
				username TEXT NOT NULL,
				start_time TEXT NOT NULL,
				end_time TEXT,
				run_duration_ms INTEGER,
				status TEXT,
				config_params TEXT
			);
		`, quotedTableName)
	}
}

// getCreateReportsQuery returns the CREATE TABLE query for hiresignal_reports.
func getCreateReportsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(reportsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL PRIMARY KEY,
				username VARCHAR(64) NOT NULL,
				report_time DATETIME(6) NOT NULL,
				primary_domain VARCHAR(128) NOT NULL,
				primary_role VARCHAR(128) NOT NULL,
				seniority VARCHAR(64) NOT NULL,
				overall_score DOUBLE NOT NULL,
				total_repos INT NOT NULL,
				data_source VARCHAR(32) NOT NULL,
				provider VARCHAR(64) NOT NULL,
				report_json LONGTEXT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT NOT NULL PRIMARY KEY,
				username TEXT NOT NULL,
				report_time TIMESTAMPTZ NOT NULL,
				primary_domain TEXT NOT NULL,
				primary_role TEXT NOT NULL,
				seniority TEXT NOT NULL,
				overall_score DOUBLE PRECISION NOT NULL,
				total_repos INT NOT NULL,
				data_source TEXT NOT NULL,
				provider TEXT NOT NULL,
				report_json TEXT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER NOT NULL PRIMARY KEY,
				username TEXT NOT NULL,
				report_time TEXT NOT NULL,
				primary_domain TEXT NOT NULL,
				primary_role TEXT NOT NULL,
				seniority TEXT NOT NULL,
				overall_score REAL NOT NULL,
				total_repos INTEGER NOT NULL,
				data_source TEXT NOT NULL,
				provider TEXT NOT NULL,
				report_json TEXT NOT NULL
			);
		`, quotedTableName)
	}
}

func (hs *HistoryStoreImpl) disabled() bool {
	return hs.backend == schema.NoneBackend || hs.db == nil
}

func (hs *HistoryStoreImpl) table(name string) string {
	return quoteTableName(name, hs.backend)
}

// BeginRun creates a new report run and returns its unique ID.
func (hs *HistoryStoreImpl) BeginRun(requestID, username string, startTime time.Time, configParams map[string]any) (int64, error) {
	if hs.disabled() {
		return 0, nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	var runID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (request_id, username, start_time, config_params) VALUES ($1, $2, $3, $4) RETURNING run_id`, hs.table(reportRunsTable))
		err = hs.db.QueryRow(query, requestID, username, startTime, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (request_id, username, start_time, config_params) VALUES (?, ?, ?, ?)`, hs.table(reportRunsTable))
		var result sql.Result
		result, err = hs.db.Exec(query, requestID, username, formatTime(startTime, hs.backend), string(configJSON))
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert report run: %w", err)
	}
	return runID, nil
}

// EndRun updates the report run with its end time, duration and status.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, status string) error {
	if hs.disabled() {
		return nil
	}

	row := hs.db.QueryRow(rebind(fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = ?`, hs.table(reportRunsTable)), hs.backend), runID)
	startTime, err := hs.scanTime(row)
	if err != nil {
		return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
	}
	durationMs := endTime.Sub(startTime).Milliseconds()

	query := rebind(fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, status = ? WHERE run_id = ?`, hs.table(reportRunsTable)), hs.backend)
	if _, err := hs.db.Exec(query, formatTime(endTime, hs.backend), durationMs, status, runID); err != nil {
		return fmt.Errorf("failed to update report run: %w", err)
	}
	return nil
}

// RecordReport stores the summary columns and the JSON body of one report.
func (hs *HistoryStoreImpl) RecordReport(runID int64, record schema.ReportRecord) error {
	if hs.disabled() {
		return nil
	}

	query := rebind(fmt.Sprintf(`
		INSERT INTO %s (run_id, username, report_time, primary_domain, primary_role, seniority,
		                overall_score, total_repos, data_source, provider, report_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, hs.table(reportsTable)), hs.backend)
	_, err := hs.db.Exec(query,
		runID, record.Username, formatTime(record.ReportTime, hs.backend), record.PrimaryDomain, record.PrimaryRole,
		record.Seniority, record.OverallScore, record.TotalRepos, record.DataSource, record.Provider, record.ReportJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

const reportColumns = `run_id, username, report_time, primary_domain, primary_role, seniority,
	overall_score, total_repos, data_source, provider, report_json`

// LatestReport returns the most recent report of username.
func (hs *HistoryStoreImpl) LatestReport(username string) (schema.ReportRecord, error) {
	if hs.disabled() {
		return schema.ReportRecord{}, contract.ErrReportNotFound
	}

	query := rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE username = ? ORDER BY run_id DESC LIMIT 1`, reportColumns, hs.table(reportsTable)), hs.backend)
	record, err := hs.scanReport(hs.db.QueryRow(query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return schema.ReportRecord{}, contract.ErrReportNotFound
	}
	if err != nil {
		return schema.ReportRecord{}, fmt.Errorf("failed to read latest report: %w", err)
	}
	return record, nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// Clear removes every run and report.
func (hs *HistoryStoreImpl) Clear() error {
	if hs.disabled() {
		return nil
	}
	for _, table := range []string{reportsTable, reportRunsTable} {
		if _, err := hs.db.Exec(fmt.Sprintf("DELETE FROM %s", hs.table(table))); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TableSizes: make(map[string]int64),
	}
	if hs.disabled() {
		return status, nil
	}

	row := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", hs.table(reportRunsTable)))
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		row = hs.db.QueryRow(fmt.Sprintf("SELECT run_id FROM %s ORDER BY run_id DESC LIMIT 1", hs.table(reportRunsTable)))
		if err := row.Scan(&status.LastRunID); err != nil {
			return status, fmt.Errorf("failed to get last run id: %w", err)
		}

		var err error
		row = hs.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id DESC LIMIT 1", hs.table(reportRunsTable)))
		if status.LastRunTime, err = hs.scanTime(row); err != nil {
			return status, fmt.Errorf("failed to get last run time: %w", err)
		}
		row = hs.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", hs.table(reportRunsTable)))
		if status.OldestRunTime, err = hs.scanTime(row); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
	}

	for _, table := range []string{reportRunsTable, reportsTable} {
		var count int64
		if err := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", hs.table(table))).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalReports = int(status.TableSizes[reportsTable])

	return status, nil
}

// GetAllRuns retrieves all report runs, oldest first.
func (hs *HistoryStoreImpl) GetAllRuns() ([]schema.RunRecord, error) {
	if hs.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT run_id, request_id, username, start_time, end_time, run_duration_ms, status, config_params FROM %s ORDER BY run_id", hs.table(reportRunsTable))
	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query report runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunRecord
	for rows.Next() {
		var record schema.RunRecord

		switch hs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &record.RequestID, &record.Username, &startTimeStr, &endTimeStr,
				&record.RunDurationMs, &record.Status, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan report run: %w", err)
			}
			if record.StartTime, err = time.Parse(time.RFC3339Nano, startTimeStr); err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.RequestID, &record.Username, &record.StartTime, &record.EndTime,
				&record.RunDurationMs, &record.Status, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan report run: %w", err)
			}
		}

		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report runs: %w", err)
	}
	return results, nil
}

// GetAllReports retrieves all stored reports, oldest first.
func (hs *HistoryStoreImpl) GetAllReports() ([]schema.ReportRecord, error) {
	if hs.disabled() {
		return nil, nil
	}

	rows, err := hs.db.Query(fmt.Sprintf("SELECT %s FROM %s ORDER BY run_id", reportColumns, hs.table(reportsTable)))
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ReportRecord
	for rows.Next() {
		record, err := hs.scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}
	return results, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (hs *HistoryStoreImpl) scanReport(s scanner) (schema.ReportRecord, error) {
	var record schema.ReportRecord
	var reportTimeStr string
	dest := []any{&record.RunID, &record.Username, &record.ReportTime, &record.PrimaryDomain, &record.PrimaryRole,
		&record.Seniority, &record.OverallScore, &record.TotalRepos, &record.DataSource, &record.Provider, &record.ReportJSON}
	if hs.backend == schema.SQLiteBackend {
		dest[2] = &reportTimeStr
	}
	if err := s.Scan(dest...); err != nil {
		return record, err
	}
	if hs.backend == schema.SQLiteBackend {
		t, err := time.Parse(time.RFC3339Nano, reportTimeStr)
		if err != nil {
			return record, fmt.Errorf("failed to parse report_time: %w", err)
		}
		record.ReportTime = t
	}
	return record, nil
}

// scanTime reads a single time column stored in the backend's format.
func (hs *HistoryStoreImpl) scanTime(s scanner) (time.Time, error) {
	if hs.backend != schema.SQLiteBackend {
		var t time.Time
		err := s.Scan(&t)
		return t, err
	}
	var str string
	if err := s.Scan(&str); err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, str)
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return t
	}
}
