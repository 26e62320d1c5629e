// Package parquet exports report history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/hiresignal/schema"
)

// ReportRun is one report generation run.
// This struct maps to the hiresignal_report_runs database table.
type ReportRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RequestID is the short request id printed in logs and envelopes
	RequestID string `parquet:"request_id,snappy"`

	// Username is the analyzed GitHub login
	Username string `parquet:"username,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Status is the final envelope status (nullable)
	Status *string `parquet:"status,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ReportSummary is the stored summary of one generated report.
// This struct maps to the hiresignal_reports database table.
type ReportSummary struct {
	RunID         int64     `parquet:"run_id,snappy"`
	Username      string    `parquet:"username,snappy"`
	ReportTime    time.Time `parquet:"report_time,snappy"`
	PrimaryDomain string    `parquet:"primary_domain,snappy"`
	PrimaryRole   string    `parquet:"primary_role,snappy"`
	Seniority     string    `parquet:"seniority,snappy"`
	OverallScore  float64   `parquet:"overall_score,snappy"`
	TotalRepos    int32     `parquet:"total_repos,snappy"`
	DataSource    string    `parquet:"data_source,snappy"`
	Provider      string    `parquet:"provider,snappy"`
	ReportJSON    string    `parquet:"report_json,snappy"`
}

// WriteReportRunsParquet writes report runs to a Parquet file.
func WriteReportRunsParquet(data []ReportRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteReportSummariesParquet writes report summaries to a Parquet file.
func WriteReportSummariesParquet(data []ReportSummary, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes rows with a schema inferred from the struct tags of T.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertRunRecords converts schema.RunRecord to ReportRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []ReportRun {
	result := make([]ReportRun, len(records))
	for i, record := range records {
		result[i] = ReportRun{
			RunID:         record.RunID,
			RequestID:     record.RequestID,
			Username:      record.Username,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			Status:        record.Status,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertReportRecords converts schema.ReportRecord to ReportSummary for Parquet export.
func ConvertReportRecords(records []schema.ReportRecord) []ReportSummary {
	result := make([]ReportSummary, len(records))
	for i, record := range records {
		result[i] = ReportSummary{
			RunID:         record.RunID,
			Username:      record.Username,
			ReportTime:    record.ReportTime,
			PrimaryDomain: record.PrimaryDomain,
			PrimaryRole:   record.PrimaryRole,
			Seniority:     record.Seniority,
			OverallScore:  record.OverallScore,
			TotalRepos:    record.TotalRepos,
			DataSource:    record.DataSource,
			Provider:      record.Provider,
			ReportJSON:    record.ReportJSON,
		}
	}
	return result
}
