package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/hiresignal/schema"
)

func sampleRuns() []ReportRun {
	now := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	end := now.Add(1500 * time.Millisecond)
	duration := int32(1500)
	status := schema.StatusSuccess
	params := `{"report_type":"full","max_repos":15}`
	return []ReportRun{
		{RunID: 1, RequestID: "a1b2c3d4", Username: "octocat", StartTime: now, EndTime: &end, RunDurationMs: &duration, Status: &status, ConfigParams: &params},
		{RunID: 2, RequestID: "e5f6a7b8", Username: "octocat", StartTime: now.Add(time.Minute)},
	}
}

func readAll[T any](t *testing.T, path string) []T {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[T](file)
	defer func() { _ = reader.Close() }()

	rows := make([]T, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	return rows[:n]
}

func TestReportRunStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(ReportRun))
	for _, col := range []string{"run_id", "request_id", "username", "start_time", "end_time", "run_duration_ms", "status", "config_params"} {
		_, ok := s.Lookup(col)
		assert.True(t, ok, "column %s should exist", col)
	}
}

func TestReportSummaryStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(ReportSummary))
	for _, col := range []string{"run_id", "username", "report_time", "primary_domain", "primary_role", "seniority", "overall_score", "total_repos", "data_source", "provider", "report_json"} {
		_, ok := s.Lookup(col)
		assert.True(t, ok, "column %s should exist", col)
	}
}

func TestWriteReportRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.parquet")
	data := sampleRuns()
	require.NoError(t, WriteReportRunsParquet(data, outputPath))

	got := readAll[ReportRun](t, outputPath)
	require.Len(t, got, 2)

	assert.Equal(t, data[0].RequestID, got[0].RequestID)
	assert.WithinDuration(t, data[0].StartTime, got[0].StartTime, time.Nanosecond)
	require.NotNil(t, got[0].EndTime)
	require.NotNil(t, got[0].RunDurationMs)
	assert.Equal(t, int32(1500), *got[0].RunDurationMs)
	require.NotNil(t, got[0].Status)
	assert.Equal(t, schema.StatusSuccess, *got[0].Status)

	assert.Nil(t, got[1].EndTime)
	assert.Nil(t, got[1].RunDurationMs)
	assert.Nil(t, got[1].Status)
	assert.Nil(t, got[1].ConfigParams)
}

func TestWriteReportSummariesParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "reports.parquet")
	data := ConvertReportRecords([]schema.ReportRecord{{
		RunID:         7,
		Username:      "octocat",
		ReportTime:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PrimaryDomain: "Web Development",
		PrimaryRole:   "Backend Engineer",
		Seniority:     "Mid-Level",
		OverallScore:  6.8,
		TotalRepos:    12,
		DataSource:    schema.SourceGitHub,
		Provider:      schema.DeterministicProvider,
		ReportJSON:    `{"candidate":{"username":"octocat"}}`,
	}})
	require.NoError(t, WriteReportSummariesParquet(data, outputPath))

	got := readAll[ReportSummary](t, outputPath)
	require.Len(t, got, 1)
	assert.Equal(t, data[0].PrimaryRole, got[0].PrimaryRole)
	assert.InDelta(t, 6.8, got[0].OverallScore, 0.001)
	assert.Equal(t, data[0].ReportJSON, got[0].ReportJSON)
}

func TestWriteParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteReportRunsParquet([]ReportRun{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "schema is written even without rows")
}

func TestWriteParquet_InvalidPath(t *testing.T) {
	err := WriteReportRunsParquet(sampleRuns(), "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}

func TestConvertRunRecords(t *testing.T) {
	start := time.Now()
	status := "error"
	got := ConvertRunRecords([]schema.RunRecord{{RunID: 3, RequestID: "deadbeef", Username: "ghost", StartTime: start, Status: &status}})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].RunID)
	assert.Equal(t, "ghost", got[0].Username)
	assert.Equal(t, &status, got[0].Status)
	assert.Empty(t, ConvertRunRecords(nil))
}
