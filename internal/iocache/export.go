package iocache

import (
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/parquet"
)

// ExportHistory writes every run and report in store to two Parquet files
// named after outputFile and reports progress to out.
func ExportHistory(store contract.HistoryStore, outputFile string, out io.Writer) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no report history found to export")
	}

	_, _ = fmt.Fprintf(out, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(out, "Total runs: %d\n", status.TotalRuns)
	_, _ = fmt.Fprintf(out, "Total reports: %d\n", status.TotalReports)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve report runs: %w", err)
	}
	reports, err := store.GetAllReports()
	if err != nil {
		return fmt.Errorf("failed to retrieve reports: %w", err)
	}

	parquetRuns := parquet.ConvertRunRecords(runs)
	runsFile := outputFile + ".report_runs.parquet"
	if err := parquet.WriteReportRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write report runs: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	parquetReports := parquet.ConvertReportRecords(reports)
	reportsFile := outputFile + ".reports.parquet"
	if err := parquet.WriteReportSummariesParquet(parquetReports, reportsFile); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Exported %d reports to: %s\n", len(parquetReports), reportsFile)

	return nil
}
