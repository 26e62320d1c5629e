package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/iocache"
	"github.com/huangsam/hiresignal/internal/outwriter"
	"github.com/huangsam/hiresignal/schema"
)

// historyBackendFromViper reads and validates the history backend settings.
func historyBackendFromViper() (schema.DatabaseBackend, string, error) {
	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("history-backend")))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return "", "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("history-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := historyBackendFromViper()
	if err != nil {
		return err
	}

	// Get output-related config values (used by list, show and export)
	cfg.Output = schema.OutputMode(strings.ToLower(viper.GetString("output")))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, yaml", cfg.Output)
	}
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Width = viper.GetInt("width")
	cfg.UseColors, err = contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}

	// Initialize stores with the loaded config (no cache for history commands)
	if err := iocache.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	backend, connStr, err := historyBackendFromViper()
	if err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	return nil
}

// historyStore returns the initialized history store or fails.
func historyStore() contract.HistoryStore {
	store := iocache.Manager.GetHistoryStore()
	if store == nil {
		contract.LogFatal("History unavailable", fmt.Errorf("history store is not initialized"))
	}
	return store
}

// historyCmd focused on report history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by report commands.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage stored report history and exports",
	Long: `Manage the history of generated reports.

When enabled with --history-backend, HireSignal records every report request:
- Run metadata (request id, timestamps, settings, status)
- A summary of each report (domain, role, seniority, score)
- The full report as JSON

Supported backends: SQLite, MySQL, PostgreSQL, or None (default, disabled)

Subcommands:
  status  - Show history statistics
  list    - List recorded reports
  show    - Print the latest report of a user
  export  - Export data to Parquet for analytics
  clear   - Remove all history
  migrate - Run database schema migrations

Examples:
  # Check history status
  hiresignal history status --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  hiresignal history export --history-backend sqlite --output-file history`,
}

// historyClearCmd clears the report history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored report history",
	Long: `Delete all stored report runs and reports.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  hiresignal history export --output-file backup
  hiresignal history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// The store holds the SQLite file open, so close it before removing it
		iocache.CloseStores()
		if err := iocache.ClearHistory(cfg.HistoryBackend, contract.GetHistoryDBFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear report history", err)
		}
		fmt.Println("Report history cleared successfully.")
	},
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display report history statistics and connection details",
	Long: `Show detailed information about the report history store.

Displays:
- Backend type and connection status
- Total number of runs and reports stored
- Last and oldest run timestamps
- Database table sizes

Examples:
  hiresignal history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := historyStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyListCmd lists recorded reports.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded reports",
	Long: `List the summary of every recorded report, oldest first.

Examples:
  hiresignal history list --history-backend sqlite
  hiresignal history list --output json`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		records, err := historyStore().GetAllReports()
		if err != nil {
			contract.LogFatal("Failed to list reports", err)
		}
		if err := outwriter.NewOutWriter().WriteHistory(records, cfg); err != nil {
			contract.LogFatal("Failed to write reports", err)
		}
	},
}

// historyShowCmd prints the latest stored report of a user.
var historyShowCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Print the latest stored report of a user",
	Long: `Print the most recent report recorded for a GitHub user without calling GitHub.

Examples:
  hiresignal history show octocat --history-backend sqlite`,
	Args:    cobra.ExactArgs(1),
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		username, err := contract.NormalizeUsername(args[0])
		if err != nil {
			contract.LogFatal("Failed to show report", err)
		}
		record, err := historyStore().LatestReport(username)
		if err != nil {
			contract.LogFatal("Failed to show report", err)
		}
		var env schema.ReportEnvelope
		if err := json.Unmarshal([]byte(record.ReportJSON), &env); err != nil {
			contract.LogFatal("Failed to decode stored report", err)
		}
		if err := outwriter.NewOutWriter().WriteReport(env, cfg); err != nil {
			contract.LogFatal("Failed to write report", err)
		}
	},
}

// historyExportCmd exports report history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export report history to Parquet for BI tools and analytics",
	Long: `Export all stored report history to Parquet format for use with analytics tools.

Exports two datasets:
- Report runs - metadata about each report request
- Reports - the summary fields of each generated report

Requires: --output-file parameter

Examples:
  hiresignal history export --output-file history
  duckdb -c "SELECT * FROM read_parquet('history.reports.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExportHistory(historyStore(), cfg.OutputFile, os.Stdout); err != nil {
			contract.LogFatal("Failed to export report history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the report history store.

Migrations allow:
- Upgrading to new schema versions when HireSignal is updated
- Rolling back to an earlier schema

Examples:
  # Migrate to latest version (default)
  hiresignal history migrate --history-backend sqlite

  # Rollback to initial state
  hiresignal history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion, os.Stdout); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
