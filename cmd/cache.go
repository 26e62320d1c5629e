package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/iocache"
	"github.com/huangsam/hiresignal/schema"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no history tracking for cache commands)
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by report commands. This avoids validating fetch
// and narrator settings for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached GitHub data (improves performance)",
	Long: `Manage the cache of fetched GitHub profiles and repositories.

HireSignal caches each user's fetched data so repeated reports skip the GitHub API.
Entries expire after --cache-ttl.

Supported backends: SQLite (default), MySQL, PostgreSQL, Redis, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove cached data

Examples:
  # Check cache status
  hiresignal cache status

  # Drop the data of one user
  hiresignal cache clear octocat`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear [username]",
	Short: "Remove cached GitHub data",
	Long: `Delete cached GitHub data from the configured backend.

With a username only that user's entry is removed. Without one:
For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table
For Redis: Deletes every cache key

Examples:
  # Clear SQLite cache (default)
  hiresignal cache clear

  # Clear one user from a Redis cache
  HIRESIGNAL_CACHE_BACKEND=redis HIRESIGNAL_CACHE_DB_CONNECT="redis://localhost:6379/0" hiresignal cache clear octocat`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if len(args) == 1 {
			username, err := contract.NormalizeUsername(args[0])
			if err != nil {
				contract.LogFatal("Failed to clear cache", err)
			}
			cache := iocache.NewBundleCache(iocache.Manager.GetCacheStore(), 0, log)
			if err := cache.Invalidate(username); err != nil {
				contract.LogFatal("Failed to clear cache", err)
			}
			fmt.Printf("Cache cleared for %s.\n", username)
			return
		}
		// The store holds the SQLite file open, so close it before removing it
		iocache.CloseStores()
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the GitHub data cache.

Displays:
- Backend type and connection status
- Total number of cached users
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  hiresignal cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetCacheStore()
		if store == nil {
			fmt.Println("Cache is disabled.")
			return
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(os.Stdout, status)
	},
}
