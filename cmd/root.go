package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/iocache"
	"github.com/huangsam/hiresignal/internal/logger"
	"github.com/huangsam/hiresignal/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// log is the process logger, replaced once the config is known.
var log = zap.NewNop()

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "hiresignal",
	Short: "Turn a GitHub profile into a deterministic hiring report.",
	Long: `HireSignal reads the public repositories of a GitHub user and scores their
technology stack, business domains and engineering practices into a hiring report.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setConfigFile()

	// Set environment variable prefix
	viper.SetEnvPrefix("HIRESIGNAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("max-repos", contract.DefaultMaxRepos)
	viper.SetDefault("max-markdown-files", contract.DefaultMaxMarkdownFiles)
	viper.SetDefault("max-markdown-bytes", contract.DefaultMaxMarkdownBytes)
	viper.SetDefault("fetch-workers", contract.DefaultFetchWorkers)
	viper.SetDefault("request-timeout", contract.DefaultRequestTimeout.String())
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("report-type", schema.FullReport)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("cache-ttl", contract.DefaultCacheTTL.String())
	viper.SetDefault("history-backend", "")
	viper.SetDefault("history-db-connect", "")
	viper.SetDefault("llm-provider", schema.NoProvider)
	viper.SetDefault("llm-temperature", contract.DefaultLLMTemperature)
	viper.SetDefault("llm-max-tokens", contract.DefaultLLMMaxTokens)
	viper.SetDefault("listen", contract.DefaultListen)
	viper.SetDefault("color", "yes")
}

// setConfigFile points viper at --config or the default search paths.
func setConfigFile() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		return
	}
	viper.SetConfigName(".hiresignal") // Name of config file (without extension)
	viper.SetConfigType("yaml")        // We'll use YAML format
	viper.AddConfigPath(".")           // Look in the current directory
	viper.AddConfigPath("$HOME")       // Look in the home directory
}

// sharedSetup unmarshals config, runs validation and opens the stores.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.UsernameStr = args[0]
	}

	// 4. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	if err := setupLogger(cfg.LogJSON, cfg.Debug); err != nil {
		return err
	}

	// 5. Initialize persistence layer with validated config
	if err := iocache.InitStores(cfg.CacheBackend, cfg.CacheDBConnect, cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	setConfigFile()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// setupLogger replaces the no-op logger with the configured one.
func setupLogger(json, debug bool) error {
	l, err := logger.New(json, debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	log = l
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Shutdown flushes the logger and closes the stores.
func Shutdown() {
	_ = log.Sync()
	iocache.CloseStores()
}
