// Package cmd defines the command-line interface for hiresignal.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("github-token", "", "GitHub token for higher rate limits (prefer HIRESIGNAL_GITHUB_TOKEN)")
	rootCmd.PersistentFlags().Int("max-repos", contract.DefaultMaxRepos, "Number of repositories to analyze")
	rootCmd.PersistentFlags().Int("max-markdown-files", contract.DefaultMaxMarkdownFiles, "Markdown files read per repository")
	rootCmd.PersistentFlags().Int("max-markdown-bytes", contract.DefaultMaxMarkdownBytes, "Largest markdown file read, in bytes")
	rootCmd.PersistentFlags().Int("fetch-workers", contract.DefaultFetchWorkers, "Number of concurrent repository fetches")
	rootCmd.PersistentFlags().String("request-timeout", contract.DefaultRequestTimeout.String(), "Timeout of each GitHub request")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of path prefixes or patterns to ignore")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or yaml")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or redis or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Connection string for mysql/postgresql/redis (e.g., redis://localhost:6379/0)")
	rootCmd.PersistentFlags().String("cache-ttl", contract.DefaultCacheTTL.String(), "How long fetched GitHub data stays fresh")
	rootCmd.PersistentFlags().String("history-backend", "", "Report history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Connection string for report history (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("llm-provider", string(schema.NoProvider), "Narrator provider: none or openai or groq or ollama or gemini")
	rootCmd.PersistentFlags().String("llm-model", "", "Narrator model (defaults per provider)")
	rootCmd.PersistentFlags().String("llm-api-key", "", "Narrator API key (prefer HIRESIGNAL_LLM_API_KEY)")
	rootCmd.PersistentFlags().String("llm-base-url", "", "Override the narrator endpoint")
	rootCmd.PersistentFlags().Float64("llm-temperature", contract.DefaultLLMTemperature, "Narrator sampling temperature")
	rootCmd.PersistentFlags().Int("llm-max-tokens", contract.DefaultLLMMaxTokens, "Narrator response token limit")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().String("report-type", string(schema.FullReport), "Report type: full or llm")
	reportCmd.Flags().Bool("refresh", false, "Ignore cached GitHub data")
	reportCmd.Flags().Bool("stored", false, "Print the latest stored report instead of generating one")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListen, "Address the API server listens on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
