package contract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/huangsam/hiresignal/schema"
)

// Default values for configuration.
const (
	DefaultMaxRepos         = 15
	MaxReposLimit           = 100
	DefaultMaxMarkdownFiles = 20
	DefaultMaxMarkdownBytes = 100 * 1024
	DefaultFetchWorkers     = 4
	DefaultRequestTimeout   = 10 * time.Second
	DefaultCacheTTL         = 24 * time.Hour
	DefaultListen           = ":8080"
	DefaultLLMTemperature   = 0.1
	DefaultLLMMaxTokens     = 4096
)

// DefaultLLMModels is the model used by each provider when none is configured.
var DefaultLLMModels = map[schema.LLMProvider]string{
	schema.OpenAIProvider: "gpt-4o-mini",
	schema.GroqProvider:   "llama-3.1-8b-instant",
	schema.OllamaProvider: "llama3.1",
	schema.GeminiProvider: "gemini-2.0-flash",
}

// DefaultLLMBaseURLs holds the OpenAI-compatible endpoints of the providers that need one.
var DefaultLLMBaseURLs = map[schema.LLMProvider]string{
	schema.GroqProvider:   "https://api.groq.com/openai/v1",
	schema.OllamaProvider: "http://localhost:11434/v1",
}

// DefaultMarkdownExcludes are the repository paths never read as documentation.
var DefaultMarkdownExcludes = []string{
	"node_modules/", "vendor/", "third_party/", ".github/", "dist/", "build/",
	"LICENSE", "CODE_OF_CONDUCT",
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

// Config holds the runtime configuration for report generation.
// This struct remains the "final, validated" config.
type Config struct {
	Username   string
	ReportType schema.ReportType
	Refresh    bool

	GitHubToken      string // Please use env var as this is plaintext
	MaxRepos         int
	MaxMarkdownFiles int
	MaxMarkdownBytes int
	FetchWorkers     int
	RequestTimeout   time.Duration
	Excludes         []string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	CacheTTL       time.Duration

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	LogJSON bool
	Debug   bool

	LLMProvider    schema.LLMProvider
	LLMModel       string
	LLMAPIKey      string // Please use env var as this is plaintext
	LLMBaseURL     string
	LLMTemperature float64
	LLMMaxTokens   int

	Listen string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	UsernameStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	GitHubToken      string `mapstructure:"github-token"`
	MaxRepos         int    `mapstructure:"max-repos"`
	MaxMarkdownFiles int    `mapstructure:"max-markdown-files"`
	MaxMarkdownBytes int    `mapstructure:"max-markdown-bytes"`
	FetchWorkers     int    `mapstructure:"fetch-workers"`
	RequestTimeout   string `mapstructure:"request-timeout"`
	Exclude          string `mapstructure:"exclude"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	CacheTTL         string `mapstructure:"cache-ttl"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	LogJSON          bool   `mapstructure:"log-json"`
	Debug            bool   `mapstructure:"debug"`

	// --- Fields from reportCmd.Flags() ---
	ReportType string `mapstructure:"report-type"`
	Refresh    bool   `mapstructure:"refresh"`

	// --- Narrator settings ---
	LLMProvider    string  `mapstructure:"llm-provider"`
	LLMModel       string  `mapstructure:"llm-model"`
	LLMAPIKey      string  `mapstructure:"llm-api-key"`
	LLMBaseURL     string  `mapstructure:"llm-base-url"`
	LLMTemperature float64 `mapstructure:"llm-temperature"`
	LLMMaxTokens   int     `mapstructure:"llm-max-tokens"`

	// --- Fields from serveCmd.Flags() ---
	Listen string `mapstructure:"listen"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// ConfigParams returns the settings recorded with each report run.
// Secrets are never included.
func (c *Config) ConfigParams() map[string]any {
	return map[string]any{
		"report_type":        string(c.ReportType),
		"max_repos":          c.MaxRepos,
		"max_markdown_files": c.MaxMarkdownFiles,
		"cache_backend":      string(c.CacheBackend),
		"llm_provider":       string(c.LLMProvider),
		"llm_model":          c.LLMModel,
	}
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDurations(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processNarrator(cfg, input); err != nil {
		return err
	}
	if input.UsernameStr != "" {
		username, err := NormalizeUsername(input.UsernameStr)
		if err != nil {
			return err
		}
		cfg.Username = username
	}
	return nil
}

// NormalizeUsername trims a GitHub login, strips a profile URL prefix or a
// leading @, and lowercases it. Logins that GitHub would reject are an error
// wrapping ErrInvalidUsername.
func NormalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	for _, prefix := range []string{"https://github.com/", "http://github.com/", "github.com/"} {
		username = strings.TrimPrefix(username, prefix)
	}
	username = strings.TrimPrefix(username, "@")
	username = strings.TrimSuffix(username, "/")
	if !usernamePattern.MatchString(username) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUsername, raw)
	}
	return strings.ToLower(username), nil
}

// ValidateDatabaseConnectionString validates the format of connection strings
// for the MySQL, PostgreSQL and Redis backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	case schema.RedisBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.HasPrefix(connStr, "redis://") && !strings.HasPrefix(connStr, "rediss://") {
			return fmt.Errorf("redis connection string must be a redis:// or rediss:// URL")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if cfg.CacheBackend == "" {
		cfg.CacheBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, redis, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("cache-db-connect: %w", err)
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		cfg.HistoryBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidHistoryBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("history-db-connect: %w", err)
	}

	// Validate that cache and history use different SQLite files
	if cfg.CacheBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
		cacheDBPath := cfg.CacheDBConnect
		if cacheDBPath == "" {
			cacheDBPath = GetCacheDBFilePath()
		}
		historyDBPath := cfg.HistoryDBConnect
		if historyDBPath == "" {
			historyDBPath = GetHistoryDBFilePath()
		}
		if cacheDBPath == historyDBPath {
			return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
		}
	}

	return nil
}

// validateSimpleInputs processes and validates the limits, output and report settings.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.GitHubToken = strings.TrimSpace(input.GitHubToken)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.LogJSON = input.LogJSON
	cfg.Debug = input.Debug
	cfg.Refresh = input.Refresh
	cfg.Listen = input.Listen
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}

	colors := true
	if input.Color != "" {
		var err error
		if colors, err = ParseBoolString(input.Color); err != nil {
			return fmt.Errorf("invalid --color value: %w", err)
		}
	}
	cfg.UseColors = colors

	// --- 1. Fetch limits ---
	if input.MaxRepos <= 0 || input.MaxRepos > MaxReposLimit {
		return fmt.Errorf("max-repos must be greater than 0 and cannot exceed %d (received %d)", MaxReposLimit, input.MaxRepos)
	}
	cfg.MaxRepos = input.MaxRepos

	if input.MaxMarkdownFiles < 0 {
		return fmt.Errorf("max-markdown-files cannot be negative (received %d)", input.MaxMarkdownFiles)
	}
	cfg.MaxMarkdownFiles = input.MaxMarkdownFiles

	if input.MaxMarkdownBytes <= 0 {
		return fmt.Errorf("max-markdown-bytes must be greater than 0 (received %d)", input.MaxMarkdownBytes)
	}
	cfg.MaxMarkdownBytes = input.MaxMarkdownBytes

	// --- 2. Workers Validation ---
	if input.FetchWorkers <= 0 {
		return fmt.Errorf("fetch-workers must be greater than 0 (received %d)", input.FetchWorkers)
	}
	cfg.FetchWorkers = input.FetchWorkers

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, yaml", input.Output)
	}

	// --- 4. Report type Validation ---
	cfg.ReportType = schema.ReportType(strings.ToLower(input.ReportType))
	if cfg.ReportType == "" {
		cfg.ReportType = schema.FullReport
	}
	if _, ok := schema.ValidReportTypes[cfg.ReportType]; !ok {
		return fmt.Errorf("invalid report type '%s'. must be full, llm", input.ReportType)
	}

	// --- 5. Excludes Processing ---
	cfg.Excludes = append([]string{}, DefaultMarkdownExcludes...)
	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.Excludes = append(cfg.Excludes, trimmed)
			}
		}
	}

	return nil
}

// processDurations parses the timeout and cache TTL settings.
func processDurations(cfg *Config, input *ConfigRawInput) error {
	cfg.RequestTimeout = DefaultRequestTimeout
	if input.RequestTimeout != "" {
		d, err := time.ParseDuration(input.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request-timeout '%s': %w", input.RequestTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("request-timeout must be positive (received %s)", d)
		}
		cfg.RequestTimeout = d
	}

	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		d, err := time.ParseDuration(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl '%s': %w", input.CacheTTL, err)
		}
		if d < 0 {
			return fmt.Errorf("cache-ttl cannot be negative (received %s)", d)
		}
		cfg.CacheTTL = d
	}
	return nil
}

// processNarrator validates the optional LLM provider settings and fills in
// the default model and endpoint of the chosen provider.
func processNarrator(cfg *Config, input *ConfigRawInput) error {
	cfg.LLMProvider = schema.LLMProvider(strings.ToLower(input.LLMProvider))
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = schema.NoProvider
	}
	if _, ok := schema.ValidLLMProviders[cfg.LLMProvider]; !ok {
		return fmt.Errorf("invalid llm provider '%s'. must be none, openai, groq, ollama, gemini", input.LLMProvider)
	}

	cfg.LLMAPIKey = strings.TrimSpace(input.LLMAPIKey)
	cfg.LLMModel = strings.TrimSpace(input.LLMModel)
	cfg.LLMBaseURL = strings.TrimSpace(input.LLMBaseURL)
	if cfg.LLMProvider == schema.NoProvider {
		return nil
	}

	if cfg.LLMModel == "" {
		cfg.LLMModel = DefaultLLMModels[cfg.LLMProvider]
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = DefaultLLMBaseURLs[cfg.LLMProvider]
	}
	if cfg.LLMAPIKey == "" && cfg.LLMProvider != schema.OllamaProvider {
		return fmt.Errorf("llm-api-key is required when using the %s provider", cfg.LLMProvider)
	}

	if input.LLMTemperature < 0 || input.LLMTemperature > 2 {
		return fmt.Errorf("llm-temperature must be between 0 and 2 (received %.2f)", input.LLMTemperature)
	}
	cfg.LLMTemperature = input.LLMTemperature

	if input.LLMMaxTokens <= 0 {
		return fmt.Errorf("llm-max-tokens must be greater than 0 (received %d)", input.LLMMaxTokens)
	}
	cfg.LLMMaxTokens = input.LLMMaxTokens
	return nil
}
