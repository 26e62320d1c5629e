package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the storage backend for caching and history.
	DatabaseBackend string

	// ReportType selects the presentation of a report.
	ReportType string

	// DependencyType tells production dependencies apart from dev-only ones.
	DependencyType string

	// Ecosystem is a package ecosystem tag.
	Ecosystem string

	// SkillCategory classifies an extracted skill.
	SkillCategory string

	// SkillSource tells which extraction pass produced a skill.
	SkillSource string

	// LLMProvider names the backend used to narrate reports.
	LLMProvider string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	YAMLOut OutputMode = "yaml"
)

// All storage backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	RedisBackend      DatabaseBackend = "redis"
	NoneBackend       DatabaseBackend = "none"
)

// All report types supported.
const (
	FullReport ReportType = "full" // default
	LLMReport  ReportType = "llm"
)

// Dependency types.
const (
	ProductionDependency DependencyType = "production"
	DevDependency        DependencyType = "dev"
)

// Package ecosystems.
const (
	NPM       Ecosystem = "npm"
	PyPI      Ecosystem = "pypi"
	GoModules Ecosystem = "go"
	RubyGems  Ecosystem = "rubygems"
	Packagist Ecosystem = "packagist"
	Cargo     Ecosystem = "cargo"
)

// Skill categories.
const (
	LanguageCategory  SkillCategory = "language"
	FrameworkCategory SkillCategory = "framework"
	ToolCategory      SkillCategory = "tool"
	LibraryCategory   SkillCategory = "library"
	PracticeCategory  SkillCategory = "practice"
	DatabaseCategory  SkillCategory = "database"
)

// Skill sources.
const (
	PackageManagerSource SkillSource = "package_manager"
	ImportSource         SkillSource = "import"
	BadgeSource          SkillSource = "badge"
	CodeBlockSource      SkillSource = "code_block"
	KeywordSource        SkillSource = "keyword"
)

// All narrator providers supported.
const (
	NoProvider     LLMProvider = "none" // default
	OpenAIProvider LLMProvider = "openai"
	GroqProvider   LLMProvider = "groq"
	OllamaProvider LLMProvider = "ollama"
	GeminiProvider LLMProvider = "gemini"
)

// Report envelope values.
const (
	StatusSuccess = "success"
	StatusError   = "error"

	DeterministicProvider = "deterministic"
	RuleEngineModel       = "rule-engine-v3-modular"

	SourceCache  = "cache"
	SourceGitHub = "github"
)

// DefaultDomain is the sentinel domain used when nothing matches.
const DefaultDomain = "Software Development"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	YAMLOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	RedisBackend:      {},
	NoneBackend:       {},
}

// ValidHistoryBackends lists all valid report history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidReportTypes lists all valid report types.
var ValidReportTypes = map[ReportType]struct{}{
	FullReport: {},
	LLMReport:  {},
}

// ValidLLMProviders lists all valid narrator providers.
var ValidLLMProviders = map[LLMProvider]struct{}{
	NoProvider:     {},
	OpenAIProvider: {},
	GroqProvider:   {},
	OllamaProvider: {},
	GeminiProvider: {},
}

// ManifestFiles are the dependency manifests recognized at a repository root,
// in the order they are parsed.
var ManifestFiles = []string{
	"package.json",
	"requirements.txt",
	"pyproject.toml",
	"go.mod",
	"Gemfile",
	"composer.json",
	"Cargo.toml",
}
