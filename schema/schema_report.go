package schema

import "time"

// Dependency is one major-framework dependency parsed from a manifest file.
type Dependency struct {
	Name       string         `json:"name"`
	Version    string         `json:"version"`
	Type       DependencyType `json:"type"`
	Ecosystem  Ecosystem      `json:"ecosystem"`
	SourceFile string         `json:"source_file"`
}

// ExtractedSkill is a skill surfaced from free-text documentation.
type ExtractedSkill struct {
	Name       string        `json:"name"`
	Category   SkillCategory `json:"category"`
	Source     SkillSource   `json:"source"`
	Version    string        `json:"version,omitempty"`
	Confidence float64       `json:"confidence"`
}

// Metrics are the raw numbers computed from a profile and its repositories.
type Metrics struct {
	TotalRepos              int             `json:"total_repos"`
	TotalStars              int             `json:"total_stars"`
	TotalForks              int             `json:"total_forks"`
	ReposWithReadme         int             `json:"repos_with_readme"`
	DocumentationPercentage float64         `json:"documentation_percentage"`
	TotalMarkdownFiles      int             `json:"total_markdown_files"`
	DaysSinceLastCommit     int             `json:"days_since_last_commit"`
	ActiveReposCount        int             `json:"active_repos_count"`
	AccountAgeYears         float64         `json:"account_age_years"`
	LanguageDistribution    []LanguageShare `json:"language_distribution"`
	HasProductionSignals    bool            `json:"has_production_signals"`
}

// Proficiency is the assessed level in one language.
type Proficiency struct {
	Score    int    `json:"score"`
	Evidence string `json:"evidence"`
}

// Scores are the normalized assessment scores derived from Metrics.
type Scores struct {
	Overall       float64                `json:"overall"`
	Consistency   int                    `json:"consistency"`
	DocsScore     int                    `json:"docs_score"`
	Depth         string                 `json:"depth"`
	Proficiency   map[string]Proficiency `json:"proficiency"`
	Trajectory    string                 `json:"trajectory"`
	Quality       float64                `json:"quality"`
	ActivityLabel string                 `json:"activity_label"`
}

// Technology is one language in the user's stack.
type Technology struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	UsagePercentage     float64  `json:"usage_percentage"`
	RepositoryCount     int      `json:"repository_count"`
	RecentUsage         bool     `json:"recent_usage"`
	ExampleRepositories []string `json:"example_repositories"`
}

// TechnologyAnalysis summarizes the language stack.
type TechnologyAnalysis struct {
	Technologies      []Technology `json:"technologies"`
	PrimaryStack      []string     `json:"primary_stack"`
	SecondaryStack    []string     `json:"secondary_stack"`
	TechnologySummary string       `json:"technology_summary"`
}

// FrameworkSkill is a detected framework or library.
type FrameworkSkill struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Evidence   string `json:"evidence"`
	Version    string `json:"version,omitempty"`
	ExactMatch bool   `json:"exact_match,omitempty"`
}

// DomainClassification is the aggregate domain verdict over all repositories.
type DomainClassification struct {
	PrimaryDomain    string   `json:"primary_domain"`
	SecondaryDomains []string `json:"secondary_domains"`
	Specializations  []string `json:"specializations"`
	Evidence         string   `json:"evidence"`
}

// ProjectKeywords are the job-matching keywords of one repository.
type ProjectKeywords struct {
	Technical []string `json:"technical_keywords"`
	Domain    []string `json:"domain_keywords"`
	Feature   []string `json:"feature_keywords"`
	All       []string `json:"all_keywords"`
}

// ComplexityIndicators are the size signals of one project.
type ComplexityIndicators struct {
	RepositorySizeKB int  `json:"repository_size_kb"`
	Stars            int  `json:"stars"`
	HasDocumentation bool `json:"has_documentation"`
}

// ProjectAnalysis is the scope analysis of one repository.
type ProjectAnalysis struct {
	RepositoryName       string               `json:"repository_name"`
	BusinessDomain       string               `json:"business_domain"`
	ProjectType          string               `json:"project_type"`
	ComplexityIndicators ComplexityIndicators `json:"complexity_indicators"`
	KeyFeatures          []string             `json:"key_features"`
	Capabilities         []string             `json:"capabilities"`
	TechnologiesUsed     []string             `json:"technologies_used"`
	ProductionSignals    []string             `json:"production_signals"`
	ScopeDescription     string               `json:"scope_description"`
	Keywords             ProjectKeywords      `json:"keywords"`
}

// LanguageEntry is a programming language listed among the candidate's skills.
type LanguageEntry struct {
	Name            string  `json:"name"`
	UsagePercentage float64 `json:"usage_percentage"`
	Category        string  `json:"category"`
	Evidence        string  `json:"evidence"`
}

// NamedEvidence is a named finding with the reason it was reported.
type NamedEvidence struct {
	Name     string `json:"name"`
	Evidence string `json:"evidence"`
}

// DetectedDependency is a deduplicated manifest dependency shown in the report.
type DetectedDependency struct {
	Name       string    `json:"name"`
	Version    string    `json:"version"`
	Ecosystem  Ecosystem `json:"ecosystem"`
	SourceFile string    `json:"source_file"`
}

// ComprehensiveSkills is every skill the analysis surfaced.
type ComprehensiveSkills struct {
	ProgrammingLanguages []LanguageEntry      `json:"programming_languages"`
	FrameworksAndLibs    []FrameworkSkill     `json:"frameworks_and_libraries"`
	ToolsAndPlatforms    []NamedEvidence      `json:"tools_and_platforms"`
	SoftSkillsIndicators []NamedEvidence      `json:"soft_skills_indicators"`
	DomainExpertise      []NamedEvidence      `json:"domain_expertise"`
	DetectedDependencies []DetectedDependency `json:"detected_dependencies"`
}

// Candidate identifies the analyzed user.
type Candidate struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	ProfileURL string `json:"profile_url"`
	AvatarURL  string `json:"avatar_url"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Company    string `json:"company"`
}

// TechnicalAssessment is the technical verdict section of a report.
type TechnicalAssessment struct {
	OverallScore        float64                `json:"overall_score"`
	PrimaryLanguages    []string               `json:"primary_languages"`
	LanguageProficiency map[string]Proficiency `json:"language_proficiency"`
	FrameworksDetected  []string               `json:"frameworks_detected"`
	Specializations     []string               `json:"specializations"`
	TechnicalDepth      string                 `json:"technical_depth"`
	LearningTrajectory  string                 `json:"learning_trajectory"`
}

// CodeQuality is the documentation and structure section of a report.
type CodeQuality struct {
	OverallScore          float64  `json:"overall_score"`
	DocumentationScore    int      `json:"documentation_score"`
	DocumentationEvidence string   `json:"documentation_evidence"`
	ProjectStructure      string   `json:"project_structure"`
	BestPractices         []string `json:"best_practices"`
	AreasToVerify         []string `json:"areas_to_verify"`
}

// HiringRecommendation is the role recommendation section of a report.
type HiringRecommendation struct {
	OverallScore            float64  `json:"overall_score"`
	ConfidenceLevel         string   `json:"confidence_level"`
	PrimaryRole             string   `json:"primary_role"`
	SuitableRoles           []string `json:"suitable_roles"`
	SeniorityFit            string   `json:"seniority_fit"`
	TeamFitIndicators       string   `json:"team_fit_indicators"`
	RedFlags                []string `json:"red_flags"`
	GreenFlags              []string `json:"green_flags"`
	SalaryBracketSuggestion string   `json:"salary_bracket_suggestion"`
	RecommendationSummary   string   `json:"recommendation_summary"`
	NextSteps               []string `json:"next_steps"`
}

// ReportMetadata describes how complete the analysis was.
type ReportMetadata struct {
	AnalysisConfidence string `json:"analysis_confidence"`
	DataCompleteness   string `json:"data_completeness"`
	AdditionalNotes    string `json:"additional_notes"`
}

// AnalysisReport is the full hiring report for one user.
type AnalysisReport struct {
	Candidate            Candidate            `json:"candidate"`
	TechnologyAnalysis   TechnologyAnalysis   `json:"technology_analysis"`
	ProjectScopeAnalysis []ProjectAnalysis    `json:"project_scope_analysis"`
	ComprehensiveSkills  ComprehensiveSkills  `json:"comprehensive_skills"`
	DomainClassification DomainClassification `json:"domain_classification"`
	ExecutiveSummary     string               `json:"executive_summary"`
	TechnicalAssessment  TechnicalAssessment  `json:"technical_assessment"`
	CodeQuality          CodeQuality          `json:"code_quality"`
	HiringRecommendation HiringRecommendation `json:"hiring_recommendation"`
	Metadata             ReportMetadata       `json:"metadata"`
}

// ReportEnvelope wraps a report with its generation details.
type ReportEnvelope struct {
	Status      string          `json:"status"`
	Message     string          `json:"message,omitempty"`
	Report      *AnalysisReport `json:"report,omitempty"`
	GeneratedAt string          `json:"generated_at"`
	Provider    string          `json:"provider,omitempty"`
	Model       string          `json:"model,omitempty"`
	DataSource  string          `json:"data_source,omitempty"`
	RequestID   string          `json:"request_id,omitempty"`
}

// OK reports whether the envelope carries a report.
func (e *ReportEnvelope) OK() bool {
	return e.Status == StatusSuccess && e.Report != nil
}

// FormatTimestamp renders t as a UTC ISO-8601 timestamp with a Z suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}

// Performance are the timings of one analyze request.
type Performance struct {
	GitHubLatencyMs int64 `json:"github_api_latency_ms"`
	TotalLatencyMs  int64 `json:"total_latency_ms"`
	CacheHit        bool  `json:"cache_hit"`
}

// CacheInfo tells whether a bundle was served from the cache.
type CacheInfo struct {
	Hit bool `json:"hit"`
}

// AnalyzeResult is the fetched data of one user as returned by /analyze.
type AnalyzeResult struct {
	Status             string       `json:"status"`
	RequestID          string       `json:"request_id"`
	Timestamp          string       `json:"timestamp"`
	User               UserProfile  `json:"user"`
	Repositories       []Repository `json:"repositories"`
	TotalReposAnalyzed int          `json:"total_repos_analyzed"`
	TotalAPICalls      int          `json:"total_api_calls"`
	Performance        Performance  `json:"performance"`
	CacheInfo          CacheInfo    `json:"cache_info"`
}
