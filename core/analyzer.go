// Package core is the deterministic analysis engine behind hiring reports.
//
// Every service in this package is stateless after construction and safe to
// share between goroutines. Malformed input degrades to empty results; the
// engine never returns an error for bad data.
package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

const (
	maxProjects             = 10
	maxProjectLanguages     = 2
	maxProjectTechs         = 3
	maxProjectFeatures      = 3
	maxDescriptionWords     = 15
	maxDetectedDependencies = 10
	maxReadmeTools          = 10
	maxSummaryFrameworks    = 3
	maxSummaryDomains       = 2
	statisticalKeywords     = 20
	statisticalThreshold    = 0.3
	softSkillDocThreshold   = 40
	bestPracticeThreshold   = 50
	analysisNotes           = "Modular deterministic analysis with dependency extraction from manifest files."
	analysisFailedMessage   = "Analysis failed"
)

// AnalyzerOption customizes an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithClock sets the time source used for activity metrics and timestamps.
func WithClock(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		a.now = now
	}
}

// WithKeywordRanker replaces the primary statistical keyword ranker.
// A nil ranker leaves only the frequency fallback.
func WithKeywordRanker(r KeywordRanker) AnalyzerOption {
	return func(a *Analyzer) {
		a.statistical = NewStatisticalExtractor(a.log, r)
	}
}

// Analyzer sequences every analysis step into a hiring report.
type Analyzer struct {
	log         *zap.Logger
	now         func() time.Time
	deps        *DependencyParser
	scoring     *ScoringEngine
	tech        *TechAnalyzer
	domains     *DomainClassifier
	roles       *RoleRecommender
	readme      *ReadmeAnalyzer
	markdown    *MarkdownAnalyzer
	extractor   *KeywordExtractor
	statistical *StatisticalExtractor
}

// NewAnalyzer builds an analyzer and all of its services.
func NewAnalyzer(log *zap.Logger, opts ...AnalyzerOption) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Analyzer{
		log:       log,
		now:       time.Now,
		deps:      NewDependencyParser(log),
		scoring:   NewScoringEngine(),
		tech:      NewTechAnalyzer(),
		domains:   NewDomainClassifier(),
		roles:     NewRoleRecommender(log),
		readme:    NewReadmeAnalyzer(),
		markdown:  NewMarkdownAnalyzer(log),
		extractor: NewKeywordExtractor(),
	}
	a.statistical = NewStatisticalExtractor(log, NewYakeRanker())
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GenerateReport analyzes bundle into a report envelope. Any failure yields
// an error envelope instead of a partial report. The report type is recorded
// by callers; every type shares the same deterministic pipeline.
func (a *Analyzer) GenerateReport(bundle *schema.UserBundle, reportType schema.ReportType) (env schema.ReportEnvelope) {
	now := a.now().UTC()
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("Report generation failed", zap.Any("panic", r))
			env = ErrorEnvelope(now)
		}
	}()
	if bundle == nil {
		a.log.Error("Report generation failed", zap.String("reason", "no data"))
		return ErrorEnvelope(now)
	}
	a.log.Info("Generating report",
		zap.String("user", bundle.User.Login),
		zap.String("type", string(reportType)),
		zap.Int("repositories", len(bundle.Repositories)))

	report := a.Analyze(bundle, now)
	return schema.ReportEnvelope{
		Status:      schema.StatusSuccess,
		Report:      &report,
		GeneratedAt: schema.FormatTimestamp(now),
		Provider:    schema.DeterministicProvider,
		Model:       schema.RuleEngineModel,
	}
}

// ErrorEnvelope is the fixed envelope returned when analysis fails.
func ErrorEnvelope(now time.Time) schema.ReportEnvelope {
	return schema.ReportEnvelope{
		Status:      schema.StatusError,
		Message:     analysisFailedMessage,
		GeneratedAt: schema.FormatTimestamp(now),
	}
}

// Analyze runs the pipeline over bundle as of now.
func (a *Analyzer) Analyze(bundle *schema.UserBundle, now time.Time) schema.AnalysisReport {
	user := &bundle.User
	repos := bundle.Repositories

	var deps []schema.Dependency
	for i := range repos {
		if len(repos[i].DependencyFiles) > 0 {
			deps = append(deps, a.deps.ParseAll(repos[i].DependencyFiles)...)
		}
	}
	a.log.Debug("Parsed dependencies", zap.Int("dependencies", len(deps)), zap.Int("repositories", len(repos)))

	metrics := a.scoring.CalculateMetrics(user, repos, now)
	tech := a.tech.AnalyzeTechnologies(repos, metrics.LanguageDistribution, now)
	domain := a.domains.ClassifyRepositories(repos)
	projects := a.analyzeProjects(repos)
	skills := a.compileSkills(&tech, &domain, &metrics, repos, deps)
	scores := a.scoring.CalculateScores(&metrics, &tech)
	summary := ExecutiveSummary(user, &metrics, &tech, &domain, &skills)
	recommendation := a.roles.Recommend(&domain, &tech, skills.FrameworksAndLibs, &scores, &metrics)

	return assembleReport(user, tech, projects, skills, domain, summary, scores, metrics, recommendation)
}

func (a *Analyzer) analyzeProjects(repos []schema.Repository) []schema.ProjectAnalysis {
	projects := []schema.ProjectAnalysis{}
	for i := range algo.Head(repos, maxProjects) {
		projects = append(projects, a.analyzeProject(&repos[i]))
	}
	return projects
}

// analyzeProject never fails: a repository that breaks any step is reported
// with its description alone.
func (a *Analyzer) analyzeProject(repo *schema.Repository) (p schema.ProjectAnalysis) {
	domain, _ := a.domains.ClassifyRepository(repo)
	defer func() {
		if r := recover(); r != nil {
			a.log.Warn("Project analysis failed, using simple description",
				zap.String("repo", repo.Name), zap.Any("panic", r))
			p = simpleProject(repo, domain)
		}
	}()

	text := repo.SearchText()
	kws := a.extractor.Extract(repo)
	kws.All = a.mergeStatistical(repo, kws.All)

	techs := []string{}
	for _, tk := range algo.Head(a.tech.Matches(text), maxProjectTechs) {
		techs = append(techs, tk.Keyword)
	}
	techUsed := append(topLanguages(repo, maxProjectLanguages), techs...)

	return schema.ProjectAnalysis{
		RepositoryName:       repo.Name,
		BusinessDomain:       domain,
		ProjectType:          InferProjectType(text),
		ComplexityIndicators: complexity(repo),
		KeyFeatures:          keyFeatures(repo, domain),
		Capabilities:         Capabilities(text + " " + repo.ReadmeContent()),
		TechnologiesUsed:     techUsed,
		ProductionSignals:    productionSignals(repo),
		ScopeDescription:     CrispDescription(repo.Description, techUsed, domain),
		Keywords:             kws,
	}
}

// mergeStatistical adds statistically ranked technical phrases from every
// markdown document of repo after the pattern keywords.
func (a *Analyzer) mergeStatistical(repo *schema.Repository, patterns []string) (merged []string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Warn("Statistical extraction failed, using pattern keywords",
				zap.String("repo", repo.Name), zap.Any("panic", r))
			merged = patterns
		}
	}()
	combined := CombineAllText(a.markdown.ExtractAllContent(repo))
	if strings.TrimSpace(combined) == "" {
		return patterns
	}
	ranked := FilterTechnical(a.statistical.Extract(combined, statisticalKeywords), statisticalThreshold)
	return algo.Head(MergeWithPatterns(ranked, patterns, false), maxAllKeywords)
}

func simpleProject(repo *schema.Repository, domain string) schema.ProjectAnalysis {
	description := repo.Description
	if description == "" {
		description = domain + " project"
	}
	return schema.ProjectAnalysis{
		RepositoryName:       repo.Name,
		BusinessDomain:       domain,
		ProjectType:          keywords.DefaultProjectType,
		ComplexityIndicators: complexity(repo),
		KeyFeatures:          keyFeatures(repo, domain),
		Capabilities:         []string{},
		TechnologiesUsed:     []string{},
		ProductionSignals:    []string{},
		ScopeDescription:     description,
		Keywords: schema.ProjectKeywords{
			Technical: []string{},
			Domain:    []string{},
			Feature:   []string{},
			All:       []string{},
		},
	}
}

func complexity(repo *schema.Repository) schema.ComplexityIndicators {
	return schema.ComplexityIndicators{
		RepositorySizeKB: repo.SizeKB,
		Stars:            repo.Stars,
		HasDocumentation: repo.HasReadme(),
	}
}

func keyFeatures(repo *schema.Repository, domain string) []string {
	if len(repo.Topics) == 0 {
		return []string{domain + " project"}
	}
	return append([]string{}, algo.Head(repo.Topics, maxProjectFeatures)...)
}

// topLanguages returns the n languages with the largest share of repo.
func topLanguages(repo *schema.Repository, n int) []string {
	langs := append([]schema.LanguageShare(nil), repo.Languages...)
	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Percentage > langs[j].Percentage
	})
	names := []string{}
	for _, l := range algo.Head(langs, n) {
		names = append(names, l.Name)
	}
	return names
}

func productionSignals(repo *schema.Repository) []string {
	desc := strings.ToLower(repo.Description)
	signals := []string{}
	for _, s := range keywords.ProductionSignals {
		if strings.Contains(desc, s) {
			signals = append(signals, s)
		}
	}
	return signals
}

// CrispDescription returns a one-sentence project description of at most
// fifteen words. Without a description it names the domain and up to two
// technologies.
func CrispDescription(description string, techUsed []string, domain string) string {
	description = strings.TrimSpace(description)
	if description != "" {
		sentence := strings.TrimSpace(strings.SplitN(description, ".", 2)[0])
		words := strings.Fields(sentence)
		if len(words) <= maxDescriptionWords {
			return sentence
		}
		return strings.Join(words[:maxDescriptionWords], " ") + "..."
	}
	if techs := algo.Head(techUsed, 2); len(techs) > 0 {
		return fmt.Sprintf("%s project using %s", domain, strings.Join(techs, " and "))
	}
	return domain + " project"
}

func (a *Analyzer) compileSkills(
	tech *schema.TechnologyAnalysis,
	domain *schema.DomainClassification,
	metrics *schema.Metrics,
	repos []schema.Repository,
	deps []schema.Dependency,
) schema.ComprehensiveSkills {
	skills := schema.ComprehensiveSkills{
		ProgrammingLanguages: []schema.LanguageEntry{},
		ToolsAndPlatforms:    []schema.NamedEvidence{},
		SoftSkillsIndicators: []schema.NamedEvidence{},
		DomainExpertise:      []schema.NamedEvidence{},
		DetectedDependencies: []schema.DetectedDependency{},
	}
	for _, t := range tech.Technologies {
		skills.ProgrammingLanguages = append(skills.ProgrammingLanguages, schema.LanguageEntry{
			Name:            t.Name,
			UsagePercentage: t.UsagePercentage,
			Category:        string(schema.LanguageCategory),
			Evidence:        fmt.Sprintf("Used in %d repositories", t.RepositoryCount),
		})
	}

	docSkills := a.documentationSkills(repos)
	skills.FrameworksAndLibs = MergeDocumentationSkills(a.tech.DetectFrameworks(repos, deps), docSkills)

	if metrics.DocumentationPercentage > softSkillDocThreshold {
		skills.SoftSkillsIndicators = append(skills.SoftSkillsIndicators,
			schema.NamedEvidence{Name: "Documentation", Evidence: "Consistent README usage"})
	}
	for _, d := range domain.Specializations {
		skills.DomainExpertise = append(skills.DomainExpertise, schema.NamedEvidence{Name: d, Evidence: "Project signatures"})
	}

	type depKey struct {
		name      string
		ecosystem schema.Ecosystem
	}
	seenDeps := make(map[depKey]struct{})
	for _, d := range algo.Head(deps, maxDetectedDependencies) {
		key := depKey{strings.ToLower(d.Name), d.Ecosystem}
		if _, ok := seenDeps[key]; ok {
			continue
		}
		seenDeps[key] = struct{}{}
		skills.DetectedDependencies = append(skills.DetectedDependencies, schema.DetectedDependency{
			Name:       d.Name,
			Version:    d.Version,
			Ecosystem:  d.Ecosystem,
			SourceFile: d.SourceFile,
		})
	}

	seenTools := make(map[string]struct{})
	for _, s := range docSkills {
		if s.Category != schema.ToolCategory && s.Category != schema.DatabaseCategory {
			continue
		}
		key := strings.ToLower(s.Name)
		if _, ok := seenTools[key]; ok {
			continue
		}
		seenTools[key] = struct{}{}
		skills.ToolsAndPlatforms = append(skills.ToolsAndPlatforms, schema.NamedEvidence{
			Name:     s.Name,
			Evidence: fmt.Sprintf("Mentioned in README (%s)", s.Source),
		})
	}
	skills.ToolsAndPlatforms = algo.Head(skills.ToolsAndPlatforms, maxReadmeTools)
	return skills
}

// documentationSkills extracts skills from the README and every markdown
// file of each repository.
func (a *Analyzer) documentationSkills(repos []schema.Repository) []schema.ExtractedSkill {
	var all []schema.ExtractedSkill
	for i := range repos {
		r := &repos[i]
		if r.HasReadme() && r.Readme.Content != "" {
			all = append(all, a.readme.Analyze(r.Readme.Content)...)
		}
		for _, f := range r.MarkdownFiles {
			if f.Content != "" {
				all = append(all, a.readme.Analyze(f.Content)...)
			}
		}
	}
	a.log.Debug("Extracted documentation skills", zap.Int("skills", len(all)), zap.Int("repositories", len(repos)))
	return all
}

// MergeDocumentationSkills collapses frameworks with the same lowercased name
// and appends framework and library skills from documentation that were not
// already detected.
func MergeDocumentationSkills(frameworks []schema.FrameworkSkill, skills []schema.ExtractedSkill) []schema.FrameworkSkill {
	merged := []schema.FrameworkSkill{}
	index := make(map[string]int)
	for _, fw := range frameworks {
		key := strings.ToLower(fw.Name)
		if i, ok := index[key]; ok {
			merged[i] = fw
			continue
		}
		index[key] = len(merged)
		merged = append(merged, fw)
	}
	for _, s := range skills {
		if s.Category != schema.FrameworkCategory && s.Category != schema.LibraryCategory {
			continue
		}
		key := strings.ToLower(s.Name)
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = len(merged)
		merged = append(merged, schema.FrameworkSkill{
			Name:     s.Name,
			Category: algo.Title(string(s.Category)),
			Evidence: fmt.Sprintf("Detected in README (%s)", s.Source),
		})
	}
	return merged
}

// ExecutiveSummary renders the three-sentence overview of a candidate.
func ExecutiveSummary(
	user *schema.UserProfile,
	metrics *schema.Metrics,
	tech *schema.TechnologyAnalysis,
	domain *schema.DomainClassification,
	skills *schema.ComprehensiveSkills,
) string {
	var fws []string
	for _, fw := range algo.Head(skills.FrameworksAndLibs, maxSummaryFrameworks) {
		fws = append(fws, fw.Name)
	}
	fwText := ""
	if len(fws) > 0 {
		fwText = ", utilizing modern tools like " + strings.Join(fws, ", ")
	}
	focus := "various technologies"
	if secondary := algo.Head(domain.SecondaryDomains, maxSummaryDomains); len(secondary) > 0 {
		focus = strings.Join(secondary, ", ")
	}
	return fmt.Sprintf(
		"%s is a %s specialist with strong expertise in %s%s. "+
			"They manage %d repositories with a focus on %s. "+
			"Their workflow demonstrates %d%% documentation coverage and consistent activity.",
		user.Login, domain.PrimaryDomain, strings.Join(tech.PrimaryStack, ", "), fwText,
		metrics.TotalRepos, focus, int(metrics.DocumentationPercentage))
}

func assembleReport(
	user *schema.UserProfile,
	tech schema.TechnologyAnalysis,
	projects []schema.ProjectAnalysis,
	skills schema.ComprehensiveSkills,
	domain schema.DomainClassification,
	summary string,
	scores schema.Scores,
	metrics schema.Metrics,
	recommendation schema.HiringRecommendation,
) schema.AnalysisReport {
	name := user.Name
	if name == "" {
		name = user.Login
	}
	frameworks := []string{}
	for _, fw := range skills.FrameworksAndLibs {
		frameworks = append(frameworks, fw.Name)
	}
	specializations := domain.SecondaryDomains
	if len(specializations) == 0 {
		specializations = []string{"Generalist"}
	}
	structure := "Developing"
	if metrics.ReposWithReadme > 0 {
		structure = "Professional"
	}
	practices := []string{}
	if metrics.DocumentationPercentage > bestPracticeThreshold {
		practices = append(practices, "Good documentation")
	}

	return schema.AnalysisReport{
		Candidate: schema.Candidate{
			Name:       name,
			Username:   user.Login,
			ProfileURL: "https://github.com/" + user.Login,
			AvatarURL:  user.AvatarURL,
			Bio:        user.Bio,
			Location:   user.Location,
			Company:    user.Company,
		},
		TechnologyAnalysis:   tech,
		ProjectScopeAnalysis: projects,
		ComprehensiveSkills:  skills,
		DomainClassification: domain,
		ExecutiveSummary:     summary,
		TechnicalAssessment: schema.TechnicalAssessment{
			OverallScore:        scores.Overall,
			PrimaryLanguages:    tech.PrimaryStack,
			LanguageProficiency: scores.Proficiency,
			FrameworksDetected:  frameworks,
			Specializations:     specializations,
			TechnicalDepth:      scores.Depth,
			LearningTrajectory:  scores.Trajectory,
		},
		CodeQuality: schema.CodeQuality{
			OverallScore:          scores.Quality,
			DocumentationScore:    scores.DocsScore,
			DocumentationEvidence: fmt.Sprintf("%d of %d repositories have READMEs", metrics.ReposWithReadme, metrics.TotalRepos),
			ProjectStructure:      structure,
			BestPractices:         practices,
			AreasToVerify:         []string{"Test coverage", "Code consistency"},
		},
		HiringRecommendation: recommendation,
		Metadata: schema.ReportMetadata{
			AnalysisConfidence: "High",
			DataCompleteness:   fmt.Sprintf("%d%%", int(metrics.DocumentationPercentage)),
			AdditionalNotes:    analysisNotes,
		},
	}
}
