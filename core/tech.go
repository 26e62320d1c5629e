package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

const (
	primaryStackThreshold = 15.0
	maxPrimaryStack       = 3
	maxSecondaryStack     = 5
	maxExampleRepos       = 4
	recentUsageDays       = 180
	maxFrameworks         = 25
)

// TechAnalyzer derives the language stack and the frameworks of a user.
type TechAnalyzer struct {
	flat []keywords.TechKeyword
}

// NewTechAnalyzer returns an analyzer over the flattened technology table.
func NewTechAnalyzer() *TechAnalyzer {
	return &TechAnalyzer{flat: keywords.FlatTech()}
}

// AnalyzeTechnologies ranks languages by their share of all bytes and splits
// them into primary and secondary stacks.
func (a *TechAnalyzer) AnalyzeTechnologies(repos []schema.Repository, distribution []schema.LanguageShare, now time.Time) schema.TechnologyAnalysis {
	langs := make([]schema.LanguageShare, len(distribution))
	copy(langs, distribution)
	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Percentage > langs[j].Percentage
	})

	result := schema.TechnologyAnalysis{
		Technologies:   []schema.Technology{},
		PrimaryStack:   []string{},
		SecondaryStack: []string{},
	}
	var primary, secondary []string
	for _, lang := range langs {
		examples := reposWithLanguage(repos, lang.Name)
		result.Technologies = append(result.Technologies, schema.Technology{
			Name:                lang.Name,
			Category:            string(schema.LanguageCategory),
			UsagePercentage:     algo.Round1(lang.Percentage),
			RepositoryCount:     len(examples),
			RecentUsage:         hasRecentUsage(repos, lang.Name, now),
			ExampleRepositories: algo.Head(examples, maxExampleRepos),
		})
		if lang.Percentage > primaryStackThreshold {
			primary = append(primary, lang.Name)
		} else {
			secondary = append(secondary, lang.Name)
		}
	}
	result.PrimaryStack = append(result.PrimaryStack, algo.Head(primary, maxPrimaryStack)...)
	result.SecondaryStack = append(result.SecondaryStack, algo.Head(secondary, maxSecondaryStack)...)
	result.TechnologySummary = technologySummary(primary)
	return result
}

func reposWithLanguage(repos []schema.Repository, language string) []string {
	names := []string{}
	for i := range repos {
		if repos[i].LanguagePercentage(language) > 0 {
			names = append(names, repos[i].Name)
		}
	}
	return names
}

func hasRecentUsage(repos []schema.Repository, language string, now time.Time) bool {
	for i := range repos {
		r := &repos[i]
		if r.LanguagePercentage(language) <= 0 || r.PushedAt.IsZero() {
			continue
		}
		if daysBetween(r.PushedAt, now) < recentUsageDays {
			return true
		}
	}
	return false
}

func technologySummary(primary []string) string {
	if len(primary) == 0 {
		return "Developer"
	}
	return fmt.Sprintf("Full-stack developer with %s expertise", strings.Join(algo.Head(primary, 2), ", "))
}

// Matches returns the technology keywords found in text, in table order.
func (a *TechAnalyzer) Matches(text string) []keywords.TechKeyword {
	var found []keywords.TechKeyword
	for _, tk := range a.flat {
		if algo.MatchKeyword(tk.Keyword, text) {
			found = append(found, tk)
		}
	}
	return found
}

// DetectFrameworks counts in how many repositories each technology keyword
// appears and keeps the most frequent ones. Parsed dependencies, when given,
// attach versions and add manifest-only frameworks.
func (a *TechAnalyzer) DetectFrameworks(repos []schema.Repository, deps []schema.Dependency) []schema.FrameworkSkill {
	counts := algo.NewCounter()
	firstRepo := make(map[string]string)
	category := make(map[string]string)
	for i := range repos {
		for _, tk := range a.Matches(repos[i].SearchText()) {
			counts.Add(tk.Keyword, 1)
			if _, ok := firstRepo[tk.Keyword]; !ok {
				firstRepo[tk.Keyword] = repos[i].Name
				category[tk.Keyword] = tk.Category
			}
		}
	}

	frameworks := []schema.FrameworkSkill{}
	for _, e := range counts.MostCommon(maxFrameworks) {
		frameworks = append(frameworks, schema.FrameworkSkill{
			Name:     algo.Title(e.Key),
			Category: category[e.Key],
			Evidence: fmt.Sprintf("Detected in %d repositories including %s", int(e.Value), firstRepo[e.Key]),
		})
	}
	if len(deps) > 0 {
		frameworks = EnrichWithDependencies(frameworks, deps)
	}
	return frameworks
}

// EnrichWithDependencies attaches manifest versions to detected frameworks.
// A framework matches a dependency by lowercased name, exactly or when either
// name contains the other. Production dependencies that match no framework are
// appended with an inferred category.
func EnrichWithDependencies(frameworks []schema.FrameworkSkill, deps []schema.Dependency) []schema.FrameworkSkill {
	// Later dependencies replace earlier ones of the same name but keep their slot.
	var names []string
	lookup := make(map[string]schema.Dependency)
	for _, d := range deps {
		key := strings.ToLower(d.Name)
		if _, ok := lookup[key]; !ok {
			names = append(names, key)
		}
		lookup[key] = d
	}

	enriched := make([]schema.FrameworkSkill, 0, len(frameworks))
	detected := make(map[string]struct{})
	for _, fw := range frameworks {
		fwName := strings.ToLower(fw.Name)
		dep, ok := lookup[fwName]
		if !ok {
			for _, name := range names {
				if strings.Contains(name, fwName) || strings.Contains(fwName, name) {
					dep, ok = lookup[name], true
					break
				}
			}
		}
		if ok {
			fw.Version = dep.Version
			fw.ExactMatch = true
			fw.Evidence = dep.SourceFile + " in repository"
		}
		enriched = append(enriched, fw)
		detected[fwName] = struct{}{}
	}

	for _, d := range deps {
		key := strings.ToLower(d.Name)
		if d.Type != schema.ProductionDependency {
			continue
		}
		if _, ok := detected[key]; ok {
			continue
		}
		detected[key] = struct{}{}
		enriched = append(enriched, schema.FrameworkSkill{
			Name:       algo.Title(d.Name),
			Version:    d.Version,
			Category:   inferCategory(d.Name, d.Ecosystem),
			Evidence:   d.SourceFile + " in repository",
			ExactMatch: true,
		})
	}
	return enriched
}

var categoryHints = []struct {
	category string
	hints    []string
}{
	{"Frontend Framework", []string{"react", "vue", "angular", "svelte", "next", "nuxt"}},
	{"Backend Framework", []string{"express", "fastapi", "django", "flask", "nest", "koa"}},
	{"Testing Framework", []string{"jest", "pytest", "mocha", "chai", "vitest"}},
	{"Database", []string{"mongo", "postgres", "mysql", "redis", "prisma", "sequelize"}},
}

// inferCategory guesses the category of a manifest-only dependency.
func inferCategory(name string, ecosystem schema.Ecosystem) string {
	lower := strings.ToLower(name)
	for _, h := range categoryHints {
		if algo.ContainsAny(lower, h.hints...) {
			return h.category
		}
	}
	switch ecosystem {
	case schema.NPM:
		return "JavaScript Library"
	case schema.PyPI:
		return "Python Library"
	case schema.GoModules:
		return "Go Module"
	default:
		return "Library"
	}
}

// daysBetween returns the whole days elapsed from t to now, rounded down.
func daysBetween(t, now time.Time) int {
	d := now.Sub(t)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}
