package core

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

// Confidence of each extraction pass.
const (
	packageConfidence   = 0.9
	importConfidence    = 0.8
	badgeConfidence     = 0.95
	coverageConfidence  = 0.9
	codeBlockConfidence = 0.8
	keywordConfidence   = 0.7
	minPackageNameLen   = 3
)

// installCommands are package-manager install commands, in extraction order.
var installCommands = []*regexp.Regexp{
	regexp.MustCompile(`(?im)npm\s+install\s+(?:--save(?:-dev)?\s+)?([a-z0-9@\-/]+(?:\s+[a-z0-9@\-/]+)*)`),
	regexp.MustCompile(`(?im)pip\s+install\s+([a-z0-9\-_]+(?:\s+[a-z0-9\-_]+)*)`),
	regexp.MustCompile(`(?im)gem\s+install\s+([a-z0-9\-_]+(?:\s+[a-z0-9\-_]+)*)`),
	regexp.MustCompile(`(?im)go\s+get\s+([a-z0-9\-_/.]+)`),
	regexp.MustCompile(`(?im)composer\s+require\s+([a-z0-9\-_/]+(?:\s+[a-z0-9\-_/]+)*)`),
	regexp.MustCompile(`(?im)cargo\s+add\s+([a-z0-9\-_]+(?:\s+[a-z0-9\-_]+)*)`),
	regexp.MustCompile(`(?im)yarn\s+add\s+([a-z0-9@\-/]+(?:\s+[a-z0-9@\-/]+)*)`),
}

// importPattern captures a module name from one language's import form; clean
// reduces the captured path to the name reported as a skill.
type importPattern struct {
	re    *regexp.Regexp
	clean func(string) string
}

// importStatements capture module names from Python, JavaScript, Go and PHP imports.
var importStatements = []importPattern{
	{regexp.MustCompile(`(?im)(?:^|\n)(?:from\s+([a-zA-Z0-9_.-]+)|import\s+([a-zA-Z0-9_.-]+))`), firstSegment},
	{regexp.MustCompile(`(?im)(?:import.*?from\s+['"]([^'"]+)['"]|require\(['"]([^'"]+)['"]\))`), firstSegment},
	{regexp.MustCompile(`(?im)import\s+['"]([a-z0-9\-_/.]+)['"]`), goPackageName},
	{regexp.MustCompile(`(?im)^\s*use\s+([a-z0-9_\\]+)(?:\s+as\s+\w+)?\s*[;{]`), firstSegment},
}

// firstSegment keeps the part of a module path before the first separator.
func firstSegment(module string) string {
	module = strings.SplitN(module, ".", 2)[0]
	module = strings.SplitN(module, "/", 2)[0]
	return strings.TrimSpace(strings.SplitN(module, "\\", 2)[0])
}

// goPackageName keeps the last element of a Go import path, so
// "github.com/gin-gonic/gin" becomes "gin". Paths without a host keep their root.
func goPackageName(module string) string {
	root := strings.SplitN(module, "/", 2)[0]
	if !strings.Contains(root, ".") {
		return strings.TrimSpace(root)
	}
	return strings.TrimSpace(module[strings.LastIndex(module, "/")+1:])
}

var (
	badgePattern     = regexp.MustCompile(`\[!\[([^\]]+)\]\(([^\)]+)\)\]\(([^\)]+)\)`)
	codeBlockPattern = regexp.MustCompile("(?s)```(\\w+)\\n(.*?)```")
)

// ReadmeAnalyzer surfaces skills from README and other documentation text.
type ReadmeAnalyzer struct{}

// NewReadmeAnalyzer returns a documentation skill extractor.
func NewReadmeAnalyzer() *ReadmeAnalyzer {
	return &ReadmeAnalyzer{}
}

// Analyze runs every extraction pass over content and deduplicates the result
// by lowercased name, keeping the most confident skill.
func (a *ReadmeAnalyzer) Analyze(content string) []schema.ExtractedSkill {
	if strings.TrimSpace(content) == "" {
		return []schema.ExtractedSkill{}
	}
	var skills []schema.ExtractedSkill
	skills = append(skills, a.fromPackages(content)...)
	skills = append(skills, a.fromImports(content)...)
	skills = append(skills, a.fromBadges(content)...)
	skills = append(skills, a.fromCodeBlocks(content)...)
	skills = append(skills, a.fromKeywords(content)...)
	return DedupeSkills(skills)
}

func (a *ReadmeAnalyzer) fromPackages(content string) []schema.ExtractedSkill {
	var skills []schema.ExtractedSkill
	for _, re := range installCommands {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			for _, pkg := range strings.Fields(m[1]) {
				pkg = strings.TrimSpace(strings.SplitN(pkg, "@", 2)[0])
				if i := strings.LastIndex(pkg, "/"); i >= 0 {
					pkg = pkg[i+1:]
				}
				pkg = strings.TrimSpace(pkg)
				if !validSkillName(pkg) {
					continue
				}
				skills = append(skills, schema.ExtractedSkill{
					Name:       algo.Capitalize(pkg),
					Category:   schema.LibraryCategory,
					Source:     schema.PackageManagerSource,
					Confidence: packageConfidence,
				})
			}
		}
	}
	return skills
}

func (a *ReadmeAnalyzer) fromImports(content string) []schema.ExtractedSkill {
	var skills []schema.ExtractedSkill
	for _, pattern := range importStatements {
		for _, m := range pattern.re.FindAllStringSubmatch(content, -1) {
			module := m[1]
			if module == "" && len(m) > 2 {
				module = m[2]
			}
			if module == "" {
				continue
			}
			module = pattern.clean(module)
			if !validSkillName(module) {
				continue
			}
			skills = append(skills, schema.ExtractedSkill{
				Name:       algo.Capitalize(module),
				Category:   schema.LibraryCategory,
				Source:     schema.ImportSource,
				Confidence: importConfidence,
			})
		}
	}
	return skills
}

func (a *ReadmeAnalyzer) fromBadges(content string) []schema.ExtractedSkill {
	var skills []schema.ExtractedSkill
	for _, m := range badgePattern.FindAllStringSubmatch(content, -1) {
		text := strings.ToLower(m[1])
		url := strings.ToLower(m[2])
		for _, tool := range keywords.CITools {
			if strings.Contains(text, tool) || strings.Contains(url, tool) {
				skills = append(skills, schema.ExtractedSkill{
					Name:       algo.Title(tool),
					Category:   schema.ToolCategory,
					Source:     schema.BadgeSource,
					Confidence: badgeConfidence,
				})
			}
		}
		if strings.Contains(text, "coverage") || strings.Contains(url, "codecov") {
			skills = append(skills, schema.ExtractedSkill{
				Name:       "Code Coverage",
				Category:   schema.PracticeCategory,
				Source:     schema.BadgeSource,
				Confidence: coverageConfidence,
			})
		}
	}
	return skills
}

func (a *ReadmeAnalyzer) fromCodeBlocks(content string) []schema.ExtractedSkill {
	var skills []schema.ExtractedSkill
	seen := make(map[string]struct{})
	for _, m := range codeBlockPattern.FindAllStringSubmatch(content, -1) {
		lang := strings.ToLower(m[1])
		if alias, ok := keywords.CodeAliases[lang]; ok {
			lang = alias
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		skills = append(skills, schema.ExtractedSkill{
			Name:       algo.Capitalize(lang),
			Category:   schema.LanguageCategory,
			Source:     schema.CodeBlockSource,
			Confidence: codeBlockConfidence,
		})
	}
	return skills
}

func (a *ReadmeAnalyzer) fromKeywords(content string) []schema.ExtractedSkill {
	var skills []schema.ExtractedSkill
	lower := strings.ToLower(content)
	for _, cat := range keywords.ReadmeCategories {
		for _, kw := range cat.Keywords {
			if algo.ContainsWord(lower, strings.ToLower(kw)) {
				skills = append(skills, schema.ExtractedSkill{
					Name:       algo.Title(kw),
					Category:   schema.SkillCategory(cat.Name),
					Source:     schema.KeywordSource,
					Confidence: keywordConfidence,
				})
			}
		}
	}
	return skills
}

// validSkillName rejects stopwords, short names, punctuation and bare numbers.
func validSkillName(name string) bool {
	lower := strings.ToLower(name)
	if keywords.Stopwords.Has(lower) || utf8.RuneCountInString(lower) < minPackageNameLen {
		return false
	}
	stripped := strings.NewReplacer("_", "", "-", "").Replace(lower)
	if stripped == "" {
		return false
	}
	hasLetter := false
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// DedupeSkills keeps one skill per lowercased name. A later skill replaces an
// earlier one only when strictly more confident; first-seen order is kept.
func DedupeSkills(skills []schema.ExtractedSkill) []schema.ExtractedSkill {
	out := []schema.ExtractedSkill{}
	index := make(map[string]int)
	for _, s := range skills {
		key := strings.ToLower(s.Name)
		if i, ok := index[key]; ok {
			if s.Confidence > out[i].Confidence {
				out[i] = s
			}
			continue
		}
		index[key] = len(out)
		out = append(out, s)
	}
	return out
}

// SkillSummary groups skill names by category, sorted and unique.
func SkillSummary(skills []schema.ExtractedSkill) map[schema.SkillCategory][]string {
	summary := make(map[schema.SkillCategory][]string)
	seen := make(map[schema.SkillCategory]map[string]struct{})
	for _, s := range skills {
		if seen[s.Category] == nil {
			seen[s.Category] = make(map[string]struct{})
		}
		if _, ok := seen[s.Category][s.Name]; ok {
			continue
		}
		seen[s.Category][s.Name] = struct{}{}
		summary[s.Category] = append(summary[s.Category], s.Name)
	}
	for cat := range summary {
		sort.Strings(summary[cat])
	}
	return summary
}
