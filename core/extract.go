package core

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

const (
	languageKeywordThreshold = 5.0

	maxTechnicalKeywords = 10
	maxDomainKeywords    = 8
	maxFeatureKeywords   = 8
	maxAllKeywords       = 15
)

// Keyword categories.
const (
	TechnicalKeyword = "technical"
	DomainKeyword    = "domain"
	FeatureKeyword   = "feature"
)

// ExtractedKeyword is one ranked keyword with the sources it was found in.
type ExtractedKeyword struct {
	Keyword    string
	Category   string
	Confidence float64
	Sources    []string
	Frequency  int
}

// KeywordExtractor ranks job-matching keywords of a repository against the
// technical, domain and feature pattern tables.
type KeywordExtractor struct {
	technical []keywords.Pattern
	domain    []keywords.Pattern
	feature   []keywords.Pattern
}

// NewKeywordExtractor returns an extractor over the compiled-in pattern tables.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{
		technical: keywords.TechnicalPatterns,
		domain:    keywords.DomainPatterns,
		feature:   keywords.FeaturePatterns,
	}
}

// Extract returns the top technical, domain, feature and overall keywords of repo.
func (e *KeywordExtractor) Extract(repo *schema.Repository) schema.ProjectKeywords {
	sources := TextSources(repo)
	technical := e.technicalKeywords(sources, repo)
	domain := e.domainKeywords(sources)
	feature := e.featureKeywords(sources)

	all := make([]ExtractedKeyword, 0, len(technical)+len(domain)+len(feature))
	all = append(all, technical...)
	all = append(all, domain...)
	all = append(all, feature...)

	return schema.ProjectKeywords{
		Technical: keywordNames(technical, maxTechnicalKeywords),
		Domain:    keywordNames(domain, maxDomainKeywords),
		Feature:   keywordNames(feature, maxFeatureKeywords),
		All:       keywordNames(RankKeywords(all), maxAllKeywords),
	}
}

// TextSources returns the lowercased text of repo by source name: description,
// topics, readme, repo_name and one md_<file> entry per markdown file.
func TextSources(repo *schema.Repository) []Document {
	docs := orderedDocs{index: make(map[string]int)}
	if repo.Description != "" {
		docs.put("description", strings.ToLower(repo.Description))
	}
	if len(repo.Topics) > 0 {
		docs.put("topics", strings.ToLower(strings.Join(repo.Topics, " ")))
	}
	if readme := repo.ReadmeContent(); readme != "" {
		docs.put("readme", strings.ToLower(readme))
	}
	if repo.Name != "" {
		name := strings.NewReplacer("-", " ", "_", " ").Replace(repo.Name)
		docs.put("repo_name", strings.ToLower(name))
	}
	for _, f := range repo.MarkdownFiles {
		if f.Content == "" {
			continue
		}
		key := "md_" + strings.ReplaceAll(strings.ToLower(f.Filename), ".md", "")
		docs.put(key, strings.ToLower(f.Content))
	}
	return docs.list
}

func (e *KeywordExtractor) technicalKeywords(sources []Document, repo *schema.Repository) []ExtractedKeyword {
	var found []ExtractedKeyword
	for _, lang := range repo.Languages {
		if lang.Percentage > languageKeywordThreshold {
			found = append(found, ExtractedKeyword{
				Keyword:    lang.Name,
				Category:   TechnicalKeyword,
				Confidence: math.Min(lang.Percentage/100, 1),
				Sources:    []string{"languages"},
				Frequency:  1,
			})
		}
	}
	for _, p := range e.technical {
		names := matchSources(p.Trigger, sources)
		if len(names) == 0 {
			continue
		}
		found = append(found, ExtractedKeyword{
			Keyword:    p.Display,
			Category:   TechnicalKeyword,
			Confidence: math.Min(0.5+float64(len(names))*0.2, 1),
			Sources:    names,
			Frequency:  len(names),
		})
	}
	return dedupeByDisplay(sortKeywords(found))
}

func (e *KeywordExtractor) domainKeywords(sources []Document) []ExtractedKeyword {
	var found []ExtractedKeyword
	for _, p := range e.domain {
		names := matchSources(p.Trigger, sources)
		if len(names) == 0 {
			continue
		}
		// Descriptions and topics are the most reliable domain evidence.
		confidence := 0.6
		if slices.Contains(names, "description") {
			confidence += 0.2
		}
		if slices.Contains(names, "topics") {
			confidence += 0.2
		}
		found = append(found, ExtractedKeyword{
			Keyword:    p.Display,
			Category:   DomainKeyword,
			Confidence: math.Min(confidence, 1),
			Sources:    names,
			Frequency:  len(names),
		})
	}
	return dedupeByDisplay(sortKeywords(found))
}

func (e *KeywordExtractor) featureKeywords(sources []Document) []ExtractedKeyword {
	var found []ExtractedKeyword
	for _, p := range e.feature {
		names := matchSources(p.Trigger, sources)
		if len(names) == 0 {
			continue
		}
		found = append(found, ExtractedKeyword{
			Keyword:    p.Display,
			Category:   FeatureKeyword,
			Confidence: math.Min(0.5+float64(len(names))*0.15, 1),
			Sources:    names,
			Frequency:  len(names),
		})
	}
	return dedupeByDisplay(sortKeywords(found))
}

// matchSources returns the names of the sources whose text contains trigger.
func matchSources(trigger string, sources []Document) []string {
	var names []string
	for _, s := range sources {
		if algo.MatchKeyword(trigger, s.Text) {
			names = append(names, s.Key)
		}
	}
	return names
}

// sortKeywords orders by confidence, then frequency, both descending.
// Equal keywords keep their table order.
func sortKeywords(kws []ExtractedKeyword) []ExtractedKeyword {
	sort.SliceStable(kws, func(i, j int) bool {
		if kws[i].Confidence != kws[j].Confidence {
			return kws[i].Confidence > kws[j].Confidence
		}
		return kws[i].Frequency > kws[j].Frequency
	})
	return kws
}

// dedupeByDisplay keeps the first keyword of every lowercased display name.
func dedupeByDisplay(kws []ExtractedKeyword) []ExtractedKeyword {
	seen := make(map[string]struct{}, len(kws))
	out := kws[:0]
	for _, kw := range kws {
		key := strings.ToLower(kw.Keyword)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// RankKeywords keeps the most confident keyword per lowercased name and sorts
// the survivors by confidence and frequency.
func RankKeywords(kws []ExtractedKeyword) []ExtractedKeyword {
	index := make(map[string]int, len(kws))
	var unique []ExtractedKeyword
	for _, kw := range kws {
		key := strings.ToLower(kw.Keyword)
		if i, ok := index[key]; ok {
			if kw.Confidence > unique[i].Confidence {
				unique[i] = kw
			}
			continue
		}
		index[key] = len(unique)
		unique = append(unique, kw)
	}
	return sortKeywords(unique)
}

func keywordNames(kws []ExtractedKeyword, limit int) []string {
	names := make([]string, 0, min(len(kws), limit))
	for _, kw := range algo.Head(kws, limit) {
		names = append(names, kw.Keyword)
	}
	return names
}

// InferProjectType maps lowercased description text to a project type.
// The first matching type wins.
func InferProjectType(text string) string {
	for _, pt := range keywords.ProjectTypes {
		for _, kw := range pt.Keywords {
			if algo.MatchKeyword(kw, text) {
				return pt.Name
			}
		}
	}
	return keywords.DefaultProjectType
}

// Capabilities lists the feature categories evidenced by text, in table order.
func Capabilities(text string) []string {
	text = strings.ToLower(text)
	caps := []string{}
	for _, cat := range keywords.FeatureCategories {
		for _, kw := range cat.Keywords {
			if algo.MatchKeyword(kw, text) {
				caps = append(caps, cat.Name)
				break
			}
		}
	}
	return caps
}
