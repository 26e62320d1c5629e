// Package keywords holds the compiled-in dictionaries used by the analysis engine.
//
// Every table is an ordered slice. Iteration order is part of the contract:
// ties between equally scored domains, frameworks and keywords are broken by
// the order in which entries are declared here. Nothing in this package is
// mutated after initialization.
package keywords

import "strings"

// Domain is a business domain with its priority weight and match keywords.
type Domain struct {
	Name     string
	Weight   float64
	Keywords []string
}

// Category is a named group of keywords.
type Category struct {
	Name     string
	Keywords []string
}

// Pattern maps a lowercase trigger phrase to its canonical display name.
type Pattern struct {
	Trigger string
	Display string
}

// Ecosystem is a package ecosystem with its allowlist of major packages.
type Ecosystem struct {
	Name     string
	Packages []string
}

// Set is a read-only string membership table.
type Set map[string]struct{}

// Has reports whether s contains key.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func newSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// TechKeyword is one entry of the flattened technology table.
type TechKeyword struct {
	Keyword  string
	Category string
}

// DefaultDomainWeight applies to domains that carry no explicit weight.
const DefaultDomainWeight = 1.0

var flatTech = buildFlatTech()

// buildFlatTech flattens TechCategories. A keyword keeps the position of its
// first occurrence while its category is taken from the last one.
func buildFlatTech() []TechKeyword {
	index := make(map[string]int)
	var flat []TechKeyword
	for _, cat := range TechCategories {
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(kw)
			if i, ok := index[kw]; ok {
				flat[i].Category = cat.Name
				continue
			}
			index[kw] = len(flat)
			flat = append(flat, TechKeyword{Keyword: kw, Category: cat.Name})
		}
	}
	return flat
}

// FlatTech returns every technology keyword in canonical order.
func FlatTech() []TechKeyword {
	return flatTech
}

// MajorPackages returns the allowlist for an ecosystem, or nil when unknown.
func MajorPackages(ecosystem string) []string {
	for _, eco := range MajorFrameworks {
		if eco.Name == ecosystem {
			return eco.Packages
		}
	}
	return nil
}

// CITools are badge names and URL fragments that identify CI services.
var CITools = []string{"travis", "circleci", "jenkins", "github actions", "gitlab ci", "azure pipelines"}

// CodeAliases normalizes fenced code block language tags.
var CodeAliases = map[string]string{
	"js":   "javascript",
	"ts":   "typescript",
	"py":   "python",
	"rb":   "ruby",
	"sh":   "shell",
	"bash": "shell",
}

// TechnicalTerms mark a statistically ranked keyword as technical.
var TechnicalTerms = []string{
	"programming", "framework", "library", "api", "sdk", "database",
	"server", "development", "software", "web", "mobile", "cloud",
}

// ProductionSignals are description words that indicate deployed software.
var ProductionSignals = []string{"production", "deploy", "workflow"}

// ProjectTypes infers a project type from its description; first match wins.
var ProjectTypes = []Category{
	{Name: "API Service", Keywords: []string{"api", "backend", "microservice"}},
	{Name: "Library", Keywords: []string{"library", "sdk", "package"}},
	{Name: "CLI Tool", Keywords: []string{"cli", "tool"}},
	{Name: "Mobile App", Keywords: []string{"mobile", "app"}},
	{Name: "AI Model", Keywords: []string{"model", "training", "dataset"}},
	{Name: "Data Analysis", Keywords: []string{"notebook", "analysis"}},
}

// DefaultProjectType is used when no ProjectTypes entry matches.
const DefaultProjectType = "Web App"
