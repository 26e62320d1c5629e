package core

import (
	"strings"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

const (
	// neutralConfidence is the score reported when no domain matches.
	neutralConfidence = 1.0

	maxSecondaryDomains = 3
	maxSpecializations  = 5
	maxEvidenceDomains  = 3
)

// DomainScore is the weighted match score of one domain.
type DomainScore struct {
	Domain string
	Score  float64
}

// DomainClassifier scores text against the weighted domain table.
type DomainClassifier struct {
	domains []keywords.Domain
}

// NewDomainClassifier returns a classifier over the compiled-in domain table.
func NewDomainClassifier() *DomainClassifier {
	return &DomainClassifier{domains: keywords.Domains}
}

// ClassifyText returns the weighted score of every matching domain in table order.
// Domains without a single keyword match are omitted.
func (c *DomainClassifier) ClassifyText(text string) []DomainScore {
	text = strings.ToLower(text)
	var scores []DomainScore
	for _, d := range c.domains {
		matches := 0
		for _, kw := range d.Keywords {
			if algo.MatchKeyword(kw, text) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		weight := d.Weight
		if weight == 0 {
			weight = keywords.DefaultDomainWeight
		}
		scores = append(scores, DomainScore{Domain: d.Name, Score: float64(matches) * weight})
	}
	return scores
}

// ClassifyRepository returns the best domain of one repository and its score.
// The earliest domain in table order wins a tie.
func (c *DomainClassifier) ClassifyRepository(repo *schema.Repository) (string, float64) {
	scores := c.ClassifyText(repo.SearchText())
	if len(scores) == 0 {
		return schema.DefaultDomain, neutralConfidence
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best.Domain, best.Score
}

// ClassifyRepositories sums domain scores over every repository and ranks them.
func (c *DomainClassifier) ClassifyRepositories(repos []schema.Repository) schema.DomainClassification {
	counter := algo.NewCounter()
	for i := range repos {
		for _, s := range c.ClassifyText(repos[i].SearchText()) {
			counter.Add(s.Domain, s.Score)
		}
	}

	top := algo.Keys(counter.MostCommon(maxSpecializations))
	result := schema.DomainClassification{
		PrimaryDomain:    schema.DefaultDomain,
		SecondaryDomains: []string{},
		Specializations:  top,
		Evidence:         "No domain signals detected",
	}
	if len(top) == 0 {
		return result
	}
	result.PrimaryDomain = top[0]
	result.SecondaryDomains = algo.Head(top[1:], maxSecondaryDomains)
	result.Evidence = "Identified projects in " + strings.Join(algo.Head(top, maxEvidenceDomains), ", ")
	return result
}
