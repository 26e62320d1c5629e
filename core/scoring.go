package core

import (
	"math"
	"strings"
	"time"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

const (
	// noActivityDays marks metrics computed without any repository.
	noActivityDays = 999
	// staleDays is assumed when no repository reports any activity.
	staleDays = 365

	activeWindowDays = 90
	daysPerYear      = 365.25

	overallFloor      = 6.0
	starsPerPoint     = 5
	maxScore          = 10
	proficiencyScore  = 8
	highVolumeRepos   = 3
	risingConsistency = 7
	seniorThreshold   = 8.5
	midLevelThreshold = 6.5
	qualityBaseline   = 8
)

// ScoringEngine turns profile and repository data into metrics and scores.
type ScoringEngine struct{}

// NewScoringEngine returns a scoring engine.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// EmptyMetrics are the metrics of a user without repositories.
func EmptyMetrics() schema.Metrics {
	return schema.Metrics{
		DaysSinceLastCommit:  noActivityDays,
		LanguageDistribution: []schema.LanguageShare{},
	}
}

// CalculateMetrics computes raw counts, documentation coverage, activity and
// the byte-weighted language distribution as of now.
func (s *ScoringEngine) CalculateMetrics(user *schema.UserProfile, repos []schema.Repository, now time.Time) schema.Metrics {
	if len(repos) == 0 {
		return EmptyMetrics()
	}
	m := schema.Metrics{TotalRepos: len(repos)}
	for i := range repos {
		r := &repos[i]
		m.TotalStars += r.Stars
		m.TotalForks += r.Forks
		m.TotalMarkdownFiles += len(r.MarkdownFiles)
		if r.HasReadme() {
			m.ReposWithReadme++
		}
		if algo.ContainsAny(strings.ToLower(r.Description), keywords.ProductionSignals...) {
			m.HasProductionSignals = true
		}
	}
	m.DocumentationPercentage = float64(m.ReposWithReadme) / float64(m.TotalRepos) * 100
	m.LanguageDistribution = LanguageDistribution(repos)

	var last time.Time
	seen := false
	for i := range repos {
		pushed := repos[i].LastActivity()
		if pushed.IsZero() {
			continue
		}
		if !seen || pushed.After(last) {
			last = pushed
		}
		seen = true
		if daysBetween(pushed, now) < activeWindowDays {
			m.ActiveReposCount++
		}
	}
	if !seen {
		last = now.AddDate(0, 0, -staleDays)
	}
	m.DaysSinceLastCommit = daysBetween(last, now)

	if user != nil && !user.CreatedAt.IsZero() {
		m.AccountAgeYears = algo.Round1(float64(daysBetween(user.CreatedAt, now)) / daysPerYear)
	}
	return m
}

// LanguageDistribution sums language bytes over repos and converts them to
// percentages of the total. Languages keep the order they were first seen in.
// The result is empty when no repository reports any bytes.
func LanguageDistribution(repos []schema.Repository) []schema.LanguageShare {
	var shares []schema.LanguageShare
	index := make(map[string]int)
	var total int64
	for i := range repos {
		for _, l := range repos[i].Languages {
			total += l.Bytes
			if j, ok := index[l.Name]; ok {
				shares[j].Bytes += l.Bytes
				continue
			}
			index[l.Name] = len(shares)
			shares = append(shares, schema.LanguageShare{Name: l.Name, Bytes: l.Bytes})
		}
	}
	if total <= 0 {
		return []schema.LanguageShare{}
	}
	for i := range shares {
		shares[i].Percentage = float64(shares[i].Bytes) / float64(total) * 100
	}
	return shares
}

// CalculateScores derives the assessment scores from metrics. The overall
// score never drops below 6.0.
func (s *ScoringEngine) CalculateScores(m *schema.Metrics, tech *schema.TechnologyAnalysis) schema.Scores {
	if m == nil {
		empty := EmptyMetrics()
		m = &empty
	}
	consistency := ConsistencyScore(m.DaysSinceLastCommit)
	docs := min(maxScore, int(math.RoundToEven(m.DocumentationPercentage/10)))
	stars := min(maxScore, m.TotalStars/starsPerPoint)

	overall := float64(stars)*0.3 + float64(consistency)*0.3 + float64(docs)*0.4
	overall = algo.Round1(math.Max(overallFloor, overall))

	proficiency := make(map[string]schema.Proficiency)
	if tech != nil {
		for _, lang := range tech.PrimaryStack {
			proficiency[lang] = schema.Proficiency{Score: proficiencyScore, Evidence: "Primary language"}
		}
	}

	scores := schema.Scores{
		Overall:       overall,
		Consistency:   consistency,
		DocsScore:     docs,
		Depth:         DepthLabel(overall),
		Proficiency:   proficiency,
		Trajectory:    "Steady",
		Quality:       algo.Round1(float64(docs+qualityBaseline) / 2),
		ActivityLabel: "Standard",
	}
	if consistency > risingConsistency {
		scores.Trajectory = "Rising"
	}
	if m.ActiveReposCount > highVolumeRepos {
		scores.ActivityLabel = "High Volume"
	}
	return scores
}

// ConsistencyScore rates how recently the user pushed code.
func ConsistencyScore(daysSinceLastCommit int) int {
	switch {
	case daysSinceLastCommit < 7:
		return 10
	case daysSinceLastCommit < 30:
		return 8
	case daysSinceLastCommit < 90:
		return 6
	default:
		return 3
	}
}

// DepthLabel maps an overall score to a seniority label.
func DepthLabel(overall float64) string {
	switch {
	case overall > seniorThreshold:
		return "Senior"
	case overall > midLevelThreshold:
		return "Mid-level"
	default:
		return "Junior"
	}
}
