package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

// TestMatchRole tests the framework, language, domain and fallback order.
func TestMatchRole(t *testing.T) {
	r := NewRoleRecommender(nil)
	tests := []struct {
		name       string
		domain     string
		languages  []string
		frameworks []string
		expected   string
	}{
		{"mobile frameworks", "Software Development", nil, []string{"React-Native", "Expo"}, "Mobile Developer"},
		{"mobile before frontend", "E-commerce", []string{"TypeScript"}, []string{"React", "Expo"}, "Mobile Developer"},
		{"backend framework", "Healthcare", nil, []string{"Fastapi"}, "Backend Developer"},
		{"language", "Software Development", []string{"Python"}, nil, "Python Developer"},
		{"domain after generic language", "Healthcare", []string{"Haskell"}, nil, "Healthcare Software Engineer"},
		{"unknown framework", "E-commerce", nil, []string{"Stripe"}, "E-commerce Developer"},
		{"default domain", "Software Development", nil, nil, "Software Engineer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fws []schema.FrameworkSkill
			for _, name := range tt.frameworks {
				fws = append(fws, schema.FrameworkSkill{Name: name})
			}
			assert.Equal(t, tt.expected, r.MatchRole(tt.domain, tt.languages, fws).Primary)
		})
	}
}

// TestMatchRoleFallback tests the generic role for an unknown domain.
func TestMatchRoleFallback(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	r := NewRoleRecommender(zap.New(obs))

	role := r.MatchRole("Underwater Basket Weaving", nil, nil)
	assert.Equal(t, keywords.GenericRole, role)
	assert.Equal(t, 1, logs.FilterMessage("No specific role found, using fallback").Len())
}

// TestRecommendDefaults tests a recommendation built without any inputs.
func TestRecommendDefaults(t *testing.T) {
	rec := NewRoleRecommender(nil).Recommend(nil, nil, nil, nil, nil)

	assert.Equal(t, 5.0, rec.OverallScore)
	assert.Equal(t, "Software Engineer", rec.PrimaryRole)
	assert.Equal(t, []string{"Software Engineer", "Full-stack Developer", "Backend Developer"}, rec.SuitableRoles)
	assert.Equal(t, "Junior", rec.SeniorityFit)
	assert.Equal(t, []string{"Demonstrated Domain Expertise"}, rec.GreenFlags)
	assert.Equal(t, []string{"Low Activity Consistency", "Limited Documentation"}, rec.RedFlags)
	assert.Equal(t, "Low", rec.ConfidenceLevel)
	assert.Equal(t, "Verifiable code history", rec.TeamFitIndicators)
	assert.Equal(t, "Standard", rec.SalaryBracketSuggestion)
	assert.Equal(t, []string{"Technical Interview", "Code Review", "Coding Assignment"}, rec.NextSteps)
	assert.Equal(t,
		"Strong candidate for Software Engineer positions with expertise in Software Development. Primary tech stack: Multiple technologies.",
		rec.RecommendationSummary)
}

// TestRecommendStrongCandidate tests flags and brackets of a strong profile.
func TestRecommendStrongCandidate(t *testing.T) {
	domain := &schema.DomainClassification{PrimaryDomain: "Healthcare"}
	tech := &schema.TechnologyAnalysis{PrimaryStack: []string{"Python", "Go", "Rust"}}
	scores := &schema.Scores{Overall: 9.2, Consistency: 10, Depth: "Senior"}
	metrics := &schema.Metrics{DocumentationPercentage: 75, TotalStars: 40, TotalForks: 8}

	rec := NewRoleRecommender(nil).Recommend(domain, tech, nil, scores, metrics)
	assert.Equal(t, "Python Developer", rec.PrimaryRole)
	assert.Equal(t, []string{
		"Specialized in Healthcare",
		"High Technical Proficiency",
		"Strong Documentation Practices",
		"Community Recognition",
	}, rec.GreenFlags)
	assert.Empty(t, rec.RedFlags)
	assert.NotNil(t, rec.RedFlags)
	assert.Equal(t, "Very High", rec.ConfidenceLevel)
	assert.Equal(t, "Strong collaboration signals", rec.TeamFitIndicators)
	assert.Equal(t, "Premium", rec.SalaryBracketSuggestion)
	assert.Equal(t, []string{"Technical Interview", "Code Review", "System Design Discussion", "Team Culture Fit"}, rec.NextSteps)
	assert.Contains(t, rec.RecommendationSummary, "Primary tech stack: Python, Go.")
}

// TestThresholdTables tests the boundaries of the label helpers.
func TestThresholdTables(t *testing.T) {
	assert.Equal(t, "Very High", ConfidenceLevel(61))
	assert.Equal(t, "High", ConfidenceLevel(60))
	assert.Equal(t, "Medium", ConfidenceLevel(40))
	assert.Equal(t, "Low", ConfidenceLevel(20))

	assert.Equal(t, "Strong collaboration signals", TeamFit(6))
	assert.Equal(t, "Some collaboration evidence", TeamFit(5))
	assert.Equal(t, "Verifiable code history", TeamFit(0))

	assert.Equal(t, "Premium", SalaryBracket(8))
	assert.Equal(t, "Competitive", SalaryBracket(6))
	assert.Equal(t, "Standard", SalaryBracket(4))
	assert.Equal(t, "Entry-level", SalaryBracket(3.9))

	assert.Len(t, NextSteps(7), 4)
	assert.Len(t, NextSteps(6.9), 3)
}
