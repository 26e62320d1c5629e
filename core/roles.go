package core

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

// defaultOverall stands in for missing scores.
const defaultOverall = 5.0

// RoleRecommender turns the analysis results into a hiring recommendation.
type RoleRecommender struct {
	log *zap.Logger
}

// NewRoleRecommender returns a recommender that logs through log.
func NewRoleRecommender(log *zap.Logger) *RoleRecommender {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoleRecommender{log: log}
}

// Recommend builds the hiring recommendation. Any nil argument is replaced by
// a neutral default.
func (r *RoleRecommender) Recommend(
	domain *schema.DomainClassification,
	tech *schema.TechnologyAnalysis,
	frameworks []schema.FrameworkSkill,
	scores *schema.Scores,
	metrics *schema.Metrics,
) schema.HiringRecommendation {
	primaryDomain := schema.DefaultDomain
	if domain != nil && strings.TrimSpace(domain.PrimaryDomain) != "" {
		primaryDomain = domain.PrimaryDomain
	}
	var languages []string
	if tech != nil {
		languages = tech.PrimaryStack
	}
	if scores == nil {
		scores = &schema.Scores{Overall: defaultOverall, Depth: "Junior"}
	}
	if metrics == nil {
		empty := EmptyMetrics()
		metrics = &empty
	}

	role := r.MatchRole(primaryDomain, languages, frameworks)
	green, red := Flags(primaryDomain, scores, metrics)

	stack := "Multiple technologies"
	if len(languages) > 0 {
		stack = strings.Join(algo.Head(languages, 2), ", ")
	}
	suitable := role.Suitable
	if len(suitable) == 0 {
		suitable = []string{keywords.GenericRole.Primary}
	}

	return schema.HiringRecommendation{
		OverallScore:            scores.Overall,
		ConfidenceLevel:         ConfidenceLevel(metrics.DocumentationPercentage),
		PrimaryRole:             role.Primary,
		SuitableRoles:           slices.Clone(suitable),
		SeniorityFit:            scores.Depth,
		TeamFitIndicators:       TeamFit(metrics.TotalForks),
		RedFlags:                red,
		GreenFlags:              green,
		SalaryBracketSuggestion: SalaryBracket(scores.Overall),
		RecommendationSummary: fmt.Sprintf(
			"Strong candidate for %s positions with expertise in %s. Primary tech stack: %s.",
			role.Primary, primaryDomain, stack),
		NextSteps: NextSteps(scores.Overall),
	}
}

// MatchRole resolves the role by detected frameworks, then by the most used
// language, then by business domain, and finally falls back to a generic role.
func (r *RoleRecommender) MatchRole(domain string, languages []string, frameworks []schema.FrameworkSkill) keywords.Role {
	if len(frameworks) > 0 {
		names := make([]string, len(frameworks))
		for i, fw := range frameworks {
			names[i] = strings.ToLower(fw.Name)
		}
		for _, group := range keywords.FrameworkGroups {
			for _, fw := range group.Frameworks {
				if slices.Contains(names, fw) {
					r.log.Debug("Role matched by framework", zap.String("group", group.Name), zap.String("framework", fw))
					return group.Role
				}
			}
		}
	}
	if len(languages) > 0 {
		if role, ok := keywords.LookupLanguageRole(strings.ToLower(languages[0])); ok && role.Primary != keywords.GenericRole.Primary {
			return role
		}
	}
	if strings.TrimSpace(domain) != "" {
		if role, ok := keywords.LookupDomainRole(domain); ok {
			return role
		}
	}
	r.log.Warn("No specific role found, using fallback", zap.String("domain", domain))
	return keywords.GenericRole
}

// Flags lists the green and red flags of a candidate. There is always at
// least one green flag.
func Flags(domain string, scores *schema.Scores, metrics *schema.Metrics) (green, red []string) {
	green, red = []string{}, []string{}
	if domain != "" && domain != schema.DefaultDomain {
		green = append(green, "Specialized in "+domain)
	}
	if scores.Overall >= 7 {
		green = append(green, "High Technical Proficiency")
	}
	if metrics.DocumentationPercentage > 50 {
		green = append(green, "Strong Documentation Practices")
	}
	if metrics.TotalStars > 10 {
		green = append(green, "Community Recognition")
	}
	if scores.Consistency < 3 {
		red = append(red, "Low Activity Consistency")
	}
	if metrics.DocumentationPercentage < 20 {
		red = append(red, "Limited Documentation")
	}
	if len(green) == 0 {
		green = append(green, "Demonstrated Domain Expertise")
	}
	return green, red
}

// ConfidenceLevel rates how complete the evidence is from documentation coverage.
func ConfidenceLevel(docPercentage float64) string {
	switch {
	case docPercentage > 60:
		return "Very High"
	case docPercentage > 40:
		return "High"
	case docPercentage > 20:
		return "Medium"
	default:
		return "Low"
	}
}

// TeamFit describes collaboration signals from the fork count.
func TeamFit(forks int) string {
	switch {
	case forks > 5:
		return "Strong collaboration signals"
	case forks > 0:
		return "Some collaboration evidence"
	default:
		return "Verifiable code history"
	}
}

// SalaryBracket suggests a salary bracket for an overall score.
func SalaryBracket(overall float64) string {
	switch {
	case overall >= 8:
		return "Premium"
	case overall >= 6:
		return "Competitive"
	case overall >= 4:
		return "Standard"
	default:
		return "Entry-level"
	}
}

// NextSteps suggests the interview steps for an overall score.
func NextSteps(overall float64) []string {
	steps := []string{"Technical Interview", "Code Review"}
	if overall >= 7 {
		return append(steps, "System Design Discussion", "Team Culture Fit")
	}
	return append(steps, "Coding Assignment")
}
