package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/logger"
	"github.com/huangsam/hiresignal/schema"
)

const (
	maxPromptProjects = 5
	maxSummaryRunes   = 2000
	fallbackNote      = "Narrator unavailable, deterministic summary kept."
)

// Narrator rewrites the executive summary of a deterministic report with a
// language model. Every other section is left as computed.
type Narrator struct {
	provider Provider
	log      *zap.Logger
}

// NewNarrator returns a narrator for provider. A nil provider makes
// Summarize a no-op.
func NewNarrator(provider Provider, log *zap.Logger) *Narrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Narrator{provider: provider, log: log}
}

// Enabled reports whether a provider is configured.
func (n *Narrator) Enabled() bool {
	return n != nil && n.provider != nil
}

// Summarize returns env with a narrated executive summary. Error envelopes are
// returned unchanged. When the provider fails the deterministic summary is
// kept and the envelope says so in the report metadata.
func (n *Narrator) Summarize(ctx context.Context, env schema.ReportEnvelope) schema.ReportEnvelope {
	if !env.OK() || !n.Enabled() {
		return env
	}

	report := *env.Report
	text, err := n.provider.Generate(ctx, BuildPrompt(&report))
	if err != nil {
		log := logger.WithFields(n.log, logger.UserFields(report.Candidate.Username)...)
		log.Warn("Narrator failed, keeping deterministic summary",
			append(logger.ProviderFields(string(n.provider.Name()), n.provider.Model()), zap.Error(err))...)
		report.Metadata.AdditionalNotes = strings.TrimSpace(report.Metadata.AdditionalNotes + " " + fallbackNote)
		env.Report = &report
		return env
	}

	report.ExecutiveSummary = contract.TruncateText(text, maxSummaryRunes)
	env.Report = &report
	env.Provider = string(n.provider.Name())
	env.Model = n.provider.Model()
	logger.WithFields(n.log, logger.UserFields(report.Candidate.Username)...).Debug("Narrated executive summary",
		append(logger.ProviderFields(env.Provider, env.Model), zap.Int("length", len(report.ExecutiveSummary)))...)
	return env
}

// BuildPrompt renders the facts of a report as the narration prompt.
func BuildPrompt(r *schema.AnalysisReport) string {
	var b strings.Builder
	c := r.Candidate
	ta := r.TechnicalAssessment
	hr := r.HiringRecommendation

	fmt.Fprintf(&b, "Write a 3 to 5 sentence executive summary for a hiring manager about GitHub user %q", c.Username)
	if c.Name != "" {
		fmt.Fprintf(&b, " (%s)", c.Name)
	}
	b.WriteString(". Answer with plain text only.\n\n")

	fmt.Fprintf(&b, "Overall score: %.1f/10 (%s)\n", ta.OverallScore, contract.GetPlainLabel(ta.OverallScore))
	fmt.Fprintf(&b, "Primary domain: %s\n", r.DomainClassification.PrimaryDomain)
	writeList(&b, "Secondary domains", r.DomainClassification.SecondaryDomains)
	writeList(&b, "Primary stack", r.TechnologyAnalysis.PrimaryStack)
	writeList(&b, "Frameworks", ta.FrameworksDetected)
	fmt.Fprintf(&b, "Technical depth: %s\n", ta.TechnicalDepth)
	fmt.Fprintf(&b, "Learning trajectory: %s\n", ta.LearningTrajectory)
	fmt.Fprintf(&b, "Documentation score: %d/10\n", r.CodeQuality.DocumentationScore)
	fmt.Fprintf(&b, "Recommended role: %s, %s\n", hr.PrimaryRole, hr.SeniorityFit)
	writeList(&b, "Strengths", hr.GreenFlags)
	writeList(&b, "Concerns", hr.RedFlags)

	projects := r.ProjectScopeAnalysis
	if len(projects) > maxPromptProjects {
		projects = projects[:maxPromptProjects]
	}
	if len(projects) > 0 {
		b.WriteString("Projects:\n")
		for _, p := range projects {
			fmt.Fprintf(&b, "- %s: %s %s, %d stars. %s\n",
				p.RepositoryName, p.BusinessDomain, p.ProjectType,
				p.ComplexityIndicators.Stars, p.ScopeDescription)
		}
	}

	if r.ExecutiveSummary != "" {
		fmt.Fprintf(&b, "\nRule-based summary for reference:\n%s\n", r.ExecutiveSummary)
	}
	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(items, ", "))
}
