package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// PrintReport outputs a report envelope, dispatching based on the output format configured.
func PrintReport(env schema.ReportEnvelope, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStructured(w, cfg.Output, env)
		}, structuredLabel(cfg.Output)); err != nil {
			return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
		}
		return nil
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, env, cfg)
		}, "Wrote report")
	}
}

// writeReportText renders the envelope as headed sections and tables.
func writeReportText(w io.Writer, env schema.ReportEnvelope, cfg *contract.Config) error {
	if !env.OK() {
		_, err := fmt.Fprintf(w, "❌ Report failed: %s\n", env.Message)
		return err
	}
	r := env.Report

	if err := writeCandidateHeader(w, r, cfg); err != nil {
		return err
	}
	sections := []func(io.Writer, *schema.AnalysisReport, *contract.Config) error{
		writeSummarySection,
		writeAssessmentTable,
		writeTechnologyTable,
		writeFrameworkTable,
		writeProjectTable,
		writeRecommendationSection,
	}
	for _, section := range sections {
		if err := section(w, r, cfg); err != nil {
			return err
		}
	}
	return writeReportFooter(w, env)
}

func writeCandidateHeader(w io.Writer, r *schema.AnalysisReport, cfg *contract.Config) error {
	c := r.Candidate
	name := c.Name
	if name == "" {
		name = c.Username
	}
	fmt.Fprintf(w, "🧭 Hiring report for %s (@%s)\n", name, c.Username)

	var details []string
	for _, d := range []string{c.ProfileURL, c.Location, c.Company} {
		if d != "" {
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		fmt.Fprintf(w, "   %s\n", strings.Join(details, " | "))
	}

	score := r.TechnicalAssessment.OverallScore
	fmt.Fprintf(w, "   Overall %.1f/10 %s | Domain: %s | Role: %s | Seniority: %s\n\n",
		score, scoreLabel(score, cfg),
		r.DomainClassification.PrimaryDomain,
		r.HiringRecommendation.PrimaryRole,
		r.HiringRecommendation.SeniorityFit)
	return nil
}

func writeSummarySection(w io.Writer, r *schema.AnalysisReport, cfg *contract.Config) error {
	if r.ExecutiveSummary == "" {
		return nil
	}
	fmt.Fprintln(w, "📝 Executive summary")
	for _, line := range wrapParagraph(r.ExecutiveSummary, getSummaryWidth(cfg)) {
		fmt.Fprintf(w, "   %s\n", line)
	}
	fmt.Fprintln(w)
	return nil
}

func writeAssessmentTable(w io.Writer, r *schema.AnalysisReport, cfg *contract.Config) error {
	ta := r.TechnicalAssessment
	cq := r.CodeQuality
	rows := [][]string{
		{"Overall score", fmt.Sprintf("%.1f", ta.OverallScore)},
		{"Code quality", fmt.Sprintf("%.1f", cq.OverallScore)},
		{"Documentation", fmt.Sprintf("%d/10", cq.DocumentationScore)},
		{"Technical depth", ta.TechnicalDepth},
		{"Trajectory", ta.LearningTrajectory},
		{"Structure", cq.ProjectStructure},
		{"Confidence", r.HiringRecommendation.ConfidenceLevel},
	}
	if len(ta.Specializations) > 0 {
		rows = append(rows, []string{"Specializations", strings.Join(ta.Specializations, ", ")})
	}
	if len(r.DomainClassification.SecondaryDomains) > 0 {
		rows = append(rows, []string{"Other domains", strings.Join(r.DomainClassification.SecondaryDomains, ", ")})
	}

	fmt.Fprintln(w, "📊 Technical assessment")
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to add assessment rows: %w", err)
	}
	return renderTable(w, table)
}

func writeTechnologyTable(w io.Writer, r *schema.AnalysisReport, cfg *contract.Config) error {
	techs := r.TechnologyAnalysis.Technologies
	if len(techs) == 0 {
		return nil
	}
	proficiency := r.TechnicalAssessment.LanguageProficiency

	fmt.Fprintln(w, "🧰 Technology stack")
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Language", "Category", "Usage", "Repos", "Recent", "Level"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data := make([][]string, 0, len(techs))
	for _, t := range techs {
		level := "-"
		if p, ok := proficiency[t.Name]; ok {
			level = fmt.Sprintf("%d/10", p.Score)
		}
		data = append(data, []string{
			t.Name,
			t.Category,
			fmt.Sprintf("%.1f%%", t.UsagePercentage),
			strconv.Itoa(t.RepositoryCount),
			yesNo(t.RecentUsage),
			level,
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to add technology rows: %w", err)
	}
	return renderTable(w, table)
}

func writeFrameworkTable(w io.Writer, r *schema.AnalysisReport, cfg *contract.Config) error {
	frameworks := r.ComprehensiveSkills.FrameworksAndLibs
	if len(frameworks) == 0 {
		return nil
	}
	maxEvidence := GetMaxEvidenceWidth(cfg)

	fmt.Fprintln(w, "🧩 Frameworks and libraries")
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Category", "Version", "Evidence"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	data := make([][]string, 0, len(frameworks))
	for _, f := range frameworks {
		version := f.Version
		if version == "" {
			version = "-"
		}
		data = append(data, []string{f.Name, f.Category, version, contract.TruncateText(f.Evidence, maxEvidence)})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to add framework rows: %w", err)
	}
	return renderTable(w, table)
}

func writeProjectTable(w io.Writer, r *schema.AnalysisReport, cfg *contract.Config) error {
	projects := r.ProjectScopeAnalysis
	if len(projects) == 0 {
		return nil
	}
	maxText := GetMaxEvidenceWidth(cfg)

	fmt.Fprintln(w, "📦 Projects")
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Repository", "Domain", "Type", "Stars", "Signals"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	data := make([][]string, 0, len(projects))
	for _, p := range projects {
		signals := "-"
		if len(p.ProductionSignals) > 0 {
			signals = contract.TruncateText(strings.Join(p.ProductionSignals, ", "), maxText)
		}
		data = append(data, []string{
			p.RepositoryName,
			p.BusinessDomain,
			p.ProjectType,
			strconv.Itoa(p.ComplexityIndicators.Stars),
			signals,
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to add project rows: %w", err)
	}
	return renderTable(w, table)
}

func writeRecommendationSection(w io.Writer, r *schema.AnalysisReport, cfg *contract.Config) error {
	hr := r.HiringRecommendation
	fmt.Fprintln(w, "🎯 Hiring recommendation")
	fmt.Fprintf(w, "   Primary role: %s (%s)\n", hr.PrimaryRole, hr.SeniorityFit)
	if len(hr.SuitableRoles) > 0 {
		fmt.Fprintf(w, "   Suitable roles: %s\n", strings.Join(hr.SuitableRoles, ", "))
	}
	if hr.SalaryBracketSuggestion != "" {
		fmt.Fprintf(w, "   Salary bracket: %s\n", hr.SalaryBracketSuggestion)
	}
	for _, flag := range hr.GreenFlags {
		fmt.Fprintf(w, "   ✅ %s\n", flag)
	}
	for _, flag := range hr.RedFlags {
		fmt.Fprintf(w, "   ⚠️  %s\n", flag)
	}
	if len(hr.NextSteps) > 0 {
		fmt.Fprintln(w, "   Next steps:")
		for _, step := range hr.NextSteps {
			fmt.Fprintf(w, "   - %s\n", step)
		}
	}
	for _, line := range wrapParagraph(hr.RecommendationSummary, getSummaryWidth(cfg)) {
		fmt.Fprintf(w, "   %s\n", line)
	}
	fmt.Fprintln(w)
	return nil
}

func writeReportFooter(w io.Writer, env schema.ReportEnvelope) error {
	parts := []string{"Generated " + env.GeneratedAt}
	if env.Provider != "" {
		parts = append(parts, fmt.Sprintf("by %s/%s", env.Provider, env.Model))
	}
	if env.DataSource != "" {
		parts = append(parts, "from "+env.DataSource)
	}
	if env.RequestID != "" {
		parts = append(parts, "request "+env.RequestID)
	}
	_, err := fmt.Fprintf(w, "🕒 %s\n", strings.Join(parts, " "))
	return err
}

// renderTable renders the table followed by a blank line.
func renderTable(w io.Writer, table *tablewriter.Table) error {
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// scoreLabel returns the score label, colored unless colors are disabled.
func scoreLabel(score float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
