package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// historyEntry is the structured form of a stored report summary. The report
// body is left out since it can be printed with `report --use-stored`.
type historyEntry struct {
	RunID         int64   `json:"run_id"`
	Username      string  `json:"username"`
	ReportTime    string  `json:"report_time"`
	PrimaryDomain string  `json:"primary_domain"`
	PrimaryRole   string  `json:"primary_role"`
	Seniority     string  `json:"seniority"`
	OverallScore  float64 `json:"overall_score"`
	Label         string  `json:"label"`
	TotalRepos    int32   `json:"total_repos"`
	DataSource    string  `json:"data_source"`
	Provider      string  `json:"provider"`
}

// PrintHistory outputs stored report summaries, dispatching based on the output format configured.
func PrintHistory(records []schema.ReportRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut, schema.YAMLOut:
		entries := make([]historyEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, historyEntry{
				RunID:         r.RunID,
				Username:      r.Username,
				ReportTime:    schema.FormatTimestamp(r.ReportTime),
				PrimaryDomain: r.PrimaryDomain,
				PrimaryRole:   r.PrimaryRole,
				Seniority:     r.Seniority,
				OverallScore:  r.OverallScore,
				Label:         contract.GetPlainLabel(r.OverallScore),
				TotalRepos:    r.TotalRepos,
				DataSource:    r.DataSource,
				Provider:      r.Provider,
			})
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStructured(w, cfg.Output, entries)
		}, structuredLabel(cfg.Output))
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, records, cfg)
		}, "Wrote history")
	}
}

func writeHistoryTable(w io.Writer, records []schema.ReportRecord, cfg *contract.Config) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No reports recorded.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Run", "Username", "Time", "Domain", "Role", "Seniority", "Score", "Label", "Repos", "Source"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data := make([][]string, 0, len(records))
	for _, r := range records {
		data = append(data, []string{
			strconv.FormatInt(r.RunID, 10),
			r.Username,
			r.ReportTime.UTC().Format("2006-01-02 15:04"),
			r.PrimaryDomain,
			r.PrimaryRole,
			r.Seniority,
			fmt.Sprintf("%.1f", r.OverallScore),
			scoreLabel(r.OverallScore, cfg),
			strconv.Itoa(int(r.TotalRepos)),
			r.DataSource,
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("failed to add history rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err := fmt.Fprintf(w, "%d report(s)\n", len(records))
	return err
}
