package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/hiresignal/internal/outwriter"
	"github.com/huangsam/hiresignal/internal/reporting"
	"github.com/huangsam/hiresignal/schema"
)

// reportCmd generates a hiring report for one user.
var reportCmd = &cobra.Command{
	Use:   "report <username>",
	Short: "Generate a hiring report for a GitHub user",
	Long: `Fetch the public repositories of a GitHub user and score them into a hiring report.

The report covers:
- Technology stack and frameworks with proficiency levels
- Business domain classification
- Code quality, documentation and activity scores
- Role and seniority recommendation

Fetched GitHub data is cached (see 'hiresignal cache'), so repeated reports are fast.
With --report-type llm and a configured --llm-provider the executive summary is
narrated by a language model; every other field stays deterministic.

Examples:
  # Text report
  hiresignal report torvalds

  # JSON report from fresh GitHub data
  hiresignal report https://github.com/torvalds --refresh --output json

  # Latest report recorded in the history store
  hiresignal report torvalds --stored --history-backend sqlite`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		svc, err := inject[*reporting.Service]()
		if err != nil {
			return err
		}

		var env schema.ReportEnvelope
		if viper.GetBool("stored") {
			env, err = svc.StoredReport(cfg.Username)
		} else {
			env, err = svc.Generate(rootCtx, reporting.Request{
				Username:   cfg.Username,
				ReportType: cfg.ReportType,
				UseStored:  true,
				Refresh:    cfg.Refresh,
			})
		}
		if err != nil {
			return fmt.Errorf("report for %s failed: %w", cfg.Username, err)
		}
		return outwriter.NewOutWriter().WriteReport(env, cfg)
	},
}

// fetchCmd prints the raw data a report is computed from.
var fetchCmd = &cobra.Command{
	Use:   "fetch <username>",
	Short: "Fetch and print the GitHub data of a user",
	Long: `Fetch the profile and repositories of a GitHub user without scoring them.

The result is stored in the cache, so a following 'hiresignal report' reuses it.

Examples:
  hiresignal fetch octocat
  hiresignal fetch octocat --refresh --output yaml`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		refresh, _ := cmd.Flags().GetBool("refresh")
		svc, err := inject[*reporting.Service]()
		if err != nil {
			return err
		}
		bundle, _, err := svc.Fetch(rootCtx, cfg.Username, refresh)
		if err != nil {
			return fmt.Errorf("fetch for %s failed: %w", cfg.Username, err)
		}
		return outwriter.NewOutWriter().WriteBundle(bundle, cfg)
	},
}

func init() {
	fetchCmd.Flags().Bool("refresh", false, "Ignore cached GitHub data")
}
