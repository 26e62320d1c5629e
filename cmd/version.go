package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/huangsam/hiresignal/schema"
)

// versionCmd prints build details along with the report engine that produced
// deterministic reports, so stored reports can be matched to a release.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hiresignal.",
	Long: `Display version information including build details and the report engine.

Shows the release version, git commit, build timestamp, Go runtime and the
identifier of the deterministic report engine.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("hiresignal CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
		cmd.Printf("  Engine:  %s\n", schema.RuleEngineModel)
	},
}
