package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/hiresignal/internal/mcp"
	"github.com/huangsam/hiresignal/internal/reporting"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the HireSignal MCP server",
	Long:  `Launch an MCP server over stdio that lets AI agents generate hiring reports via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Logs go to stderr, so stdout stays reserved for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		svc, err := inject[*reporting.Service]()
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, svc, log, version)
	},
}
