package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/huangsam/hiresignal/internal/server"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HireSignal HTTP API",
	Long: `Serve hiring reports over a JSON HTTP API until interrupted.

Endpoints:
  GET    /health                      - Health check
  POST   /api/v1/analyze              - Fetched GitHub data of a user
  POST   /api/v1/reports/generate     - Hiring report of a user
  GET    /api/v1/reports/{username}   - Latest stored report of a user
  DELETE /api/v1/cache/clear          - Drop cached GitHub data

Examples:
  hiresignal serve --listen :8080
  curl -X POST localhost:8080/api/v1/reports/generate -d '{"username":"octocat"}'`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		srv, err := inject[*server.Server]()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx, cfg.Listen)
	},
}
