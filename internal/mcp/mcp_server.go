// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/core"
	"github.com/huangsam/hiresignal/internal/reporting"
	"github.com/huangsam/hiresignal/schema"
)

// ReportService is the part of reporting.Service the tools need.
type ReportService interface {
	Generate(ctx context.Context, req reporting.Request) (schema.ReportEnvelope, error)
	StoredReport(username string) (schema.ReportEnvelope, error)
	ClearCache(username string) error
}

// NewMCPServer initializes and configures the HireSignal MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(svc ReportService, log *zap.Logger, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"HireSignal Report Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		svc:        svc,
		parser:     core.NewDependencyParser(log),
		readme:     core.NewReadmeAnalyzer(),
		markdown:   core.NewMarkdownAnalyzer(log),
		classifier: core.NewDomainClassifier(),
	}

	// --- 1. Tool: generate_hiring_report ---
	s.AddTool(mcp.NewTool("generate_hiring_report",
		mcp.WithDescription("Generate a deterministic hiring report for a GitHub user from their public repositories."),
		mcp.WithString("username", mcp.Description("GitHub username or profile URL."), mcp.Required()),
		mcp.WithString("report_type", mcp.Description("Report type. Defaults to 'full'."), mcp.Enum("full", "llm")),
		mcp.WithBoolean("use_stored", mcp.Description("Reuse cached GitHub data when present. Defaults to true.")),
		mcp.WithBoolean("refresh", mcp.Description("Always fetch fresh data from GitHub.")),
	), h.handleGenerateReport)

	// --- 2. Tool: get_stored_report ---
	s.AddTool(mcp.NewTool("get_stored_report",
		mcp.WithDescription("Return the latest report recorded in the history store for a GitHub user."),
		mcp.WithString("username", mcp.Description("GitHub username."), mcp.Required()),
	), h.handleStoredReport)

	// --- 3. Tool: parse_manifest ---
	s.AddTool(mcp.NewTool("parse_manifest",
		mcp.WithDescription("Extract major framework dependencies from a dependency manifest."),
		mcp.WithString("filename", mcp.Description("Manifest filename."), mcp.Required(), mcp.Enum(schema.ManifestFiles...)),
		mcp.WithString("content", mcp.Description("Raw manifest content."), mcp.Required()),
	), h.handleParseManifest)

	// --- 4. Tool: analyze_readme ---
	s.AddTool(mcp.NewTool("analyze_readme",
		mcp.WithDescription("Extract skills and document structure from README or other markdown text."),
		mcp.WithString("content", mcp.Description("Markdown content."), mcp.Required()),
	), h.handleAnalyzeReadme)

	// --- 5. Tool: classify_text ---
	s.AddTool(mcp.NewTool("classify_text",
		mcp.WithDescription("Score free text against the business domain table."),
		mcp.WithString("text", mcp.Description("Text to classify, such as a repository description."), mcp.Required()),
	), h.handleClassifyText)

	// --- 6. Tool: clear_cache ---
	s.AddTool(mcp.NewTool("clear_cache",
		mcp.WithDescription("Drop cached GitHub data for one user, or for every user when username is omitted."),
		mcp.WithString("username", mcp.Description("GitHub username.")),
	), h.handleClearCache)

	return s
}

// StartMCPServer serves the HireSignal MCP server over stdio.
func StartMCPServer(_ context.Context, svc ReportService, log *zap.Logger, version string) error {
	s := NewMCPServer(svc, log, version)
	return server.ServeStdio(s)
}
