package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huangsam/hiresignal/core"
	"github.com/huangsam/hiresignal/internal/reporting"
	"github.com/huangsam/hiresignal/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	svc        ReportService
	parser     *core.DependencyParser
	readme     *core.ReadmeAnalyzer
	markdown   *core.MarkdownAnalyzer
	classifier *core.DomainClassifier
}

type readmeResult struct {
	Skills   []schema.ExtractedSkill           `json:"skills"`
	Summary  map[schema.SkillCategory][]string `json:"summary"`
	Markdown *core.MarkdownContent             `json:"markdown,omitempty"`
}

type domainMatch struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
}

func (h *toolHandler) handleGenerateReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := request.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	env, err := h.svc.Generate(ctx, reporting.Request{
		Username:   username,
		ReportType: schema.ReportType(request.GetString("report_type", string(schema.FullReport))),
		UseStored:  request.GetBool("use_stored", true),
		Refresh:    request.GetBool("refresh", false),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}
	if !env.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %s", env.Message)), nil
	}
	return jsonResult(env)
}

func (h *toolHandler) handleStoredReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := request.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	env, err := h.svc.StoredReport(username)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	return jsonResult(env)
}

func (h *toolHandler) handleParseManifest(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename := request.GetString("filename", "")
	if !slices.Contains(schema.ManifestFiles, filename) {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported manifest %q", filename)), nil
	}
	content := request.GetString("content", "")

	deps := h.parser.ParseAll(map[string]string{filename: content})
	if deps == nil {
		deps = []schema.Dependency{}
	}
	return jsonResult(deps)
}

func (h *toolHandler) handleAnalyzeReadme(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	skills := h.readme.Analyze(content)
	return jsonResult(readmeResult{
		Skills:   skills,
		Summary:  core.SkillSummary(skills),
		Markdown: h.markdown.AnalyzeFile(content, "README.md"),
	})
}

func (h *toolHandler) handleClassifyText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	scores := h.classifier.ClassifyText(text)
	matches := make([]domainMatch, 0, len(scores))
	for _, s := range scores {
		matches = append(matches, domainMatch{Domain: s.Domain, Score: s.Score})
	}
	// Highest score first, table order on ties
	slices.SortStableFunc(matches, func(a, b domainMatch) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return jsonResult(matches)
}

func (h *toolHandler) handleClearCache(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username := request.GetString("username", "")
	if err := h.svc.ClearCache(username); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("clear failed: %v", err)), nil
	}
	if username == "" {
		return mcp.NewToolResultText("Cache cleared successfully"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Cache cleared for %s", username)), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
