package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/reporting"
	"github.com/huangsam/hiresignal/internal/server"
	"github.com/huangsam/hiresignal/schema"
)

func withConfig(t *testing.T, c *contract.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func TestInjectComponents(t *testing.T) {
	withConfig(t, &contract.Config{LLMProvider: schema.NoProvider})

	svc, err := inject[*reporting.Service]()
	require.NoError(t, err)
	assert.NotNil(t, svc)

	srv, err := inject[*server.Server]()
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestInjectNarratorError(t *testing.T) {
	// Gemini needs an API key
	withConfig(t, &contract.Config{LLMProvider: schema.GeminiProvider})

	_, err := inject[*reporting.Service]()
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "hiresignal CLI")
	assert.Contains(t, out.String(), "Version: "+version)
	assert.Contains(t, out.String(), schema.RuleEngineModel)
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"report", "fetch", "serve", "mcp", "version", "cache", "history"} {
		assert.True(t, names[want], "missing command %s", want)
	}

	sub := map[string]bool{}
	for _, c := range historyCmd.Commands() {
		sub[c.Name()] = true
	}
	for _, want := range []string{"status", "list", "show", "export", "migrate", "clear"} {
		assert.True(t, sub[want], "missing history command %s", want)
	}
}
