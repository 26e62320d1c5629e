// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a report envelope using the configured output format.
func (ow *OutWriter) WriteReport(env schema.ReportEnvelope, cfg *contract.Config) error {
	return PrintReport(env, cfg)
}

// WriteBundle prints fetched GitHub data using the configured output format.
func (ow *OutWriter) WriteBundle(bundle schema.UserBundle, cfg *contract.Config) error {
	return PrintBundle(bundle, cfg)
}

// WriteHistory prints stored report summaries using the configured output format.
func (ow *OutWriter) WriteHistory(records []schema.ReportRecord, cfg *contract.Config) error {
	return PrintHistory(records, cfg)
}
