package outwriter

import (
	"os"

	"github.com/olekukonko/tablewriter/pkg/twwarp"
	"golang.org/x/term"

	"github.com/huangsam/hiresignal/internal/contract"
)

// GetTerminalWidth returns the width override from cfg, or the detected width
// of stdout, or 80 when neither is available.
func GetTerminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80
	}
	return detectedWidth
}

// GetMaxEvidenceWidth calculates the maximum width for free-text table cells
// such as evidence and scope descriptions.
func GetMaxEvidenceWidth(cfg *contract.Config) int {
	// Reserve space for the name, category and numeric columns with borders
	available := GetTerminalWidth(cfg) - 50
	if available < 20 {
		return 20
	}
	if available > 70 {
		return 70
	}
	return available
}

// getSummaryWidth returns the line width used for wrapped paragraphs.
func getSummaryWidth(cfg *contract.Config) int {
	width := GetTerminalWidth(cfg) - 4
	if width < 40 {
		return 40
	}
	if width > 100 {
		return 100
	}
	return width
}

// wrapParagraph splits text into lines of at most width columns on word boundaries.
func wrapParagraph(text string, width int) []string {
	if text == "" {
		return nil
	}
	lines, _ := twwarp.WrapString(text, width)
	return lines
}
