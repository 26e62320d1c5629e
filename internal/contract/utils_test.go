package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "smallest value possible", input: 0.0, expected: LimitedValue},
		{name: "just before fair", input: 4.9, expected: LimitedValue},
		{name: "exactly fair", input: 5.0, expected: FairValue},
		{name: "just before strong", input: 6.4, expected: FairValue},
		{name: "exactly strong", input: 6.5, expected: StrongValue},
		{name: "just before excellent", input: 7.9, expected: StrongValue},
		{name: "exactly excellent", input: 8.0, expected: ExcellentValue},
		{name: "maximum", input: 10.0, expected: ExcellentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		label string
	}{
		{"limited", 3, LimitedValue},
		{"fair", 5.5, FairValue},
		{"strong", 7, StrongValue},
		{"excellent", 9, ExcellentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.score)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "report.json")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		excludes   []string
		wantIgnore bool
	}{
		{
			name:       "empty excludes",
			path:       "docs/guide.md",
			excludes:   []string{},
			wantIgnore: false,
		},
		{
			name:       "prefix match",
			path:       "vendor/github.com/lib/README.md",
			excludes:   []string{"vendor/"},
			wantIgnore: true,
		},
		{
			name:       "nested directory match",
			path:       "web/node_modules/react/README.md",
			excludes:   []string{"node_modules/"},
			wantIgnore: true,
		},
		{
			name:       "suffix match",
			path:       "docs/notes.draft.md",
			excludes:   []string{".draft.md"},
			wantIgnore: true,
		},
		{
			name:       "glob match basename",
			path:       "docs/adr/0001-record.md",
			excludes:   []string{"0*.md"},
			wantIgnore: true,
		},
		{
			name:       "substring match",
			path:       "LICENSE.md",
			excludes:   DefaultMarkdownExcludes,
			wantIgnore: true,
		},
		{
			name:       "default excludes keep docs",
			path:       "docs/architecture.md",
			excludes:   DefaultMarkdownExcludes,
			wantIgnore: false,
		},
		{
			name:       "directory name is not a prefix of another",
			path:       "mybuild/notes.md",
			excludes:   []string{"build/"},
			wantIgnore: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIgnore, ShouldIgnore(tt.path, tt.excludes))
		})
	}
}

func TestGetDBFilePaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	cache := GetCacheDBFilePath()
	history := GetHistoryDBFilePath()
	assert.Contains(t, cache, ".hiresignal_cache.db")
	assert.Contains(t, history, ".hiresignal_history.db")
	assert.NotEqual(t, cache, history)
	assert.True(t, strings.HasPrefix(cache, homeDir), "path %s should start with home dir %s", cache, homeDir)
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"fits", "Backend Developer", 20, "Backend Developer"},
		{"truncated", "Backend Developer", 10, "Backend..."},
		{"tiny width untouched", "Backend", 3, "Backend"},
		{"runes", "Développeur", 8, "Dével..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.text, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
