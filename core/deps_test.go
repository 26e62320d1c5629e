package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"github.com/huangsam/hiresignal/schema"
)

// TestParseRequirementsTxt tests that only allowlisted packages are kept.
func TestParseRequirementsTxt(t *testing.T) {
	p := NewDependencyParser(nil)

	deps := p.ParseRequirementsTxt("django==4.2.0\nrequests>=2.0\n")
	assert.Equal(t, []schema.Dependency{{
		Name:       "django",
		Version:    "4.2.0",
		Type:       schema.ProductionDependency,
		Ecosystem:  schema.PyPI,
		SourceFile: "requirements.txt",
	}}, deps)

	deps = p.ParseRequirementsTxt("# pinned\n\nFlask\nnumpy~=1.26\n-r other.txt\n")
	require.Len(t, deps, 2)
	assert.Equal(t, "flask", deps[0].Name)
	assert.Equal(t, "", deps[0].Version)
	assert.Equal(t, "numpy", deps[1].Name)
	assert.Equal(t, "1.26", deps[1].Version)
}

// TestParsePackageJSON tests dependency sections and document order.
func TestParsePackageJSON(t *testing.T) {
	p := NewDependencyParser(nil)
	content := `{
		"name": "web",
		"dependencies": {"react": "^18.2.0", "lodash": "4.17.21", "express": ">=4.18.0"},
		"devDependencies": {"jest": "~29.0.0"}
	}`

	deps := p.ParsePackageJSON(content)
	require.Len(t, deps, 3)
	assert.Equal(t, schema.Dependency{Name: "react", Version: "18.2.0", Type: schema.ProductionDependency, Ecosystem: schema.NPM, SourceFile: "package.json"}, deps[0])
	assert.Equal(t, "express", deps[1].Name)
	assert.Equal(t, "4.18.0", deps[1].Version)
	assert.Equal(t, schema.Dependency{Name: "jest", Version: "29.0.0", Type: schema.DevDependency, Ecosystem: schema.NPM, SourceFile: "package.json"}, deps[2])
}

// TestParseMalformedManifests tests that broken input yields nothing and logs at debug.
func TestParseMalformedManifests(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	p := NewDependencyParser(zap.New(obs))

	assert.Empty(t, p.ParsePackageJSON(`{"dependencies": {"react": `))
	assert.Empty(t, p.ParseComposerJSON(`not json`))
	assert.Empty(t, p.ParsePackageJSON(`{"dependencies": "react"}`))
	assert.Empty(t, p.ParsePyprojectToml("[tool.other]\nx = 1\n"))
	assert.Empty(t, p.ParseCargoToml(""))
	assert.GreaterOrEqual(t, logs.Len(), 2)
}

// TestParseComposerJSON tests that the php platform entry is skipped.
func TestParseComposerJSON(t *testing.T) {
	p := NewDependencyParser(nil)
	deps := p.ParseComposerJSON(`{"require": {"php": "^8.1", "laravel/framework": "^10.0", "monolog/monolog": "^3.0"}}`)
	require.Len(t, deps, 1)
	assert.Equal(t, "laravel/framework", deps[0].Name)
	assert.Equal(t, "10.0", deps[0].Version)
	assert.Equal(t, schema.Packagist, deps[0].Ecosystem)
}

// TestParseTomlSections tests pyproject and Cargo tables.
func TestParseTomlSections(t *testing.T) {
	p := NewDependencyParser(nil)

	pyproject := "[tool.poetry]\nname = \"svc\"\n\n[tool.poetry.dependencies]\npython = \"^3.11\"\nFastAPI = \"^0.110.0\"\n# comment\npandas = \"2.2.1\"\n\n[tool.poetry.group.dev.dependencies]\npytest = \"^8.0\"\n"
	deps := p.ParsePyprojectToml(pyproject)
	require.Len(t, deps, 2)
	assert.Equal(t, "fastapi", deps[0].Name)
	assert.Equal(t, "0.110.0", deps[0].Version)
	assert.Equal(t, "pandas", deps[1].Name)

	cargo := "[package]\nname = \"srv\"\n\n[dependencies]\naxum = \"0.7\"\nserde = { version = \"1.0\" }\ntokio = \"1.36\"\n"
	deps = p.ParseCargoToml(cargo)
	require.Len(t, deps, 2)
	assert.Equal(t, "axum", deps[0].Name)
	assert.Equal(t, "tokio", deps[1].Name)
	assert.Equal(t, schema.Cargo, deps[1].Ecosystem)
}

// TestParseGoMod tests block and single-line require directives.
func TestParseGoMod(t *testing.T) {
	p := NewDependencyParser(nil)
	content := `module example.com/x

go 1.22

require (
	github.com/gin-gonic/gin v1.9.1
	github.com/stretchr/testify v1.8.4
)

require gorm.io/gorm v1.25.5 // indirect
`
	deps := p.ParseGoMod(content)
	require.Len(t, deps, 2)
	assert.Equal(t, schema.Dependency{Name: "github.com/gin-gonic/gin", Version: "1.9.1", Type: schema.ProductionDependency, Ecosystem: schema.GoModules, SourceFile: "go.mod"}, deps[0])
	assert.Equal(t, "gorm.io/gorm", deps[1].Name)
	assert.Equal(t, "1.25.5", deps[1].Version)
}

// TestParseGemfile tests gem lines with and without versions.
func TestParseGemfile(t *testing.T) {
	p := NewDependencyParser(nil)
	deps := p.ParseGemfile("source 'https://rubygems.org'\ngem 'rails', '~> 7.0.4'\ngem 'pg'\n# gem 'sinatra'\ngem \"devise\"\n")
	require.Len(t, deps, 2)
	assert.Equal(t, "rails", deps[0].Name)
	// the space after "~>" ends the version
	assert.Equal(t, "", deps[0].Version)
	assert.Equal(t, "devise", deps[1].Name)
	assert.Equal(t, "", deps[1].Version)
}

// TestParseAll tests the fixed manifest order and unknown file names.
func TestParseAll(t *testing.T) {
	p := NewDependencyParser(nil)
	deps := p.ParseAll(map[string]string{
		"Gemfile":          "gem 'rails'",
		"README.md":        "django==1.0",
		"requirements.txt": "django==4.2.0",
		"package.json":     `{"dependencies": {"vue": "3.4.0"}}`,
	})
	require.Len(t, deps, 3)
	assert.Equal(t, "vue", deps[0].Name)
	assert.Equal(t, "django", deps[1].Name)
	assert.Equal(t, "rails", deps[2].Name)
}

// TestIsMajorFramework tests exact and partial allowlist matches.
func TestIsMajorFramework(t *testing.T) {
	tests := []struct {
		name      string
		pkg       string
		ecosystem schema.Ecosystem
		expected  bool
	}{
		{"exact", "react", schema.NPM, true},
		{"case insensitive", "Django", schema.PyPI, true},
		{"scoped", "@nestjs/core", schema.NPM, true},
		{"module path", "github.com/labstack/echo/v4", schema.GoModules, true},
		{"utility", "lodash", schema.NPM, false},
		{"wrong ecosystem", "django", schema.NPM, false},
		{"unknown ecosystem", "react", schema.Ecosystem("maven"), false},
		{"empty", "", schema.NPM, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMajorFramework(tt.pkg, tt.ecosystem))
		})
	}
}

// TestCleanVersion tests operator and suffix removal.
func TestCleanVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"^18.2.0", "18.2.0"},
		{">=4.2.0", "4.2.0"},
		{"~> 7.0.4", ""},
		{"~>7.0.4", "7.0.4"},
		{">= 1.2", ""},
		{" ^1.2.3", "1.2.3"},
		{">=2.0,<3", "2.0"},
		{"  1.0  ", "1.0"},
		{"*", "*"},
		{"", ""},
		{"==", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanVersion(tt.input))
		})
	}
}
