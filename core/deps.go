package core

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/buger/jsonparser"
	"go.uber.org/zap"
	"golang.org/x/mod/modfile"

	"github.com/huangsam/hiresignal/core/keywords"
	"github.com/huangsam/hiresignal/schema"
)

var (
	requirementLine = regexp.MustCompile(`^([a-zA-Z0-9\-_.]+)([=<>!~]+.*)?$`)
	tomlDependency  = regexp.MustCompile(`^([a-zA-Z0-9\-_]+)\s*=\s*["']([^"']+)["']`)
	gemLine         = regexp.MustCompile(`^gem\s+['"]([^'"]+)['"](?:,\s*['"]([^'"]+)['"])?`)
	goRequireLine   = regexp.MustCompile(`^(?:require\s+)?([a-zA-Z0-9\-_/.]+)\s+v?([0-9.]+)`)
)

// manifestParser parses one manifest file.
type manifestParser func(p *DependencyParser, content string) []schema.Dependency

var manifestParsers = map[string]manifestParser{
	"package.json":     (*DependencyParser).ParsePackageJSON,
	"requirements.txt": (*DependencyParser).ParseRequirementsTxt,
	"pyproject.toml":   (*DependencyParser).ParsePyprojectToml,
	"go.mod":           (*DependencyParser).ParseGoMod,
	"Gemfile":          (*DependencyParser).ParseGemfile,
	"composer.json":    (*DependencyParser).ParseComposerJSON,
	"Cargo.toml":       (*DependencyParser).ParseCargoToml,
}

// DependencyParser extracts major-framework dependencies from manifest files.
// Malformed manifests yield no dependencies and are never reported as errors.
type DependencyParser struct {
	log *zap.Logger
}

// NewDependencyParser returns a parser that logs through log.
func NewDependencyParser(log *zap.Logger) *DependencyParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &DependencyParser{log: log}
}

// ParseAll parses every recognized manifest in files. Manifests are visited in
// the order of schema.ManifestFiles and unknown filenames are ignored.
func (p *DependencyParser) ParseAll(files map[string]string) []schema.Dependency {
	var all []schema.Dependency
	for _, name := range schema.ManifestFiles {
		content, ok := files[name]
		if !ok {
			continue
		}
		all = append(all, manifestParsers[name](p, content)...)
	}
	return all
}

// ParsePackageJSON reads dependencies and devDependencies in document order.
func (p *DependencyParser) ParsePackageJSON(content string) []schema.Dependency {
	data := []byte(content)
	if !json.Valid(data) {
		p.log.Debug("Skipping malformed manifest", zap.String("file", "package.json"))
		return nil
	}
	var deps []schema.Dependency
	deps = append(deps, p.jsonSection(data, "package.json", schema.ProductionDependency, "dependencies")...)
	deps = append(deps, p.jsonSection(data, "package.json", schema.DevDependency, "devDependencies")...)
	return deps
}

// ParseComposerJSON reads the require section, skipping the php platform entry.
func (p *DependencyParser) ParseComposerJSON(content string) []schema.Dependency {
	data := []byte(content)
	if !json.Valid(data) {
		p.log.Debug("Skipping malformed manifest", zap.String("file", "composer.json"))
		return nil
	}
	return p.jsonSection(data, "composer.json", schema.ProductionDependency, "require")
}

func (p *DependencyParser) jsonSection(data []byte, file string, depType schema.DependencyType, section string) []schema.Dependency {
	ecosystem := schema.NPM
	if file == "composer.json" {
		ecosystem = schema.Packagist
	}
	var deps []schema.Dependency
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		if ecosystem == schema.Packagist && name == "php" {
			return nil
		}
		if !IsMajorFramework(name, ecosystem) {
			return nil
		}
		version := ""
		if dataType == jsonparser.String {
			if version, err = jsonparser.ParseString(value); err != nil {
				return err
			}
		}
		deps = append(deps, schema.Dependency{
			Name:       name,
			Version:    CleanVersion(version),
			Type:       depType,
			Ecosystem:  ecosystem,
			SourceFile: file,
		})
		return nil
	}, section)
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		p.log.Debug("Skipping malformed manifest section", zap.String("file", file), zap.String("section", section), zap.Error(err))
		return nil
	}
	return deps
}

// ParseRequirementsTxt reads one requirement per line.
func (p *DependencyParser) ParseRequirementsTxt(content string) []schema.Dependency {
	var deps []schema.Dependency
	for _, line := range significantLines(content) {
		m := requirementLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])
		if IsMajorFramework(name, schema.PyPI) {
			deps = append(deps, schema.Dependency{
				Name:       name,
				Version:    CleanVersion(m[2]),
				Type:       schema.ProductionDependency,
				Ecosystem:  schema.PyPI,
				SourceFile: "requirements.txt",
			})
		}
	}
	return deps
}

// ParsePyprojectToml reads the [tool.poetry.dependencies] table.
func (p *DependencyParser) ParsePyprojectToml(content string) []schema.Dependency {
	return p.tomlSection(content, "[tool.poetry.dependencies]", "pyproject.toml", schema.PyPI, true)
}

// ParseCargoToml reads the [dependencies] table.
func (p *DependencyParser) ParseCargoToml(content string) []schema.Dependency {
	return p.tomlSection(content, "[dependencies]", "Cargo.toml", schema.Cargo, false)
}

func (p *DependencyParser) tomlSection(content, header, file string, ecosystem schema.Ecosystem, lowerNames bool) []schema.Dependency {
	section, ok := sectionBody(content, header)
	if !ok {
		return nil
	}
	var deps []schema.Dependency
	for _, line := range significantLines(section) {
		m := tomlDependency.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if lowerNames {
			name = strings.ToLower(name)
		}
		if IsMajorFramework(name, ecosystem) {
			deps = append(deps, schema.Dependency{
				Name:       name,
				Version:    CleanVersion(m[2]),
				Type:       schema.ProductionDependency,
				Ecosystem:  ecosystem,
				SourceFile: file,
			})
		}
	}
	return deps
}

// sectionBody returns the text after header up to the next line that opens a table.
func sectionBody(content, header string) (string, bool) {
	i := strings.Index(content, header)
	if i < 0 {
		return "", false
	}
	body := content[i+len(header):]
	if j := strings.Index(body, "\n["); j >= 0 {
		body = body[:j]
	}
	return body, true
}

// ParseGoMod reads require directives, in blocks or on single lines.
func (p *DependencyParser) ParseGoMod(content string) []schema.Dependency {
	var deps []schema.Dependency
	add := func(path, version string) {
		if IsMajorFramework(path, schema.GoModules) {
			deps = append(deps, schema.Dependency{
				Name:       path,
				Version:    goVersion(version),
				Type:       schema.ProductionDependency,
				Ecosystem:  schema.GoModules,
				SourceFile: "go.mod",
			})
		}
	}

	f, err := modfile.ParseLax("go.mod", []byte(content), nil)
	if err == nil {
		for _, r := range f.Require {
			add(r.Mod.Path, r.Mod.Version)
		}
		return deps
	}
	p.log.Debug("Falling back to line scan for go.mod", zap.Error(err))

	inBlock := false
	for _, line := range significantLines(content) {
		switch {
		case strings.HasPrefix(line, "require ("), line == "require(":
			inBlock = true
			continue
		case inBlock && line == ")":
			inBlock = false
			continue
		case !inBlock && !strings.HasPrefix(line, "require "):
			continue
		}
		if m := goRequireLine.FindStringSubmatch(line); m != nil {
			add(m[1], m[2])
		}
	}
	return deps
}

// goVersion drops the v prefix and anything after the numeric release.
func goVersion(v string) string {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexFunc(v, func(r rune) bool { return (r < '0' || r > '9') && r != '.' }); i >= 0 {
		v = v[:i]
	}
	return v
}

// ParseGemfile reads gem declarations.
func (p *DependencyParser) ParseGemfile(content string) []schema.Dependency {
	var deps []schema.Dependency
	for _, line := range significantLines(content) {
		m := gemLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if IsMajorFramework(m[1], schema.RubyGems) {
			deps = append(deps, schema.Dependency{
				Name:       m[1],
				Version:    CleanVersion(m[2]),
				Type:       schema.ProductionDependency,
				Ecosystem:  schema.RubyGems,
				SourceFile: "Gemfile",
			})
		}
	}
	return deps
}

// significantLines returns trimmed lines that are neither blank nor comments.
func significantLines(content string) []string {
	var lines []string
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// IsMajorFramework reports whether name is on the allowlist of its ecosystem.
// Scoped and sub-package names match when either name contains the other.
func IsMajorFramework(name string, ecosystem schema.Ecosystem) bool {
	name = strings.ToLower(name)
	if name == "" {
		return false
	}
	for _, major := range keywords.MajorPackages(string(ecosystem)) {
		if name == major || strings.Contains(name, major) || strings.Contains(major, name) {
			return true
		}
	}
	return false
}

// CleanVersion trims surrounding whitespace, strips leading range operators and
// cuts at the first comma or whitespace, so ">=2.0,<3" becomes "2.0". A space
// after the operator leaves nothing, so "~> 7.0.4" becomes "". Cleaning a clean
// version changes nothing.
func CleanVersion(version string) string {
	version = strings.TrimLeft(strings.TrimSpace(version), "^~>=<")
	if i := strings.IndexFunc(version, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }); i >= 0 {
		version = version[:i]
	}
	return version
}
