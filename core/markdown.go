package core

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/huangsam/hiresignal/schema"
)

var (
	headerLine     = regexp.MustCompile(`(?m)^#+\s+(.+)$`)
	fencedCode     = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")
	frontMatterEnd = regexp.MustCompile(`(?m)^---\s*$`)
)

// CodeBlock is one fenced code block.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// MarkdownContent is the parsed structure of one markdown document.
type MarkdownContent struct {
	Filename   string         `json:"filename"`
	FullText   string         `json:"-"`
	PlainText  string         `json:"plain_text"`
	Headers    []string       `json:"headers"`
	CodeBlocks []CodeBlock    `json:"code_blocks"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	WordCount  int            `json:"word_count"`
	CharCount  int            `json:"char_count"`
}

// Document is one named text source of a repository.
type Document struct {
	Key  string
	Text string
}

// MarkdownAnalyzer parses markdown documents and gathers repository text.
type MarkdownAnalyzer struct {
	log    *zap.Logger
	policy *bluemonday.Policy
}

// NewMarkdownAnalyzer returns a markdown analyzer that logs through log.
func NewMarkdownAnalyzer(log *zap.Logger) *MarkdownAnalyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &MarkdownAnalyzer{log: log, policy: bluemonday.StrictPolicy()}
}

// AnalyzeFile parses content into headers, code blocks and front matter.
// It returns nil for empty content. If the markdown parser fails the
// document is scanned with regular expressions instead.
func (m *MarkdownAnalyzer) AnalyzeFile(content, filename string) (mc *MarkdownContent) {
	if content == "" {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			m.log.Warn("Markdown parse failed", zap.String("file", filename), zap.Any("panic", r))
			mc = m.simpleParse(content, filename)
		}
	}()

	meta, body := splitFrontMatter(content)
	doc := markdown.Parse([]byte(body), parser.NewWithExtensions(parser.CommonExtensions))

	mc = &MarkdownContent{
		Filename:   filename,
		FullText:   content,
		Headers:    []string{},
		CodeBlocks: []CodeBlock{},
		Metadata:   meta,
		WordCount:  len(strings.Fields(content)),
		CharCount:  utf8.RuneCountInString(content),
	}
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Heading:
			mc.Headers = append(mc.Headers, strings.TrimSpace(leafText(n)))
			return ast.SkipChildren
		case *ast.CodeBlock:
			if !n.IsFenced {
				return ast.GoToNext
			}
			lang := "text"
			if fields := strings.Fields(string(n.Info)); len(fields) > 0 {
				lang = fields[0]
			}
			mc.CodeBlocks = append(mc.CodeBlocks, CodeBlock{Language: lang, Code: string(n.Literal)})
		}
		return ast.GoToNext
	})

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.Render(doc, renderer)
	mc.PlainText = strings.TrimSpace(html.UnescapeString(m.policy.Sanitize(string(rendered))))
	return mc
}

// leafText concatenates the literal text below node.
func leafText(node ast.Node) string {
	var b strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if entering {
			if leaf := n.AsLeaf(); leaf != nil {
				b.Write(leaf.Literal)
			}
		}
		return ast.GoToNext
	})
	return b.String()
}

// splitFrontMatter separates a leading YAML front matter block from the body.
func splitFrontMatter(content string) (map[string]any, string) {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return nil, content
	}
	rest := content[strings.Index(content, "\n")+1:]
	loc := frontMatterEnd.FindStringIndex(rest)
	if loc == nil {
		return nil, content
	}
	meta := make(map[string]any)
	if err := yaml.Unmarshal([]byte(rest[:loc[0]]), &meta); err != nil {
		return nil, content
	}
	return meta, strings.TrimLeft(rest[loc[1]:], "\r\n")
}

func (m *MarkdownAnalyzer) simpleParse(content, filename string) *MarkdownContent {
	mc := &MarkdownContent{
		Filename:   filename,
		FullText:   content,
		PlainText:  content,
		Headers:    []string{},
		CodeBlocks: []CodeBlock{},
		WordCount:  len(strings.Fields(content)),
		CharCount:  utf8.RuneCountInString(content),
	}
	for _, h := range headerLine.FindAllStringSubmatch(content, -1) {
		mc.Headers = append(mc.Headers, strings.TrimSpace(h[1]))
	}
	for _, c := range fencedCode.FindAllStringSubmatch(content, -1) {
		lang := c[1]
		if lang == "" {
			lang = "text"
		}
		mc.CodeBlocks = append(mc.CodeBlocks, CodeBlock{Language: lang, Code: c[2]})
	}
	return mc
}

// ExtractAllContent returns the README and every markdown file of repo,
// keyed by "readme" and by normalized path. A repeated key keeps its first
// position and takes the later text.
func (m *MarkdownAnalyzer) ExtractAllContent(repo *schema.Repository) []Document {
	docs := orderedDocs{index: make(map[string]int)}
	if repo.HasReadme() && repo.Readme.Content != "" {
		docs.put("readme", repo.Readme.Content)
	}
	for _, f := range repo.MarkdownFiles {
		if f.Content == "" {
			continue
		}
		path := f.Path
		if path == "" {
			path = f.Filename
		}
		key := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(path, ".md", ""), "/", "_"))
		docs.put(key, f.Content)
	}
	m.log.Debug("Extracted markdown content", zap.String("repo", repo.Name), zap.Int("documents", len(docs.list)))
	return docs.list
}

// CombineAllText joins documents into one text, each under a source header.
func CombineAllText(docs []Document) string {
	parts := make([]string, len(docs))
	for i, d := range docs {
		parts[i] = fmt.Sprintf("# Source: %s\n%s\n\n", d.Key, d.Text)
	}
	return strings.Join(parts, "\n")
}

type orderedDocs struct {
	index map[string]int
	list  []Document
}

func (o *orderedDocs) put(key, text string) {
	if i, ok := o.index[key]; ok {
		o.list[i].Text = text
		return
	}
	o.index[key] = len(o.list)
	o.list = append(o.list, Document{Key: key, Text: text})
}
