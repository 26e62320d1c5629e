package github

import (
	"cmp"
	"context"
	"errors"
	"path"
	"slices"
	"strings"
	"unicode/utf8"

	gh "github.com/google/go-github/v66/github"
	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// enrich fills in languages, README, markdown documents and manifests.
// Failures of single parts are logged and leave the repository partially
// filled. Only cancellation and rate limiting abort the fetch.
func (c *Client) enrich(ctx context.Context, repo *schema.Repository, log *zap.Logger) error {
	owner, name := splitFullName(repo)
	log = log.With(zap.String("repo", name))

	steps := []struct {
		what string
		run  func() error
	}{
		{"languages", func() error { return c.fetchLanguages(ctx, owner, repo) }},
		{"readme", func() error { return c.fetchReadme(ctx, owner, repo) }},
		{"tree", func() error { return c.fetchDocuments(ctx, owner, repo, log) }},
	}
	for _, step := range steps {
		err := step.run()
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = classify(err, "")
		if errors.Is(err, contract.ErrRateLimited) {
			return err
		}
		log.Warn("Skipping repository data", zap.String("part", step.what), zap.Error(err))
	}
	return nil
}

func splitFullName(repo *schema.Repository) (owner, name string) {
	if o, n, ok := strings.Cut(repo.FullName, "/"); ok {
		return o, n
	}
	return "", repo.Name
}

// fetchLanguages stores language shares ordered by bytes, largest first.
func (c *Client) fetchLanguages(ctx context.Context, owner string, repo *schema.Repository) error {
	langs, _, err := c.api.Repositories.ListLanguages(ctx, owner, repo.Name)
	if err != nil {
		return err
	}
	repo.Languages = languageShares(langs)
	return nil
}

func languageShares(langs map[string]int) []schema.LanguageShare {
	var total int64
	for _, b := range langs {
		total += int64(b)
	}
	shares := make([]schema.LanguageShare, 0, len(langs))
	if total == 0 {
		return shares
	}
	for lang, b := range langs {
		shares = append(shares, schema.LanguageShare{
			Name:       lang,
			Bytes:      int64(b),
			Percentage: algo.Round1(float64(b) / float64(total) * 100),
		})
	}
	slices.SortFunc(shares, func(a, b schema.LanguageShare) int {
		if a.Bytes != b.Bytes {
			return cmp.Compare(b.Bytes, a.Bytes)
		}
		return strings.Compare(a.Name, b.Name)
	})
	return shares
}

func (c *Client) fetchReadme(ctx context.Context, owner string, repo *schema.Repository) error {
	readme, _, err := c.api.Repositories.GetReadme(ctx, owner, repo.Name, nil)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	content, err := readme.GetContent()
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}
	repo.Readme = &schema.Readme{
		Content:   content,
		Length:    utf8.RuneCountInString(content),
		HasReadme: true,
	}
	return nil
}

// fetchDocuments walks the recursive tree of the default branch, falling
// back to main or master, and downloads markdown documents and root manifests.
func (c *Client) fetchDocuments(ctx context.Context, owner string, repo *schema.Repository, log *zap.Logger) error {
	tree, branch, err := c.fetchTree(ctx, owner, repo)
	if err != nil || tree == nil {
		return err
	}

	var docs, manifests []string
	for _, entry := range tree.Entries {
		p := entry.GetPath()
		if entry.GetType() != "blob" {
			continue
		}
		if slices.Contains(schema.ManifestFiles, p) {
			manifests = append(manifests, p)
			continue
		}
		if c.isDocument(p) && entry.GetSize() <= c.opts.MaxMarkdownBytes {
			docs = append(docs, p)
		}
	}
	docs = algo.Head(docs, c.opts.MaxMarkdownFiles)

	for _, p := range docs {
		content, err := c.fileContent(ctx, owner, repo.Name, p, branch)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Debug("Skipping markdown file", zap.String("path", p), zap.Error(err))
			continue
		}
		if len(content) > c.opts.MaxMarkdownBytes {
			log.Debug("Skipping large markdown file", zap.String("path", p), zap.Int("bytes", len(content)))
			continue
		}
		repo.MarkdownFiles = append(repo.MarkdownFiles, schema.MarkdownFile{
			Filename: path.Base(p),
			Path:     p,
			Content:  content,
			Length:   utf8.RuneCountInString(content),
		})
	}

	for _, p := range manifests {
		content, err := c.fileContent(ctx, owner, repo.Name, p, branch)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Debug("Skipping manifest", zap.String("path", p), zap.Error(err))
			continue
		}
		if repo.DependencyFiles == nil {
			repo.DependencyFiles = make(map[string]string)
		}
		repo.DependencyFiles[p] = content
	}
	return nil
}

// isDocument reports whether p is a markdown file other than the root README.
func (c *Client) isDocument(p string) bool {
	lower := strings.ToLower(p)
	if !strings.HasSuffix(lower, ".md") {
		return false
	}
	if lower == "readme.md" || lower == "readme.markdown" {
		return false
	}
	return !contract.ShouldIgnore(p, c.opts.Excludes)
}

func (c *Client) fetchTree(ctx context.Context, owner string, repo *schema.Repository) (*gh.Tree, string, error) {
	var lastErr error
	for _, branch := range treeBranches(repo.DefaultBranch) {
		tree, _, err := c.api.Git.GetTree(ctx, owner, repo.Name, branch, true)
		if err == nil {
			return tree, branch, nil
		}
		if !isNotFound(err) {
			return nil, "", err
		}
		lastErr = err
	}
	if isNotFound(lastErr) {
		return nil, "", nil
	}
	return nil, "", lastErr
}

// treeBranches lists the branches tried for the file tree, in order.
func treeBranches(defaultBranch string) []string {
	branches := []string{}
	for _, b := range []string{defaultBranch, "main", "master"} {
		if b != "" && !slices.Contains(branches, b) {
			branches = append(branches, b)
		}
	}
	return branches
}

func (c *Client) fileContent(ctx context.Context, owner, repo, p, ref string) (string, error) {
	file, _, _, err := c.api.Repositories.GetContents(ctx, owner, repo, p, &gh.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", errors.New("path is a directory")
	}
	return file.GetContent()
}
