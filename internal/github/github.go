// Package github fetches the profile and repositories of a GitHub user and
// turns them into the bundle consumed by the analyzer.
package github

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/logger"
	"github.com/huangsam/hiresignal/schema"
)

const perPage = 100

// Options bound how much is fetched per user.
type Options struct {
	Token            string
	MaxRepos         int
	MaxMarkdownFiles int
	MaxMarkdownBytes int
	Workers          int
	Timeout          time.Duration
	Excludes         []string
}

// OptionsFromConfig reads the fetch settings of a validated config.
func OptionsFromConfig(cfg *contract.Config) Options {
	return Options{
		Token:            cfg.GitHubToken,
		MaxRepos:         cfg.MaxRepos,
		MaxMarkdownFiles: cfg.MaxMarkdownFiles,
		MaxMarkdownBytes: cfg.MaxMarkdownBytes,
		Workers:          cfg.FetchWorkers,
		Timeout:          cfg.RequestTimeout,
		Excludes:         cfg.Excludes,
	}
}

// Option customizes a Client.
type Option func(*Client) error

// WithBaseURL points the client at another API root, such as GitHub
// Enterprise or a test server.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("invalid github base url %q: %w", rawURL, err)
		}
		c.api.BaseURL = u
		return nil
	}
}

// WithClock replaces the clock used to stamp bundles.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		c.now = now
		return nil
	}
}

// Client implements contract.Fetcher on top of the GitHub REST API.
type Client struct {
	api    *gh.Client
	opts   Options
	log    *zap.Logger
	now    func() time.Time
	strict *bluemonday.Policy
}

var _ contract.Fetcher = (*Client)(nil)

// NewClient builds a client. An empty token makes unauthenticated requests.
func NewClient(opts Options, log *zap.Logger, options ...Option) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Workers <= 0 {
		opts.Workers = contract.DefaultFetchWorkers
	}
	if opts.MaxRepos <= 0 {
		opts.MaxRepos = contract.DefaultMaxRepos
	}
	if opts.MaxMarkdownBytes <= 0 {
		opts.MaxMarkdownBytes = contract.DefaultMaxMarkdownBytes
	}
	if opts.Timeout <= 0 {
		opts.Timeout = contract.DefaultRequestTimeout
	}

	api := gh.NewClient(&http.Client{Timeout: opts.Timeout})
	if opts.Token != "" {
		api = api.WithAuthToken(opts.Token)
	}
	c := &Client{
		api:    api,
		opts:   opts,
		log:    log,
		now:    time.Now,
		strict: bluemonday.StrictPolicy(),
	}
	for _, o := range options {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FetchBundle fetches the profile of username and its top repositories by
// stars, each enriched with languages, README, markdown documents and
// dependency manifests. Forks and archived repositories are skipped.
func (c *Client) FetchBundle(ctx context.Context, username string) (schema.UserBundle, error) {
	log := logger.WithFields(c.log, logger.UserFields(username)...)
	start := c.now()

	profile, err := c.fetchProfile(ctx, username)
	if err != nil {
		return schema.UserBundle{}, err
	}

	repos, err := c.listRepositories(ctx, username)
	if err != nil {
		return schema.UserBundle{}, err
	}
	log.Debug("Listed repositories", zap.Int("count", len(repos)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i := range repos {
		g.Go(func() error {
			return c.enrich(gctx, &repos[i], log)
		})
	}
	if err := g.Wait(); err != nil {
		return schema.UserBundle{}, err
	}

	log.Info("Fetched GitHub data",
		zap.Int("repositories", len(repos)),
		zap.Duration("elapsed", c.now().Sub(start)))
	return schema.UserBundle{
		User:         profile,
		Repositories: repos,
		FetchedAt:    c.now().UTC(),
	}, nil
}

func (c *Client) fetchProfile(ctx context.Context, username string) (schema.UserProfile, error) {
	u, _, err := c.api.Users.Get(ctx, username)
	if err != nil {
		return schema.UserProfile{}, classify(err, username)
	}
	return schema.UserProfile{
		Login:     u.GetLogin(),
		Name:      u.GetName(),
		AvatarURL: u.GetAvatarURL(),
		Bio:       c.plainText(u.GetBio()),
		Location:  u.GetLocation(),
		Company:   u.GetCompany(),
		Blog:      u.GetBlog(),
		Followers: u.GetFollowers(),
		Following: u.GetFollowing(),
		Repos:     u.GetPublicRepos(),
		CreatedAt: u.GetCreatedAt().Time,
	}, nil
}

// plainText strips any markup from user-supplied profile text.
func (c *Client) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.strict.Sanitize(s)))
}

// listRepositories returns the owned, active repositories sorted by stars
// and capped at MaxRepos.
func (c *Client) listRepositories(ctx context.Context, username string) ([]schema.Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "pushed",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	listed, _, err := c.api.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, classify(err, username)
	}

	var repos []schema.Repository
	for _, r := range listed {
		if r.GetFork() || r.GetArchived() {
			continue
		}
		repos = append(repos, toRepository(r))
	}
	slices.SortStableFunc(repos, func(a, b schema.Repository) int {
		return b.Stars - a.Stars
	})
	if len(repos) > c.opts.MaxRepos {
		repos = repos[:c.opts.MaxRepos]
	}
	return repos, nil
}

func toRepository(r *gh.Repository) schema.Repository {
	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}
	return schema.Repository{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		Topics:        topics,
		Language:      r.GetLanguage(),
		Languages:     []schema.LanguageShare{},
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		Watchers:      r.GetWatchersCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		SizeKB:        r.GetSize(),
		Archived:      r.GetArchived(),
		Fork:          r.GetFork(),
		DefaultBranch: r.GetDefaultBranch(),
		HTMLURL:       r.GetHTMLURL(),
		CreatedAt:     r.GetCreatedAt().Time,
		UpdatedAt:     r.GetUpdatedAt().Time,
		PushedAt:      r.GetPushedAt().Time,
		MarkdownFiles: []schema.MarkdownFile{},
	}
}
