// Package reporting orchestrates fetching, caching, analysis, narration and
// history tracking for one hiring report request.
package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/core"
	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/iocache"
	"github.com/huangsam/hiresignal/internal/llm"
	"github.com/huangsam/hiresignal/internal/logger"
	"github.com/huangsam/hiresignal/schema"
)

// Run statuses recorded in the history store.
const (
	RunSucceeded = "success"
	RunFailed    = "error"
)

// ErrInvalidReportType is returned for report types other than full and llm.
var ErrInvalidReportType = errors.New("invalid report type")

// Request describes one report to generate.
type Request struct {
	Username   string
	ReportType schema.ReportType
	UseStored  bool // serve the bundle from the cache when present
	Refresh    bool // always fetch from GitHub, overriding UseStored
}

// Service generates reports for GitHub users.
type Service struct {
	fetcher      contract.Fetcher
	stores       contract.StoreManager
	analyzer     *core.Analyzer
	narrator     *llm.Narrator
	cacheTTL     time.Duration
	configParams map[string]any
	now          func() time.Time
	newID        func() string
	log          *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithNarrator enables the narrated executive summary of llm reports.
func WithNarrator(n *llm.Narrator) Option {
	return func(s *Service) { s.narrator = n }
}

// WithConfigParams sets the settings recorded with each history run.
func WithConfigParams(params map[string]any) Option {
	return func(s *Service) { s.configParams = params }
}

// WithClock replaces the wall clock used for run timing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRequestIDs replaces the request id generator.
func WithRequestIDs(next func() string) Option {
	return func(s *Service) { s.newID = next }
}

// NewService wires a report service. stores may hold nil stores, which
// disables caching or history.
func NewService(fetcher contract.Fetcher, stores contract.StoreManager, analyzer *core.Analyzer, cacheTTL time.Duration, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		fetcher:  fetcher,
		stores:   stores,
		analyzer: analyzer,
		narrator: llm.NewNarrator(nil, log),
		cacheTTL: cacheTTL,
		now:      time.Now,
		newID:    NewRequestID,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRequestID returns the first 8 characters of a random UUID.
func NewRequestID() string {
	return uuid.NewString()[:8]
}

// Generate produces the report envelope for req. Invalid usernames and fetch
// failures are returned as errors so transports can map them to statuses; a
// failed analysis is returned as an error envelope.
func (s *Service) Generate(ctx context.Context, req Request) (schema.ReportEnvelope, error) {
	requestID := s.newID()
	username, err := contract.NormalizeUsername(req.Username)
	if err != nil {
		return schema.ReportEnvelope{}, err
	}
	reportType := req.ReportType
	if reportType == "" {
		reportType = schema.FullReport
	}
	if _, ok := schema.ValidReportTypes[reportType]; !ok {
		return schema.ReportEnvelope{}, fmt.Errorf("%w '%s'. must be full, llm", ErrInvalidReportType, reportType)
	}

	log := logger.WithFields(s.log, logger.RequestFields(requestID, username)...)
	log.Info("Generating report", zap.String("type", string(reportType)))

	run := s.beginRun(requestID, username, log)

	bundle, source, err := s.loadBundle(ctx, username, req.UseStored && !req.Refresh, log)
	if err != nil {
		run.end(RunFailed)
		return schema.ReportEnvelope{}, err
	}

	env := s.analyzer.GenerateReport(bundle, reportType)
	if reportType == schema.LLMReport {
		env = s.narrator.Summarize(ctx, env)
	}
	env.RequestID = requestID
	env.DataSource = source

	if !env.OK() {
		run.end(RunFailed)
		return env, nil
	}
	run.record(username, &env, len(bundle.Repositories))
	run.end(RunSucceeded)
	log.Info("Report generated",
		zap.String("source", source),
		zap.Float64("score", env.Report.TechnicalAssessment.OverallScore))
	return env, nil
}

// Analyze returns the fetched data of username, from the cache unless refresh is set.
func (s *Service) Analyze(ctx context.Context, username string, refresh bool) (schema.AnalyzeResult, error) {
	requestID := s.newID()
	start := s.now()
	username, err := contract.NormalizeUsername(username)
	if err != nil {
		return schema.AnalyzeResult{}, err
	}
	log := logger.WithFields(s.log, logger.RequestFields(requestID, username)...)

	bundle, source, err := s.loadBundle(ctx, username, !refresh, log)
	if err != nil {
		return schema.AnalyzeResult{}, err
	}
	end := s.now()

	hit := source == schema.SourceCache
	var githubMs int64
	if !hit {
		githubMs = end.Sub(start).Milliseconds()
	}
	return schema.AnalyzeResult{
		Status:             schema.StatusSuccess,
		RequestID:          requestID,
		Timestamp:          schema.FormatTimestamp(end),
		User:               bundle.User,
		Repositories:       bundle.Repositories,
		TotalReposAnalyzed: len(bundle.Repositories),
		TotalAPICalls:      len(bundle.Repositories) + 1,
		Performance: schema.Performance{
			GitHubLatencyMs: githubMs,
			TotalLatencyMs:  end.Sub(start).Milliseconds(),
			CacheHit:        hit,
		},
		CacheInfo: schema.CacheInfo{Hit: hit},
	}, nil
}

// Fetch returns the bundle of username and where it came from, serving the
// cache unless refresh is set.
func (s *Service) Fetch(ctx context.Context, username string, refresh bool) (schema.UserBundle, string, error) {
	username, err := contract.NormalizeUsername(username)
	if err != nil {
		return schema.UserBundle{}, "", err
	}
	log := logger.WithFields(s.log, logger.RequestFields(s.newID(), username)...)
	bundle, source, err := s.loadBundle(ctx, username, !refresh, log)
	if err != nil {
		return schema.UserBundle{}, "", err
	}
	return *bundle, source, nil
}

// StoredReport returns the latest report recorded for username.
func (s *Service) StoredReport(username string) (schema.ReportEnvelope, error) {
	username, err := contract.NormalizeUsername(username)
	if err != nil {
		return schema.ReportEnvelope{}, err
	}
	history := s.historyStore()
	if history == nil {
		return schema.ReportEnvelope{}, contract.ErrReportNotFound
	}
	record, err := history.LatestReport(username)
	if err != nil {
		return schema.ReportEnvelope{}, err
	}
	var env schema.ReportEnvelope
	if err := json.Unmarshal([]byte(record.ReportJSON), &env); err != nil {
		return schema.ReportEnvelope{}, fmt.Errorf("%w: decode stored report: %w", contract.ErrStorage, err)
	}
	return env, nil
}

// ClearCache drops the cached bundle of username, or every bundle when
// username is empty.
func (s *Service) ClearCache(username string) error {
	if username != "" {
		normalized, err := contract.NormalizeUsername(username)
		if err != nil {
			return err
		}
		username = normalized
	}
	if err := s.bundleCache().Invalidate(username); err != nil {
		return fmt.Errorf("%w: %w", contract.ErrStorage, err)
	}
	s.log.Info("Cleared bundle cache", logger.UserFields(username)...)
	return nil
}

// loadBundle serves username from the cache when allowed, otherwise fetches
// it and stores the result. Cache failures never fail the request.
func (s *Service) loadBundle(ctx context.Context, username string, allowCache bool, log *zap.Logger) (*schema.UserBundle, string, error) {
	cache := s.bundleCache()
	if allowCache {
		bundle, err := cache.Get(username)
		switch {
		case err == nil:
			log.Debug("Cache hit")
			return bundle, schema.SourceCache, nil
		case errors.Is(err, contract.ErrCacheMiss):
			log.Debug("Cache miss")
		default:
			log.Warn("Cache read failed", zap.Error(err))
		}
	}

	bundle, err := s.fetcher.FetchBundle(ctx, username)
	if err != nil {
		log.Warn("Fetch failed", zap.Error(err))
		return nil, "", err
	}
	if err := cache.Put(username, &bundle); err != nil {
		log.Warn("Cache write failed", zap.Error(err))
	}
	return &bundle, schema.SourceGitHub, nil
}

func (s *Service) bundleCache() *iocache.BundleCache {
	var store contract.CacheStore
	if s.stores != nil {
		store = s.stores.GetCacheStore()
	}
	return iocache.NewBundleCache(store, s.cacheTTL, s.log)
}

func (s *Service) historyStore() contract.HistoryStore {
	if s.stores == nil {
		return nil
	}
	return s.stores.GetHistoryStore()
}
