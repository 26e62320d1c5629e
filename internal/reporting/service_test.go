package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/hiresignal/core"
	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/iocache"
	"github.com/huangsam/hiresignal/internal/llm"
	"github.com/huangsam/hiresignal/schema"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testBundle() schema.UserBundle {
	return schema.UserBundle{
		User: schema.UserProfile{Login: "octocat", Name: "Octo Cat", CreatedAt: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)},
		Repositories: []schema.Repository{
			{
				Name:        "ledger",
				Description: "Payment ledger service",
				Language:    "Go",
				Languages:   []schema.LanguageShare{{Name: "Go", Bytes: 1000, Percentage: 100}},
				Stars:       5,
				PushedAt:    testNow.AddDate(0, 0, -3),
				Readme:      &schema.Readme{Content: "# Ledger", Length: 8, HasReadme: true},
			},
		},
		FetchedAt: testNow,
	}
}

func newTestService(fetcher contract.Fetcher, stores contract.StoreManager, opts ...Option) *Service {
	clock := func() time.Time { return testNow }
	analyzer := core.NewAnalyzer(nil, core.WithClock(clock))
	opts = append([]Option{WithClock(clock), WithRequestIDs(func() string { return "req00001" })}, opts...)
	return NewService(fetcher, stores, analyzer, time.Hour, nil, opts...)
}

func TestNewRequestID(t *testing.T) {
	id := NewRequestID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, NewRequestID())
}

func TestGenerateFetchesAndRecords(t *testing.T) {
	ctx := context.Background()
	fetcher := &contract.MockFetcher{}
	cache := &iocache.MockCacheStore{}
	history := &iocache.MockHistoryStore{}
	stores := &iocache.MockStoreManager{}

	params := map[string]any{"report_type": "full"}
	stores.On("GetCacheStore").Return(cache)
	stores.On("GetHistoryStore").Return(history)
	cache.On("Get", "profile:octocat").Return(nil, 0, int64(0), contract.ErrCacheMiss)
	cache.On("Set", "profile:octocat", mock.Anything, 1, mock.AnythingOfType("int64")).Return(nil)
	fetcher.On("FetchBundle", ctx, "octocat").Return(testBundle(), nil)
	history.On("BeginRun", "req00001", "octocat", testNow, params).Return(int64(7), nil)
	history.On("RecordReport", int64(7), mock.MatchedBy(func(r schema.ReportRecord) bool {
		return r.RunID == 7 && r.Username == "octocat" && r.TotalRepos == 1 &&
			r.DataSource == schema.SourceGitHub && r.Provider == schema.DeterministicProvider && r.ReportJSON != ""
	})).Return(nil)
	history.On("EndRun", int64(7), testNow, RunSucceeded).Return(nil)

	svc := newTestService(fetcher, stores, WithConfigParams(params))
	env, err := svc.Generate(ctx, Request{Username: "@OctoCat", UseStored: true})
	require.NoError(t, err)
	require.True(t, env.OK())
	assert.Equal(t, "req00001", env.RequestID)
	assert.Equal(t, schema.SourceGitHub, env.DataSource)
	assert.Equal(t, "octocat", env.Report.Candidate.Username)

	fetcher.AssertExpectations(t)
	cache.AssertExpectations(t)
	history.AssertExpectations(t)
}

func TestGenerateRefreshSkipsCache(t *testing.T) {
	ctx := context.Background()
	fetcher := &contract.MockFetcher{}
	cache := &iocache.MockCacheStore{}
	stores := &iocache.MockStoreManager{}

	stores.On("GetCacheStore").Return(cache)
	stores.On("GetHistoryStore").Return(nil)
	cache.On("Set", "profile:octocat", mock.Anything, 1, mock.AnythingOfType("int64")).Return(errors.New("disk full"))
	fetcher.On("FetchBundle", ctx, "octocat").Return(testBundle(), nil)

	env, err := newTestService(fetcher, stores).Generate(ctx, Request{Username: "octocat", UseStored: true, Refresh: true})
	require.NoError(t, err)
	assert.True(t, env.OK())
	assert.Equal(t, schema.SourceGitHub, env.DataSource)
	cache.AssertNotCalled(t, "Get", mock.Anything)
	cache.AssertExpectations(t)
}

func TestGenerateFetchErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", contract.ErrUserNotFound},
		{"rate limited", contract.ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			fetcher := &contract.MockFetcher{}
			history := &iocache.MockHistoryStore{}
			stores := &iocache.MockStoreManager{}

			stores.On("GetCacheStore").Return(nil)
			stores.On("GetHistoryStore").Return(history)
			history.On("BeginRun", "req00001", "ghost", testNow, map[string]any(nil)).Return(int64(3), nil)
			history.On("EndRun", int64(3), testNow, RunFailed).Return(nil)
			fetcher.On("FetchBundle", ctx, "ghost").Return(schema.UserBundle{}, tt.err)

			_, err := newTestService(fetcher, stores).Generate(ctx, Request{Username: "ghost"})
			assert.ErrorIs(t, err, tt.err)
			history.AssertExpectations(t)
			history.AssertNotCalled(t, "RecordReport", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateValidation(t *testing.T) {
	fetcher := &contract.MockFetcher{}
	svc := newTestService(fetcher, nil)

	_, err := svc.Generate(context.Background(), Request{Username: "not a user!"})
	assert.ErrorIs(t, err, contract.ErrInvalidUsername)

	_, err = svc.Generate(context.Background(), Request{Username: "octocat", ReportType: "summary"})
	assert.ErrorIs(t, err, ErrInvalidReportType)
	fetcher.AssertNotCalled(t, "FetchBundle", mock.Anything, mock.Anything)
}

type stubProvider struct{ text string }

func (p stubProvider) Generate(context.Context, string) (string, error) { return p.text, nil }
func (p stubProvider) Name() schema.LLMProvider                         { return schema.OpenAIProvider }
func (p stubProvider) Model() string                                    { return "gpt-test" }

func TestGenerateLLMReport(t *testing.T) {
	ctx := context.Background()
	fetcher := &contract.MockFetcher{}
	fetcher.On("FetchBundle", ctx, "octocat").Return(testBundle(), nil)

	svc := newTestService(fetcher, nil, WithNarrator(llm.NewNarrator(stubProvider{text: "Narrated."}, nil)))

	env, err := svc.Generate(ctx, Request{Username: "octocat", ReportType: schema.LLMReport})
	require.NoError(t, err)
	require.True(t, env.OK())
	assert.Equal(t, "Narrated.", env.Report.ExecutiveSummary)
	assert.Equal(t, "openai", env.Provider)
	assert.Equal(t, "gpt-test", env.Model)

	// Full reports never call the narrator
	env, err = svc.Generate(ctx, Request{Username: "octocat"})
	require.NoError(t, err)
	assert.Equal(t, schema.DeterministicProvider, env.Provider)
	assert.NotEqual(t, "Narrated.", env.Report.ExecutiveSummary)
}

func TestServiceWithSQLiteStores(t *testing.T) {
	dir := t.TempDir()
	cacheStore, err := iocache.NewCacheStore("hiresignal_bundle_cache", schema.SQLiteBackend, filepath.Join(dir, "cache.db"))
	require.NoError(t, err)
	historyStore, err := iocache.NewHistoryStore(schema.SQLiteBackend, filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cacheStore.Close()
		_ = historyStore.Close()
	})

	ctx := context.Background()
	fetcher := &contract.MockFetcher{}
	fetcher.On("FetchBundle", ctx, "octocat").Return(testBundle(), nil).Once()

	svc := newTestService(fetcher, iocache.NewStoreManager(cacheStore, historyStore))

	first, err := svc.Generate(ctx, Request{Username: "octocat", UseStored: true})
	require.NoError(t, err)
	assert.Equal(t, schema.SourceGitHub, first.DataSource)

	second, err := svc.Generate(ctx, Request{Username: "octocat", UseStored: true})
	require.NoError(t, err)
	assert.Equal(t, schema.SourceCache, second.DataSource)
	assert.Equal(t, first.Report, second.Report)

	analyzed, err := svc.Analyze(ctx, "octocat", false)
	require.NoError(t, err)
	assert.True(t, analyzed.CacheInfo.Hit)
	assert.Equal(t, 1, analyzed.TotalReposAnalyzed)
	assert.Equal(t, 2, analyzed.TotalAPICalls)
	assert.Equal(t, "ledger", analyzed.Repositories[0].Name)

	stored, err := svc.StoredReport("octocat")
	require.NoError(t, err)
	assert.Equal(t, schema.SourceCache, stored.DataSource)
	assert.Equal(t, second.Report.ExecutiveSummary, stored.Report.ExecutiveSummary)

	runs, err := historyStore.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.NotNil(t, runs[0].Status)
	assert.Equal(t, RunSucceeded, *runs[0].Status)

	var params map[string]any
	require.NotNil(t, runs[0].ConfigParams)
	require.NoError(t, json.Unmarshal([]byte(*runs[0].ConfigParams), &params))

	require.NoError(t, svc.ClearCache("OctoCat"))
	_, err = iocache.NewBundleCache(cacheStore, time.Hour, nil).Get("octocat")
	assert.ErrorIs(t, err, contract.ErrCacheMiss)
	fetcher.AssertExpectations(t)
}

func TestStoredReportMissing(t *testing.T) {
	svc := newTestService(&contract.MockFetcher{}, nil)
	_, err := svc.StoredReport("octocat")
	assert.ErrorIs(t, err, contract.ErrReportNotFound)

	_, err = svc.StoredReport("")
	assert.ErrorIs(t, err, contract.ErrInvalidUsername)
}

func TestClearCacheAll(t *testing.T) {
	cache := &iocache.MockCacheStore{}
	stores := &iocache.MockStoreManager{}
	stores.On("GetCacheStore").Return(cache)
	cache.On("Clear").Return(nil)

	require.NoError(t, newTestService(&contract.MockFetcher{}, stores).ClearCache(""))
	cache.AssertExpectations(t)

	assert.ErrorIs(t, newTestService(&contract.MockFetcher{}, stores).ClearCache("bad name"), contract.ErrInvalidUsername)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	fetcher := &contract.MockFetcher{}
	cache := &iocache.MockCacheStore{}
	stores := &iocache.MockStoreManager{}

	stores.On("GetCacheStore").Return(cache)
	cache.On("Get", "profile:octocat").Return(nil, 0, int64(0), contract.ErrCacheMiss)
	cache.On("Set", "profile:octocat", mock.Anything, 1, mock.AnythingOfType("int64")).Return(nil)
	fetcher.On("FetchBundle", ctx, "octocat").Return(testBundle(), nil)

	bundle, source, err := newTestService(fetcher, stores).Fetch(ctx, "OctoCat", false)
	require.NoError(t, err)
	assert.Equal(t, schema.SourceGitHub, source)
	assert.Equal(t, "octocat", bundle.User.Login)
	require.Len(t, bundle.Repositories, 1)

	_, _, err = newTestService(fetcher, stores).Fetch(ctx, "-bad-", false)
	assert.ErrorIs(t, err, contract.ErrInvalidUsername)
}
