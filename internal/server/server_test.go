package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/hiresignal/core"
	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/reporting"
	"github.com/huangsam/hiresignal/schema"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Generate(ctx context.Context, req reporting.Request) (schema.ReportEnvelope, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(schema.ReportEnvelope), args.Error(1)
}

func (m *mockService) Analyze(ctx context.Context, username string, refresh bool) (schema.AnalyzeResult, error) {
	args := m.Called(ctx, username, refresh)
	return args.Get(0).(schema.AnalyzeResult), args.Error(1)
}

func (m *mockService) StoredReport(username string) (schema.ReportEnvelope, error) {
	args := m.Called(username)
	return args.Get(0).(schema.ReportEnvelope), args.Error(1)
}

func (m *mockService) ClearCache(username string) error {
	return m.Called(username).Error(0)
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestHealth(t *testing.T) {
	srv := New(&mockService{}, nil, "1.2.3")
	srv.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	for _, path := range []string{"/health", "/healthz"} {
		rec, body := do(t, srv.Handler(), http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "1.2.3", body["version"])
		assert.Equal(t, "2024-06-01T00:00:00.000000Z", body["timestamp"])
	}
}

func TestGenerateDefaultsUseStored(t *testing.T) {
	svc := &mockService{}
	svc.On("Generate", mock.Anything, reporting.Request{Username: "octocat", UseStored: true}).
		Return(schema.ReportEnvelope{Status: schema.StatusSuccess, RequestID: "abc12345"}, nil)
	svc.On("Generate", mock.Anything, reporting.Request{Username: "octocat", ReportType: schema.LLMReport, Refresh: true}).
		Return(schema.ReportEnvelope{Status: schema.StatusError, Message: "analysis failed"}, nil)

	h := New(svc, nil, "dev").Handler()

	rec, body := do(t, h, http.MethodPost, "/api/v1/reports/generate", `{"username":"octocat"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc12345", body["request_id"])

	// Error envelopes are still answered with 200
	rec, body = do(t, h, http.MethodPost, "/api/v1/reports/generate",
		`{"username":"octocat","report_type":"llm","use_stored":false,"refresh":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, schema.StatusError, body["status"])
	svc.AssertExpectations(t)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid username", fmt.Errorf("%w: %q", contract.ErrInvalidUsername, "a b"), http.StatusBadRequest},
		{"invalid report type", reporting.ErrInvalidReportType, http.StatusBadRequest},
		{"not found", contract.ErrUserNotFound, http.StatusNotFound},
		{"no stored report", contract.ErrReportNotFound, http.StatusNotFound},
		{"rate limited", fmt.Errorf("fetch: %w", contract.ErrRateLimited), http.StatusTooManyRequests},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Analyze", mock.Anything, "octocat", false).Return(schema.AnalyzeResult{}, tt.err)

			rec, body := do(t, New(svc, nil, "dev").Handler(), http.MethodPost, "/api/v1/analyze", `{"github_input":"octocat"}`)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, schema.StatusError, body["status"])
			assert.Equal(t, tt.err.Error(), body["message"])
		})
	}
}

func TestAnalyzeAcceptsUsernameField(t *testing.T) {
	svc := &mockService{}
	svc.On("Analyze", mock.Anything, "torvalds", true).
		Return(schema.AnalyzeResult{Status: schema.StatusSuccess, TotalReposAnalyzed: 3}, nil)

	rec, body := do(t, New(svc, nil, "dev").Handler(), http.MethodPost, "/api/v1/analyze", `{"username":"torvalds","refresh":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, body["total_repos_analyzed"])
	svc.AssertExpectations(t)
}

func TestBadJSON(t *testing.T) {
	svc := &mockService{}
	rec, body := do(t, New(svc, nil, "dev").Handler(), http.MethodPost, "/api/v1/reports/generate", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["message"], "invalid request body")
	svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestClearCache(t *testing.T) {
	svc := &mockService{}
	svc.On("ClearCache", "").Return(nil)
	svc.On("ClearCache", "octocat").Return(nil)
	h := New(svc, nil, "dev").Handler()

	rec, body := do(t, h, http.MethodDelete, "/api/v1/cache/clear", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cache cleared successfully", body["message"])

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/cache/clear", `{"username":"octocat"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/cache/clear?username=octocat", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
	svc.AssertNumberOfCalls(t, "ClearCache", 3)
}

func TestStoredReportRoute(t *testing.T) {
	svc := &mockService{}
	svc.On("StoredReport", "octocat").Return(schema.ReportEnvelope{Status: schema.StatusSuccess, DataSource: schema.SourceCache}, nil)
	svc.On("StoredReport", "ghost").Return(schema.ReportEnvelope{}, contract.ErrReportNotFound)
	h := New(svc, nil, "dev").Handler()

	rec, body := do(t, h, http.MethodGet, "/api/v1/reports/octocat", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, schema.SourceCache, body["data_source"])

	rec, _ = do(t, h, http.MethodGet, "/api/v1/reports/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	New(&mockService{}, nil, "dev").Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGenerateWithReportService(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &contract.MockFetcher{}
	fetcher.On("FetchBundle", mock.Anything, "octocat").Return(schema.UserBundle{
		User: schema.UserProfile{Login: "octocat", CreatedAt: now.AddDate(-5, 0, 0)},
		Repositories: []schema.Repository{
			{Name: "api", Language: "Go", Languages: []schema.LanguageShare{{Name: "Go", Bytes: 10, Percentage: 100}}, PushedAt: now},
		},
		FetchedAt: now,
	}, nil)

	clock := func() time.Time { return now }
	svc := reporting.NewService(fetcher, nil, core.NewAnalyzer(nil, core.WithClock(clock)), time.Hour, nil, reporting.WithClock(clock))

	rec, body := do(t, New(svc, nil, "dev").Handler(), http.MethodPost, "/api/v1/reports/generate", `{"username":"https://github.com/OctoCat"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, schema.StatusSuccess, body["status"])
	assert.Equal(t, schema.SourceGitHub, body["data_source"])
	assert.Len(t, body["request_id"], 8)
	fetcher.AssertExpectations(t)
}
