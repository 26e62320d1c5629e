// Package server exposes the report service over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/internal/reporting"
	"github.com/huangsam/hiresignal/schema"
)

const (
	apiPrefix       = "/api/v1"
	serviceName     = "hiresignal"
	maxBodyBytes    = 1 << 20
	requestTimeout  = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// ReportService is the part of reporting.Service the API needs.
type ReportService interface {
	Generate(ctx context.Context, req reporting.Request) (schema.ReportEnvelope, error)
	Analyze(ctx context.Context, username string, refresh bool) (schema.AnalyzeResult, error)
	StoredReport(username string) (schema.ReportEnvelope, error)
	ClearCache(username string) error
}

// Server serves the hiring report API.
type Server struct {
	svc     ReportService
	log     *zap.Logger
	version string
	now     func() time.Time
}

// New creates a Server over svc.
func New(svc ReportService, log *zap.Logger, version string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log, version: version, now: time.Now}
}

type analyzeRequest struct {
	GitHubInput string `json:"github_input"`
	Username    string `json:"username"`
	Refresh     bool   `json:"refresh"`
}

type reportRequest struct {
	Username   string `json:"username"`
	ReportType string `json:"report_type"`
	UseStored  *bool  `json:"use_stored"`
	Refresh    bool   `json:"refresh"`
}

type clearRequest struct {
	Username string `json:"username"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Handler returns the routed API with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST "+apiPrefix+"/analyze", s.handleAnalyze)
	mux.HandleFunc("POST "+apiPrefix+"/reports/generate", s.handleGenerate)
	mux.HandleFunc("GET "+apiPrefix+"/reports/{username}", s.handleStoredReport)
	mux.HandleFunc("DELETE "+apiPrefix+"/cache/clear", s.handleClearCache)
	return s.logRequests(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("API server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   serviceName,
		"version":   s.version,
		"timestamp": schema.FormatTimestamp(s.now()),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	input := req.GitHubInput
	if input == "" {
		input = req.Username
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := s.svc.Analyze(ctx, input, req.Refresh)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if !s.decode(w, r, &req) {
		return
	}
	useStored := true
	if req.UseStored != nil {
		useStored = *req.UseStored
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	env, err := s.svc.Generate(ctx, reporting.Request{
		Username:   req.Username,
		ReportType: schema.ReportType(req.ReportType),
		UseStored:  useStored,
		Refresh:    req.Refresh,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleStoredReport(w http.ResponseWriter, r *http.Request) {
	env, err := s.svc.StoredReport(r.PathValue("username"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	req := clearRequest{Username: r.URL.Query().Get("username")}
	if r.ContentLength != 0 && req.Username == "" {
		if !s.decode(w, r, &req) {
			return
		}
	}
	if err := s.svc.ClearCache(req.Username); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: schema.StatusSuccess, Message: "Cache cleared successfully"})
}

// decode reads a JSON body into dst, answering 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{
			Status:  schema.StatusError,
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.log.Error("Request failed", zap.Error(err))
	}
	writeJSON(w, code, statusResponse{Status: schema.StatusError, Message: err.Error()})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, contract.ErrInvalidUsername), errors.Is(err, reporting.ErrInvalidReportType):
		return http.StatusBadRequest
	case errors.Is(err, contract.ErrUserNotFound), errors.Is(err, contract.ErrReportNotFound):
		return http.StatusNotFound
	case errors.Is(err, contract.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
