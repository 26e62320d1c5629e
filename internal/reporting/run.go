package reporting

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/internal/contract"
	"github.com/huangsam/hiresignal/schema"
)

// trackedRun records one report request in the history store. A run whose
// tracking could not begin ignores every later call.
type trackedRun struct {
	store contract.HistoryStore
	id    int64
	s     *Service
	log   *zap.Logger
}

func (s *Service) beginRun(requestID, username string, log *zap.Logger) *trackedRun {
	run := &trackedRun{s: s, log: log}
	history := s.historyStore()
	if history == nil {
		return run
	}
	id, err := history.BeginRun(requestID, username, s.now(), s.configParams)
	if err != nil {
		log.Warn("Report tracking initialization failed", zap.Error(err))
		return run
	}
	if id > 0 {
		run.store = history
		run.id = id
	}
	return run
}

func (r *trackedRun) active() bool {
	return r.store != nil && r.id > 0
}

func (r *trackedRun) record(username string, env *schema.ReportEnvelope, totalRepos int) {
	if !r.active() {
		return
	}
	body, err := json.Marshal(env)
	if err != nil {
		r.log.Warn("Failed to encode report for history", zap.Error(err))
		return
	}
	report := env.Report
	record := schema.ReportRecord{
		RunID:         r.id,
		Username:      username,
		ReportTime:    r.s.now(),
		PrimaryDomain: report.DomainClassification.PrimaryDomain,
		PrimaryRole:   report.HiringRecommendation.PrimaryRole,
		Seniority:     report.HiringRecommendation.SeniorityFit,
		OverallScore:  report.TechnicalAssessment.OverallScore,
		TotalRepos:    int32(totalRepos),
		DataSource:    env.DataSource,
		Provider:      env.Provider,
		ReportJSON:    string(body),
	}
	if err := r.store.RecordReport(r.id, record); err != nil {
		r.log.Warn("Failed to record report", zap.Int64("run_id", r.id), zap.Error(err))
	}
}

func (r *trackedRun) end(status string) {
	if !r.active() {
		return
	}
	if err := r.store.EndRun(r.id, r.s.now(), status); err != nil {
		r.log.Warn("Failed to finalize report tracking", zap.Int64("run_id", r.id), zap.Error(err))
	}
}
