package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"payday/internal/domain/payroll"
)

const JobPayrollRun = "payroll_run"

// Runner is the payroll surface the scheduler drives.
type Runner interface {
	RunForAll(ctx context.Context, year, month int, persistArtifacts bool) payroll.RunSummary
}

// RunLog records job executions and answers whether one already happened on
// a given calendar day, so a restarted process does not re-run the batch.
type RunLog interface {
	StartedOn(ctx context.Context, jobType string, day time.Time) (bool, error)
	Record(ctx context.Context, jobType, status string, details any) error
}

type Service struct {
	runner   Runner
	runLog   RunLog
	logger   *slog.Logger
	runDay   int
	interval time.Duration
	now      func() time.Time
}

func New(runner Runner, runLog RunLog, logger *slog.Logger, runDay int, interval time.Duration) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		runner:   runner,
		runLog:   runLog,
		logger:   logger,
		runDay:   runDay,
		interval: interval,
		now:      time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *Service) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick fires the monthly batch for the previous month when today is the
// configured run day and no run was recorded yet today.
func (s *Service) tick(ctx context.Context) {
	now := s.now()
	if now.Day() != s.runDay {
		return
	}

	started, err := s.runLog.StartedOn(ctx, JobPayrollRun, now)
	if err != nil {
		s.logger.Warn("payroll run log lookup failed", "err", err)
		return
	}
	if started {
		return
	}

	prev := now.AddDate(0, -1, 0)
	year, month := prev.Year(), int(prev.Month())

	summary := s.runner.RunForAll(ctx, year, month, true)
	if err := s.runLog.Record(ctx, JobPayrollRun, summary.Status, summary); err != nil {
		s.logger.Warn("payroll run record failed", "err", err)
	}
	s.logger.Info("scheduled payroll run finished",
		"year", year, "month", month,
		"generated", summary.Generated, "failed", summary.Failed, "status", summary.Status)
}

// PgRunLog persists job executions in the job_runs table.
type PgRunLog struct {
	DB *pgxpool.Pool
}

func NewPgRunLog(db *pgxpool.Pool) *PgRunLog {
	return &PgRunLog{DB: db}
}

func (l *PgRunLog) StartedOn(ctx context.Context, jobType string, day time.Time) (bool, error) {
	var count int
	err := l.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM job_runs
    WHERE job_type = $1 AND started_at::date = $2::date
  `, jobType, day).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (l *PgRunLog) Record(ctx context.Context, jobType, status string, details any) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}
	_, err = l.DB.Exec(ctx, `
    INSERT INTO job_runs (job_type, status, details_json, completed_at)
    VALUES ($1, $2, $3, now())
  `, jobType, status, detailsJSON)
	return err
}
