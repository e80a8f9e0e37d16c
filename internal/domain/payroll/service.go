package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"payday/internal/domain/attendance"
	"payday/internal/domain/employee"
	"payday/internal/domain/period"
	"payday/internal/domain/salary"
	"payday/internal/platform/artifact"
)

type ConfigResolver interface {
	Resolve(ctx context.Context, employeeID string) (salary.Resolved, error)
}

type Aggregator interface {
	Aggregate(ctx context.Context, employeeID string, from, to time.Time) (attendance.Totals, error)
	CountApprovedLeaveDays(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error)
}

type Deps struct {
	Directory     employee.Directory
	Salaries      ConfigResolver
	Aggregator    Aggregator
	Store         Store
	Artifacts     artifact.Store
	Logger        *slog.Logger
	Rates         Rates
	RestDay       time.Weekday
	ExcludedRoles []string
	Now           func() time.Time
}

// Service is the payroll engine: it resolves configuration, aggregates the
// source windows, computes the figure, and persists record plus artifact.
type Service struct {
	deps Deps
}

func NewService(deps Deps) *Service {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Service{deps: deps}
}

type computed struct {
	figure   Figure
	config   salary.Config
	employee employee.Employee
}

// compute recomputes everything from the sources. There is deliberately no
// incremental path: every call re-reads and re-derives the full figure.
func (s *Service) compute(ctx context.Context, employeeID string, year, month int) (computed, error) {
	emp, err := s.deps.Directory.Get(ctx, employeeID)
	if err != nil {
		return computed{}, err
	}

	window, err := period.Resolve(year, month, s.deps.RestDay)
	if err != nil {
		return computed{}, err
	}

	resolved, err := s.deps.Salaries.Resolve(ctx, employeeID)
	if err != nil {
		return computed{}, err
	}
	if resolved.Derived() {
		s.deps.Logger.Info("using derived salary config",
			"employeeId", employeeID, "role", emp.Role)
	}

	totals, err := s.deps.Aggregator.Aggregate(ctx, employeeID, window.First, window.Last)
	if err != nil {
		return computed{}, err
	}

	secondaryLeaveDays := decimal.Zero
	if s.deps.Rates.LeaveDeductionPolicy == LeavePolicyDouble {
		// The secondary pass is always scoped to the current calendar month,
		// not the requested period. Legacy behavior, reproduced as-is.
		now := s.deps.Now().UTC()
		current, err := period.Resolve(now.Year(), int(now.Month()), s.deps.RestDay)
		if err != nil {
			return computed{}, err
		}
		secondaryLeaveDays, err = s.deps.Aggregator.CountApprovedLeaveDays(ctx, employeeID, current.First, current.Last)
		if err != nil {
			return computed{}, err
		}
	}

	figure := Calculate(resolved.Config, totals, window, secondaryLeaveDays, s.deps.Rates)
	return computed{figure: figure, config: resolved.Config, employee: emp}, nil
}

// ComputePayroll computes the figure for one employee and period without
// persisting anything.
func (s *Service) ComputePayroll(ctx context.Context, employeeID string, year, month int) (Figure, error) {
	result, err := s.compute(ctx, employeeID, year, month)
	if err != nil {
		return Figure{}, err
	}
	return result.figure, nil
}

// GeneratePayslip recomputes, upserts the payroll record, and optionally
// renders and persists the payslip artifact. The artifact pointer is only
// written once the artifact itself is safely stored.
func (s *Service) GeneratePayslip(ctx context.Context, employeeID string, year, month int, persistArtifact bool) (Generated, error) {
	result, err := s.compute(ctx, employeeID, year, month)
	if err != nil {
		return Generated{}, err
	}

	record := Record{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Figure:     result.figure,
		ComputedAt: s.deps.Now().UTC(),
	}
	if err := s.deps.Store.UpsertRecord(ctx, record); err != nil {
		return Generated{}, fmt.Errorf("upsert payroll record: %w", err)
	}

	if !persistArtifact {
		return Generated{Figure: result.figure}, nil
	}

	data, err := RenderPayslip(record, result.employee.Name, result.config, s.deps.Rates)
	if err != nil {
		return Generated{}, fmt.Errorf("render payslip: %w", err)
	}
	path := ArtifactPath(employeeID, year, month)
	if err := s.deps.Artifacts.Write(path, data); err != nil {
		return Generated{}, fmt.Errorf("%w: %v", ErrArtifactPersist, err)
	}
	if err := s.deps.Store.SetArtifact(ctx, employeeID, year, month, path); err != nil {
		return Generated{}, fmt.Errorf("record artifact path: %w", err)
	}

	s.deps.Logger.Info("payslip generated",
		"employeeId", employeeID, "year", year, "month", month, "path", path)
	return Generated{Path: path, Figure: result.figure}, nil
}

// RunForAll processes every eligible employee sequentially, recording
// per-employee failures without aborting the batch.
func (s *Service) RunForAll(ctx context.Context, year, month int, persistArtifact bool) RunSummary {
	summary := RunSummary{Year: year, Month: month, Status: RunStatusRunning}

	employees, err := s.deps.Directory.ListEligible(ctx, s.deps.ExcludedRoles)
	if err != nil {
		s.deps.Logger.Error("payroll run could not list employees", "err", err)
		summary.Failed = 1
		summary.Errors = append(summary.Errors, RunError{Message: err.Error()})
		summary.Status = RunStatusCompletedWithErrors
		return summary
	}

	for _, emp := range employees {
		if _, err := s.GeneratePayslip(ctx, emp.ID, year, month, persistArtifact); err != nil {
			s.deps.Logger.Warn("payroll run item failed",
				"employeeId", emp.ID, "year", year, "month", month, "err", err)
			summary.Failed++
			summary.Errors = append(summary.Errors, RunError{EmployeeID: emp.ID, Message: err.Error()})
			continue
		}
		summary.Generated++
	}

	summary.Status = RunStatusCompleted
	if summary.Failed > 0 {
		summary.Status = RunStatusCompletedWithErrors
	}
	s.deps.Logger.Info("payroll run finished",
		"year", year, "month", month,
		"generated", summary.Generated, "failed", summary.Failed, "status", summary.Status)
	return summary
}

// Record returns the stored authoritative record for a period.
func (s *Service) Record(ctx context.Context, employeeID string, year, month int) (Record, error) {
	return s.deps.Store.GetRecord(ctx, employeeID, year, month)
}

// PayslipBytes reads a stored payslip artifact back.
func (s *Service) PayslipBytes(ctx context.Context, employeeID string, year, month int) ([]byte, error) {
	record, err := s.deps.Store.GetRecord(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}
	if record.ArtifactPath == "" {
		return nil, artifact.ErrNotFound
	}
	return s.deps.Artifacts.Read(record.ArtifactPath)
}
