package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"payday/internal/domain/money"
)

type PgStore struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{DB: db}
}

// Amounts are stored as fixed two-decimal text so a recompute with identical
// inputs writes identical bytes.
func (s *PgStore) UpsertRecord(ctx context.Context, record Record) error {
	fig := record.Figure
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payroll_records (
      employee_id, year, month,
      monthly_gross, per_day_salary, leave_deduction, effective_hourly_rate,
      overtime_pay, prorated_gross, pf, esi_employee, esi_employer,
      professional_tax, tds, other_deductions, secondary_leave_deduction,
      net_pay, worked_days, working_days, leave_days, overtime_hours, computed_at
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
    ON CONFLICT (employee_id, year, month)
    DO UPDATE SET
      monthly_gross = EXCLUDED.monthly_gross,
      per_day_salary = EXCLUDED.per_day_salary,
      leave_deduction = EXCLUDED.leave_deduction,
      effective_hourly_rate = EXCLUDED.effective_hourly_rate,
      overtime_pay = EXCLUDED.overtime_pay,
      prorated_gross = EXCLUDED.prorated_gross,
      pf = EXCLUDED.pf,
      esi_employee = EXCLUDED.esi_employee,
      esi_employer = EXCLUDED.esi_employer,
      professional_tax = EXCLUDED.professional_tax,
      tds = EXCLUDED.tds,
      other_deductions = EXCLUDED.other_deductions,
      secondary_leave_deduction = EXCLUDED.secondary_leave_deduction,
      net_pay = EXCLUDED.net_pay,
      worked_days = EXCLUDED.worked_days,
      working_days = EXCLUDED.working_days,
      leave_days = EXCLUDED.leave_days,
      overtime_hours = EXCLUDED.overtime_hours,
      computed_at = EXCLUDED.computed_at
  `, record.EmployeeID, record.Year, record.Month,
		fig.MonthlyGross.StringFixed(2), fig.PerDaySalary.StringFixed(2),
		fig.LeaveDeduction.StringFixed(2), fig.EffectiveHourlyRate.StringFixed(2),
		fig.OvertimePay.StringFixed(2), fig.ProratedGross.StringFixed(2),
		fig.PF.StringFixed(2), fig.ESIEmployee.StringFixed(2), fig.ESIEmployer.StringFixed(2),
		fig.ProfessionalTax.StringFixed(2), fig.TDS.StringFixed(2),
		fig.OtherDeductions.StringFixed(2), fig.SecondaryLeaveDeduction.StringFixed(2),
		fig.NetPay.StringFixed(2), fig.WorkedDays, fig.WorkingDays,
		fig.LeaveDays.String(), fig.OvertimeHours.StringFixed(2), record.ComputedAt)
	return err
}

// SetArtifact records the artifact location, and the matching artifact row,
// only after the file itself is known to exist.
func (s *PgStore) SetArtifact(ctx context.Context, employeeID string, year, month int, path string) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
    UPDATE payroll_records SET artifact_path = $1
    WHERE employee_id = $2 AND year = $3 AND month = $4
  `, path, employeeID, year, month)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO payslip_artifacts (employee_id, year, month, storage_path, file_name)
    VALUES ($1,$2,$3,$4,$5)
    ON CONFLICT (employee_id, year, month)
    DO UPDATE SET storage_path = EXCLUDED.storage_path, file_name = EXCLUDED.file_name
  `, employeeID, year, month, path, fileName(path)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *PgStore) GetRecord(ctx context.Context, employeeID string, year, month int) (Record, error) {
	record := Record{EmployeeID: employeeID, Year: year, Month: month}

	amounts := map[string]*struct {
		raw string
		dst *decimal.Decimal
	}{}
	bind := func(name string, dst *decimal.Decimal) *string {
		entry := &struct {
			raw string
			dst *decimal.Decimal
		}{dst: dst}
		amounts[name] = entry
		return &entry.raw
	}

	var (
		artifactPath *string
		computedAt   time.Time
	)
	fig := &record.Figure
	err := s.DB.QueryRow(ctx, `
    SELECT monthly_gross, per_day_salary, leave_deduction, effective_hourly_rate,
           overtime_pay, prorated_gross, pf, esi_employee, esi_employer,
           professional_tax, tds, other_deductions, secondary_leave_deduction,
           net_pay, worked_days, working_days, leave_days, overtime_hours,
           artifact_path, computed_at
    FROM payroll_records
    WHERE employee_id = $1 AND year = $2 AND month = $3
  `, employeeID, year, month).Scan(
		bind("monthlyGross", &fig.MonthlyGross),
		bind("perDaySalary", &fig.PerDaySalary),
		bind("leaveDeduction", &fig.LeaveDeduction),
		bind("effectiveHourlyRate", &fig.EffectiveHourlyRate),
		bind("overtimePay", &fig.OvertimePay),
		bind("proratedGross", &fig.ProratedGross),
		bind("pf", &fig.PF),
		bind("esiEmployee", &fig.ESIEmployee),
		bind("esiEmployer", &fig.ESIEmployer),
		bind("professionalTax", &fig.ProfessionalTax),
		bind("tds", &fig.TDS),
		bind("otherDeductions", &fig.OtherDeductions),
		bind("secondaryLeaveDeduction", &fig.SecondaryLeaveDeduction),
		bind("netPay", &fig.NetPay),
		&fig.WorkedDays, &fig.WorkingDays,
		bind("leaveDays", &fig.LeaveDays),
		bind("overtimeHours", &fig.OvertimeHours),
		&artifactPath, &computedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}
	if err != nil {
		return Record{}, err
	}

	for name, entry := range amounts {
		parsed, err := money.Parse(name, entry.raw)
		if err != nil {
			return Record{}, err
		}
		*entry.dst = parsed
	}

	if artifactPath != nil {
		record.ArtifactPath = *artifactPath
	}
	record.ComputedAt = computedAt
	return record, nil
}

func fileName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
