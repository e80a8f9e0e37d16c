package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"payday/internal/domain/attendance"
	"payday/internal/domain/period"
	"payday/internal/domain/salary"
)

func monthWithWorkingDays(workingDays int) period.Month {
	return period.Month{
		Year:        2025,
		Month:       time.April,
		First:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Last:        time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		WorkingDays: workingDays,
	}
}

func monthlyConfig() salary.Config {
	return salary.Config{
		EmployeeID: "e1",
		Basic:      decimal.NewFromInt(20000),
		HRA:        decimal.NewFromInt(8000),
		Allowances: map[string]decimal.Decimal{"other": decimal.NewFromInt(6000)},
		Deductions: map[string]decimal.Decimal{},
		PayMode:    salary.PayModeMonthly,
	}
}

func assertAmount(t *testing.T, name, want string, got decimal.Decimal) {
	t.Helper()
	if got.StringFixed(2) != want {
		t.Fatalf("%s: expected %s, got %s", name, want, got.StringFixed(2))
	}
}

func TestCalculateMonthlyScenario(t *testing.T) {
	totals := attendance.Totals{
		WorkedDays:      24,
		WorkedSeconds:   24 * 8 * 3600,
		LeaveDays:       decimal.NewFromInt(2),
		OvertimeSeconds: 7200,
	}

	fig := Calculate(monthlyConfig(), totals, monthWithWorkingDays(26), decimal.Zero, DefaultRates())

	assertAmount(t, "monthlyGross", "34000.00", fig.MonthlyGross)
	assertAmount(t, "perDaySalary", "1307.69", fig.PerDaySalary)
	assertAmount(t, "leaveDeduction", "2615.38", fig.LeaveDeduction)
	assertAmount(t, "effectiveHourlyRate", "163.46", fig.EffectiveHourlyRate)
	assertAmount(t, "overtimePay", "490.38", fig.OvertimePay)
	assertAmount(t, "proratedGross", "31875.00", fig.ProratedGross)
}

func TestCalculateHourlyMode(t *testing.T) {
	cfg := salary.Config{
		EmployeeID: "e1",
		PayMode:    salary.PayModeHourly,
		HourlyRate: decimal.NewFromFloat(72.12),
		Allowances: map[string]decimal.Decimal{},
		Deductions: map[string]decimal.Decimal{},
	}
	totals := attendance.Totals{WorkedSeconds: 288000, LeaveDays: decimal.Zero}

	fig := Calculate(cfg, totals, monthWithWorkingDays(26), decimal.Zero, DefaultRates())

	assertAmount(t, "monthlyGross", "5769.60", fig.MonthlyGross)
	assertAmount(t, "effectiveHourlyRate", "72.12", fig.EffectiveHourlyRate)
}

func TestCalculateZeroActivityNetIsGrossMinusStatutory(t *testing.T) {
	totals := attendance.Totals{LeaveDays: decimal.Zero}
	rates := DefaultRates()

	fig := Calculate(monthlyConfig(), totals, monthWithWorkingDays(26), decimal.Zero, rates)

	if !fig.LeaveDeduction.IsZero() || !fig.OvertimePay.IsZero() {
		t.Fatalf("expected no leave/overtime adjustment, got %s / %s", fig.LeaveDeduction, fig.OvertimePay)
	}
	statutory := fig.PF.Add(fig.ESIEmployee).Add(fig.ProfessionalTax).Add(fig.TDS)
	want := fig.MonthlyGross.Sub(statutory).Round(2)
	if !fig.NetPay.Equal(want) {
		t.Fatalf("expected net %s, got %s", want, fig.NetPay)
	}
}

func TestCalculateLeaveDeductionMonotone(t *testing.T) {
	previous := decimal.NewFromInt(-1)
	for days := 0; days <= 10; days++ {
		totals := attendance.Totals{LeaveDays: decimal.NewFromInt(int64(days))}
		fig := Calculate(monthlyConfig(), totals, monthWithWorkingDays(26), decimal.Zero, DefaultRates())
		if fig.LeaveDeduction.LessThan(previous) {
			t.Fatalf("leave deduction decreased at %d days: %s < %s", days, fig.LeaveDeduction, previous)
		}
		previous = fig.LeaveDeduction
	}
}

func TestCalculateDoesNotClampWorkedDays(t *testing.T) {
	// Working a rest day legitimately pushes workedDays past workingDays.
	totals := attendance.Totals{WorkedDays: 30, LeaveDays: decimal.Zero}
	fig := Calculate(monthlyConfig(), totals, monthWithWorkingDays(26), decimal.Zero, DefaultRates())
	if fig.WorkedDays != 30 {
		t.Fatalf("expected workedDays 30 to pass through unclamped, got %d", fig.WorkedDays)
	}
}

func TestCalculateZeroWorkingDaysGuards(t *testing.T) {
	totals := attendance.Totals{LeaveDays: decimal.NewFromInt(2), OvertimeSeconds: 3600}
	fig := Calculate(monthlyConfig(), totals, monthWithWorkingDays(0), decimal.Zero, DefaultRates())
	if !fig.PerDaySalary.IsZero() || !fig.EffectiveHourlyRate.IsZero() {
		t.Fatalf("expected zero per-day and hourly rates, got %s / %s", fig.PerDaySalary, fig.EffectiveHourlyRate)
	}
	if !fig.LeaveDeduction.IsZero() || !fig.OvertimePay.IsZero() {
		t.Fatalf("expected zero leave deduction and overtime pay, got %s / %s", fig.LeaveDeduction, fig.OvertimePay)
	}
}

func TestCalculateSecondaryLeavePolicy(t *testing.T) {
	totals := attendance.Totals{LeaveDays: decimal.NewFromInt(2)}
	secondary := decimal.NewFromInt(3)

	single := DefaultRates()
	fig := Calculate(monthlyConfig(), totals, monthWithWorkingDays(26), secondary, single)
	if !fig.SecondaryLeaveDeduction.IsZero() {
		t.Fatalf("single policy must not apply the secondary pass, got %s", fig.SecondaryLeaveDeduction)
	}

	double := DefaultRates()
	double.LeaveDeductionPolicy = LeavePolicyDouble
	fig = Calculate(monthlyConfig(), totals, monthWithWorkingDays(26), secondary, double)
	assertAmount(t, "secondaryLeaveDeduction", "1500.00", fig.SecondaryLeaveDeduction)

	// The two passes stack: net under double is lower by exactly the
	// secondary amount.
	figSingle := Calculate(monthlyConfig(), totals, monthWithWorkingDays(26), secondary, single)
	diff := figSingle.NetPay.Sub(fig.NetPay)
	assertAmount(t, "net difference", "1500.00", diff)
}

func TestCalculateOtherDeductions(t *testing.T) {
	cfg := monthlyConfig()
	cfg.Deductions = map[string]decimal.Decimal{
		"loan":    decimal.NewFromInt(1000),
		"canteen": decimal.NewFromFloat(250.50),
	}
	totals := attendance.Totals{LeaveDays: decimal.Zero}
	fig := Calculate(cfg, totals, monthWithWorkingDays(26), decimal.Zero, DefaultRates())
	assertAmount(t, "otherDeductions", "1250.50", fig.OtherDeductions)
}
