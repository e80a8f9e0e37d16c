package payroll

import (
	"github.com/shopspring/decimal"

	"payday/internal/domain/attendance"
	"payday/internal/domain/money"
	"payday/internal/domain/period"
	"payday/internal/domain/salary"
)

var secondsPerHour = decimal.NewFromInt(3600)

// Calculate turns a salary configuration and window aggregates into a payroll
// figure. It is pure: the same inputs always produce the same figure. Each
// named quantity is rounded to two decimals as it is produced, which is what
// keeps recomputation byte-identical.
//
// secondaryLeaveDays is the approved-leave count of the current calendar
// month, used only under LeavePolicyDouble; pass zero otherwise.
func Calculate(cfg salary.Config, totals attendance.Totals, month period.Month, secondaryLeaveDays decimal.Decimal, rates Rates) Figure {
	workingDays := decimal.NewFromInt(int64(month.WorkingDays))

	allowancesSum := money.Round2(money.Sum(cfg.Allowances))

	attendanceHours := decimal.NewFromInt(totals.WorkedSeconds).Div(secondsPerHour)
	var monthlyGross decimal.Decimal
	if cfg.PayMode == salary.PayModeHourly {
		monthlyGross = money.Round2(attendanceHours.Mul(cfg.HourlyRate))
	} else {
		monthlyGross = money.Round2(cfg.Basic.Add(cfg.HRA).Add(allowancesSum))
	}

	perDaySalary := decimal.Zero
	if month.WorkingDays > 0 {
		perDaySalary = money.Round2(monthlyGross.Div(workingDays))
	}

	leaveDeduction := money.Round2(perDaySalary.Mul(totals.LeaveDays))

	effectiveHourlyRate := decimal.Zero
	if cfg.PayMode == salary.PayModeHourly {
		effectiveHourlyRate = money.Round2(cfg.HourlyRate)
	} else if denom := workingDays.Mul(rates.StandardDailyHours); !denom.IsZero() {
		effectiveHourlyRate = money.Round2(monthlyGross.Div(denom))
	}

	overtimeHours := money.Round2(decimal.NewFromInt(totals.OvertimeSeconds).Div(secondsPerHour))
	overtimePay := money.Round2(effectiveHourlyRate.Mul(decimal.NewFromInt(totals.OvertimeSeconds).Div(secondsPerHour)).Mul(rates.OvertimeMultiplier))

	proratedGross := money.Round2(monthlyGross.Sub(leaveDeduction).Add(overtimePay))

	pf := money.Round2(cfg.Basic.Mul(rates.PF))
	esiEmployee := money.Round2(proratedGross.Mul(rates.ESIEmployee))
	// Employer share is informational only; it never reduces net pay.
	esiEmployer := money.Round2(proratedGross.Mul(rates.ESIEmployer))
	professionalTax := money.Round2(rates.ProfessionalTax)
	tds := money.Round2(proratedGross.Mul(rates.TDS))

	otherDeductions := money.Round2(money.Sum(cfg.Deductions))

	secondaryLeaveDeduction := decimal.Zero
	if rates.LeaveDeductionPolicy == LeavePolicyDouble {
		secondaryLeaveDeduction = money.Round2(secondaryLeaveDays.Mul(rates.SecondaryLeaveDailyRate))
	}

	netPay := money.Round2(proratedGross.
		Sub(pf).
		Sub(esiEmployee).
		Sub(professionalTax).
		Sub(tds).
		Sub(otherDeductions).
		Sub(secondaryLeaveDeduction))

	return Figure{
		MonthlyGross:            monthlyGross,
		PerDaySalary:            perDaySalary,
		LeaveDeduction:          leaveDeduction,
		EffectiveHourlyRate:     effectiveHourlyRate,
		OvertimePay:             overtimePay,
		ProratedGross:           proratedGross,
		PF:                      pf,
		ESIEmployee:             esiEmployee,
		ESIEmployer:             esiEmployer,
		ProfessionalTax:         professionalTax,
		TDS:                     tds,
		OtherDeductions:         otherDeductions,
		SecondaryLeaveDeduction: secondaryLeaveDeduction,
		NetPay:                  netPay,
		WorkedDays:              totals.WorkedDays,
		WorkingDays:             month.WorkingDays,
		LeaveDays:               totals.LeaveDays,
		OvertimeHours:           overtimeHours,
	}
}
