package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Figure is one fully computed payroll result. Every amount is rounded to
// two decimals; recomputing from the same inputs reproduces it exactly.
type Figure struct {
	MonthlyGross        decimal.Decimal `json:"monthlyGross"`
	PerDaySalary        decimal.Decimal `json:"perDaySalary"`
	LeaveDeduction      decimal.Decimal `json:"leaveDeduction"`
	EffectiveHourlyRate decimal.Decimal `json:"effectiveHourlyRate"`
	OvertimePay         decimal.Decimal `json:"overtimePay"`
	ProratedGross       decimal.Decimal `json:"proratedGross"`

	PF              decimal.Decimal `json:"pf"`
	ESIEmployee     decimal.Decimal `json:"esiEmployee"`
	ESIEmployer     decimal.Decimal `json:"esiEmployer"`
	ProfessionalTax decimal.Decimal `json:"professionalTax"`
	TDS             decimal.Decimal `json:"tds"`
	OtherDeductions decimal.Decimal `json:"otherDeductions"`

	SecondaryLeaveDeduction decimal.Decimal `json:"secondaryLeaveDeduction"`
	NetPay                  decimal.Decimal `json:"netPay"`

	WorkedDays    int             `json:"workedDays"`
	WorkingDays   int             `json:"workingDays"`
	LeaveDays     decimal.Decimal `json:"leaveDays"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
}

// Record is the persisted payroll row: one per (employee, year, month).
type Record struct {
	EmployeeID   string    `json:"employeeId"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Figure       Figure    `json:"figure"`
	ArtifactPath string    `json:"artifactPath,omitempty"`
	ComputedAt   time.Time `json:"computedAt"`
}

type RunError struct {
	EmployeeID string `json:"employeeId"`
	Message    string `json:"error"`
}

type RunSummary struct {
	Year      int        `json:"year"`
	Month     int        `json:"month"`
	Generated int        `json:"generatedCount"`
	Failed    int        `json:"failedCount"`
	Errors    []RunError `json:"errors,omitempty"`
	Status    string     `json:"status"`
}

// Generated is what GeneratePayslip hands back to the caller.
type Generated struct {
	Path   string `json:"path,omitempty"`
	Figure Figure `json:"figure"`
}
