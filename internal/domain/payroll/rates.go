package payroll

import "github.com/shopspring/decimal"

// Rates are the statutory and policy constants the calculator runs with.
// They come from configuration; the algorithm never hard-codes them.
type Rates struct {
	PF              decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal

	StandardDailyHours decimal.Decimal
	OvertimeMultiplier decimal.Decimal

	// Per-day rate for the secondary current-month leave deduction pass.
	SecondaryLeaveDailyRate decimal.Decimal
	LeaveDeductionPolicy    string
}

// DefaultRates mirrors the legacy system's constants.
func DefaultRates() Rates {
	return Rates{
		PF:                      decimal.NewFromFloat(0.12),
		ESIEmployee:             decimal.NewFromFloat(0.0075),
		ESIEmployer:             decimal.NewFromFloat(0.0325),
		ProfessionalTax:         decimal.NewFromInt(200),
		TDS:                     decimal.NewFromFloat(0.05),
		StandardDailyHours:      decimal.NewFromInt(8),
		OvertimeMultiplier:      decimal.NewFromFloat(1.5),
		SecondaryLeaveDailyRate: decimal.NewFromInt(500),
		LeaveDeductionPolicy:    LeavePolicySingle,
	}
}
