package salary

import "github.com/shopspring/decimal"

const (
	PayModeMonthly = "monthly"
	PayModeHourly  = "hourly"
)

// Config is an employee's active salary configuration. Amounts are strict
// decimals; coercion from storage happens in the store, not here.
type Config struct {
	EmployeeID string
	Basic      decimal.Decimal
	HRA        decimal.Decimal
	Allowances map[string]decimal.Decimal
	Deductions map[string]decimal.Decimal
	PayMode    string
	HourlyRate decimal.Decimal
}

const (
	SourceExplicit = "explicit"
	SourceDerived  = "derived"
)

// Resolved tags a config with its provenance so callers can tell an HR-set
// value from a role-based fallback.
type Resolved struct {
	Config Config
	Source string
}

func (r Resolved) Derived() bool {
	return r.Source == SourceDerived
}
