package salary

import "github.com/shopspring/decimal"

// Role-based monthly gross used when no explicit config is stored. The split
// mirrors the legacy payroll behavior: half basic, a fifth HRA, the rest as a
// generic "other" allowance.
var roleDefaultGross = map[string]int64{
	"admin":    80000,
	"hr":       60000,
	"manager":  70000,
	"employee": 40000,
}

const defaultMonthlyGross = 30000

const OtherAllowanceKey = "other"

func defaultConfigForRole(employeeID, role string) Config {
	gross := decimal.NewFromInt(defaultMonthlyGross)
	if amount, ok := roleDefaultGross[role]; ok {
		gross = decimal.NewFromInt(amount)
	}

	basic := gross.Mul(decimal.NewFromFloat(0.5)).Round(2)
	hra := gross.Mul(decimal.NewFromFloat(0.2)).Round(2)
	other := gross.Sub(basic).Sub(hra)

	return Config{
		EmployeeID: employeeID,
		Basic:      basic,
		HRA:        hra,
		Allowances: map[string]decimal.Decimal{OtherAllowanceKey: other},
		Deductions: map[string]decimal.Decimal{},
		PayMode:    PayModeMonthly,
	}
}
