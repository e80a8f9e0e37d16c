package payroll

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"payday/internal/domain/salary"
)

// ArtifactPath is the period-addressed location of an employee's payslip.
func ArtifactPath(employeeID string, year, month int) string {
	return fmt.Sprintf("payslips/%04d-%02d/%s.pdf", year, month, employeeID)
}

// RenderPayslip lays the computed figure out as an A4 PDF. Line order is
// deterministic so regenerating an identical record produces an equivalent
// document.
func RenderPayslip(record Record, employeeName string, cfg salary.Config, rates Rates) ([]byte, error) {
	fig := record.Figure
	periodLabel := fmt.Sprintf("%s %d", time.Month(record.Month), record.Year)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", periodLabel))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", employeeName, record.EmployeeID))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(label string, amount decimal.Decimal) {
		pdf.Cell(120, 6, label)
		pdf.CellFormat(40, 6, amount.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	section("Leave")
	pdf.Cell(0, 6, fmt.Sprintf("Approved leave days: %s", fig.LeaveDays.String()))
	pdf.Ln(6)
	line("Per-day deduction rate", fig.PerDaySalary)
	line("Leave deduction", fig.LeaveDeduction)
	pdf.Ln(4)

	section("Earnings")
	line("Basic", cfg.Basic)
	line("HRA", cfg.HRA)
	for _, key := range sortedKeys(cfg.Allowances) {
		line("Allowance: "+key, cfg.Allowances[key])
	}
	line(fmt.Sprintf("Overtime pay (%s h)", fig.OvertimeHours.StringFixed(2)), fig.OvertimePay)
	pdf.Ln(4)

	section("Deductions")
	line("Provident fund", fig.PF)
	line("ESI (employee)", fig.ESIEmployee)
	line("Professional tax", fig.ProfessionalTax)
	line("TDS", fig.TDS)
	line("Leave deduction", fig.LeaveDeduction)
	if !fig.SecondaryLeaveDeduction.IsZero() {
		line("Leave deduction (current month)", fig.SecondaryLeaveDeduction)
	}
	for _, key := range sortedKeys(cfg.Deductions) {
		line("Other: "+key, cfg.Deductions[key])
	}
	pdf.Ln(4)

	section("Totals")
	statutory := fig.PF.Add(fig.ESIEmployee).Add(fig.ProfessionalTax).Add(fig.TDS)
	leaveTotal := fig.LeaveDeduction.Add(fig.SecondaryLeaveDeduction)
	line("Statutory deductions", statutory)
	line("Leave deductions", leaveTotal)
	line("Total deductions", statutory.Add(leaveTotal).Add(fig.OtherDeductions))
	line("Gross", fig.ProratedGross)
	pdf.SetFont("Helvetica", "B", 11)
	line("Net pay", fig.NetPay)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
