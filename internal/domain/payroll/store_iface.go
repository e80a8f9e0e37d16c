package payroll

import "context"

// Store persists the authoritative payroll record per (employee, year,
// month). Writes are full overwrites; nothing is ever patched incrementally.
type Store interface {
	UpsertRecord(ctx context.Context, record Record) error
	SetArtifact(ctx context.Context, employeeID string, year, month int, path string) error
	GetRecord(ctx context.Context, employeeID string, year, month int) (Record, error)
}
