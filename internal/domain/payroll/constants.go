package payroll

const (
	RunStatusIdle                = "idle"
	RunStatusRunning             = "running"
	RunStatusCompleted           = "completed"
	RunStatusCompletedWithErrors = "completed_with_errors"

	// LeavePolicySingle subtracts leave pay once, through the prorated-gross
	// path. LeavePolicyDouble reproduces the legacy behavior where a second
	// per-day deduction scoped to the current calendar month is subtracted on
	// top of it.
	LeavePolicySingle = "single"
	LeavePolicyDouble = "double"
)
