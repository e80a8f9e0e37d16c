package payroll

import "errors"

var (
	ErrArtifactPersist = errors.New("payslip artifact persist failed")
	ErrRecordNotFound  = errors.New("payroll record not found")
)
