package employee

import "errors"

var ErrNotFound = errors.New("employee not found")

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

type Employee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
