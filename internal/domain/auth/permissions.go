package auth

import "payday/internal/domain/employee"

// CanViewEmployee applies the payroll visibility contract: self sees own
// data, hr sees every non-admin, admin sees anyone.
func CanViewEmployee(actor UserContext, target employee.Employee) bool {
	switch actor.Role {
	case employee.RoleAdmin:
		return true
	case employee.RoleHR:
		return target.Role != employee.RoleAdmin || actor.EmployeeID == target.ID
	default:
		return actor.EmployeeID == target.ID
	}
}

// CanRunPayroll limits batch runs and recomputes to hr and admin.
func CanRunPayroll(actor UserContext) bool {
	return actor.Role == employee.RoleAdmin || actor.Role == employee.RoleHR
}
