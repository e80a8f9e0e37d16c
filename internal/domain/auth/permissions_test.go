package auth

import (
	"testing"

	"payday/internal/domain/employee"
)

func TestCanViewEmployee(t *testing.T) {
	admin := UserContext{EmployeeID: "a1", Role: employee.RoleAdmin}
	hr := UserContext{EmployeeID: "h1", Role: employee.RoleHR}
	self := UserContext{EmployeeID: "e1", Role: employee.RoleEmployee}

	adminTarget := employee.Employee{ID: "a1", Role: employee.RoleAdmin}
	plainTarget := employee.Employee{ID: "e1", Role: employee.RoleEmployee}
	otherTarget := employee.Employee{ID: "e2", Role: employee.RoleEmployee}

	if !CanViewEmployee(admin, adminTarget) || !CanViewEmployee(admin, plainTarget) {
		t.Fatal("admin must see anyone")
	}
	if !CanViewEmployee(hr, plainTarget) {
		t.Fatal("hr must see non-admin employees")
	}
	if CanViewEmployee(hr, adminTarget) {
		t.Fatal("hr must not see admin records")
	}
	if !CanViewEmployee(self, plainTarget) {
		t.Fatal("employee must see own record")
	}
	if CanViewEmployee(self, otherTarget) {
		t.Fatal("employee must not see other employees")
	}
}

func TestCanRunPayroll(t *testing.T) {
	if !CanRunPayroll(UserContext{Role: employee.RoleAdmin}) {
		t.Fatal("admin can run payroll")
	}
	if !CanRunPayroll(UserContext{Role: employee.RoleHR}) {
		t.Fatal("hr can run payroll")
	}
	if CanRunPayroll(UserContext{Role: employee.RoleEmployee}) {
		t.Fatal("employee cannot run payroll")
	}
}
