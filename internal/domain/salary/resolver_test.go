package salary

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"payday/internal/domain/employee"
)

type stubDirectory struct {
	employees map[string]employee.Employee
}

func (s *stubDirectory) Get(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrNotFound
	}
	return emp, nil
}

func (s *stubDirectory) ListEligible(_ context.Context, _ []string) ([]employee.Employee, error) {
	return nil, nil
}

type stubConfigs struct {
	configs map[string]Config
	err     error
}

func (s *stubConfigs) GetConfig(_ context.Context, employeeID string) (Config, error) {
	if s.err != nil {
		return Config{}, s.err
	}
	cfg, ok := s.configs[employeeID]
	if !ok {
		return Config{}, ErrConfigNotFound
	}
	return cfg, nil
}

func TestResolveExplicitConfig(t *testing.T) {
	stored := Config{
		EmployeeID: "e1",
		Basic:      decimal.NewFromInt(25000),
		HRA:        decimal.NewFromInt(10000),
		PayMode:    PayModeMonthly,
	}
	resolver := NewResolver(
		&stubConfigs{configs: map[string]Config{"e1": stored}},
		&stubDirectory{employees: map[string]employee.Employee{"e1": {ID: "e1", Role: "employee"}}},
	)

	resolved, err := resolver.Resolve(context.Background(), "e1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Source != SourceExplicit {
		t.Fatalf("expected explicit source, got %s", resolved.Source)
	}
	if !resolved.Config.Basic.Equal(stored.Basic) {
		t.Fatalf("expected stored basic %s, got %s", stored.Basic, resolved.Config.Basic)
	}
}

func TestResolveDerivedDefault(t *testing.T) {
	resolver := NewResolver(
		&stubConfigs{},
		&stubDirectory{employees: map[string]employee.Employee{"e1": {ID: "e1", Role: "hr"}}},
	)

	resolved, err := resolver.Resolve(context.Background(), "e1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !resolved.Derived() {
		t.Fatal("expected a derived config")
	}

	cfg := resolved.Config
	// hr default gross is 60000: 50% basic, 20% hra, 30% other.
	if cfg.Basic.StringFixed(2) != "30000.00" {
		t.Fatalf("expected basic 30000.00, got %s", cfg.Basic.StringFixed(2))
	}
	if cfg.HRA.StringFixed(2) != "12000.00" {
		t.Fatalf("expected hra 12000.00, got %s", cfg.HRA.StringFixed(2))
	}
	if cfg.Allowances[OtherAllowanceKey].StringFixed(2) != "18000.00" {
		t.Fatalf("expected other 18000.00, got %s", cfg.Allowances[OtherAllowanceKey].StringFixed(2))
	}
	if len(cfg.Deductions) != 0 {
		t.Fatalf("expected empty deductions, got %v", cfg.Deductions)
	}
	if cfg.PayMode != PayModeMonthly {
		t.Fatalf("expected monthly pay mode, got %s", cfg.PayMode)
	}
}

func TestResolveUnknownRoleFallsBackToGlobalDefault(t *testing.T) {
	resolver := NewResolver(
		&stubConfigs{},
		&stubDirectory{employees: map[string]employee.Employee{"e1": {ID: "e1", Role: "contractor"}}},
	)

	resolved, err := resolver.Resolve(context.Background(), "e1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	total := resolved.Config.Basic.Add(resolved.Config.HRA).Add(resolved.Config.Allowances[OtherAllowanceKey])
	if total.StringFixed(2) != "30000.00" {
		t.Fatalf("expected default gross 30000.00, got %s", total.StringFixed(2))
	}
}

func TestResolveMissingEmployee(t *testing.T) {
	resolver := NewResolver(&stubConfigs{}, &stubDirectory{employees: map[string]employee.Employee{}})

	_, err := resolver.Resolve(context.Background(), "ghost")
	if !errors.Is(err, employee.ErrNotFound) {
		t.Fatalf("expected employee.ErrNotFound, got %v", err)
	}
}

func TestResolveStoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	resolver := NewResolver(
		&stubConfigs{err: storeErr},
		&stubDirectory{employees: map[string]employee.Employee{"e1": {ID: "e1", Role: "employee"}}},
	)

	_, err := resolver.Resolve(context.Background(), "e1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
