package salary

import (
	"context"
	"errors"
	"fmt"

	"payday/internal/domain/employee"
)

// ErrConfigNotFound is returned by stores when no explicit config exists for
// an employee. The resolver converts it into a derived default.
var ErrConfigNotFound = errors.New("salary config not found")

type ConfigStore interface {
	GetConfig(ctx context.Context, employeeID string) (Config, error)
}

// Resolver loads an employee's salary configuration, falling back to a
// role-based default when none is stored. It never persists the fallback;
// that is the caller's call to make.
type Resolver struct {
	configs   ConfigStore
	directory employee.Directory
}

func NewResolver(configs ConfigStore, directory employee.Directory) *Resolver {
	return &Resolver{configs: configs, directory: directory}
}

func (r *Resolver) Resolve(ctx context.Context, employeeID string) (Resolved, error) {
	emp, err := r.directory.Get(ctx, employeeID)
	if err != nil {
		return Resolved{}, err
	}

	cfg, err := r.configs.GetConfig(ctx, employeeID)
	if err == nil {
		return Resolved{Config: cfg, Source: SourceExplicit}, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return Resolved{}, fmt.Errorf("load salary config: %w", err)
	}

	return Resolved{Config: defaultConfigForRole(employeeID, emp.Role), Source: SourceDerived}, nil
}
