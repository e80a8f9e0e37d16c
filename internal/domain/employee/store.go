package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Directory is the employee lookup surface the payroll engine depends on.
type Directory interface {
	Get(ctx context.Context, id string) (Employee, error)
	ListEligible(ctx context.Context, excludedRoles []string) ([]Employee, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, role, status
    FROM employees
    WHERE id = $1
  `, id).Scan(&e.ID, &e.Name, &e.Role, &e.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}

// ListEligible returns active employees outside the excluded role set, in a
// stable order so batch runs process employees deterministically.
func (s *Store) ListEligible(ctx context.Context, excludedRoles []string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, role, status
    FROM employees
    WHERE status = $1 AND NOT (role = ANY($2))
    ORDER BY id
  `, StatusActive, excludedRoles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Status); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
