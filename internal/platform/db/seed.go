package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"payday/internal/domain/auth"
	"payday/internal/domain/employee"
)

// SeedAdmin makes sure a login exists so a fresh deployment is usable. It is
// a no-op when the email is already registered or when no credentials are
// configured.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		logger.Info("seed skipped, no admin credentials configured")
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return fmt.Errorf("seed lookup: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed hash: %w", err)
	}

	employeeID := uuid.NewString()
	userID := uuid.NewString()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO employees (id, name, role, status)
    VALUES ($1, $2, $3, $4)
  `, employeeID, "System Administrator", employee.RoleAdmin, employee.StatusActive); err != nil {
		return fmt.Errorf("seed employee: %w", err)
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO users (id, email, password_hash, employee_id, role)
    VALUES ($1, $2, $3, $4, $5)
  `, userID, email, hash, employeeID, employee.RoleAdmin); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	logger.Info("seeded admin user", "email", email)
	return nil
}
