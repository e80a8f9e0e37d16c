package salary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"payday/internal/domain/money"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// GetConfig loads the one active config for an employee. Amount columns are
// TEXT in storage (inherited from the source system) and coerced here; a
// non-numeric value surfaces as money.ErrInvalidNumericInput.
func (s *Store) GetConfig(ctx context.Context, employeeID string) (Config, error) {
	var (
		basicRaw, hraRaw, hourlyRaw string
		allowancesJSON              []byte
		deductionsJSON              []byte
		payMode                     string
	)
	err := s.DB.QueryRow(ctx, `
    SELECT basic, hra, allowances, deductions, pay_mode, hourly_rate
    FROM salary_configs
    WHERE employee_id = $1
  `, employeeID).Scan(&basicRaw, &hraRaw, &allowancesJSON, &deductionsJSON, &payMode, &hourlyRaw)
	if errors.Is(err, pgx.ErrNoRows) {
		return Config{}, ErrConfigNotFound
	}
	if err != nil {
		return Config{}, err
	}

	cfg := Config{EmployeeID: employeeID, PayMode: payMode}
	if cfg.Basic, err = money.Parse("basic", basicRaw); err != nil {
		return Config{}, err
	}
	if cfg.HRA, err = money.Parse("hra", hraRaw); err != nil {
		return Config{}, err
	}
	if cfg.HourlyRate, err = money.Parse("hourlyRate", hourlyRaw); err != nil {
		return Config{}, err
	}

	var rawAllowances, rawDeductions map[string]string
	if err := json.Unmarshal(allowancesJSON, &rawAllowances); err != nil {
		return Config{}, fmt.Errorf("decode allowances: %w", err)
	}
	if err := json.Unmarshal(deductionsJSON, &rawDeductions); err != nil {
		return Config{}, fmt.Errorf("decode deductions: %w", err)
	}
	if cfg.Allowances, err = money.ParseMap("allowances", rawAllowances); err != nil {
		return Config{}, err
	}
	if cfg.Deductions, err = money.ParseMap("deductions", rawDeductions); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UpsertConfig writes the single active config for an employee.
func (s *Store) UpsertConfig(ctx context.Context, cfg Config) error {
	rawAllowances := map[string]string{}
	for key, value := range cfg.Allowances {
		rawAllowances[key] = value.String()
	}
	rawDeductions := map[string]string{}
	for key, value := range cfg.Deductions {
		rawDeductions[key] = value.String()
	}
	allowancesJSON, err := json.Marshal(rawAllowances)
	if err != nil {
		return err
	}
	deductionsJSON, err := json.Marshal(rawDeductions)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(ctx, `
    INSERT INTO salary_configs (employee_id, basic, hra, allowances, deductions, pay_mode, hourly_rate)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    ON CONFLICT (employee_id)
    DO UPDATE SET basic = EXCLUDED.basic, hra = EXCLUDED.hra,
                  allowances = EXCLUDED.allowances, deductions = EXCLUDED.deductions,
                  pay_mode = EXCLUDED.pay_mode, hourly_rate = EXCLUDED.hourly_rate
  `, cfg.EmployeeID, cfg.Basic.String(), cfg.HRA.String(), allowancesJSON, deductionsJSON, cfg.PayMode, cfg.HourlyRate.String())
	return err
}
