package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"payday/internal/domain/payroll"
)

type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	Environment       string
	ArtifactDir       string
	RestDay           time.Weekday
	RunMigrations     bool
	RunSeed           bool
	SeedAdminEmail    string
	SeedAdminPassword string
	ExcludedRoles     []string
	MetricsEnabled    bool

	// Batch trigger: which day of the month the scheduled run fires on, and
	// how often the scheduler checks the calendar.
	PayrollRunDay        int
	PayrollCheckInterval time.Duration

	PFRate                  float64
	ESIEmployeeRate         float64
	ESIEmployerRate         float64
	ProfessionalTax         float64
	TDSRate                 float64
	StandardDailyHours      int
	OvertimeMultiplier      float64
	SecondaryLeaveDailyRate float64
	LeaveDeductionPolicy    string
}

func Load() Config {
	// A .env file is a developer convenience; absence is fine.
	_ = godotenv.Load()

	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		Environment:       getEnv("APP_ENV", "development"),
		ArtifactDir:       getEnv("ARTIFACT_DIR", "storage"),
		RestDay:           parseWeekday(getEnv("PAYROLL_REST_DAY", "sunday")),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:           getEnvBool("RUN_SEED", true),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		ExcludedRoles:     splitList(getEnv("PAYROLL_EXCLUDED_ROLES", "")),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", true),

		PayrollRunDay:        getEnvInt("PAYROLL_RUN_DAY", 1),
		PayrollCheckInterval: getEnvDuration("PAYROLL_CHECK_INTERVAL", time.Hour),

		PFRate:                  getEnvFloat("PF_RATE", 0.12),
		ESIEmployeeRate:         getEnvFloat("ESI_EMPLOYEE_RATE", 0.0075),
		ESIEmployerRate:         getEnvFloat("ESI_EMPLOYER_RATE", 0.0325),
		ProfessionalTax:         getEnvFloat("PROFESSIONAL_TAX", 200),
		TDSRate:                 getEnvFloat("TDS_RATE", 0.05),
		StandardDailyHours:      getEnvInt("STANDARD_DAILY_HOURS", 8),
		OvertimeMultiplier:      getEnvFloat("OVERTIME_MULTIPLIER", 1.5),
		SecondaryLeaveDailyRate: getEnvFloat("SECONDARY_LEAVE_DAILY_RATE", 500),
		LeaveDeductionPolicy:    getEnv("LEAVE_DEDUCTION_POLICY", payroll.LeavePolicySingle),
	}
}

// Rates maps the configured constants into the calculator's shape.
func (c Config) Rates() payroll.Rates {
	return payroll.Rates{
		PF:                      decimal.NewFromFloat(c.PFRate),
		ESIEmployee:             decimal.NewFromFloat(c.ESIEmployeeRate),
		ESIEmployer:             decimal.NewFromFloat(c.ESIEmployerRate),
		ProfessionalTax:         decimal.NewFromFloat(c.ProfessionalTax),
		TDS:                     decimal.NewFromFloat(c.TDSRate),
		StandardDailyHours:      decimal.NewFromInt(int64(c.StandardDailyHours)),
		OvertimeMultiplier:      decimal.NewFromFloat(c.OvertimeMultiplier),
		SecondaryLeaveDailyRate: decimal.NewFromFloat(c.SecondaryLeaveDailyRate),
		LeaveDeductionPolicy:    c.LeaveDeductionPolicy,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.LeaveDeductionPolicy != payroll.LeavePolicySingle && c.LeaveDeductionPolicy != payroll.LeavePolicyDouble {
		return fmt.Errorf("LEAVE_DEDUCTION_POLICY must be %q or %q", payroll.LeavePolicySingle, payroll.LeavePolicyDouble)
	}
	if c.PayrollRunDay < 1 || c.PayrollRunDay > 28 {
		return fmt.Errorf("PAYROLL_RUN_DAY must be between 1 and 28")
	}
	if c.StandardDailyHours <= 0 {
		return fmt.Errorf("STANDARD_DAILY_HOURS must be positive")
	}
	for name, rate := range map[string]float64{
		"PF_RATE":           c.PFRate,
		"ESI_EMPLOYEE_RATE": c.ESIEmployeeRate,
		"ESI_EMPLOYER_RATE": c.ESIEmployerRate,
		"TDS_RATE":          c.TDSRate,
	} {
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("%s must be in [0, 1)", name)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseWeekday(value string) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "monday":
		return time.Monday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}
