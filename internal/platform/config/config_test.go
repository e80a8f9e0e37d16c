package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.RestDay != time.Sunday {
		t.Fatalf("expected sunday rest day, got %v", cfg.RestDay)
	}
	if cfg.LeaveDeductionPolicy != "single" {
		t.Fatalf("expected single leave policy, got %s", cfg.LeaveDeductionPolicy)
	}
	if cfg.PayrollRunDay != 1 {
		t.Fatalf("expected run day 1, got %d", cfg.PayrollRunDay)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.DatabaseURL = "postgres://localhost/payday"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.LeaveDeductionPolicy = "triple"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected invalid policy to fail validation")
	}

	cfg = Load()
	cfg.DatabaseURL = "postgres://localhost/payday"
	cfg.PayrollRunDay = 31
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected run day 31 to fail validation")
	}

	cfg = Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing DATABASE_URL to fail validation")
	}
}

func TestRatesMapping(t *testing.T) {
	cfg := Load()
	rates := cfg.Rates()
	if rates.PF.String() != "0.12" {
		t.Fatalf("expected pf rate 0.12, got %s", rates.PF)
	}
	if rates.StandardDailyHours.String() != "8" {
		t.Fatalf("expected 8 daily hours, got %s", rates.StandardDailyHours)
	}
}

func TestParseWeekday(t *testing.T) {
	if parseWeekday("Friday") != time.Friday {
		t.Fatal("expected friday")
	}
	if parseWeekday("not-a-day") != time.Sunday {
		t.Fatal("expected fallback to sunday")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" admin , contractor ,, ")
	if len(got) != 2 || got[0] != "admin" || got[1] != "contractor" {
		t.Fatalf("unexpected list %v", got)
	}
}
