package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapDaysClipsToWindow(t *testing.T) {
	req := Request{StartDate: date(2025, 3, 28), EndDate: date(2025, 4, 3)}
	got := OverlapDays(req, date(2025, 4, 1), date(2025, 4, 30))
	if got != 3 {
		t.Fatalf("expected 3 overlapping days, got %d", got)
	}
}

func TestOverlapDaysDisjoint(t *testing.T) {
	req := Request{StartDate: date(2025, 5, 1), EndDate: date(2025, 5, 2)}
	if got := OverlapDays(req, date(2025, 4, 1), date(2025, 4, 30)); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}

func TestCountDaysHalfDay(t *testing.T) {
	requests := []Request{
		{StartDate: date(2025, 4, 7), EndDate: date(2025, 4, 7), Status: StatusApproved, DayType: DayTypeHalf},
		{StartDate: date(2025, 4, 10), EndDate: date(2025, 4, 11), Status: StatusApproved, DayType: DayTypeFull},
	}
	got := CountDays(requests, date(2025, 4, 1), date(2025, 4, 30))
	if !got.Equal(decimal.NewFromFloat(2.5)) {
		t.Fatalf("expected 2.5 leave days, got %s", got)
	}
}

func TestCountDaysHalfTagIgnoredForMultiDay(t *testing.T) {
	// The half tag only applies to a single-day contribution; a multi-day
	// request falls back to overlap arithmetic.
	requests := []Request{
		{StartDate: date(2025, 4, 7), EndDate: date(2025, 4, 9), Status: StatusApproved, DayType: DayTypeHalf},
	}
	got := CountDays(requests, date(2025, 4, 1), date(2025, 4, 30))
	if !got.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("expected 3 leave days, got %s", got)
	}
}

func TestCountDaysIgnoresUnapproved(t *testing.T) {
	requests := []Request{
		{StartDate: date(2025, 4, 7), EndDate: date(2025, 4, 8), Status: StatusPending},
		{StartDate: date(2025, 4, 9), EndDate: date(2025, 4, 9), Status: StatusRejected},
	}
	got := CountDays(requests, date(2025, 4, 1), date(2025, 4, 30))
	if !got.IsZero() {
		t.Fatalf("expected 0 leave days, got %s", got)
	}
}
