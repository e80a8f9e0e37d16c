package period

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid payroll period")

// Month is a resolved payroll window: the first and last calendar day of the
// month plus the number of working days between them, inclusive.
type Month struct {
	Year        int
	Month       time.Month
	First       time.Time
	Last        time.Time
	WorkingDays int
}

// Resolve computes the payroll window for a (year, month) pair. Every day of
// the month counts as a working day except the weekly rest day.
func Resolve(year, month int, restDay time.Weekday) (Month, error) {
	if year < 1900 || year > 2200 || month < 1 || month > 12 {
		return Month{}, ErrInvalidPeriod
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	working := 0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if day.Weekday() != restDay {
			working++
		}
	}

	return Month{
		Year:        year,
		Month:       time.Month(month),
		First:       first,
		Last:        last,
		WorkingDays: working,
	}, nil
}

// Contains reports whether the given time falls on a day inside the window.
func (m Month) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(m.First) && !day.After(m.Last)
}
