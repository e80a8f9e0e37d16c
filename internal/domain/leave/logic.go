package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// OverlapDays returns the inclusive day count of a request clipped to the
// window [windowStart, windowEnd]. Zero when the ranges do not intersect.
func OverlapDays(req Request, windowStart, windowEnd time.Time) int {
	start := req.StartDate
	if start.Before(windowStart) {
		start = windowStart
	}
	end := req.EndDate
	if end.After(windowEnd) {
		end = windowEnd
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// CountDays sums the leave-day contribution of approved requests against a
// window. A single-day request explicitly tagged half counts 0.5; every other
// case falls back to plain overlap arithmetic, including multi-day requests
// that carry a half tag.
func CountDays(requests []Request, windowStart, windowEnd time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, req := range requests {
		if req.Status != StatusApproved {
			continue
		}
		days := OverlapDays(req, windowStart, windowEnd)
		if days == 0 {
			continue
		}
		if days == 1 && req.DayType == DayTypeHalf {
			total = total.Add(half)
			continue
		}
		total = total.Add(decimal.NewFromInt(int64(days)))
	}
	return total
}
