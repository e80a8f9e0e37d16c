package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"payday/internal/domain/leave"
	"payday/internal/domain/overtime"
)

// Totals is everything the payroll calculator needs from the attendance,
// leave, and overtime sources for one employee and one window. Empty sources
// aggregate to zeros, never an error.
type Totals struct {
	WorkedDays      int
	WorkedSeconds   int64
	LeaveDays       decimal.Decimal
	OvertimeSeconds int64
}

type EventStore interface {
	QueryEvents(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error)
}

type LeaveStore interface {
	QueryApproved(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Request, error)
}

type OvertimeStore interface {
	QueryTotal(ctx context.Context, employeeID string, from, to time.Time) (overtime.Total, error)
}

type Aggregator struct {
	events    EventStore
	leaves    LeaveStore
	overtimes OvertimeStore
}

func NewAggregator(events EventStore, leaves LeaveStore, overtimes OvertimeStore) *Aggregator {
	return &Aggregator{events: events, leaves: leaves, overtimes: overtimes}
}

func (a *Aggregator) Aggregate(ctx context.Context, employeeID string, from, to time.Time) (Totals, error) {
	totals := Totals{LeaveDays: decimal.Zero}

	events, err := a.events.QueryEvents(ctx, employeeID, from, to)
	if err != nil {
		return Totals{}, fmt.Errorf("query attendance events: %w", err)
	}
	totals.WorkedDays, totals.WorkedSeconds = pairEvents(events)

	leaves, err := a.leaves.QueryApproved(ctx, employeeID, from, to)
	if err != nil {
		return Totals{}, fmt.Errorf("query approved leaves: %w", err)
	}
	totals.LeaveDays = leave.CountDays(leaves, from, to)

	ot, err := a.overtimes.QueryTotal(ctx, employeeID, from, to)
	if err != nil {
		return Totals{}, fmt.Errorf("query overtime: %w", err)
	}
	totals.OvertimeSeconds = ot.Resolve()

	return totals, nil
}

// CountApprovedLeaveDays is the standalone leave query used by the secondary
// deduction pass, which is always scoped to a calendar month of its own.
func (a *Aggregator) CountApprovedLeaveDays(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	leaves, err := a.leaves.QueryApproved(ctx, employeeID, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("query approved leaves: %w", err)
	}
	return leave.CountDays(leaves, from, to), nil
}

type dayPunches struct {
	hasCheckIn  bool
	hasCheckOut bool
	earliestIn  time.Time
	latestOut   time.Time
}

// pairEvents pairs the earliest check-in with the latest check-out per
// calendar day. A day missing either punch contributes zero seconds but a
// check-in alone still counts as a worked day.
func pairEvents(events []Event) (workedDays int, workedSeconds int64) {
	byDay := map[string]*dayPunches{}
	for _, event := range events {
		key := event.Timestamp.UTC().Format("2006-01-02")
		punches, ok := byDay[key]
		if !ok {
			punches = &dayPunches{}
			byDay[key] = punches
		}
		switch event.Kind {
		case KindCheckIn:
			if !punches.hasCheckIn || event.Timestamp.Before(punches.earliestIn) {
				punches.earliestIn = event.Timestamp
			}
			punches.hasCheckIn = true
		case KindCheckOut:
			if !punches.hasCheckOut || event.Timestamp.After(punches.latestOut) {
				punches.latestOut = event.Timestamp
			}
			punches.hasCheckOut = true
		}
	}

	for _, punches := range byDay {
		if !punches.hasCheckIn {
			continue
		}
		workedDays++
		if !punches.hasCheckOut {
			continue
		}
		if seconds := int64(punches.latestOut.Sub(punches.earliestIn).Seconds()); seconds > 0 {
			workedSeconds += seconds
		}
	}
	return workedDays, workedSeconds
}
