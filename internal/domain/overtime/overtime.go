package overtime

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Total carries the pre-aggregated overtime for a window. Seconds is the
// authoritative field; LegacyHours survives from an older schema where
// overtime was recorded in whole hours.
type Total struct {
	Seconds     int64
	LegacyHours float64
}

// Seconds resolves the total to seconds, converting the legacy hours figure
// only when the seconds sum is absent.
func (t Total) Resolve() int64 {
	if t.Seconds > 0 {
		return t.Seconds
	}
	return int64(t.LegacyHours * 3600)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) QueryTotal(ctx context.Context, employeeID string, from, to time.Time) (Total, error) {
	var total Total
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(duration_seconds), 0), COALESCE(SUM(legacy_hours), 0)
    FROM overtime_records
    WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3
  `, employeeID, from, to).Scan(&total.Seconds, &total.LegacyHours)
	if err != nil {
		return Total{}, err
	}
	return total, nil
}
