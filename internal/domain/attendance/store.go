package attendance

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) QueryEvents(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error) {
	// The window is day-granular; include the whole last day.
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, kind, occurred_at, latitude, longitude
    FROM attendance_events
    WHERE employee_id = $1 AND occurred_at >= $2 AND occurred_at < $3
    ORDER BY occurred_at
  `, employeeID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.EmployeeID, &event.Kind, &event.Timestamp, &event.Latitude, &event.Longitude); err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, rows.Err()
}
