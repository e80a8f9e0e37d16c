package leave

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

// QueryApproved returns approved requests overlapping [from, to].
func (s *Store) QueryApproved(ctx context.Context, employeeID string, from, to time.Time) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, start_date, end_date, status, day_type
    FROM leave_requests
    WHERE employee_id = $1
      AND status = $2
      AND start_date <= $3
      AND end_date >= $4
  `, employeeID, StatusApproved, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Status, &req.DayType); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
