package attendance

import "time"

const (
	KindCheckIn  = "check_in"
	KindCheckOut = "check_out"
)

// Event is a raw punch. Append-only; the engine only ever reads these.
type Event struct {
	ID         string
	EmployeeID string
	Kind       string
	Timestamp  time.Time
	Latitude   *float64
	Longitude  *float64
}
