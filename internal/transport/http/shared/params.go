package shared

import (
	"fmt"
	"net/http"
	"strconv"
)

// Period reads the year and month query parameters. Range validation is left
// to the period resolver so every caller rejects the same way.
func Period(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("year must be an integer")
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, fmt.Errorf("month must be an integer")
	}
	return year, month, nil
}
