package handlers

import (
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

const dateLayout = "2006-01-02"

// parseDate reads a calendar date ("2026-03-02"). Booking dates carry no
// zone; they are the clinic's local calendar day.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.Day(t), nil
}
