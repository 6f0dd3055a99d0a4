package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Cancel frees the appointment's slot.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := Transition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := Transition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Slot(ap *models.Appointment) schedule.Interval {
	return schedule.Interval{Start: ap.StartsAt, End: ap.EndsAt}
}

// Day normalises t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey is the canonical string form of a booking date.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
