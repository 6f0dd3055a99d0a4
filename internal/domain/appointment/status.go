package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// Status is the lifecycle state of an appointment. Only scheduled
// appointments hold time on the doctor's day.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// transitions lists the allowed moves; cancelled and completed are final.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusCancelled, StatusCompleted},
}

func InitialStatus() Status {
	return StatusScheduled
}

// Occupies reports whether an appointment in this state blocks its slot.
func (s Status) Occupies() bool {
	return s == StatusScheduled
}

// Transition checks that an appointment may move from one state to another.
func Transition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrPrecondition(
		"invalid_state",
		fmt.Sprintf("Appointment is %s and cannot become %s.", from, to),
	)
}
