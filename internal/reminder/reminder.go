package reminder

import (
	"context"
	"time"
)

// Due is a scheduled appointment with everything needed to remind the patient.
type Due struct {
	AppointmentID uint
	Date          time.Time
	StartsAt      int
	Timezone      string

	ClinicName   string
	DoctorName   string
	ServiceName  string
	PatientName  string
	PatientEmail string
}

// Source lists scheduled appointments whose calendar date lies in [from, to].
// It must only read; the scan never takes the booking lock.
type Source interface {
	ListScheduled(ctx context.Context, from, to time.Time) ([]Due, error)
}

// Marker deduplicates reminders across runs and instances.
type Marker interface {
	Mark(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unmark(ctx context.Context, key string) error
}

type Sender interface {
	Send(ctx context.Context, d Due) error
}
