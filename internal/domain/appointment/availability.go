package appointment

import "time"

type AvailabilityInput struct {
	ServiceID uint
	DoctorID  uint
	Date      time.Time
}

type BookingInput struct {
	DoctorID  uint
	ServiceID uint
	PatientID uint
	Date      time.Time
	StartsAt  int
}
