package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
)

// GetAvailability lists the free intervals of a doctor's day that can fit the
// service. It reads without the booking lock: the answer is advisory and a
// later booking may still fail with a conflict.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]schedule.Interval, error) {

	service, err := loadService(ctx, uc.repo, in.ServiceID)
	if err != nil {
		return nil, err
	}

	doctor, err := loadDoctor(ctx, uc.repo, in.DoctorID)
	if err != nil {
		return nil, err
	}

	if !service.HasDoctor(doctor.ID) {
		return nil, notAssigned()
	}

	shifts, err := uc.repo.ListShifts(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedIntervals(ctx, doctor.ID, domain.Day(in.Date))
	if err != nil {
		return nil, err
	}

	free := schedule.FreeIntervals(shifts, booked)
	return schedule.LongEnough(free, service.DurationMin), nil
}
