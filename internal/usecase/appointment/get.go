package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, clinicID, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if !access.CanViewAppointment(actor, ap, clinicID) {
		return nil, httperr.ErrForbidden("forbidden", "You cannot see this appointment.")
	}

	return ap, nil
}

// loadAppointment returns the appointment and the clinic of its doctor.
func loadAppointment(
	ctx context.Context,
	dir domain.UnitOfWork,
	id uint,
) (*models.Appointment, *uint, error) {

	ap, err := dir.GetAppointment(ctx, id)
	if err != nil {
		return nil, nil, lookupErr(err, "appointment_not_found", "Appointment not found.")
	}

	doctor := ap.Doctor
	if doctor == nil {
		doctor, err = dir.GetUser(ctx, ap.DoctorID)
		if err != nil {
			return nil, nil, lookupErr(err, "doctor_not_found", "Doctor not found.")
		}
	}

	return ap, doctor.ClinicID, nil
}
