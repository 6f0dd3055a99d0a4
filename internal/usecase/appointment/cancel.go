package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// CancelAppointment frees the appointment's time. The patient, the doctor and
// the doctor's clinic admin may cancel.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, clinicID, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if !access.CanCancel(actor, ap, clinicID) {
		return nil, httperr.ErrForbidden("forbidden", "You cannot cancel this appointment.")
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &actor.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
