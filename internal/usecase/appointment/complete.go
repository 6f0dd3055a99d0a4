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

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, clinicID, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}

	if !access.CanComplete(actor, ap) {
		return nil, httperr.ErrForbidden("forbidden", "Only the doctor can complete an appointment.")
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &actor.UserID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
