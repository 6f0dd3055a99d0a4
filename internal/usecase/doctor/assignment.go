package doctor

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ServiceAssignment links doctors to the services they perform. The link is
// a single record, so assigning or removing it is one atomic write.
type ServiceAssignment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewServiceAssignment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ServiceAssignment {
	return &ServiceAssignment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ServiceAssignment) Assign(
	ctx context.Context,
	actor access.Actor,
	serviceID uint,
	doctorID uint,
) error {

	service, doctor, err := uc.authorize(ctx, actor, serviceID, doctorID)
	if err != nil {
		return err
	}

	err = uc.repo.WithTransaction(ctx, func(tx domain.UnitOfWork) error {
		return tx.AssignDoctor(ctx, service.ID, doctor.ID)
	})
	if err != nil {
		return err
	}

	uc.dispatch(actor, service, doctor, "service_doctor_assigned")
	return nil
}

func (uc *ServiceAssignment) Unassign(
	ctx context.Context,
	actor access.Actor,
	serviceID uint,
	doctorID uint,
) error {

	service, doctor, err := uc.authorize(ctx, actor, serviceID, doctorID)
	if err != nil {
		return err
	}

	err = uc.repo.WithTransaction(ctx, func(tx domain.UnitOfWork) error {
		removed, err := tx.UnassignDoctor(ctx, service.ID, doctor.ID)
		if err != nil {
			return err
		}
		if !removed {
			return httperr.ErrConflict("doctor_not_assigned", "Doctor is not assigned to this service.")
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.dispatch(actor, service, doctor, "service_doctor_unassigned")
	return nil
}

// authorize requires the service, the doctor and the actor to share a clinic.
func (uc *ServiceAssignment) authorize(
	ctx context.Context,
	actor access.Actor,
	serviceID uint,
	doctorID uint,
) (*models.ClinicService, *models.User, error) {

	service, err := uc.repo.GetService(ctx, serviceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, httperr.ErrNotFound("service_not_found", "Clinic service not found.")
	}
	if err != nil {
		return nil, nil, err
	}

	doctor, err := loadDoctor(ctx, uc.repo, doctorID)
	if err != nil {
		return nil, nil, err
	}

	if !access.CanManageClinic(actor, service.ClinicID) ||
		!actor.InClinic(doctor.ClinicID) {
		return nil, nil, httperr.ErrForbidden("forbidden", "Service and doctor must belong to your clinic.")
	}

	return service, doctor, nil
}

func (uc *ServiceAssignment) dispatch(
	actor access.Actor,
	service *models.ClinicService,
	doctor *models.User,
	action string,
) {
	clinicID := service.ClinicID
	uc.audit.Dispatch(audit.Event{
		ClinicID: &clinicID,
		UserID:   &actor.UserID,
		Action:   action,
		Entity:   "clinic_service",
		EntityID: &service.ID,
		Metadata: map[string]any{"doctor_id": doctor.ID},
	})
}
