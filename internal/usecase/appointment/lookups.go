package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func lookupErr(err error, code, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound(code, message)
	}
	return err
}

func loadService(
	ctx context.Context,
	dir domain.Directory,
	id uint,
) (*models.ClinicService, error) {

	service, err := dir.GetService(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "service_not_found", "Clinic service not found.")
	}
	return service, nil
}

func loadPatient(
	ctx context.Context,
	dir domain.Directory,
	id uint,
) (*models.User, error) {

	patient, err := dir.GetUser(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "patient_not_found", "Patient not found.")
	}
	return patient, nil
}

func loadDoctor(
	ctx context.Context,
	dir domain.Directory,
	id uint,
) (*models.User, error) {

	doctor, err := dir.GetUser(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "doctor_not_found", "Doctor not found.")
	}
	if !doctor.IsDoctor() {
		return nil, httperr.ErrNotFound("doctor_not_found", "Doctor not found.")
	}
	return doctor, nil
}

func notAssigned() error {
	return httperr.ErrPrecondition("doctor_not_assigned", "Doctor not assigned to that service.")
}
