package doctor

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// loadDoctor resolves id to a user with the doctor role.
func loadDoctor(
	ctx context.Context,
	dir domain.Directory,
	id uint,
) (*models.User, error) {

	user, err := dir.GetUser(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("doctor_not_found", "Doctor not found.")
	}
	if err != nil {
		return nil, err
	}

	if !user.IsDoctor() {
		return nil, httperr.ErrPrecondition("not_a_doctor", "User is not a doctor.")
	}
	return user, nil
}
