package doctor

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// ======================================================
// GET
// ======================================================

type GetShifts struct {
	repo domain.Repository
}

func NewGetShifts(repo domain.Repository) *GetShifts {
	return &GetShifts{repo: repo}
}

func (uc *GetShifts) Execute(
	ctx context.Context,
	doctorID uint,
) ([]schedule.Interval, error) {

	doctor, err := loadDoctor(ctx, uc.repo, doctorID)
	if err != nil {
		return nil, err
	}

	shifts, err := uc.repo.ListShifts(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	return schedule.SortShifts(shifts), nil
}

// ======================================================
// UPDATE
// ======================================================

// UpdateShifts replaces a doctor's whole shift set. The set is validated
// before anything is written; existing appointments are left untouched.
type UpdateShifts struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateShifts(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateShifts {
	return &UpdateShifts{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateShifts) Execute(
	ctx context.Context,
	actor access.Actor,
	doctorID uint,
	shifts []schedule.Interval,
) ([]schedule.Interval, error) {

	doctor, err := loadDoctor(ctx, uc.repo, doctorID)
	if err != nil {
		return nil, err
	}

	if !access.CanManageDoctor(actor, doctor) {
		return nil, httperr.ErrForbidden("forbidden", "You cannot manage this doctor's shifts.")
	}

	if err := schedule.ValidateShifts(shifts); err != nil {
		var set *schedule.ShiftSetError
		if errors.As(err, &set) {
			return nil, httperr.ErrValidation("invalid_shifts", set.Error()).
				With("conflicts", set.Conflicts)
		}
		return nil, err
	}

	sorted := schedule.SortShifts(shifts)

	err = uc.repo.WithTransaction(ctx, func(tx domain.UnitOfWork) error {
		return tx.ReplaceShifts(ctx, doctor.ID, sorted)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: doctor.ClinicID,
		UserID:   &actor.UserID,
		Action:   "shifts_updated",
		Entity:   "doctor",
		EntityID: &doctor.ID,
		Metadata: map[string]any{"shifts": sorted},
	})

	return sorted, nil
}
