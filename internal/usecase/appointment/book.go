package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// BookAppointment reserves a slot with a doctor. Every check fails fast and
// the reservation itself is one unit of work holding the doctor/day lock.
type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	actor access.Actor,
	in domain.BookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Service, patient, doctor
	// --------------------------------------------------
	service, err := loadService(ctx, uc.repo, in.ServiceID)
	if err != nil {
		return nil, err
	}

	patient, err := loadPatient(ctx, uc.repo, in.PatientID)
	if err != nil {
		return nil, err
	}

	doctor, err := loadDoctor(ctx, uc.repo, in.DoctorID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Only the patient books for themself
	// --------------------------------------------------
	if !access.CanBook(actor, patient.ID) {
		return nil, httperr.ErrForbidden("forbidden", "Only the respective patient can book an appointment.")
	}

	// --------------------------------------------------
	// 3. Doctor performs the service
	// --------------------------------------------------
	if !service.HasDoctor(doctor.ID) {
		return nil, notAssigned()
	}

	// --------------------------------------------------
	// 4. Requested slot
	// --------------------------------------------------
	slot := schedule.Interval{
		Start: in.StartsAt,
		End:   in.StartsAt + service.DurationMin,
	}
	if !slot.Valid() {
		return nil, httperr.ErrValidation("slot_out_of_range", "Appointment must start and end within the day.")
	}

	date := domain.Day(in.Date)

	// --------------------------------------------------
	// 5-8. Availability + reservation, atomically
	// --------------------------------------------------
	var created *models.Appointment

	err = uc.repo.WithTransaction(ctx, func(tx domain.UnitOfWork) error {
		if err := tx.LockDoctorDay(ctx, doctor.ID, date); err != nil {
			return err
		}

		shifts, err := tx.ListShifts(ctx, doctor.ID)
		if err != nil {
			return err
		}

		booked, err := tx.ListBookedIntervals(ctx, doctor.ID, date)
		if err != nil {
			return err
		}

		free := schedule.FreeIntervals(shifts, booked)
		if _, ok := schedule.FirstContaining(free, slot); !ok {
			return slotUnavailable(free, booked, slot, service.DurationMin)
		}

		ap := &models.Appointment{
			DoctorID:  doctor.ID,
			ServiceID: service.ID,
			PatientID: patient.ID,
			Date:      date,
			StartsAt:  slot.Start,
			EndsAt:    slot.End,
			Status:    string(domain.InitialStatus()),
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			uc.log.Info("booking conflict",
				zap.Uint("doctor_id", doctor.ID),
				zap.String("date", domain.DayKey(date)),
				zap.Stringer("slot", slot),
			)

			uc.audit.Dispatch(audit.Event{
				ClinicID: doctor.ClinicID,
				UserID:   &actor.UserID,
				Action:   "booking_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{
					"doctor_id": doctor.ID,
					"date":      domain.DayKey(date),
					"start":     slot.Start,
					"end":       slot.End,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 9. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ClinicID: doctor.ClinicID,
		UserID:   &actor.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}

// slotUnavailable explains why slot cannot be booked and lists the free
// intervals long enough for the service.
func slotUnavailable(
	free []schedule.Interval,
	booked []schedule.Interval,
	slot schedule.Interval,
	duration int,
) error {

	suggestions := schedule.LongEnough(free, duration)

	for _, b := range booked {
		if b == slot {
			return httperr.ErrConflict("duplicate_booking", "This slot is already booked.").
				With("suggestions", suggestions)
		}
	}

	message := "Book another time."
	if len(suggestions) == 0 {
		message = "No capacity left on this day. Pick another day."
	}

	return httperr.ErrPrecondition("slot_unavailable", message).
		With("suggestions", suggestions)
}
