package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Directory resolves the entities a booking refers to. Lookups of missing
// records return an error satisfying errors.Is(err, ErrNotFound).
type Directory interface {
	GetService(ctx context.Context, id uint) (*models.ClinicService, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// Store reads and writes schedule data.
type Store interface {
	// -------- Shifts --------
	ListShifts(
		ctx context.Context,
		doctorID uint,
	) ([]schedule.Interval, error)

	ReplaceShifts(
		ctx context.Context,
		doctorID uint,
		shifts []schedule.Interval,
	) error

	// -------- Booking --------

	// LockDoctorDay serialises bookings for one doctor on one day until the
	// surrounding unit of work ends. Outside a unit of work it is a no-op.
	LockDoctorDay(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) error

	// ListBookedIntervals returns the scheduled appointments' spans, sorted.
	ListBookedIntervals(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) ([]schedule.Interval, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read / state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Service assignment --------
	AssignDoctor(
		ctx context.Context,
		serviceID uint,
		doctorID uint,
	) error

	UnassignDoctor(
		ctx context.Context,
		serviceID uint,
		doctorID uint,
	) (bool, error)
}

// UnitOfWork is the handle every read and write of one atomic operation goes
// through.
type UnitOfWork interface {
	Directory
	Store
}

type Repository interface {
	UnitOfWork

	// WithTransaction runs fn inside one transaction. It commits when fn
	// returns nil and rolls back on any error or panic.
	WithTransaction(
		ctx context.Context,
		fn func(tx UnitOfWork) error,
	) error
}

// ListFilter narrows ListAppointments. Zero values mean "any".
type ListFilter struct {
	Date      *time.Time
	DoctorID  uint
	PatientID uint
	ServiceID uint
	ClinicID  uint

	Offset int
	Limit  int
}
