package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *AppointmentGormRepository) WithTransaction(
	ctx context.Context,
	fn func(tx domain.UnitOfWork) error,
) error {

	if r.inTx {
		return fn(r)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx, inTx: true})
	})
	return classifyTxError(err)
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, domain.ErrNotFound)
	}
	return err
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.ClinicService, error) {

	var service models.ClinicService
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, notFound(err, "service", id)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.ServiceDoctor{}).
		Where("service_id = ?", id).
		Order("doctor_id ASC").
		Pluck("doctor_id", &service.DoctorIDs).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

// --------------------------------------------------
// Shifts
// --------------------------------------------------

func (r *AppointmentGormRepository) ListShifts(
	ctx context.Context,
	doctorID uint,
) ([]schedule.Interval, error) {

	var rows []models.DoctorShift
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("starts_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]schedule.Interval, 0, len(rows))
	for _, s := range rows {
		out = append(out, schedule.Interval{Start: s.StartsAt, End: s.EndsAt})
	}
	return out, nil
}

func (r *AppointmentGormRepository) ReplaceShifts(
	ctx context.Context,
	doctorID uint,
	shifts []schedule.Interval,
) error {

	if !r.inTx {
		return r.WithTransaction(ctx, func(tx domain.UnitOfWork) error {
			return tx.ReplaceShifts(ctx, doctorID, shifts)
		})
	}

	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Delete(&models.DoctorShift{}).Error; err != nil {
		return fmt.Errorf("clear shifts: %w", err)
	}

	if len(shifts) == 0 {
		return nil
	}

	rows := make([]models.DoctorShift, 0, len(shifts))
	for _, s := range shifts {
		rows = append(rows, models.DoctorShift{
			DoctorID: doctorID,
			StartsAt: s.Start,
			EndsAt:   s.End,
		})
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("save shifts: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *AppointmentGormRepository) LockDoctorDay(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) error {

	if !r.inTx {
		return nil
	}

	// Transaction-scoped: released on commit or rollback.
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?::int4, ?::int4)", int32(doctorID), dayNumber(date)).
		Error
}

func dayNumber(date time.Time) int32 {
	return int32(domain.Day(date).Unix() / 86400)
}

func (r *AppointmentGormRepository) ListBookedIntervals(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]schedule.Interval, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("starts_at", "ends_at").
		Where(
			"doctor_id = ? AND date = ? AND status = ?",
			doctorID, domain.DayKey(date), string(domain.StatusScheduled),
		).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	out := make([]schedule.Interval, 0, len(apps))
	for i := range apps {
		out = append(out, domain.Slot(&apps[i]))
	}
	return out, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return classifyTxError(r.db.WithContext(ctx).Omit("Doctor", "Service", "Patient").Create(ap).Error)
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Service").
		Preload("Patient").
		First(&ap, id).Error; err != nil {
		return nil, notFound(err, "appointment", id)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Doctor", "Service", "Patient").Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Preload("Doctor").
		Preload("Service").
		Preload("Patient")

	if filter.Date != nil {
		q = q.Where("appointments.date = ?", domain.DayKey(*filter.Date))
	}
	if filter.DoctorID != 0 {
		q = q.Where("appointments.doctor_id = ?", filter.DoctorID)
	}
	if filter.PatientID != 0 {
		q = q.Where("appointments.patient_id = ?", filter.PatientID)
	}
	if filter.ServiceID != 0 {
		q = q.Where("appointments.service_id = ?", filter.ServiceID)
	}
	if filter.ClinicID != 0 {
		q = q.Joins("JOIN users doctors ON doctors.id = appointments.doctor_id").
			Where("doctors.clinic_id = ?", filter.ClinicID)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointments.date ASC").
		Order("appointments.starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Service assignment
// --------------------------------------------------

func (r *AppointmentGormRepository) AssignDoctor(
	ctx context.Context,
	serviceID uint,
	doctorID uint,
) error {

	link := models.ServiceDoctor{ServiceID: serviceID, DoctorID: doctorID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrConflict("doctor_already_assigned", "Doctor already assigned to this service.")
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) UnassignDoctor(
	ctx context.Context,
	serviceID uint,
	doctorID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("service_id = ? AND doctor_id = ?", serviceID, doctorID).
		Delete(&models.ServiceDoctor{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
