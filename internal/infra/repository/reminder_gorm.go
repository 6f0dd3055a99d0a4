package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/reminder"
)

// ReminderGormSource feeds the reminder worker. It only reads, outside any
// transaction.
type ReminderGormSource struct {
	db *gorm.DB
}

func NewReminderGormSource(db *gorm.DB) *ReminderGormSource {
	return &ReminderGormSource{db: db}
}

func (s *ReminderGormSource) ListScheduled(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]reminder.Due, error) {

	var apps []models.Appointment
	if err := s.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Service").
		Preload("Patient").
		Where(
			"status = ? AND date BETWEEN ? AND ?",
			string(domain.StatusScheduled), domain.DayKey(from), domain.DayKey(to),
		).
		Order("date ASC").
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	clinics, err := s.clinicsOf(ctx, apps)
	if err != nil {
		return nil, err
	}

	out := make([]reminder.Due, 0, len(apps))
	for i := range apps {
		ap := &apps[i]

		d := reminder.Due{
			AppointmentID: ap.ID,
			Date:          ap.Date,
			StartsAt:      ap.StartsAt,
		}
		if ap.Doctor != nil {
			d.DoctorName = ap.Doctor.FullName()
			if ap.Doctor.ClinicID != nil {
				if c, ok := clinics[*ap.Doctor.ClinicID]; ok {
					d.ClinicName = c.Name
					d.Timezone = c.Timezone
				}
			}
		}
		if ap.Service != nil {
			d.ServiceName = ap.Service.Name
		}
		if ap.Patient != nil {
			d.PatientName = ap.Patient.FullName()
			d.PatientEmail = ap.Patient.Email
		}

		out = append(out, d)
	}

	return out, nil
}

func (s *ReminderGormSource) clinicsOf(
	ctx context.Context,
	apps []models.Appointment,
) (map[uint]models.Clinic, error) {

	seen := map[uint]bool{}
	ids := make([]uint, 0)
	for _, ap := range apps {
		if ap.Doctor == nil || ap.Doctor.ClinicID == nil || seen[*ap.Doctor.ClinicID] {
			continue
		}
		seen[*ap.Doctor.ClinicID] = true
		ids = append(ids, *ap.Doctor.ClinicID)
	}

	out := make(map[uint]models.Clinic, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var clinics []models.Clinic
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&clinics).Error; err != nil {
		return nil, err
	}
	for _, c := range clinics {
		out[c.ID] = c
	}
	return out, nil
}

var _ reminder.Source = (*ReminderGormSource)(nil)
