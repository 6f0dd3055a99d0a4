package models

import "time"

// ClinicService is something a clinic offers, performed by assigned doctors.
type ClinicService struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClinicID uint `gorm:"uniqueIndex:idx_clinic_service_name;not null" json:"clinic_id"`

	Name        string `gorm:"size:100;uniqueIndex:idx_clinic_service_name;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`
	DurationMin int    `gorm:"not null" json:"duration_min"`

	// Loaded from service_doctors, never persisted on this row.
	DoctorIDs []uint `gorm:"-" json:"doctor_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ClinicService) HasDoctor(doctorID uint) bool {
	for _, id := range s.DoctorIDs {
		if id == doctorID {
			return true
		}
	}
	return false
}
