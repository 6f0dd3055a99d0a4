package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint  `gorm:"index:idx_appointments_doctor_date;not null" json:"doctor_id"`
	Doctor   *User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"doctor,omitempty"`

	ServiceID uint           `gorm:"not null" json:"service_id"`
	Service   *ClinicService `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	PatientID uint  `gorm:"index;not null" json:"patient_id"`
	Patient   *User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"patient,omitempty"`

	// Calendar day of the appointment; StartsAt/EndsAt are minutes of that day.
	Date     time.Time `gorm:"type:date;index:idx_appointments_doctor_date;not null" json:"date"`
	StartsAt int       `gorm:"not null" json:"starts_at"`
	EndsAt   int       `gorm:"not null" json:"ends_at"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
