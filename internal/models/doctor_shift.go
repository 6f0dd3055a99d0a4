package models

import "time"

// DoctorShift is one daily recurring working interval, in minutes of the day.
type DoctorShift struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DoctorID uint `gorm:"index;not null" json:"doctor_id"`

	StartsAt int `gorm:"not null" json:"starts_at"`
	EndsAt   int `gorm:"not null" json:"ends_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
