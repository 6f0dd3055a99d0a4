package models

import "time"

// ServiceDoctor links a doctor to a service they perform. It is the only
// record of the relation; both "doctor's services" and "service's doctors"
// are read from it.
type ServiceDoctor struct {
	ServiceID uint `gorm:"primaryKey;autoIncrement:false" json:"service_id"`
	DoctorID  uint `gorm:"primaryKey;autoIncrement:false;index" json:"doctor_id"`

	CreatedAt time.Time `json:"created_at"`
}
