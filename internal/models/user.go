package models

import "time"

const (
	RolePatient     = "patient"
	RoleDoctor      = "doctor"
	RoleClinicAdmin = "clinic_admin"
)

type User struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	ClinicID *uint `gorm:"index" json:"clinic_id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	City         string `gorm:"size:100" json:"city"`
	Street       string `gorm:"size:255" json:"street"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'patient'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}
