package models

import "time"

type Clinic struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	City     string `gorm:"size:100" json:"city"`
	Street   string `gorm:"size:255" json:"street"`
	Timezone string `gorm:"size:64" json:"timezone"`
	AdminID  *uint  `json:"admin_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
