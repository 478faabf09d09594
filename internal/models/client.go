package models

import "time"

// Client is a salon customer. Walk-in bookings share a single sentinel
// client whose first name is the walk-in label.
type Client struct {
	ID uint `gorm:"primaryKey" json:"client_id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	GoogleID  string `gorm:"size:100" json:"google_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
