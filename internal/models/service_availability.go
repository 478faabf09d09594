package models

import "time"

// ServiceAvailability marks a calendar date on which a service can be
// booked. Dates are ISO YYYY-MM-DD strings. There is intentionally no
// uniqueness constraint on (service_id, available_date).
type ServiceAvailability struct {
	ID uint `gorm:"primaryKey" json:"availability_id"`

	ServiceID uint `gorm:"index;not null" json:"service_id"`

	AvailableDate string `gorm:"size:10;not null" json:"date"`
	Slots         int    `gorm:"default:1" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
