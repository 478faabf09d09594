package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"booking_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	BookingDate string `gorm:"size:10" json:"booking_date"`
	BookingTime string `gorm:"size:8" json:"booking_time"`

	Status string `gorm:"size:20;default:'Scheduled'" json:"status"`

	BookingType string `gorm:"size:100" json:"booking_type"`
	Notes       string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
