package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"service_id"`

	Name            string   `gorm:"size:100;not null" json:"name"`
	Description     string   `gorm:"size:255" json:"description"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	ImagePath       string   `gorm:"size:255" json:"image_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
