package dto

import "github.com/velvetcut/salon-scheduler/internal/models"

type BookingClientDTO struct {
	ClientID  uint   `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type BookingServiceDTO struct {
	ServiceID       uint     `json:"service_id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price"`
}

type BookingViewDTO struct {
	BookingID   uint              `json:"booking_id"`
	BookingDate string            `json:"booking_date"`
	BookingTime string            `json:"booking_time"`
	Status      string            `json:"status"`
	BookingType string            `json:"booking_type"`
	Client      BookingClientDTO  `json:"client"`
	Service     BookingServiceDTO `json:"service"`
}

// NewBookingView expects a booking loaded with its Client and Service.
func NewBookingView(b models.Booking) BookingViewDTO {
	return BookingViewDTO{
		BookingID:   b.ID,
		BookingDate: b.BookingDate,
		BookingTime: b.BookingTime,
		Status:      b.Status,
		BookingType: b.BookingType,
		Client: BookingClientDTO{
			ClientID:  b.Client.ID,
			FirstName: b.Client.FirstName,
			LastName:  b.Client.LastName,
			Email:     b.Client.Email,
			Phone:     b.Client.Phone,
		},
		Service: BookingServiceDTO{
			ServiceID:       b.Service.ID,
			Name:            b.Service.Name,
			DurationMinutes: b.Service.DurationMinutes,
			Price:           b.Service.Price,
		},
	}
}
