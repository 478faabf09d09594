package dto

import "github.com/velvetcut/salon-scheduler/internal/models"

type AvailabilitySlotDTO struct {
	AvailabilityID uint   `json:"availability_id"`
	Date           string `json:"date"`
	Slots          int    `json:"slots"`
}

type ServiceViewDTO struct {
	ServiceID       uint                  `json:"service_id"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	DurationMinutes int                   `json:"duration_minutes"`
	Price           *float64              `json:"price"`
	ImagePath       string                `json:"image_path"`
	Availability    []AvailabilitySlotDTO `json:"availability"`
}

func NewServiceView(service models.Service, slots []models.ServiceAvailability) ServiceViewDTO {
	view := ServiceViewDTO{
		ServiceID:       service.ID,
		Name:            service.Name,
		Description:     service.Description,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
		ImagePath:       service.ImagePath,
		Availability:    make([]AvailabilitySlotDTO, 0, len(slots)),
	}

	for _, slot := range slots {
		view.Availability = append(view.Availability, AvailabilitySlotDTO{
			AvailabilityID: slot.ID,
			Date:           slot.AvailableDate,
			Slots:          slot.Slots,
		})
	}

	return view
}

// ServiceSummaryDTO is the public catalog entry, without availability.
type ServiceSummaryDTO struct {
	ServiceID       uint     `json:"service_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price"`
	ImagePath       string   `json:"image_path"`
}

func NewServiceSummary(service models.Service) ServiceSummaryDTO {
	return ServiceSummaryDTO{
		ServiceID:       service.ID,
		Name:            service.Name,
		Description:     service.Description,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
		ImagePath:       service.ImagePath,
	}
}
