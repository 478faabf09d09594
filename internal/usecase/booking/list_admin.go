package booking

import (
	"context"

	domain "github.com/velvetcut/salon-scheduler/internal/domain/booking"
	"github.com/velvetcut/salon-scheduler/internal/models"
)

type ListAdminBookings struct {
	repo domain.Repository
}

func NewListAdminBookings(repo domain.Repository) *ListAdminBookings {
	return &ListAdminBookings{repo: repo}
}

// Execute returns every booking with its client and service loaded.
func (uc *ListAdminBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListBookingsDetailed(ctx)
}
