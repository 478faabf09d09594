package booking

import (
	"context"

	domain "github.com/velvetcut/salon-scheduler/internal/domain/booking"
)

type ListFlatBookings struct {
	repo domain.Repository
}

func NewListFlatBookings(repo domain.Repository) *ListFlatBookings {
	return &ListFlatBookings{repo: repo}
}

// Execute returns the legacy flat rows; a fresh database with no
// bookings table yields an empty list, not an error.
func (uc *ListFlatBookings) Execute(ctx context.Context) ([]domain.FlatBooking, error) {
	return uc.repo.ListBookingsFlat(ctx)
}
