package booking

import (
	"context"

	"github.com/velvetcut/salon-scheduler/internal/models"
)

// FlatBooking is the legacy row shape returned by the public bookings
// listing: no joins, just the columns.
type FlatBooking struct {
	BookingID   uint   `json:"booking_id"`
	BookingType string `json:"booking_type"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	Status      string `json:"status"`
}

type Repository interface {
	// InTransaction runs fn against a repository bound to a single
	// transaction; any error rolls back every write made inside it.
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Client (lookup-or-create resolver) --------
	ResolveClient(
		ctx context.Context,
		identity *Identity,
	) (*models.Client, error)

	FindClientByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Service (lookup-or-create resolver) --------
	ResolveServiceByName(
		ctx context.Context,
		name string,
		defaultDuration int,
	) (*models.Service, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingDetailed(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsDetailed(
		ctx context.Context,
	) ([]models.Booking, error)

	// ListBookingsFlat tolerates a missing bookings table and returns
	// an empty slice instead of failing.
	ListBookingsFlat(
		ctx context.Context,
	) ([]FlatBooking, error)
}
