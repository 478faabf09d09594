package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/velvetcut/salon-scheduler/internal/audit"
	domain "github.com/velvetcut/salon-scheduler/internal/domain/booking"
	"github.com/velvetcut/salon-scheduler/internal/httperr"
	"github.com/velvetcut/salon-scheduler/internal/models"
	"github.com/velvetcut/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type UpdateBookingInput struct {
	BookingID uint

	// Absent fields are left untouched.
	BookingDate *string
	BookingTime *string
	Status      *string

	ActorEmail string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	// Validate everything before mutating anything.
	if in.BookingDate != nil && *in.BookingDate != "" {
		date, err := validators.ParseISODate(*in.BookingDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		b.BookingDate = date
	}

	if in.BookingTime != nil && *in.BookingTime != "" {
		clock, err := domain.ParseClockTime(*in.BookingTime)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		b.BookingTime = clock
	}

	if in.Status != nil && *in.Status != "" {
		b.Status = *in.Status
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.ActorEmail,
		Action:     "booking_updated",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return uc.repo.GetBookingDetailed(ctx, b.ID)
}
