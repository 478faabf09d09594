package booking

import (
	"context"

	"github.com/velvetcut/salon-scheduler/internal/audit"
	domain "github.com/velvetcut/salon-scheduler/internal/domain/booking"
	"github.com/velvetcut/salon-scheduler/internal/httperr"
	"github.com/velvetcut/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// Identity is nil for anonymous callers, who book under the shared
	// walk-in client.
	Identity *domain.Identity

	// BookingType is the free-text service label; an exact-name match
	// resolves it, anything else lazily creates a service.
	BookingType string

	// AppointmentDateTime is the combined "YYYY-MM-DD H:MM AM/PM" form
	// value.
	AppointmentDateTime string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo            domain.Repository
	audit           *audit.Dispatcher
	defaultDuration int
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	defaultDuration int,
) *CreateBooking {
	return &CreateBooking{
		repo:            repo,
		audit:           audit,
		defaultDuration: defaultDuration,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	date, clock, err := domain.ParseAppointmentDateTime(in.AppointmentDateTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_datetime")
	}

	var created *models.Booking

	err = uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

		client, err := tx.ResolveClient(ctx, in.Identity)
		if err != nil {
			return err
		}

		service, err := tx.ResolveServiceByName(ctx, in.BookingType, uc.defaultDuration)
		if err != nil {
			return err
		}

		b := &models.Booking{
			ClientID:    client.ID,
			ServiceID:   service.ID,
			BookingDate: date,
			BookingTime: clock,
			Status:      string(domain.InitialStatus()),
			BookingType: in.BookingType,
		}

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		created = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	actor := ""
	if in.Identity != nil {
		actor = in.Identity.Email
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &created.ID,
	})

	return created, nil
}
