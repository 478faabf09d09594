package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velvetcut/salon-scheduler/internal/dto"
	"github.com/velvetcut/salon-scheduler/internal/httperr"
	"github.com/velvetcut/salon-scheduler/internal/middleware"
	ucBooking "github.com/velvetcut/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	listUC   *ucBooking.ListAdminBookings
	updateUC *ucBooking.UpdateBooking
}

func NewBookingHandler(
	listUC *ucBooking.ListAdminBookings,
	updateUC *ucBooking.UpdateBooking,
) *BookingHandler {
	return &BookingHandler{
		listUC:   listUC,
		updateUC: updateUC,
	}
}

// --------- Requests ---------

type UpdateBookingRequest struct {
	BookingDate *string `json:"booking_date,omitempty"`
	BookingTime *string `json:"booking_time,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ======================================================
// LIST (JOINED)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", err.Error())
		return
	}

	views := make([]dto.BookingViewDTO, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, dto.NewBookingView(b))
	}

	c.JSON(http.StatusOK, views)
}

// ======================================================
// UPDATE (PARTIAL)
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be an integer.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		BookingID:   uint(id),
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		Status:      req.Status,
		ActorEmail:  middleware.SessionEmail(c),
	})

	if err != nil {
		switch httperr.BusinessCode(err) {
		case "booking_not_found":
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case "invalid_date":
			httperr.BadRequest(c, "invalid_date", "booking_date must be YYYY-MM-DD.")
		case "invalid_time":
			httperr.BadRequest(c, "invalid_time", "booking_time must be HH:MM.")
		default:
			httperr.Internal(c, "failed_to_update_booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingView(*updated))
}
