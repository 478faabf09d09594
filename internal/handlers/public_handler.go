package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velvetcut/salon-scheduler/internal/config"
	"github.com/velvetcut/salon-scheduler/internal/dto"
	"github.com/velvetcut/salon-scheduler/internal/httperr"
	"github.com/velvetcut/salon-scheduler/internal/middleware"
	"github.com/velvetcut/salon-scheduler/internal/models"
	ucBooking "github.com/velvetcut/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db         *gorm.DB
	config     *config.Config
	createUC   *ucBooking.CreateBooking
	listFlatUC *ucBooking.ListFlatBookings
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	createUC *ucBooking.CreateBooking,
	listFlatUC *ucBooking.ListFlatBookings,
) *PublicHandler {
	return &PublicHandler{
		db:         db,
		config:     cfg,
		createUC:   createUC,
		listFlatUC: listFlatUC,
	}
}

// ======================================================
// SERVICES (BOOKING PAGE)
// ======================================================

// ListServices returns the catalog plus an available_times map: every
// date carrying any availability row, for any service, is offered the
// same configured time-of-day labels.
func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", err.Error())
		return
	}

	var slots []models.ServiceAvailability
	if err := h.db.Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", err.Error())
		return
	}

	availableTimes := map[string][]string{}
	for _, slot := range slots {
		if _, seen := availableTimes[slot.AvailableDate]; !seen {
			availableTimes[slot.AvailableDate] = h.config.TimeSlotLabels
		}
	}

	summaries := make([]dto.ServiceSummaryDTO, 0, len(services))
	for _, service := range services {
		summaries = append(summaries, dto.NewServiceSummary(service))
	}

	c.JSON(http.StatusOK, gin.H{
		"services":        summaries,
		"available_times": availableTimes,
	})
}

// ======================================================
// BOOKINGS (LEGACY FLAT LIST)
// ======================================================

func (h *PublicHandler) ListBookings(c *gin.Context) {
	rows, err := h.listFlatUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ======================================================
// CREATE BOOKING (FORM)
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	bookingType := c.PostForm("booking_type")
	appointmentDateTime := c.PostForm("appointment_datetime")

	if bookingType == "" || appointmentDateTime == "" {
		httperr.BadRequest(c, "invalid_request", "booking_type and appointment_datetime are required.")
		return
	}

	// A logged-in session books for its own client; anonymous requests
	// fall back to the shared walk-in client.
	identity, _ := middleware.CurrentIdentity(c)

	_, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Identity:            identity,
		BookingType:         bookingType,
		AppointmentDateTime: appointmentDateTime,
	})

	if err != nil {
		if httperr.IsBusiness(err, "invalid_datetime") {
			httperr.BadRequest(c, "invalid_datetime", "Invalid datetime format: "+appointmentDateTime)
			return
		}
		httperr.Internal(c, "failed_to_create_booking", err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}
