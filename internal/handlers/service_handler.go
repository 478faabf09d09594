package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velvetcut/salon-scheduler/internal/audit"
	"github.com/velvetcut/salon-scheduler/internal/config"
	"github.com/velvetcut/salon-scheduler/internal/dto"
	"github.com/velvetcut/salon-scheduler/internal/httperr"
	"github.com/velvetcut/salon-scheduler/internal/middleware"
	"github.com/velvetcut/salon-scheduler/internal/models"
	"github.com/velvetcut/salon-scheduler/internal/upload"
	"github.com/velvetcut/salon-scheduler/internal/validators"
)

type ServiceHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, cfg *config.Config, dispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{
		db:     db,
		config: cfg,
		audit:  dispatcher,
	}
}

// --------- Requests ---------

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
}

type SetAvailabilityRequest struct {
	Dates []string `json:"dates" binding:"required"`
	Slots *int     `json:"slots"`
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", err.Error())
		return
	}

	views := make([]dto.ServiceViewDTO, 0, len(services))
	for _, service := range services {
		view, err := h.serviceView(service)
		if err != nil {
			httperr.Internal(c, "failed_to_list_services", err.Error())
			return
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, views)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "name is required.")
		return
	}

	durationMinutes, err := strconv.Atoi(c.PostForm("duration_minutes"))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "duration_minutes must be an integer.")
		return
	}

	var price *float64
	if raw := c.PostForm("price"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "price must be a number.")
			return
		}
		price = &p
	}

	// Validate the availability payload before any write. Individual
	// unparseable dates are skipped; only a non-list payload fails.
	var availabilityDates []string
	if raw := c.PostForm("availability_dates"); raw != "" {
		availabilityDates, err = parseAvailabilityDates(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_availability_dates", "availability_dates must be a JSON list of ISO dates.")
			return
		}
	}

	service := models.Service{
		Name:            name,
		Description:     c.PostForm("description"),
		DurationMinutes: durationMinutes,
		Price:           price,
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		if err := upload.ValidateImage(fileHeader); err != nil {
			var upErr *upload.Error
			if errors.As(err, &upErr) {
				httperr.BadRequest(c, upErr.Code, upErr.Message)
				return
			}
			httperr.BadRequest(c, "invalid_image", err.Error())
			return
		}

		imagePath, err := upload.SaveServiceImage(fileHeader, h.config.UploadDir)
		if err != nil {
			httperr.Internal(c, "image_save_failed", err.Error())
			return
		}
		service.ImagePath = imagePath
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}

		for _, date := range availabilityDates {
			slot := models.ServiceAvailability{
				ServiceID:     service.ID,
				AvailableDate: date,
				Slots:         1,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_service", err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: middleware.SessionEmail(c),
		Action:     "service_created",
		Entity:     "service",
		EntityID:   &service.ID,
	})

	view, err := h.serviceView(service)
	if err != nil {
		httperr.Internal(c, "failed_to_create_service", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ======================================================
// UPDATE (PARTIAL)
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	service, ok := h.getService(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		service.Price = req.Price
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: middleware.SessionEmail(c),
		Action:     "service_updated",
		Entity:     "service",
		EntityID:   &service.ID,
	})

	view, err := h.serviceView(service)
	if err != nil {
		httperr.Internal(c, "failed_to_update_service", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ======================================================
// SET AVAILABILITY (REPLACE-ALL)
// ======================================================

func (h *ServiceHandler) SetAvailability(c *gin.Context) {
	service, ok := h.getService(c)
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	dates := make([]string, 0, len(req.Dates))
	for _, raw := range req.Dates {
		date, err := validators.ParseISODate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "dates must be ISO YYYY-MM-DD values: "+raw)
			return
		}
		dates = append(dates, date)
	}

	slots := 1
	if req.Slots != nil && *req.Slots > 0 {
		slots = *req.Slots
	}

	// Destructive full replacement: delete everything, insert the new
	// set, all in one transaction.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("service_id = ?", service.ID).
			Delete(&models.ServiceAvailability{}).Error; err != nil {
			return err
		}

		for _, date := range dates {
			slot := models.ServiceAvailability{
				ServiceID:     service.ID,
				AvailableDate: date,
				Slots:         slots,
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_set_availability", err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: middleware.SessionEmail(c),
		Action:     "availability_replaced",
		Entity:     "service",
		EntityID:   &service.ID,
		Metadata: map[string]any{
			"dates": dates,
			"slots": slots,
		},
	})

	view, err := h.serviceView(service)
	if err != nil {
		httperr.Internal(c, "failed_to_set_availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ======================================================
// UPLOAD IMAGE
// ======================================================

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	service, ok := h.getService(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "image file is required.")
		return
	}

	if err := upload.ValidateImage(fileHeader); err != nil {
		var upErr *upload.Error
		if errors.As(err, &upErr) {
			httperr.BadRequest(c, upErr.Code, upErr.Message)
			return
		}
		httperr.BadRequest(c, "invalid_image", err.Error())
		return
	}

	imagePath, err := upload.SaveServiceImage(fileHeader, h.config.UploadDir)
	if err != nil {
		httperr.Internal(c, "image_save_failed", err.Error())
		return
	}

	service.ImagePath = imagePath
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: middleware.SessionEmail(c),
		Action:     "service_image_replaced",
		Entity:     "service",
		EntityID:   &service.ID,
	})

	view, err := h.serviceView(service)
	if err != nil {
		httperr.Internal(c, "failed_to_update_service", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ======================================================
// DELETE
// ======================================================

// Delete removes the service and its availability rows. Bookings that
// reference the service keep their dangling service id.
func (h *ServiceHandler) Delete(c *gin.Context) {
	service, ok := h.getService(c)
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("service_id = ?", service.ID).
			Delete(&models.ServiceAvailability{}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_service", err.Error())
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: middleware.SessionEmail(c),
		Action:     "service_deleted",
		Entity:     "service",
		EntityID:   &service.ID,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func (h *ServiceHandler) getService(c *gin.Context) (models.Service, bool) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
		} else {
			httperr.Internal(c, "failed_to_get_service", err.Error())
		}
		return models.Service{}, false
	}
	return service, true
}

func (h *ServiceHandler) serviceView(service models.Service) (dto.ServiceViewDTO, error) {
	var slots []models.ServiceAvailability
	err := h.db.
		Where("service_id = ?", service.ID).
		Order("id ASC").
		Find(&slots).Error
	return dto.NewServiceView(service, slots), err
}

// parseAvailabilityDates accepts a JSON list; entries that are not
// strings or not valid ISO dates are silently dropped.
func parseAvailabilityDates(raw string) ([]string, error) {
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}

	list, ok := payload.([]any)
	if !ok {
		return nil, errors.New("availability_dates is not a JSON list")
	}

	var dates []string
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		date, err := validators.ParseISODate(s)
		if err != nil {
			continue
		}
		dates = append(dates, date)
	}
	return dates, nil
}
