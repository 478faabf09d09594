package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velvetcut/salon-scheduler/internal/audit"
	"github.com/velvetcut/salon-scheduler/internal/config"
	"github.com/velvetcut/salon-scheduler/internal/handlers"
	infraRepo "github.com/velvetcut/salon-scheduler/internal/infra/repository"
	"github.com/velvetcut/salon-scheduler/internal/middleware"
	ucBooking "github.com/velvetcut/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SessionMiddleware(cfg))

	// Uploaded service images are served straight from disk.
	r.Static("/static/uploads/services", cfg.UploadDir)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		cfg.DefaultServiceDuration,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		auditDispatcher,
	)

	listAdminBookingsUC := ucBooking.NewListAdminBookings(bookingRepo)
	listFlatBookingsUC := ucBooking.NewListFlatBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, cfg, auditDispatcher)
	bookingHandler := handlers.NewBookingHandler(listAdminBookingsUC, updateBookingUC)
	publicHandler := handlers.NewPublicHandler(db, cfg, createBookingUC, listFlatBookingsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// AUTH
	// ======================================================
	r.GET("/auth/google", authHandler.GoogleLogin)
	r.GET("/auth/google/callback", authHandler.GoogleCallback)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/bookings", publicHandler.ListBookings)
		api.POST("/bookings", publicHandler.CreateBooking)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")

		// Session introspection answers 401 itself; logout just clears.
		admin.GET("/session", authHandler.AdminSession)
		admin.POST("/logout", authHandler.Logout)

		secured := admin.Group("/")
		secured.Use(middleware.RequireAdmin())
		{
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.POST("/services/:id/availability", serviceHandler.SetAvailability)
			secured.POST("/services/:id/image", serviceHandler.UploadImage)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id", bookingHandler.Update)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
