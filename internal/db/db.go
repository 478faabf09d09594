package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/velvetcut/salon-scheduler/internal/config"
	"github.com/velvetcut/salon-scheduler/internal/models"
)

// NewDB opens the database and runs migrations. A postgres DATABASE_URL
// selects the postgres driver; anything else falls back to a local
// sqlite file, matching how the salon originally ran.
func NewDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DBUrl, "postgres://") || strings.HasPrefix(cfg.DBUrl, "postgresql://") {
		dialector = postgres.Open(cfg.DBUrl)
	} else {
		path := cfg.DBUrl
		if path == "" {
			path = "salon.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Client{},
		&models.Service{},
		&models.ServiceAvailability{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedBootstrapAdmin(db, cfg)

	return db
}

// seedBootstrapAdmin creates the configured admin account once. The
// password is hashed by the model's BeforeCreate hook.
func seedBootstrapAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminBootstrapUsername == "" || cfg.AdminBootstrapPassword == "" {
		return
	}

	var count int64
	db.Model(&models.Admin{}).
		Where("username = ?", cfg.AdminBootstrapUsername).
		Count(&count)
	if count > 0 {
		return
	}

	admin := models.Admin{
		Username:     cfg.AdminBootstrapUsername,
		PasswordHash: cfg.AdminBootstrapPassword,
		Email:        cfg.AdminBootstrapEmail,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed bootstrap admin: %v", err)
		return
	}
	log.Printf("Bootstrap admin %q created", admin.Username)
}
