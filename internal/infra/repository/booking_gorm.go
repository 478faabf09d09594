package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/velvetcut/salon-scheduler/internal/domain/booking"
	"github.com/velvetcut/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Client
// --------------------------------------------------

// ResolveClient centralizes the two client paths: a session identity
// resolves by id, everything else shares the walk-in client, created
// on first use. Duplicate walk-in rows can race into existence; that
// is the accepted behavior, not guarded against.
func (r *BookingGormRepository) ResolveClient(
	ctx context.Context,
	identity *domain.Identity,
) (*models.Client, error) {

	if identity != nil {
		var client models.Client
		if err := r.db.WithContext(ctx).First(&client, identity.ClientID).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("first_name = ?", domain.WalkInFirstName).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		FirstName: domain.WalkInFirstName,
		LastName:  domain.WalkInLastName,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *BookingGormRepository) FindClientByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// --------------------------------------------------
// Service
// --------------------------------------------------

// ResolveServiceByName matches the submitted booking type against
// service names exactly (case and whitespace sensitive) and lazily
// creates a service with the default duration when nothing matches.
func (r *BookingGormRepository) ResolveServiceByName(
	ctx context.Context,
	name string,
	defaultDuration int,
) (*models.Service, error) {

	var service models.Service
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&service).Error

	if err == nil {
		return &service, nil
	}

	service = models.Service{
		Name:            name,
		DurationMinutes: defaultDuration,
	}

	if err := r.db.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingDetailed(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsDetailed(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBookingsFlat serves the legacy listing. On a fresh database the
// bookings table may not exist yet; that case returns an empty slice.
func (r *BookingGormRepository) ListBookingsFlat(
	ctx context.Context,
) ([]domain.FlatBooking, error) {

	tx := r.db.WithContext(ctx)
	if !tx.Migrator().HasTable(&models.Booking{}) {
		return []domain.FlatBooking{}, nil
	}

	rows := []domain.FlatBooking{}
	if err := tx.
		Model(&models.Booking{}).
		Select("id AS booking_id, booking_type, booking_date, booking_time, status").
		Order("id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
