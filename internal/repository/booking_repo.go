package repository

import (
	"context"
	"time"

	"roombook/internal/models"

	"gorm.io/gorm"
)

// BookingFilter narrows FindAll. From keeps bookings still active at or
// after that instant (end_at > From); To keeps bookings starting before it
// (start_at < To). Filters compose with AND.
type BookingFilter struct {
	RoomID *uint
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindAll(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create is a single atomic insert. The bookings_no_overlap exclusion
// constraint rejects it when the closed interval [start_at, end_at]
// intersects an existing booking for the same room, so no prior
// check-then-insert read is needed (or safe) here.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx)
	if filter.RoomID != nil {
		q = q.Where("room_id = ?", *filter.RoomID)
	}
	if filter.From != nil {
		q = q.Where("end_at > ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("start_at < ?", *filter.To)
	}

	var bookings []models.Booking
	err := q.Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}
