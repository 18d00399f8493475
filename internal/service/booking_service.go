package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"roombook/internal/models"
	"roombook/internal/repository"
	"roombook/pkg/rabbitmq"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingOverlap  = errors.New("booking overlaps an existing booking for this room")
)

// Constraint and SQLSTATE values raised by the bookings schema.
// Classification is structural (errors.As on *pgconn.PgError), never by
// matching error message text.
const (
	overlapConstraint     = "bookings_no_overlap"
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
)

type BookingService interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher *rabbitmq.Publisher
}

func NewBookingService(repo repository.BookingRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{repo: repo, publisher: publisher}
}

// CreateBooking attempts the exclusion-guarded insert. The database is the
// sole arbiter of the overlap invariant: concurrent creates for intersecting
// ranges on the same room race at the constraint, exactly one wins and the
// rest surface ErrBookingOverlap. The insert is never retried.
func (s *bookingService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if err := s.repo.Create(ctx, booking); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == pgExclusionViolation && pgErr.ConstraintName == overlapConstraint:
				return ErrBookingOverlap
			case pgErr.Code == pgForeignKeyViolation:
				return ErrRoomNotFound
			}
		}
		return fmt.Errorf("create booking: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "booking.created", booking); err != nil {
			log.Printf("[BookingService] publish booking.created: %v", err)
		}
	}

	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}
