package dto

import (
	"time"

	"roombook/internal/models"
	"roombook/internal/validation"
)

// Error taxonomy exposed on the wire.
const (
	TypeValidation = "VALIDATION_ERROR"
	TypeOverlap    = "BOOKING_OVERLAP"
	TypeNotFound   = "NOT_FOUND"
	TypeInternal   = "INTERNAL"
)

type ErrorResponse struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Issues  validation.Issues `json:"issues,omitempty"`
	Hint    string            `json:"hint,omitempty"`
}

type RoomResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingResponse struct {
	ID        uint      `json:"id"`
	RoomID    uint      `json:"room_id"`
	Title     string    `json:"title"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomListResponse struct {
	Data   []RoomResponse `json:"data"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
	Count  int            `json:"count"`
}

type BookingListResponse struct {
	Data   []BookingResponse `json:"data"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	Count  int               `json:"count"`
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Title:     b.Title,
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
