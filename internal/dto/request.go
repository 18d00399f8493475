package dto

import (
	"time"

	"roombook/internal/validation"
)

type CreateRoomRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Capacity    int     `json:"capacity" validate:"required,min=1"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type CreateBookingRequest struct {
	RoomID  uint   `json:"room_id" validate:"required,min=1"`
	Title   string `json:"title" validate:"required,max=200"`
	StartAt string `json:"start_at" validate:"required"`
	EndAt   string `json:"end_at" validate:"required"`
}

// Times parses the RFC 3339 interval bounds. Parse failures are reported
// against the offending field; a non-positive interval is reported against
// end_at, distinct from a parse failure.
func (r *CreateBookingRequest) Times() (start, end time.Time, issues validation.Issues) {
	var err error
	if start, err = time.Parse(time.RFC3339, r.StartAt); err != nil {
		issues = append(issues, validation.Issue{Field: "start_at", Message: "start_at must be a valid RFC 3339 date-time"})
	}
	if end, err = time.Parse(time.RFC3339, r.EndAt); err != nil {
		issues = append(issues, validation.Issue{Field: "end_at", Message: "end_at must be a valid RFC 3339 date-time"})
	}
	if len(issues) > 0 {
		return time.Time{}, time.Time{}, issues
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, validation.Issues{
			{Field: "end_at", Message: "end_at must be after start_at"},
		}
	}
	return start.UTC(), end.UTC(), nil
}
