package models

import "time"

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"not null" json:"room_id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	StartAt   time.Time `gorm:"type:timestamptz;not null" json:"start_at"`
	EndAt     time.Time `gorm:"type:timestamptz;not null" json:"end_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room,omitempty"`
}
