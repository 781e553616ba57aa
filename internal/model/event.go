package model

import (
	"time"

	"gorm.io/datatypes"
)

// Тип события аудита.
type EventType string

const (
	EventTypeBookingCreated EventType = "booking_created"
	EventTypeBookingUpdated EventType = "booking_updated"
	EventTypeBookingDeleted EventType = "booking_deleted"
)

// events — события аудита
type Event struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	EventType EventType `gorm:"type:varchar(64);not null;index" json:"event_type"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	// Ссылка намеренно без FK: событие переживает удаление бронирования.
	BookingID *uint `gorm:"index" json:"booking_id,omitempty"`

	// Снимок полей бронирования на момент события.
	Details datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
}
