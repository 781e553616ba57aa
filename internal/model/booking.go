package model

import "time"

// bookings
type Booking struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID       uint      `gorm:"not null;index" json:"client_id"`
	PhotographerID uint      `gorm:"not null;index" json:"photographer_id"`
	Date           time.Time `gorm:"not null;index" json:"date"`

	// Локация опциональна; в сводках NULL отдаётся пустой строкой.
	Location *string `gorm:"type:varchar(255)" json:"location,omitempty"`

	// Навигационные ссылки намеренно nullable: клиент или фотограф
	// могли быть удалены в обход бронирований, это не ошибка чтения.
	Client       *Client          `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Photographer *Photographer    `gorm:"foreignKey:PhotographerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Services     []BookingService `gorm:"foreignKey:BookingID" json:"-"`
}
