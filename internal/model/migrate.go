package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей системы бронирования.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Client{},
		&Photographer{},
		&Service{},
		&Booking{},
		&BookingService{},
		&Event{},
	)
}
