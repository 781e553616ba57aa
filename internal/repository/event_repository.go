package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/model"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	// ListByBooking возвращает события аудита бронирования.
	ListByBooking(ctx context.Context, bookingID uint) ([]model.Event, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Create(ctx context.Context, event *model.Event) error {
	return translate(r.db.WithContext(ctx).Create(event).Error)
}

func (r *GormEventRepository) ListByBooking(ctx context.Context, bookingID uint) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, translate(err)
	}
	return events, nil
}
