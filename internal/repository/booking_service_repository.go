package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/model"
)

// BookingServiceRepository управляет строками join-таблицы
// booking_services. Составной ключ (booking_id, service_id) уникален;
// вставка существующей пары возвращает ErrConflict, а не тихий no-op.
type BookingServiceRepository interface {
	ListAll(ctx context.Context) ([]model.BookingService, error)
	ListByBooking(ctx context.Context, bookingID uint) ([]model.BookingService, error)
	Get(ctx context.Context, bookingID, serviceID uint) (*model.BookingService, error)
	Create(ctx context.Context, bs *model.BookingService) error
	Delete(ctx context.Context, bookingID, serviceID uint) error
	// DeleteByBooking удаляет все связи бронирования разом.
	DeleteByBooking(ctx context.Context, bookingID uint) error
}

type GormBookingServiceRepository struct {
	db *gorm.DB
}

func NewGormBookingServiceRepository(db *gorm.DB) *GormBookingServiceRepository {
	return &GormBookingServiceRepository{db: db}
}

func (r *GormBookingServiceRepository) ListAll(ctx context.Context) ([]model.BookingService, error) {
	var rows []model.BookingService
	err := r.db.WithContext(ctx).
		Order("booking_id ASC, service_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *GormBookingServiceRepository) ListByBooking(ctx context.Context, bookingID uint) ([]model.BookingService, error) {
	var rows []model.BookingService
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("booking_id = ?", bookingID).
		Order("service_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *GormBookingServiceRepository) Get(ctx context.Context, bookingID, serviceID uint) (*model.BookingService, error) {
	var bs model.BookingService
	err := r.db.WithContext(ctx).
		First(&bs, "booking_id = ? AND service_id = ?", bookingID, serviceID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &bs, nil
}

func (r *GormBookingServiceRepository) Create(ctx context.Context, bs *model.BookingService) error {
	return translate(r.db.WithContext(ctx).Create(bs).Error)
}

func (r *GormBookingServiceRepository) Delete(ctx context.Context, bookingID, serviceID uint) error {
	res := r.db.WithContext(ctx).
		Delete(&model.BookingService{}, "booking_id = ? AND service_id = ?", bookingID, serviceID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingServiceRepository) DeleteByBooking(ctx context.Context, bookingID uint) error {
	return translate(r.db.WithContext(ctx).
		Delete(&model.BookingService{}, "booking_id = ?", bookingID).Error)
}
