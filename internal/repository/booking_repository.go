package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/model"
)

type BookingRepository interface {
	// Создать новое бронирование.
	Create(ctx context.Context, booking *model.Booking) error
	// Получить бронирование по ID без связей.
	GetByID(ctx context.Context, id uint) (*model.Booking, error)
	// Получить бронирование вместе с клиентом, фотографом и услугами.
	GetWithRelations(ctx context.Context, id uint) (*model.Booking, error)
	// Список всех бронирований со связями.
	ListWithRelations(ctx context.Context) ([]model.Booking, error)
	// Бронирования фотографа со связями; нулевые from/to снимают
	// соответствующую границу по дате.
	ListByPhotographer(ctx context.Context, photographerID uint, from, to time.Time) ([]model.Booking, error)
	// Бронирования, включающие услугу, со связями.
	ListByService(ctx context.Context, serviceID uint) ([]model.Booking, error)
	// UpdateFields обновляет собственные поля бронирования.
	// Возвращает ErrNotFound, если строка исчезла к моменту записи.
	UpdateFields(ctx context.Context, id uint, clientID, photographerID uint, date time.Time, location *string) error
	// Удалить строку бронирования (связи должны быть удалены раньше).
	Delete(ctx context.Context, id uint) error
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return translate(r.db.WithContext(ctx).Create(booking).Error)
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uint) (*model.Booking, error) {
	var b model.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// withRelations догружает клиента, фотографа и выбранные услуги.
// Отсутствующий клиент или фотограф остаётся nil — это мягкая потеря
// ссылки, а не ошибка чтения.
func (r *GormBookingRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("Photographer").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("booking_services.service_id ASC")
		}).
		Preload("Services.Service")
}

func (r *GormBookingRepository) GetWithRelations(ctx context.Context, id uint) (*model.Booking, error) {
	var b model.Booking
	if err := r.withRelations(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *GormBookingRepository) ListWithRelations(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.withRelations(ctx).Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByPhotographer(ctx context.Context, photographerID uint, from, to time.Time) ([]model.Booking, error) {
	q := r.withRelations(ctx).
		Where("photographer_id = ?", photographerID)

	if !from.IsZero() {
		q = q.Where("date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("date < ?", to)
	}

	var bookings []model.Booking
	if err := q.Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByService(ctx context.Context, serviceID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.withRelations(ctx).
		Joins("JOIN booking_services bs ON bs.booking_id = bookings.id").
		Where("bs.service_id = ?", serviceID).
		Order("bookings.id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) UpdateFields(
	ctx context.Context,
	id uint,
	clientID, photographerID uint,
	date time.Time,
	location *string,
) error {
	res := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"client_id":       clientID,
			"photographer_id": photographerID,
			"date":            date,
			"location":        location,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
