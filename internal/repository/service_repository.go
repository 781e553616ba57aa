package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/model"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]model.Service, error)
	GetByID(ctx context.Context, id uint) (*model.Service, error)
	Create(ctx context.Context, service *model.Service) error
	Update(ctx context.Context, service *model.Service) error
	Delete(ctx context.Context, id uint) error
	// HasBookings сообщает, выбрана ли услуга хотя бы одним бронированием.
	HasBookings(ctx context.Context, id uint) (bool, error)
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, translate(err)
	}
	return services, nil
}

func (r *GormServiceRepository) GetByID(ctx context.Context, id uint) (*model.Service, error) {
	var s model.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *model.Service) error {
	return translate(r.db.WithContext(ctx).Create(service).Error)
}

func (r *GormServiceRepository) Update(ctx context.Context, service *model.Service) error {
	res := r.db.WithContext(ctx).
		Model(&model.Service{}).
		Where("id = ?", service.ID).
		Updates(map[string]any{
			"name":  service.Name,
			"price": service.Price,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormServiceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Service{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormServiceRepository) HasBookings(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.BookingService{}).
		Where("service_id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}
