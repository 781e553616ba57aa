package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/model"
)

type ClientRepository interface {
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id uint) (*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
	// Update заменяет запись целиком. Возвращает ErrNotFound, если
	// строка исчезла между чтением и записью.
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id uint) error
	// HasBookings сообщает, ссылаются ли на клиента бронирования.
	HasBookings(ctx context.Context, id uint) (bool, error)
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error; err != nil {
		return nil, translate(err)
	}
	return clients, nil
}

func (r *GormClientRepository) GetByID(ctx context.Context, id uint) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *GormClientRepository) Create(ctx context.Context, client *model.Client) error {
	return translate(r.db.WithContext(ctx).Create(client).Error)
}

func (r *GormClientRepository) Update(ctx context.Context, client *model.Client) error {
	res := r.db.WithContext(ctx).
		Model(&model.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":  client.Name,
			"email": client.Email,
			"phone": client.Phone,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormClientRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Client{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormClientRepository) HasBookings(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("client_id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}
