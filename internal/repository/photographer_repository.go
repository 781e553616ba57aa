package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/model"
)

type PhotographerRepository interface {
	List(ctx context.Context) ([]model.Photographer, error)
	GetByID(ctx context.Context, id uint) (*model.Photographer, error)
	Create(ctx context.Context, p *model.Photographer) error
	Update(ctx context.Context, p *model.Photographer) error
	Delete(ctx context.Context, id uint) error
	HasBookings(ctx context.Context, id uint) (bool, error)
}

type GormPhotographerRepository struct {
	db *gorm.DB
}

func NewGormPhotographerRepository(db *gorm.DB) *GormPhotographerRepository {
	return &GormPhotographerRepository{db: db}
}

func (r *GormPhotographerRepository) List(ctx context.Context) ([]model.Photographer, error) {
	var photographers []model.Photographer
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&photographers).Error; err != nil {
		return nil, translate(err)
	}
	return photographers, nil
}

func (r *GormPhotographerRepository) GetByID(ctx context.Context, id uint) (*model.Photographer, error) {
	var p model.Photographer
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *GormPhotographerRepository) Create(ctx context.Context, p *model.Photographer) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *GormPhotographerRepository) Update(ctx context.Context, p *model.Photographer) error {
	res := r.db.WithContext(ctx).
		Model(&model.Photographer{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":      p.Name,
			"specialty": p.Specialty,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormPhotographerRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Photographer{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormPhotographerRepository) HasBookings(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("photographer_id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}
