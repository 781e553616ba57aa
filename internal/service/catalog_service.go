package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/model"
	"github.com/amirlan/photobooking/internal/repository"
)

// CatalogService — CRUD по справочным сущностям: клиенты, фотографы,
// услуги. Обновление — полная замена записи. Удаление сущности, на
// которую ещё ссылаются бронирования, блокируется и отдаётся как
// конфликт, а не оставляет висячие ссылки.
type CatalogService struct {
	log *logger.Logger

	clients       repository.ClientRepository
	photographers repository.PhotographerRepository
	services      repository.ServiceRepository
}

func NewCatalogService(db *gorm.DB, log *logger.Logger) *CatalogService {
	return &CatalogService{
		log:           log.With("service", "CatalogService"),
		clients:       repository.NewGormClientRepository(db),
		photographers: repository.NewGormPhotographerRepository(db),
		services:      repository.NewGormServiceRepository(db),
	}
}

// --- Clients ---

func (s *CatalogService) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.clients.List(ctx)
}

func (s *CatalogService) GetClient(ctx context.Context, id uint) (*model.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client %d: %w", id, err)
	}
	return c, nil
}

func (s *CatalogService) CreateClient(ctx context.Context, client *model.Client) error {
	if err := s.clients.Create(ctx, client); err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	s.log.Info("client created", "client_id", client.ID)
	return nil
}

func (s *CatalogService) UpdateClient(ctx context.Context, client *model.Client) error {
	if err := s.clients.Update(ctx, client); err != nil {
		return fmt.Errorf("update client %d: %w", client.ID, err)
	}
	return nil
}

func (s *CatalogService) DeleteClient(ctx context.Context, id uint) error {
	referenced, err := s.clients.HasBookings(ctx, id)
	if err != nil {
		return fmt.Errorf("check client bookings: %w", err)
	}
	if referenced {
		return fmt.Errorf("client %d has bookings: %w", id, repository.ErrConflict)
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	s.log.Info("client deleted", "client_id", id)
	return nil
}

// --- Photographers ---

func (s *CatalogService) ListPhotographers(ctx context.Context) ([]model.Photographer, error) {
	return s.photographers.List(ctx)
}

func (s *CatalogService) GetPhotographer(ctx context.Context, id uint) (*model.Photographer, error) {
	p, err := s.photographers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("photographer %d: %w", id, err)
	}
	return p, nil
}

func (s *CatalogService) CreatePhotographer(ctx context.Context, p *model.Photographer) error {
	if err := s.photographers.Create(ctx, p); err != nil {
		return fmt.Errorf("create photographer: %w", err)
	}
	s.log.Info("photographer created", "photographer_id", p.ID)
	return nil
}

func (s *CatalogService) UpdatePhotographer(ctx context.Context, p *model.Photographer) error {
	if err := s.photographers.Update(ctx, p); err != nil {
		return fmt.Errorf("update photographer %d: %w", p.ID, err)
	}
	return nil
}

func (s *CatalogService) DeletePhotographer(ctx context.Context, id uint) error {
	referenced, err := s.photographers.HasBookings(ctx, id)
	if err != nil {
		return fmt.Errorf("check photographer bookings: %w", err)
	}
	if referenced {
		return fmt.Errorf("photographer %d has bookings: %w", id, repository.ErrConflict)
	}
	if err := s.photographers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete photographer %d: %w", id, err)
	}
	s.log.Info("photographer deleted", "photographer_id", id)
	return nil
}

// --- Services ---

func (s *CatalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	return s.services.List(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id uint) (*model.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service %d: %w", id, err)
	}
	return svc, nil
}

func (s *CatalogService) CreateService(ctx context.Context, svc *model.Service) error {
	if err := s.services.Create(ctx, svc); err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	s.log.Info("service created", "service_id", svc.ID)
	return nil
}

func (s *CatalogService) UpdateService(ctx context.Context, svc *model.Service) error {
	if err := s.services.Update(ctx, svc); err != nil {
		return fmt.Errorf("update service %d: %w", svc.ID, err)
	}
	return nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	referenced, err := s.services.HasBookings(ctx, id)
	if err != nil {
		return fmt.Errorf("check service bookings: %w", err)
	}
	if referenced {
		return fmt.Errorf("service %d is selected by bookings: %w", id, repository.ErrConflict)
	}
	if err := s.services.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service %d: %w", id, err)
	}
	s.log.Info("service deleted", "service_id", id)
	return nil
}
