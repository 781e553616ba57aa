package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/model"
	"github.com/amirlan/photobooking/internal/repository"
)

// AssociationService — прямой доступ к строкам booking_services по
// составному ключу. Основной путь изменения набора услуг — полная
// пересборка в BookingService; этот сервис покрывает точечные операции.
type AssociationService struct {
	log *logger.Logger

	links    repository.BookingServiceRepository
	bookings repository.BookingRepository
	services repository.ServiceRepository
}

func NewAssociationService(db *gorm.DB, log *logger.Logger) *AssociationService {
	return &AssociationService{
		log:      log.With("service", "AssociationService"),
		links:    repository.NewGormBookingServiceRepository(db),
		bookings: repository.NewGormBookingRepository(db),
		services: repository.NewGormServiceRepository(db),
	}
}

func (s *AssociationService) List(ctx context.Context) ([]model.BookingService, error) {
	return s.links.ListAll(ctx)
}

func (s *AssociationService) Get(ctx context.Context, bookingID, serviceID uint) (*model.BookingService, error) {
	bs, err := s.links.Get(ctx, bookingID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("booking service (%d, %d): %w", bookingID, serviceID, err)
	}
	return bs, nil
}

// Create добавляет одну связь. Существующая пара — конфликт составного
// ключа, не no-op.
func (s *AssociationService) Create(ctx context.Context, bookingID, serviceID uint) (*model.BookingService, error) {
	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("booking %d: %w", bookingID, err)
	}
	if _, err := s.services.GetByID(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("service %d: %w", serviceID, err)
	}

	bs := model.BookingService{BookingID: bookingID, ServiceID: serviceID}
	if err := s.links.Create(ctx, &bs); err != nil {
		return nil, fmt.Errorf("create booking service (%d, %d): %w", bookingID, serviceID, err)
	}
	s.log.Info("booking service linked", "booking_id", bookingID, "service_id", serviceID)
	return &bs, nil
}

func (s *AssociationService) Delete(ctx context.Context, bookingID, serviceID uint) error {
	if err := s.links.Delete(ctx, bookingID, serviceID); err != nil {
		return fmt.Errorf("delete booking service (%d, %d): %w", bookingID, serviceID, err)
	}
	s.log.Info("booking service unlinked", "booking_id", bookingID, "service_id", serviceID)
	return nil
}
