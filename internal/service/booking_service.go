package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/model"
	"github.com/amirlan/photobooking/internal/repository"
)

// BookingService собирает агрегат «бронирование + его booking_services»
// и держит инвариант: сохранённый набор связей в точности равен
// последнему поданному набору услуг. Каждая многошаговая мутация
// выполняется в одной транзакции — частичных записей не бывает.
type BookingService struct {
	db  *gorm.DB
	log *logger.Logger

	bookings      repository.BookingRepository
	clients       repository.ClientRepository
	photographers repository.PhotographerRepository
	links         repository.BookingServiceRepository
	events        repository.EventRepository
}

func NewBookingService(db *gorm.DB, log *logger.Logger) *BookingService {
	return &BookingService{
		db:            db,
		log:           log.With("service", "BookingService"),
		bookings:      repository.NewGormBookingRepository(db),
		clients:       repository.NewGormClientRepository(db),
		photographers: repository.NewGormPhotographerRepository(db),
		links:         repository.NewGormBookingServiceRepository(db),
		events:        repository.NewGormEventRepository(db),
	}
}

// List возвращает все бронирования в детальном представлении.
func (s *BookingService) List(ctx context.Context) ([]BookingDetail, error) {
	bookings, err := s.bookings.ListWithRelations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	details := make([]BookingDetail, 0, len(bookings))
	for i := range bookings {
		details = append(details, mapDetail(&bookings[i]))
	}
	return details, nil
}

// GetDetail возвращает бронирование с полным списком услуг.
func (s *BookingService) GetDetail(ctx context.Context, id uint) (*BookingDetail, error) {
	b, err := s.bookings.GetWithRelations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", id, err)
	}
	d := mapDetail(b)
	return &d, nil
}

// Create проверяет существование клиента и фотографа, затем в одной
// транзакции вставляет бронирование и по строке связи на каждую
// запрошенную услугу. Дубликаты услуг во входе не схлопываются —
// составной ключ вернёт конфликт.
func (s *BookingService) Create(ctx context.Context, in BookingInput) (*BookingDetail, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	booking := model.Booking{
		ClientID:       in.ClientID,
		PhotographerID: in.PhotographerID,
		Date:           in.Date,
		Location:       in.Location,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewGormBookingRepository(tx).Create(ctx, &booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}
		if err := replaceServiceSelection(ctx, tx, booking.ID, in.ServiceIDs); err != nil {
			return err
		}
		return writeBookingEvent(ctx, tx, model.EventTypeBookingCreated, booking.ID, in)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking created", "booking_id", booking.ID, "services", len(in.ServiceIDs))
	return s.GetDetail(ctx, booking.ID)
}

// Update заменяет собственные поля бронирования и целиком пересобирает
// его набор услуг. Обе записи происходят в одной транзакции: либо
// применяются вместе, либо не применяются вовсе.
func (s *BookingService) Update(ctx context.Context, id uint, in BookingInput) error {
	if err := s.checkReferences(ctx, in); err != nil {
		return err
	}
	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		return fmt.Errorf("booking %d: %w", id, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewGormBookingRepository(tx).
			UpdateFields(ctx, id, in.ClientID, in.PhotographerID, in.Date, in.Location); err != nil {
			return fmt.Errorf("update booking %d: %w", id, err)
		}
		if err := replaceServiceSelection(ctx, tx, id, in.ServiceIDs); err != nil {
			return err
		}
		return writeBookingEvent(ctx, tx, model.EventTypeBookingUpdated, id, in)
	})
	if err != nil {
		return err
	}

	s.log.Info("booking updated", "booking_id", id, "services", len(in.ServiceIDs))
	return nil
}

// Delete снимает сперва все строки связей, затем само бронирование,
// именно в этом порядке и в одной транзакции: связь не должна пережить
// своё бронирование.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	if _, err := s.bookings.GetByID(ctx, id); err != nil {
		return fmt.Errorf("booking %d: %w", id, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewGormBookingServiceRepository(tx).DeleteByBooking(ctx, id); err != nil {
			return fmt.Errorf("delete booking services: %w", err)
		}
		if err := repository.NewGormBookingRepository(tx).Delete(ctx, id); err != nil {
			return fmt.Errorf("delete booking %d: %w", id, err)
		}
		return writeBookingEvent(ctx, tx, model.EventTypeBookingDeleted, id, BookingInput{})
	})
	if err != nil {
		return err
	}

	s.log.Info("booking deleted", "booking_id", id)
	return nil
}

// ListByPhotographer возвращает сводки бронирований фотографа,
// опционально сужая выборку границами дат; нулевая граница не
// применяется. Отсутствующий фотограф и пустой результат — NotFound,
// как и в остальных вложенных выборках.
func (s *BookingService) ListByPhotographer(ctx context.Context, photographerID uint, from, to time.Time) ([]BookingSummary, error) {
	if _, err := s.photographers.GetByID(ctx, photographerID); err != nil {
		return nil, fmt.Errorf("photographer %d: %w", photographerID, err)
	}
	bookings, err := s.bookings.ListByPhotographer(ctx, photographerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list by photographer: %w", err)
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("no bookings for photographer %d: %w", photographerID, repository.ErrNotFound)
	}
	return mapSummaries(bookings), nil
}

// ListByService возвращает сводки бронирований, включающих услугу.
// Пустой результат — NotFound, как и в остальных вложенных выборках.
func (s *BookingService) ListByService(ctx context.Context, serviceID uint) ([]BookingSummary, error) {
	bookings, err := s.bookings.ListByService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list by service: %w", err)
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("no bookings for service %d: %w", serviceID, repository.ErrNotFound)
	}
	return mapSummaries(bookings), nil
}

// ServicesForBooking возвращает услуги бронирования; пустой набор —
// NotFound.
func (s *BookingService) ServicesForBooking(ctx context.Context, bookingID uint) ([]ServiceDTO, error) {
	rows, err := s.links.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("services for booking: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no services for booking %d: %w", bookingID, repository.ErrNotFound)
	}
	services := make([]ServiceDTO, 0, len(rows))
	for _, bs := range rows {
		services = append(services, mapLinkedService(bs))
	}
	return services, nil
}

// History возвращает события аудита бронирования, новые первыми.
// События переживают удаление бронирования, поэтому история доступна
// и для уже удалённых записей. Пустая история — NotFound.
func (s *BookingService) History(ctx context.Context, bookingID uint) ([]model.Event, error) {
	events, err := s.events.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking history: %w", err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no history for booking %d: %w", bookingID, repository.ErrNotFound)
	}
	return events, nil
}

// checkReferences — проверка существования клиента и фотографа перед
// любой записью бронирования.
func (s *BookingService) checkReferences(ctx context.Context, in BookingInput) error {
	if _, err := s.clients.GetByID(ctx, in.ClientID); err != nil {
		return fmt.Errorf("client %d: %w", in.ClientID, err)
	}
	if _, err := s.photographers.GetByID(ctx, in.PhotographerID); err != nil {
		return fmt.Errorf("photographer %d: %w", in.PhotographerID, err)
	}
	return nil
}

// replaceServiceSelection сносит текущие связи бронирования и вставляет
// по строке на каждый поданный ID услуги. Связи никогда не обновляются
// на месте. Вызывается только внутри транзакции.
func replaceServiceSelection(ctx context.Context, tx *gorm.DB, bookingID uint, serviceIDs []uint) error {
	links := repository.NewGormBookingServiceRepository(tx)
	if err := links.DeleteByBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("clear booking services: %w", err)
	}
	for _, serviceID := range serviceIDs {
		bs := model.BookingService{BookingID: bookingID, ServiceID: serviceID}
		if err := links.Create(ctx, &bs); err != nil {
			return fmt.Errorf("link service %d: %w", serviceID, err)
		}
	}
	return nil
}

// writeBookingEvent пишет событие аудита в той же транзакции, что и
// мутация.
func writeBookingEvent(ctx context.Context, tx *gorm.DB, eventType model.EventType, bookingID uint, in BookingInput) error {
	details, err := json.Marshal(map[string]any{
		"client_id":       in.ClientID,
		"photographer_id": in.PhotographerID,
		"date":            in.Date,
		"location":        in.Location,
		"service_ids":     in.ServiceIDs,
	})
	if err != nil {
		return fmt.Errorf("marshal event details: %w", err)
	}
	id := bookingID
	event := model.Event{
		EventType: eventType,
		BookingID: &id,
		Details:   datatypes.JSON(details),
	}
	if err := repository.NewGormEventRepository(tx).Create(ctx, &event); err != nil {
		return fmt.Errorf("write %s event: %w", eventType, err)
	}
	return nil
}

func mapSummary(b *model.Booking) BookingSummary {
	clientName := UnknownClientName
	if b.Client != nil {
		clientName = b.Client.Name
	}
	photographerName := UnknownPhotographerName
	if b.Photographer != nil {
		photographerName = b.Photographer.Name
	}
	location := ""
	if b.Location != nil {
		location = *b.Location
	}
	return BookingSummary{
		BookingID:        b.ID,
		Date:             b.Date,
		Location:         location,
		ClientName:       clientName,
		PhotographerName: photographerName,
		ServiceCount:     len(b.Services),
	}
}

func mapSummaries(bookings []model.Booking) []BookingSummary {
	summaries := make([]BookingSummary, 0, len(bookings))
	for i := range bookings {
		summaries = append(summaries, mapSummary(&bookings[i]))
	}
	return summaries
}

func mapDetail(b *model.Booking) BookingDetail {
	services := make([]ServiceDTO, 0, len(b.Services))
	for _, bs := range b.Services {
		services = append(services, mapLinkedService(bs))
	}
	return BookingDetail{
		BookingSummary: mapSummary(b),
		ClientID:       b.ClientID,
		PhotographerID: b.PhotographerID,
		Services:       services,
	}
}

func mapLinkedService(bs model.BookingService) ServiceDTO {
	dto := ServiceDTO{ServiceID: bs.ServiceID}
	if bs.Service != nil {
		dto.Name = bs.Service.Name
		dto.Price = bs.Service.Price
	}
	return dto
}
