package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/model"
	"github.com/amirlan/photobooking/internal/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

// seedCatalog creates one client, one photographer and two services.
func seedCatalog(t *testing.T, db *gorm.DB) (client model.Client, photographer model.Photographer, wedding, editing model.Service) {
	t.Helper()
	client = model.Client{Name: "Lisa", Email: "lisa@example.com", Phone: "+1-555-0101"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	photographer = model.Photographer{Name: "Jim", Specialty: "Wedding"}
	if err := db.Create(&photographer).Error; err != nil {
		t.Fatalf("seed photographer: %v", err)
	}
	wedding = model.Service{Name: "Wedding Package", Price: 500.00}
	if err := db.Create(&wedding).Error; err != nil {
		t.Fatalf("seed wedding service: %v", err)
	}
	editing = model.Service{Name: "Photo Editing", Price: 150.00}
	if err := db.Create(&editing).Error; err != nil {
		t.Fatalf("seed editing service: %v", err)
	}
	return client, photographer, wedding, editing
}

func TestBookingService_CreateAndGetDetail(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, editing := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())
	ctx := context.Background()

	loc := "Central Park"
	date := time.Date(2026, 6, 20, 14, 0, 0, 0, time.UTC)
	detail, err := svc.Create(ctx, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           date,
		Location:       &loc,
		ServiceIDs:     []uint{editing.ID, wedding.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if detail.ClientName != "Lisa" {
		t.Fatalf("client name = %q, want Lisa", detail.ClientName)
	}
	if detail.PhotographerName != "Jim" {
		t.Fatalf("photographer name = %q, want Jim", detail.PhotographerName)
	}
	if detail.Location != loc {
		t.Fatalf("location = %q, want %q", detail.Location, loc)
	}
	if detail.ServiceCount != 2 {
		t.Fatalf("service count = %d, want 2", detail.ServiceCount)
	}
	if len(detail.Services) != 2 {
		t.Fatalf("services len = %d, want 2", len(detail.Services))
	}
	// Services come back ordered by service id regardless of input order.
	if detail.Services[0].ServiceID != wedding.ID || detail.Services[1].ServiceID != editing.ID {
		t.Fatalf("service order = (%d, %d), want (%d, %d)",
			detail.Services[0].ServiceID, detail.Services[1].ServiceID, wedding.ID, editing.ID)
	}
	if detail.Services[0].Name != "Wedding Package" || detail.Services[0].Price != 500.00 {
		t.Fatalf("first service = %q %.2f, want Wedding Package 500.00",
			detail.Services[0].Name, detail.Services[0].Price)
	}

	// Audit trail row written in the same transaction.
	var events []model.Event
	if err := db.Find(&events).Error; err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(events) != 1 || events[0].EventType != model.EventTypeBookingCreated {
		t.Fatalf("events = %+v, want one booking_created", events)
	}
}

func TestBookingService_CreateMissingClientRollsBack(t *testing.T) {
	db := openTestDB(t)
	_, photographer, wedding, _ := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())

	_, err := svc.Create(context.Background(), BookingInput{
		ClientID:       9999,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID},
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	var n int64
	if err := db.Model(&model.Booking{}).Count(&n).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if n != 0 {
		t.Fatalf("bookings persisted = %d, want 0", n)
	}
}

func TestBookingService_CreateDuplicateServiceIDsConflict(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, _ := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())

	_, err := svc.Create(context.Background(), BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID, wedding.ID},
	})
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	// Whole transaction rolled back, nothing persisted.
	var bookings, links int64
	if err := db.Model(&model.Booking{}).Count(&bookings).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if err := db.Model(&model.BookingService{}).Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if bookings != 0 || links != 0 {
		t.Fatalf("bookings = %d, links = %d, want 0/0", bookings, links)
	}
}

func TestBookingService_UpdateReplacesServiceSelection(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, editing := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())
	ctx := context.Background()

	detail, err := svc.Create(ctx, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID, editing.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Update(ctx, detail.BookingID, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{editing.ID},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	after, err := svc.GetDetail(ctx, detail.BookingID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if len(after.Services) != 1 || after.Services[0].ServiceID != editing.ID {
		t.Fatalf("services after update = %+v, want only %d", after.Services, editing.ID)
	}

	// Empty selection clears all rows.
	err = svc.Update(ctx, detail.BookingID, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     nil,
	})
	if err != nil {
		t.Fatalf("Update empty: %v", err)
	}
	var links int64
	if err := db.Model(&model.BookingService{}).Where("booking_id = ?", detail.BookingID).Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 0 {
		t.Fatalf("links after empty update = %d, want 0", links)
	}
}

func TestBookingService_DeleteRemovesLinks(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, editing := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())
	ctx := context.Background()

	detail, err := svc.Create(ctx, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID, editing.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, detail.BookingID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var bookings, links int64
	if err := db.Model(&model.Booking{}).Count(&bookings).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if err := db.Model(&model.BookingService{}).Count(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if bookings != 0 || links != 0 {
		t.Fatalf("bookings = %d, links = %d after delete, want 0/0", bookings, links)
	}

	if err := svc.Delete(ctx, detail.BookingID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestBookingService_UnknownClientFallback(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, _ := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())
	ctx := context.Background()

	detail, err := svc.Create(ctx, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Remove the client out of band; the summary must still assemble.
	if err := db.Exec("DELETE FROM clients WHERE id = ?", client.ID).Error; err != nil {
		t.Fatalf("delete client row: %v", err)
	}

	after, err := svc.GetDetail(ctx, detail.BookingID)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}
	if after.ClientName != UnknownClientName {
		t.Fatalf("client name = %q, want %q", after.ClientName, UnknownClientName)
	}
	if after.PhotographerName != "Jim" {
		t.Fatalf("photographer name = %q, want Jim", after.PhotographerName)
	}
}

func TestBookingService_ListByPhotographerWindow(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, _ := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())
	ctx := context.Background()

	june := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	july := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{june, july} {
		if _, err := svc.Create(ctx, BookingInput{
			ClientID:       client.ID,
			PhotographerID: photographer.ID,
			Date:           d,
			ServiceIDs:     []uint{wedding.ID},
		}); err != nil {
			t.Fatalf("Create at %s: %v", d, err)
		}
	}

	all, err := svc.ListByPhotographer(ctx, photographer.ID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("ListByPhotographer: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d, want 2", len(all))
	}

	juneOnly, err := svc.ListByPhotographer(ctx, photographer.ID,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("ListByPhotographer windowed: %v", err)
	}
	if len(juneOnly) != 1 || !juneOnly[0].Date.Equal(june) {
		t.Fatalf("windowed = %+v, want single june booking", juneOnly)
	}

	// Open-ended lower bound only.
	fromJuly, err := svc.ListByPhotographer(ctx, photographer.ID,
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	if err != nil {
		t.Fatalf("ListByPhotographer from-only: %v", err)
	}
	if len(fromJuly) != 1 || !fromJuly[0].Date.Equal(july) {
		t.Fatalf("from-only = %+v, want single july booking", fromJuly)
	}

	if _, err := svc.ListByPhotographer(ctx, 9999, time.Time{}, time.Time{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing photographer err = %v, want ErrNotFound", err)
	}

	// A window nothing falls into is an empty result, reported NotFound.
	_, err = svc.ListByPhotographer(ctx, photographer.ID,
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("empty window err = %v, want ErrNotFound", err)
	}
}

func TestBookingService_ListByPhotographerNoBookingsIsNotFound(t *testing.T) {
	db := openTestDB(t)
	photographer := model.Photographer{Name: "Ann", Specialty: "Portrait"}
	if err := db.Create(&photographer).Error; err != nil {
		t.Fatalf("seed photographer: %v", err)
	}
	svc := NewBookingService(db, logger.NewNop())

	_, err := svc.ListByPhotographer(context.Background(), photographer.ID, time.Time{}, time.Time{})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("zero bookings err = %v, want ErrNotFound", err)
	}
}

func TestBookingService_HistorySurvivesDeletion(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, editing := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())
	ctx := context.Background()

	detail, err := svc.Create(ctx, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	err = svc.Update(ctx, detail.BookingID, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{editing.ID},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := svc.Delete(ctx, detail.BookingID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	events, err := svc.History(ctx, detail.BookingID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want created+updated+deleted", len(events))
	}
	seen := map[model.EventType]bool{}
	for _, e := range events {
		seen[e.EventType] = true
	}
	if !seen[model.EventTypeBookingCreated] || !seen[model.EventTypeBookingUpdated] || !seen[model.EventTypeBookingDeleted] {
		t.Fatalf("event types = %v", seen)
	}

	if _, err := svc.History(ctx, 9999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("history of unknown booking err = %v, want ErrNotFound", err)
	}
}

func TestBookingService_ListByServiceEmptyIsNotFound(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, editing := seedCatalog(t, db)
	svc := NewBookingService(db, logger.NewNop())
	ctx := context.Background()

	detail, err := svc.Create(ctx, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := svc.ListByService(ctx, wedding.ID)
	if err != nil {
		t.Fatalf("ListByService: %v", err)
	}
	if len(found) != 1 || found[0].BookingID != detail.BookingID {
		t.Fatalf("by service = %+v, want booking %d", found, detail.BookingID)
	}

	if _, err := svc.ListByService(ctx, editing.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unused service err = %v, want ErrNotFound", err)
	}

	if _, err := svc.ServicesForBooking(ctx, 9999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing booking err = %v, want ErrNotFound", err)
	}
	services, err := svc.ServicesForBooking(ctx, detail.BookingID)
	if err != nil {
		t.Fatalf("ServicesForBooking: %v", err)
	}
	if len(services) != 1 || services[0].Name != "Wedding Package" {
		t.Fatalf("services = %+v, want Wedding Package", services)
	}
}
