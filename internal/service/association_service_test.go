package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirlan/photobooking/internal/logger"
	"github.com/amirlan/photobooking/internal/repository"
)

func TestAssociationService_CreateGetDelete(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, editing := seedCatalog(t, db)
	bookings := NewBookingService(db, logger.NewNop())
	svc := NewAssociationService(db, logger.NewNop())
	ctx := context.Background()

	detail, err := bookings.Create(ctx, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID},
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	bs, err := svc.Create(ctx, detail.BookingID, editing.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if bs.BookingID != detail.BookingID || bs.ServiceID != editing.ID {
		t.Fatalf("link = %+v, want (%d, %d)", bs, detail.BookingID, editing.ID)
	}

	got, err := svc.Get(ctx, detail.BookingID, editing.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ServiceID != editing.ID {
		t.Fatalf("got service = %d, want %d", got.ServiceID, editing.ID)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("links = %d, want 2", len(all))
	}

	if err := svc.Delete(ctx, detail.BookingID, editing.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, detail.BookingID, editing.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("get deleted err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, detail.BookingID, editing.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestAssociationService_DuplicatePairConflict(t *testing.T) {
	db := openTestDB(t)
	client, photographer, wedding, _ := seedCatalog(t, db)
	bookings := NewBookingService(db, logger.NewNop())
	svc := NewAssociationService(db, logger.NewNop())
	ctx := context.Background()

	detail, err := bookings.Create(ctx, BookingInput{
		ClientID:       client.ID,
		PhotographerID: photographer.ID,
		Date:           time.Now().UTC(),
		ServiceIDs:     []uint{wedding.ID},
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := svc.Create(ctx, detail.BookingID, wedding.ID); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("duplicate pair err = %v, want ErrConflict", err)
	}
}

func TestAssociationService_MissingParents(t *testing.T) {
	db := openTestDB(t)
	_, _, wedding, _ := seedCatalog(t, db)
	svc := NewAssociationService(db, logger.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 9999, wedding.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing booking err = %v, want ErrNotFound", err)
	}
}
