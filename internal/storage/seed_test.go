package storage_test

import (
	"context"
	"testing"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	"github.com/JensIssa/HotelBooking-Clean/internal/storage/memory"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	rooms := memory.NewRepository[*model.Room](func(r *model.Room) *model.Room {
		clone := *r
		return &clone
	})
	customers := memory.NewRepository[*model.Customer](func(c *model.Customer) *model.Customer {
		clone := *c
		return &clone
	})
	bookings := memory.NewRepository[*model.Booking](func(b *model.Booking) *model.Booking {
		clone := *b
		return &clone
	})

	if err := storage.Seed(ctx, rooms, customers, bookings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotRooms, _ := rooms.GetAll(ctx)
	gotCustomers, _ := customers.GetAll(ctx)
	gotBookings, _ := bookings.GetAll(ctx)
	if len(gotRooms) != 2 || len(gotCustomers) != 2 || len(gotBookings) != 2 {
		t.Fatalf("expected 2 of each, got %d rooms, %d customers, %d bookings",
			len(gotRooms), len(gotCustomers), len(gotBookings))
	}

	for _, b := range gotBookings {
		if !b.IsActive {
			t.Errorf("seed booking %d should be active", b.ID)
		}
		if !b.StartDate.After(model.Today()) {
			t.Errorf("seed booking %d should start in the future", b.ID)
		}
	}

	// Seeding again must not duplicate anything.
	if err := storage.Seed(ctx, rooms, customers, bookings); err != nil {
		t.Fatalf("unexpected error on second seed: %v", err)
	}
	gotRooms, _ = rooms.GetAll(ctx)
	gotBookings, _ = bookings.GetAll(ctx)
	if len(gotRooms) != 2 || len(gotBookings) != 2 {
		t.Errorf("second seed must be a no-op, got %d rooms, %d bookings", len(gotRooms), len(gotBookings))
	}
}
