package storage

import (
	"context"
	"errors"

	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

// Seed loads a small demo data set: two rooms, two customers, and two
// active bookings occupying both rooms for a near-future band of days.
// Already-seeded stores are left alone.
func Seed(
	ctx context.Context,
	rooms Repository[*model.Room],
	customers Repository[*model.Customer],
	bookings Repository[*model.Booking],
) error {
	existing, err := rooms.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	seedRooms := []*model.Room{
		{ID: 1, Description: "Single room"},
		{ID: 2, Description: "Double room"},
	}
	for _, r := range seedRooms {
		if err := rooms.Add(ctx, r); err != nil && !errors.Is(err, ErrDuplicateID) {
			return err
		}
	}

	seedCustomers := []*model.Customer{
		{ID: 1, Name: "John Smith"},
		{ID: 2, Name: "Jane Doe"},
	}
	for _, c := range seedCustomers {
		if err := customers.Add(ctx, c); err != nil && !errors.Is(err, ErrDuplicateID) {
			return err
		}
	}

	today := model.Today()
	seedBookings := []*model.Booking{
		{RoomID: 1, CustomerID: 1, StartDate: today.AddDate(0, 0, 4), EndDate: today.AddDate(0, 0, 14), IsActive: true},
		{RoomID: 2, CustomerID: 2, StartDate: today.AddDate(0, 0, 5), EndDate: today.AddDate(0, 0, 14), IsActive: true},
	}
	for _, b := range seedBookings {
		if err := bookings.Add(ctx, b); err != nil {
			return err
		}
	}

	return nil
}
