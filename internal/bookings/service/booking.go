package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JensIssa/HotelBooking-Clean/internal/bookings/validator"
	"github.com/JensIssa/HotelBooking-Clean/internal/events"
	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	"github.com/JensIssa/HotelBooking-Clean/pkg/config"
	apperrors "github.com/JensIssa/HotelBooking-Clean/pkg/errors"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

// BookingService is the availability and conflict-detection engine. All
// date arguments are normalized to day granularity on entry; overlap uses
// inclusive-date semantics throughout (see model.Booking.Overlaps).
type BookingService interface {
	// Create books the first available room for the requested period.
	// It returns false with a nil error when every room is taken, which
	// is an expected business outcome, not a failure.
	Create(ctx context.Context, booking *model.Booking) (bool, error)

	// FindAvailableRoom returns the id of the first room, in storage
	// order, free for the whole period. The second result is false when
	// no room qualifies. The start date must lie strictly in the future
	// and not after the end date.
	FindAvailableRoom(ctx context.Context, start, end time.Time) (int, bool, error)

	// FullyOccupiedDates lists, in ascending order, every day in
	// [start, end] on which all rooms are booked.
	FullyOccupiedDates(ctx context.Context, start, end time.Time) ([]time.Time, error)

	GetByID(ctx context.Context, id int) (*model.Booking, error)
	GetAll(ctx context.Context) ([]*model.Booking, error)

	// Edit replaces the stored booking's active flag, customer, dates
	// and room. A missing id is a silent no-op. Overlaps introduced by
	// an edit are not re-validated; callers changing dates or rooms are
	// expected to check availability first.
	Edit(ctx context.Context, booking *model.Booking) error

	// Remove deletes the booking if it exists; a missing id is a silent
	// no-op.
	Remove(ctx context.Context, id int) error
}

type bookingService struct {
	bookingRepo storage.Repository[*model.Booking]
	roomRepo    storage.Repository[*model.Room]
	locker      storage.Locker
	validator   *validator.BookingValidator
	events      events.Publisher
	cfg         *config.Config
}

func NewBookingService(
	bookingRepo storage.Repository[*model.Booking],
	roomRepo storage.Repository[*model.Room],
	locker storage.Locker,
	validator *validator.BookingValidator,
	events events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		locker:      locker,
		validator:   validator,
		events:      events,
		cfg:         cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (bool, error) {
	s.normalize(booking)
	if err := s.validate(booking); err != nil {
		return false, err
	}

	roomID, found, err := s.FindAvailableRoom(ctx, booking.StartDate, booking.EndDate)
	if err != nil {
		return false, err
	}
	if !found {
		s.cfg.Log.Info("No room available for requested period",
			"start_date", booking.StartDate,
			"end_date", booking.EndDate,
		)
		return false, nil
	}

	// The room search and the insert below are a check-then-act pair: a
	// concurrent caller could book the same room between them. Creation
	// is serialized per room through an advisory lock, and the room's
	// bookings are re-read under the lock before the insert.
	lockKey := roomLockKey(roomID)
	if err := s.locker.Acquire(ctx, lockKey, s.cfg.BookingLockTTL); err != nil {
		if errors.Is(err, storage.ErrLockHeld) {
			return false, apperrors.Conflict("This room is currently being booked by another request. Please try again.")
		}
		return false, apperrors.Internal("Failed to acquire booking lock", err)
	}
	defer func() {
		if releaseErr := s.locker.Release(ctx, lockKey); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_key", lockKey, "error", releaseErr)
		}
	}()

	free, err := s.roomIsFree(ctx, roomID, booking.StartDate, booking.EndDate)
	if err != nil {
		return false, err
	}
	if !free {
		return false, apperrors.Conflict("The room was booked for an overlapping period by a concurrent request. Please try again.")
	}

	booking.RoomID = roomID
	booking.IsActive = true
	booking.CreatedAt = time.Now().UTC()
	if err := s.bookingRepo.Add(ctx, booking); err != nil {
		return false, apperrors.Internal("Failed to create booking", err)
	}

	s.events.BookingCreated(ctx, booking)
	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"customer_id", booking.CustomerID,
		"start_date", booking.StartDate,
		"end_date", booking.EndDate,
	)
	return true, nil
}

func (s *bookingService) FindAvailableRoom(ctx context.Context, start, end time.Time) (int, bool, error) {
	start, end = model.Day(start), model.Day(end)
	if !start.After(model.Today()) || start.After(end) {
		return 0, false, apperrors.InvalidInput("The start date cannot be in the past or later than the end date.")
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return 0, false, apperrors.Internal("Failed to retrieve rooms", err)
	}
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return 0, false, apperrors.Internal("Failed to retrieve bookings", err)
	}

	active := activeOnly(bookings)
	for _, room := range rooms {
		if roomHasNoOverlap(active, room.ID, start, end) {
			return room.ID, true, nil
		}
	}

	return 0, false, nil
}

func (s *bookingService) FullyOccupiedDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	start, end = model.Day(start), model.Day(end)
	if start.After(end) {
		return nil, apperrors.InvalidInput("The start date cannot be later than the end date.")
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	// Without bookings no day can be occupied, and without rooms "all
	// rooms taken" is meaningless: a stray booking referencing a removed
	// room must not mark every day as full.
	occupied := []time.Time{}
	if len(bookings) == 0 || len(rooms) == 0 {
		return occupied, nil
	}

	active := activeOnly(bookings)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		covering := 0
		for _, b := range active {
			if b.Covers(d) {
				covering++
			}
		}
		if covering >= len(rooms) {
			occupied = append(occupied, d)
		}
	}

	return occupied, nil
}

func (s *bookingService) GetByID(ctx context.Context, id int) (*model.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) Edit(ctx context.Context, booking *model.Booking) error {
	s.normalize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	existing, err := s.bookingRepo.Get(ctx, booking.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return apperrors.Internal("Failed to retrieve booking", err)
	}

	existing.IsActive = booking.IsActive
	existing.CustomerID = booking.CustomerID
	existing.EndDate = booking.EndDate
	existing.StartDate = booking.StartDate
	existing.RoomID = booking.RoomID

	if err := s.bookingRepo.Edit(ctx, existing); err != nil {
		return apperrors.Internal("Failed to update booking", err)
	}

	s.events.BookingUpdated(ctx, existing)
	s.cfg.Log.Info("Booking updated successfully", "id", existing.ID)
	return nil
}

func (s *bookingService) Remove(ctx context.Context, id int) error {
	if _, err := s.bookingRepo.Get(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return apperrors.Internal("Failed to retrieve booking", err)
	}

	if err := s.bookingRepo.Remove(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.events.BookingRemoved(ctx, id)
	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *bookingService) normalize(b *model.Booking) {
	b.StartDate = model.Day(b.StartDate)
	b.EndDate = model.Day(b.EndDate)
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// roomIsFree re-reads the booking set and checks the room for overlaps.
// Called under the room's advisory lock.
func (s *bookingService) roomIsFree(ctx context.Context, roomID int, start, end time.Time) (bool, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return false, apperrors.Internal("Failed to re-check room bookings", err)
	}
	return roomHasNoOverlap(activeOnly(bookings), roomID, start, end), nil
}

func activeOnly(bookings []*model.Booking) []*model.Booking {
	active := make([]*model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active
}

func roomHasNoOverlap(active []*model.Booking, roomID int, start, end time.Time) bool {
	for _, b := range active {
		if b.RoomID == roomID && b.Overlaps(start, end) {
			return false
		}
	}
	return true
}

func roomLockKey(roomID int) string {
	return fmt.Sprintf("booking_room_%d", roomID)
}
