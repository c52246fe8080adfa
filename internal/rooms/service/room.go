package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	apperrors "github.com/JensIssa/HotelBooking-Clean/pkg/errors"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
	"github.com/JensIssa/HotelBooking-Clean/pkg/sanitizer"
)

// RoomService manages the hotel room inventory.
type RoomService interface {
	GetByID(ctx context.Context, id int) (*model.Room, error)
	GetAll(ctx context.Context) ([]*model.Room, error)
	Add(ctx context.Context, room *model.Room) error
	Edit(ctx context.Context, room *model.Room) error
	Remove(ctx context.Context, id int) error
}

type roomService struct {
	repo storage.Repository[*model.Room]
}

func NewRoomService(repo storage.Repository[*model.Room]) RoomService {
	return &roomService{repo: repo}
}

func (s *roomService) GetByID(ctx context.Context, id int) (*model.Room, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("Room id must be a positive integer")
	}

	room, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", id)
		}
		return nil, apperrors.Internal("failed to fetch room", err)
	}
	return room, nil
}

func (s *roomService) GetAll(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch rooms", err)
	}
	return rooms, nil
}

func (s *roomService) Add(ctx context.Context, room *model.Room) error {
	if room == nil {
		return apperrors.InvalidInput("Room is required")
	}
	if room.ID < 0 {
		return apperrors.InvalidInput("Room id must be a positive integer")
	}
	room.Description = sanitizer.NormalizeDescription(room.Description)

	if err := s.repo.Add(ctx, room); err != nil {
		if errors.Is(err, storage.ErrDuplicateID) {
			return apperrors.InvalidInput(fmt.Sprintf("Room with id %d already exists", room.ID))
		}
		return apperrors.Internal("failed to add room", err)
	}
	return nil
}

func (s *roomService) Edit(ctx context.Context, room *model.Room) error {
	if room == nil {
		return apperrors.InvalidInput("Room is required")
	}
	if room.ID <= 0 {
		return apperrors.InvalidInput("Room id must be a positive integer")
	}
	room.Description = sanitizer.NormalizeDescription(room.Description)

	if err := s.repo.Edit(ctx, room); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFoundWithID("Room", room.ID)
		}
		return apperrors.Internal("failed to edit room", err)
	}
	return nil
}

func (s *roomService) Remove(ctx context.Context, id int) error {
	if id <= 0 {
		return apperrors.InvalidInput("Room id must be a positive integer")
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFoundWithID("Room", id)
		}
		return apperrors.Internal("failed to remove room", err)
	}
	return nil
}
