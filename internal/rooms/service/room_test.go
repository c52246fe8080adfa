package service

import (
	"context"
	"testing"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	apperrors "github.com/JensIssa/HotelBooking-Clean/pkg/errors"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

type mockRoomRepository struct {
	getAllFunc func(ctx context.Context) ([]*model.Room, error)
	getFunc    func(ctx context.Context, id int) (*model.Room, error)
	addFunc    func(ctx context.Context, room *model.Room) error
	editFunc   func(ctx context.Context, room *model.Room) error
	removeFunc func(ctx context.Context, id int) error
}

func (m *mockRoomRepository) GetAll(ctx context.Context) ([]*model.Room, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []*model.Room{}, nil
}

func (m *mockRoomRepository) Get(ctx context.Context, id int) (*model.Room, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, storage.ErrNotFound
}

func (m *mockRoomRepository) Add(ctx context.Context, room *model.Room) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, room)
	}
	return nil
}

func (m *mockRoomRepository) Edit(ctx context.Context, room *model.Room) error {
	if m.editFunc != nil {
		return m.editFunc(ctx, room)
	}
	return nil
}

func (m *mockRoomRepository) Remove(ctx context.Context, id int) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, id)
	}
	return nil
}

func assertCode(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, appErr.Code)
	}
	return appErr
}

func TestGetByID(t *testing.T) {
	repo := &mockRoomRepository{
		getFunc: func(ctx context.Context, id int) (*model.Room, error) {
			if id == 1 {
				return &model.Room{ID: 1, Description: "Single"}, nil
			}
			return nil, storage.ErrNotFound
		},
	}
	service := NewRoomService(repo)

	room, err := service.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Description != "Single" {
		t.Errorf("unexpected room: %+v", room)
	}

	_, err = service.GetByID(context.Background(), 2)
	assertCode(t, err, apperrors.CodeNotFound)

	_, err = service.GetByID(context.Background(), 0)
	assertCode(t, err, apperrors.CodeInvalidInput)

	_, err = service.GetByID(context.Background(), -3)
	assertCode(t, err, apperrors.CodeInvalidInput)
}

func TestAdd_NormalizesDescription(t *testing.T) {
	var added *model.Room
	repo := &mockRoomRepository{
		addFunc: func(ctx context.Context, room *model.Room) error {
			added = room
			return nil
		},
	}
	service := NewRoomService(repo)

	room := &model.Room{Description: "  Deluxe   Suite  "}
	if err := service.Add(context.Background(), room); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added == nil || added.Description != "Deluxe Suite" {
		t.Errorf("expected normalized description, got %+v", added)
	}
}

func TestAdd_Rejections(t *testing.T) {
	service := NewRoomService(&mockRoomRepository{
		addFunc: func(ctx context.Context, room *model.Room) error {
			return storage.ErrDuplicateID
		},
	})

	err := service.Add(context.Background(), nil)
	assertCode(t, err, apperrors.CodeInvalidInput)

	err = service.Add(context.Background(), &model.Room{ID: -1})
	assertCode(t, err, apperrors.CodeInvalidInput)

	err = service.Add(context.Background(), &model.Room{ID: 5, Description: "Taken"})
	appErr := assertCode(t, err, apperrors.CodeInvalidInput)
	if appErr.Message != "Room with id 5 already exists" {
		t.Errorf("unexpected message: %s", appErr.Message)
	}
}

func TestEdit(t *testing.T) {
	var edited *model.Room
	repo := &mockRoomRepository{
		editFunc: func(ctx context.Context, room *model.Room) error {
			if room.ID != 1 {
				return storage.ErrNotFound
			}
			edited = room
			return nil
		},
	}
	service := NewRoomService(repo)

	if err := service.Edit(context.Background(), &model.Room{ID: 1, Description: "Updated"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edited == nil || edited.Description != "Updated" {
		t.Errorf("expected edit to reach storage, got %+v", edited)
	}

	err := service.Edit(context.Background(), &model.Room{ID: 9, Description: "Missing"})
	assertCode(t, err, apperrors.CodeNotFound)

	err = service.Edit(context.Background(), &model.Room{ID: 0})
	assertCode(t, err, apperrors.CodeInvalidInput)

	err = service.Edit(context.Background(), nil)
	assertCode(t, err, apperrors.CodeInvalidInput)
}

func TestRemove(t *testing.T) {
	removedID := 0
	repo := &mockRoomRepository{
		removeFunc: func(ctx context.Context, id int) error {
			if id != 1 {
				return storage.ErrNotFound
			}
			removedID = id
			return nil
		},
	}
	service := NewRoomService(repo)

	if err := service.Remove(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removedID != 1 {
		t.Error("expected remove to reach storage")
	}

	err := service.Remove(context.Background(), 9)
	assertCode(t, err, apperrors.CodeNotFound)

	err = service.Remove(context.Background(), 0)
	assertCode(t, err, apperrors.CodeInvalidInput)
}
