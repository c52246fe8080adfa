package service

import (
	"context"
	"testing"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	apperrors "github.com/JensIssa/HotelBooking-Clean/pkg/errors"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
)

type mockCustomerRepository struct {
	getAllFunc func(ctx context.Context) ([]*model.Customer, error)
	getFunc    func(ctx context.Context, id int) (*model.Customer, error)
	addFunc    func(ctx context.Context, customer *model.Customer) error
	editFunc   func(ctx context.Context, customer *model.Customer) error
	removeFunc func(ctx context.Context, id int) error
}

func (m *mockCustomerRepository) GetAll(ctx context.Context) ([]*model.Customer, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []*model.Customer{}, nil
}

func (m *mockCustomerRepository) Get(ctx context.Context, id int) (*model.Customer, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, storage.ErrNotFound
}

func (m *mockCustomerRepository) Add(ctx context.Context, customer *model.Customer) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, customer)
	}
	return nil
}

func (m *mockCustomerRepository) Edit(ctx context.Context, customer *model.Customer) error {
	if m.editFunc != nil {
		return m.editFunc(ctx, customer)
	}
	return nil
}

func (m *mockCustomerRepository) Remove(ctx context.Context, id int) error {
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
	repo := &mockCustomerRepository{
		getFunc: func(ctx context.Context, id int) (*model.Customer, error) {
			if id == 1 {
				return &model.Customer{ID: 1, Name: "John Smith"}, nil
			}
			return nil, storage.ErrNotFound
		},
	}
	service := NewCustomerService(repo)

	customer, err := service.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.Name != "John Smith" {
		t.Errorf("unexpected customer: %+v", customer)
	}

	_, err = service.GetByID(context.Background(), 2)
	assertCode(t, err, apperrors.CodeNotFound)

	_, err = service.GetByID(context.Background(), 0)
	assertCode(t, err, apperrors.CodeInvalidInput)
}

func TestAdd_NormalizesName(t *testing.T) {
	var added *model.Customer
	repo := &mockCustomerRepository{
		addFunc: func(ctx context.Context, customer *model.Customer) error {
			added = customer
			return nil
		},
	}
	service := NewCustomerService(repo)

	customer := &model.Customer{Name: "  Jane   Doe  "}
	if err := service.Add(context.Background(), customer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added == nil || added.Name != "Jane Doe" {
		t.Errorf("expected normalized name, got %+v", added)
	}
}

func TestAdd_Rejections(t *testing.T) {
	service := NewCustomerService(&mockCustomerRepository{})

	err := service.Add(context.Background(), nil)
	assertCode(t, err, apperrors.CodeInvalidInput)

	err = service.Add(context.Background(), &model.Customer{Name: "   "})
	assertCode(t, err, apperrors.CodeInvalidInput)
}

func TestEdit(t *testing.T) {
	repo := &mockCustomerRepository{
		editFunc: func(ctx context.Context, customer *model.Customer) error {
			if customer.ID != 1 {
				return storage.ErrNotFound
			}
			return nil
		},
	}
	service := NewCustomerService(repo)

	if err := service.Edit(context.Background(), &model.Customer{ID: 1, Name: "John Smith"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := service.Edit(context.Background(), &model.Customer{ID: 9, Name: "Missing"})
	assertCode(t, err, apperrors.CodeNotFound)

	err = service.Edit(context.Background(), &model.Customer{ID: 0, Name: "No ID"})
	assertCode(t, err, apperrors.CodeInvalidInput)

	err = service.Edit(context.Background(), nil)
	assertCode(t, err, apperrors.CodeInvalidInput)
}

func TestRemove(t *testing.T) {
	repo := &mockCustomerRepository{
		removeFunc: func(ctx context.Context, id int) error {
			if id != 1 {
				return storage.ErrNotFound
			}
			return nil
		},
	}
	service := NewCustomerService(repo)

	if err := service.Remove(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := service.Remove(context.Background(), 9)
	assertCode(t, err, apperrors.CodeNotFound)

	err = service.Remove(context.Background(), -1)
	assertCode(t, err, apperrors.CodeInvalidInput)
}
