package service

import (
	"context"
	"errors"

	"github.com/JensIssa/HotelBooking-Clean/internal/storage"
	apperrors "github.com/JensIssa/HotelBooking-Clean/pkg/errors"
	"github.com/JensIssa/HotelBooking-Clean/pkg/model"
	"github.com/JensIssa/HotelBooking-Clean/pkg/sanitizer"
)

// CustomerService manages the customer register.
type CustomerService interface {
	GetByID(ctx context.Context, id int) (*model.Customer, error)
	GetAll(ctx context.Context) ([]*model.Customer, error)
	Add(ctx context.Context, customer *model.Customer) error
	Edit(ctx context.Context, customer *model.Customer) error
	Remove(ctx context.Context, id int) error
}

type customerService struct {
	repo storage.Repository[*model.Customer]
}

func NewCustomerService(repo storage.Repository[*model.Customer]) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("Customer id must be a positive integer")
	}

	customer, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Customer", id)
		}
		return nil, apperrors.Internal("failed to fetch customer", err)
	}
	return customer, nil
}

func (s *customerService) GetAll(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch customers", err)
	}
	return customers, nil
}

func (s *customerService) Add(ctx context.Context, customer *model.Customer) error {
	if customer == nil {
		return apperrors.InvalidInput("Customer is required")
	}
	customer.Name = sanitizer.NormalizeName(customer.Name)
	if customer.Name == "" {
		return apperrors.InvalidInput("Customer name is required")
	}

	if err := s.repo.Add(ctx, customer); err != nil {
		if errors.Is(err, storage.ErrDuplicateID) {
			return apperrors.InvalidInput("Customer id is already taken")
		}
		return apperrors.Internal("failed to add customer", err)
	}
	return nil
}

func (s *customerService) Edit(ctx context.Context, customer *model.Customer) error {
	if customer == nil {
		return apperrors.InvalidInput("Customer is required")
	}
	if customer.ID <= 0 {
		return apperrors.InvalidInput("Customer id must be a positive integer")
	}
	customer.Name = sanitizer.NormalizeName(customer.Name)
	if customer.Name == "" {
		return apperrors.InvalidInput("Customer name is required")
	}

	if err := s.repo.Edit(ctx, customer); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFoundWithID("Customer", customer.ID)
		}
		return apperrors.Internal("failed to edit customer", err)
	}
	return nil
}

func (s *customerService) Remove(ctx context.Context, id int) error {
	if id <= 0 {
		return apperrors.InvalidInput("Customer id must be a positive integer")
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFoundWithID("Customer", id)
		}
		return apperrors.Internal("failed to remove customer", err)
	}
	return nil
}
