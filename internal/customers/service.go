package customers

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes customer account management.
type Service interface {
	Ensure(ctx context.Context, name string) (*models.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService wires a customer service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer repository is required")
	}
	return &service{repo: repo}, nil
}

// Ensure returns the customer with the given name, creating it on first use.
// Names are matched case-insensitively so "ahmet" and "Ahmet" resolve to one
// account.
func (s *service) Ensure(ctx context.Context, name string) (*models.Customer, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}

	existing, err := s.repo.FindByName(ctx, trimmed)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up customer")
	}

	customer := &models.Customer{Name: trimmed}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	return customer, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return customer, nil
}

func (s *service) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	return customers, nil
}

func (s *service) Rename(ctx context.Context, id uuid.UUID, name string) (*models.Customer, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if existing, err := s.repo.FindByName(ctx, trimmed); err == nil && existing.ID != id {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "another customer already uses that name")
	}
	if err := s.repo.Rename(ctx, id, trimmed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rename customer")
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete customer")
	}
	return nil
}
