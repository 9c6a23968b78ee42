package worktypes

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes price-list management.
type Service interface {
	Ensure(ctx context.Context, name string, seedPrice decimal.Decimal) (*models.WorkType, error)
	List(ctx context.Context, activeOnly bool) ([]models.WorkType, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.NullDecimal) (*models.WorkType, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	ImportDefaults(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

// NewService wires a work-type service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work type repository is required")
	}
	return &service{repo: repo}, nil
}

// Ensure resolves a job's type name against the price list, creating the row
// on first sight with the submitted price as its default. Matching is
// case-insensitive so free-typed names do not multiply list entries.
func (s *service) Ensure(ctx context.Context, name string, seedPrice decimal.Decimal) (*models.WorkType, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work type name is required")
	}

	existing, err := s.repo.FindByName(ctx, trimmed)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up work type")
	}

	workType := &models.WorkType{Name: trimmed, IsActive: true}
	if seedPrice.IsPositive() {
		workType.DefaultPrice = decimal.NullDecimal{Decimal: seedPrice, Valid: true}
	}
	if err := s.repo.Create(ctx, workType); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create work type")
	}
	return workType, nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]models.WorkType, error) {
	workTypes, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list work types")
	}
	return workTypes, nil
}

func (s *service) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.NullDecimal) (*models.WorkType, error) {
	workType, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	workType.DefaultPrice = price
	if err := s.repo.Update(ctx, workType); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update work type price")
	}
	return workType, nil
}

// Deactivate soft-deletes a list entry. Jobs keep their type name snapshot,
// so history is unaffected.
func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	workType, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	workType.IsActive = false
	if err := s.repo.Update(ctx, workType); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deactivate work type")
	}
	return nil
}

// ImportDefaults loads the built-in price list, refreshing existing rows by
// name. Returns the number of rows written.
func (s *service) ImportDefaults(ctx context.Context) (int, error) {
	for _, item := range DefaultPriceList {
		workType := &models.WorkType{
			Name:         strings.TrimSpace(item.Name),
			DefaultPrice: ParsePriceText(item.Price),
			IsActive:     true,
		}
		if err := s.repo.Upsert(ctx, workType); err != nil {
			return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "import default prices")
		}
	}
	return len(DefaultPriceList), nil
}

func (s *service) get(ctx context.Context, id uuid.UUID) (*models.WorkType, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "work type id is required")
	}
	workType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "work type not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load work type")
	}
	return workType, nil
}
