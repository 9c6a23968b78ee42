package expenses

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseInput carries the writable expense fields.
type ExpenseInput struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// Service exposes workshop expense management.
type Service interface {
	Create(ctx context.Context, input ExpenseInput) (*models.Expense, error)
	List(ctx context.Context) ([]models.Expense, error)
	Update(ctx context.Context, id uuid.UUID, input ExpenseInput) (*models.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

type service struct {
	repo Repository
}

// NewService wires an expense service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "expense repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input ExpenseInput) (*models.Expense, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	expense := &models.Expense{
		Type:        enums.NormalizeExpenseType(input.Type),
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create expense")
	}
	return expense, nil
}

func (s *service) List(ctx context.Context) ([]models.Expense, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list expenses")
	}
	return expenses, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input ExpenseInput) (*models.Expense, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	expense, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	expense.Type = enums.NormalizeExpenseType(input.Type)
	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.Date = input.Date
	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update expense")
	}
	return expense, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete expense")
	}
	return nil
}

func (s *service) TotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	total, err := s.repo.SumBetween(ctx, start, end)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum expenses")
	}
	return total, nil
}

func (s *service) get(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "expense id is required")
	}
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "expense not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load expense")
	}
	return expense, nil
}

func validateInput(input ExpenseInput) error {
	if !input.Amount.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "expense amount must be positive")
	}
	if input.Date.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "expense date is required")
	}
	return nil
}
