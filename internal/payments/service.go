package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentInput carries the writable payment fields. Amounts default to zero;
// at least one of the three must be positive.
type PaymentInput struct {
	CustomerID     uuid.UUID       `json:"customer_id"`
	CashAmount     decimal.Decimal `json:"cash_amount"`
	FineGoldAmount decimal.Decimal `json:"has_amount"`
	SilverAmount   decimal.Decimal `json:"silver_amount"`
	Date           time.Time       `json:"date"`
	Note           string          `json:"note"`
}

// Service exposes user-entered payment management. Auto-generated payments
// are owned by the linkage resolver, which works against the repository
// directly.
type Service interface {
	Create(ctx context.Context, input PaymentInput) (*models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Payment, error)
	Update(ctx context.Context, id uuid.UUID, input PaymentInput) (*models.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService wires a payment service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment repository is required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input PaymentInput) (*models.Payment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	payment := &models.Payment{
		CustomerID:     input.CustomerID,
		CashAmount:     input.CashAmount,
		FineGoldAmount: input.FineGoldAmount,
		SilverAmount:   input.SilverAmount,
		Date:           input.Date,
		Note:           input.Note,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create payment")
	}
	return payment, nil
}

func (s *service) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payments")
	}
	return payments, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Payment, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	payments, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customer payments")
	}
	return payments, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input PaymentInput) (*models.Payment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	payment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	payment.CustomerID = input.CustomerID
	payment.CashAmount = input.CashAmount
	payment.FineGoldAmount = input.FineGoldAmount
	payment.SilverAmount = input.SilverAmount
	payment.Date = input.Date
	payment.Note = input.Note
	payment.IsEdited = true
	payment.LastEditedAt = &now
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update payment")
	}
	return payment, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete payment")
	}
	return nil
}

func (s *service) get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment id is required")
	}
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "payment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment")
	}
	return payment, nil
}

func validateInput(input PaymentInput) error {
	if input.CustomerID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if input.Date.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment date is required")
	}
	if input.CashAmount.IsNegative() || input.FineGoldAmount.IsNegative() || input.SilverAmount.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment amounts cannot be negative")
	}
	if input.CashAmount.IsZero() && input.FineGoldAmount.IsZero() && input.SilverAmount.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one payment amount is required")
	}
	return nil
}
