package payments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeRepository struct {
	payments []models.Payment
}

func (f *fakeRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = uuid.New()
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	for i := range f.payments {
		if f.payments[i].ID == id {
			return &f.payments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) List(ctx context.Context) ([]models.Payment, error) {
	return f.payments, nil
}

func (f *fakeRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepository) Update(ctx context.Context, payment *models.Payment) error {
	for i := range f.payments {
		if f.payments[i].ID == payment.ID {
			f.payments[i] = *payment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.payments {
		if f.payments[i].ID == id {
			f.payments = append(f.payments[:i], f.payments[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindAuto(ctx context.Context, match AutoMatch) (*models.Payment, error) {
	for i := range f.payments {
		p := &f.payments[i]
		if p.AutoGenerated && p.CustomerID == match.CustomerID && p.Date.Equal(match.Date) &&
			p.FineGoldAmount.Equal(match.FineGoldAmount) && p.CashAmount.Equal(match.CashAmount) {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func validInput(customerID uuid.UUID) PaymentInput {
	return PaymentInput{
		CustomerID: customerID,
		CashAmount: decimal.NewFromInt(500),
		Date:       mustDate("2024-03-10"),
	}
}

func TestCreatePayment(t *testing.T) {
	repo := &fakeRepository{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected service error: %v", err)
	}

	payment, err := svc.Create(context.Background(), validInput(uuid.New()))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if payment.AutoGenerated {
		t.Error("user-entered payments must not carry the auto flag")
	}
	if payment.IsEdited {
		t.Error("new payments must not be marked edited")
	}
}

func TestCreateRequiresAnAmount(t *testing.T) {
	svc, _ := NewService(&fakeRepository{})
	input := PaymentInput{CustomerID: uuid.New(), Date: mustDate("2024-03-10")}
	_, err := svc.Create(context.Background(), input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsNegativeAmounts(t *testing.T) {
	svc, _ := NewService(&fakeRepository{})
	input := validInput(uuid.New())
	input.SilverAmount = decimal.NewFromInt(-1)
	if _, err := svc.Create(context.Background(), input); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for negative silver amount")
	}
}

func TestUpdateStampsEditAudit(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := NewService(repo)
	created, _ := svc.Create(context.Background(), validInput(uuid.New()))

	input := validInput(created.CustomerID)
	input.CashAmount = decimal.NewFromInt(750)
	updated, err := svc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !updated.IsEdited || updated.LastEditedAt == nil {
		t.Error("update must stamp the edit audit fields")
	}
	if !updated.CashAmount.Equal(decimal.NewFromInt(750)) {
		t.Errorf("CashAmount = %s, want 750", updated.CashAmount)
	}
}

func TestFindAutoMatchesKeyFieldsOnly(t *testing.T) {
	repo := &fakeRepository{}
	customerID := uuid.New()
	date := mustDate("2024-03-10")

	manual := models.Payment{CustomerID: customerID, Date: date,
		CashAmount: decimal.NewFromInt(500), FineGoldAmount: decimal.RequireFromString("9.16")}
	auto := manual
	auto.AutoGenerated = true
	repo.Create(context.Background(), &manual)
	repo.Create(context.Background(), &auto)

	found, err := repo.FindAuto(context.Background(), AutoMatch{
		CustomerID:     customerID,
		Date:           date,
		FineGoldAmount: decimal.RequireFromString("9.16"),
		CashAmount:     decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("FindAuto error: %v", err)
	}
	if !found.AutoGenerated {
		t.Error("FindAuto must never return a manual payment")
	}
}
