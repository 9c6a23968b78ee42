package linkage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/internal/payments"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	pkgerrors "github.com/kilincfaruk/FuatAtolye/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakePaymentRepo struct {
	payments  []models.Payment
	createErr error
	deleteErr error
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	payment.ID = uuid.New()
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	for i := range f.payments {
		if f.payments[i].ID == id {
			return &f.payments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]models.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	for i := range f.payments {
		if f.payments[i].ID == payment.ID {
			f.payments[i] = *payment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.payments {
		if f.payments[i].ID == id {
			f.payments = append(f.payments[:i], f.payments[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) FindAuto(ctx context.Context, match payments.AutoMatch) (*models.Payment, error) {
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

func paidJob() *models.JobEntry {
	return &models.JobEntry{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Quantity:   1,
		UnitPrice:  decimal.NewFromInt(500),
		FineWeight: decimal.NullDecimal{Decimal: decimal.RequireFromString("9.16"), Valid: true},
		Date:       mustDate("2024-03-10"),
		IsPaid:     true,
	}
}

// The round trip: unpaid job has no payment, marking paid creates exactly one
// auto payment with the job's amounts, unmarking deletes it again.
func TestResolverRoundTrip(t *testing.T) {
	repo := &fakePaymentRepo{}
	resolver, err := NewResolver(repo)
	if err != nil {
		t.Fatalf("unexpected resolver error: %v", err)
	}
	job := paidJob()

	if err := resolver.Apply(context.Background(), Transition{Job: job, OldPaid: false, NewPaid: true, OldCustomerID: job.CustomerID}); err != nil {
		t.Fatalf("Apply(create) error: %v", err)
	}
	if len(repo.payments) != 1 {
		t.Fatalf("payments = %d, want 1", len(repo.payments))
	}
	auto := repo.payments[0]
	if !auto.AutoGenerated || auto.Note != AutoPaymentNote {
		t.Errorf("auto payment badly tagged: %+v", auto)
	}
	if !auto.CashAmount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("CashAmount = %s, want 500", auto.CashAmount)
	}
	if !auto.FineGoldAmount.Equal(decimal.RequireFromString("9.16")) {
		t.Errorf("FineGoldAmount = %s, want 9.16", auto.FineGoldAmount)
	}

	if err := resolver.Apply(context.Background(), Transition{Job: job, OldPaid: true, NewPaid: false, OldCustomerID: job.CustomerID}); err != nil {
		t.Fatalf("Apply(delete) error: %v", err)
	}
	if len(repo.payments) != 0 {
		t.Fatalf("payments = %d, want 0 after un-pay", len(repo.payments))
	}
}

func TestResolverCreateMultipliesQuantity(t *testing.T) {
	repo := &fakePaymentRepo{}
	resolver, _ := NewResolver(repo)
	job := paidJob()
	job.Quantity = 3

	if err := resolver.Apply(context.Background(), Transition{Job: job, OldPaid: false, NewPaid: true, OldCustomerID: job.CustomerID}); err != nil {
		t.Fatal(err)
	}
	if !repo.payments[0].CashAmount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("CashAmount = %s, want 1500 (500 × 3)", repo.payments[0].CashAmount)
	}
}

func TestResolverMoveOnCustomerChange(t *testing.T) {
	repo := &fakePaymentRepo{}
	resolver, _ := NewResolver(repo)
	job := paidJob()
	oldCustomer := job.CustomerID

	if err := resolver.Apply(context.Background(), Transition{Job: job, OldPaid: false, NewPaid: true, OldCustomerID: oldCustomer}); err != nil {
		t.Fatal(err)
	}

	job.CustomerID = uuid.New()
	if err := resolver.Apply(context.Background(), Transition{Job: job, OldPaid: true, NewPaid: true, OldCustomerID: oldCustomer}); err != nil {
		t.Fatalf("Apply(move) error: %v", err)
	}
	if len(repo.payments) != 1 {
		t.Fatalf("payments = %d, want 1 (moved, not duplicated)", len(repo.payments))
	}
	moved := repo.payments[0]
	if moved.CustomerID != job.CustomerID {
		t.Error("payment must follow the job to the new customer")
	}
	if !moved.IsEdited || moved.LastEditedAt == nil {
		t.Error("a moved payment must be stamped edited")
	}
}

func TestResolverMoveFallsBackToCreate(t *testing.T) {
	repo := &fakePaymentRepo{}
	resolver, _ := NewResolver(repo)
	job := paidJob()

	// no existing auto payment under the old customer
	tr := Transition{Job: job, OldPaid: true, NewPaid: true, OldCustomerID: uuid.New()}
	if err := resolver.Apply(context.Background(), tr); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if len(repo.payments) != 1 {
		t.Fatalf("payments = %d, want fallback create", len(repo.payments))
	}
	if repo.payments[0].CustomerID != job.CustomerID {
		t.Error("fallback payment must live under the new customer")
	}
}

func TestResolverDeleteIgnoresMissingPayment(t *testing.T) {
	repo := &fakePaymentRepo{}
	resolver, _ := NewResolver(repo)
	job := paidJob()

	tr := Transition{Job: job, OldPaid: true, NewPaid: false, OldCustomerID: job.CustomerID}
	if err := resolver.Apply(context.Background(), tr); err != nil {
		t.Fatalf("missing auto payment must not error: %v", err)
	}
}

func TestResolverDeleteSparesManualPayments(t *testing.T) {
	repo := &fakePaymentRepo{}
	resolver, _ := NewResolver(repo)
	job := paidJob()

	manual := models.Payment{
		CustomerID:     job.CustomerID,
		Date:           job.Date,
		CashAmount:     decimal.NewFromInt(500),
		FineGoldAmount: decimal.RequireFromString("9.16"),
	}
	repo.Create(context.Background(), &manual)

	tr := Transition{Job: job, OldPaid: true, NewPaid: false, OldCustomerID: job.CustomerID}
	if err := resolver.Apply(context.Background(), tr); err != nil {
		t.Fatal(err)
	}
	if len(repo.payments) != 1 {
		t.Fatal("a manual payment with matching amounts must survive")
	}
}

func TestResolverFailureIsLinkageWarning(t *testing.T) {
	repo := &fakePaymentRepo{createErr: errors.New("insert failed")}
	resolver, _ := NewResolver(repo)
	job := paidJob()

	err := resolver.Apply(context.Background(), Transition{Job: job, OldPaid: false, NewPaid: true, OldCustomerID: job.CustomerID})
	if !pkgerrors.IsLinkageWarning(err) {
		t.Fatalf("expected a linkage warning, got %v", err)
	}
}

func TestResolverNoOpWhenPaidUnchanged(t *testing.T) {
	repo := &fakePaymentRepo{}
	resolver, _ := NewResolver(repo)
	job := paidJob()

	tr := Transition{Job: job, OldPaid: true, NewPaid: true, OldCustomerID: job.CustomerID}
	if err := resolver.Apply(context.Background(), tr); err != nil {
		t.Fatal(err)
	}
	if len(repo.payments) != 0 {
		t.Error("unchanged paid state must not touch payments")
	}
}
