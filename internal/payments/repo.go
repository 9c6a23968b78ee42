package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AutoMatch is the linkage resolver's best-effort lookup key for an
// auto-generated payment: there is no stored job reference, so the resolver
// matches on the fields the original creation copied from the job.
type AutoMatch struct {
	CustomerID     uuid.UUID
	Date           time.Time
	FineGoldAmount decimal.Decimal
	CashAmount     decimal.Decimal
}

// Repository defines payment persistence operations.
type Repository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAuto(ctx context.Context, match AutoMatch) (*models.Payment, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository constructs a payment repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Payment{}, "id = ?", id).Error
}

// FindAuto locates the auto-generated payment matching the key fields, at most
// one row. Returns gorm.ErrRecordNotFound when nothing matches.
func (r *repository) FindAuto(ctx context.Context, match AutoMatch) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND date = ? AND has_amount = ? AND cash_amount = ? AND is_auto_generated = TRUE",
			match.CustomerID, match.Date, match.FineGoldAmount, match.CashAmount).
		Limit(1).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
