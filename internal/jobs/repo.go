package jobs

import (
	"context"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines job persistence operations.
type Repository interface {
	Create(ctx context.Context, job *models.JobEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.JobEntry, error)
	List(ctx context.Context) ([]models.JobEntry, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.JobEntry, error)
	Update(ctx context.Context, job *models.JobEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository constructs a job repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, job *models.JobEntry) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.JobEntry, error) {
	var job models.JobEntry
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) List(ctx context.Context) ([]models.JobEntry, error) {
	var jobs []models.JobEntry
	err := r.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.JobEntry, error) {
	var jobs []models.JobEntry
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) Update(ctx context.Context, job *models.JobEntry) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.JobEntry{}, "id = ?", id).Error
}
