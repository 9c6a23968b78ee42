package worktypes

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines work-type persistence operations.
type Repository interface {
	Create(ctx context.Context, workType *models.WorkType) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.WorkType, error)
	FindByName(ctx context.Context, name string) (*models.WorkType, error)
	List(ctx context.Context, activeOnly bool) ([]models.WorkType, error)
	Update(ctx context.Context, workType *models.WorkType) error
	Upsert(ctx context.Context, workType *models.WorkType) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository constructs a work-type repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, workType *models.WorkType) error {
	return r.db.WithContext(ctx).Create(workType).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.WorkType, error) {
	var workType models.WorkType
	if err := r.db.WithContext(ctx).First(&workType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workType, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*models.WorkType, error) {
	var workType models.WorkType
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&workType).Error
	if err != nil {
		return nil, err
	}
	return &workType, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]models.WorkType, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = TRUE")
	}
	var workTypes []models.WorkType
	err := query.Find(&workTypes).Error
	return workTypes, err
}

func (r *repository) Update(ctx context.Context, workType *models.WorkType) error {
	return r.db.WithContext(ctx).Save(workType).Error
}

// Upsert inserts or refreshes a price-list row keyed by name.
func (r *repository) Upsert(ctx context.Context, workType *models.WorkType) error {
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO work_types (name, default_price, is_active)
VALUES (?, ?, ?)
ON CONFLICT (name) DO UPDATE SET default_price = EXCLUDED.default_price, is_active = EXCLUDED.is_active, updated_at = NOW()`,
			workType.Name, workType.DefaultPrice, workType.IsActive).
		Error
}
