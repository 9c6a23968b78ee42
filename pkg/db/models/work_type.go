package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkType is a price-list entry. Jobs reference it by name snapshot, not by
// key, so renaming a work type never rewrites history. A null DefaultPrice
// means "no default".
type WorkType struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string              `gorm:"column:name;not null;uniqueIndex"`
	DefaultPrice decimal.NullDecimal `gorm:"column:default_price;type:numeric"`
	IsActive     bool                `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (WorkType) TableName() string {
	return "work_types"
}
