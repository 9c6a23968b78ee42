package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JobEntry is a repair/production job charged to a customer. The table keeps
// its historical name "transactions".
//
// FineWeight ("has") is derived from GoldWeight and the fineness marker on the
// write path and persisted at full precision; readers never re-derive it. A
// null FineWeight means the derivation was undefined (unparseable marker or
// zero weight), which is distinct from an explicit zero.
type JobEntry struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID   uuid.UUID           `gorm:"column:customer_id;type:uuid;not null;index"`
	JobType      string              `gorm:"column:job_type;not null"`
	Quantity     int                 `gorm:"column:quantity;not null;default:1"`
	Fineness     string              `gorm:"column:milyem"`
	GoldWeight   decimal.Decimal     `gorm:"column:gold_weight;type:numeric"`
	UnitPrice    decimal.Decimal     `gorm:"column:price;type:numeric;not null"`
	FineWeight   decimal.NullDecimal `gorm:"column:has;type:numeric"`
	IsPaid       bool                `gorm:"column:is_paid;not null;default:false"`
	Date         time.Time           `gorm:"column:date;type:date;not null"`
	Note         string              `gorm:"column:note"`
	IsEdited     bool                `gorm:"column:is_edited;not null;default:false"`
	LastEditedAt *time.Time          `gorm:"column:last_edited_at"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (JobEntry) TableName() string {
	return "transactions"
}
