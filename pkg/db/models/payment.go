package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment settles a customer's balance in cash, fine gold ("has") or silver.
// Auto-generated rows are created by the linkage resolver when a job is marked
// paid; at most one auto row should match a given paid job.
type Payment struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID     uuid.UUID       `gorm:"column:customer_id;type:uuid;not null;index"`
	CashAmount     decimal.Decimal `gorm:"column:cash_amount;type:numeric;not null;default:0"`
	FineGoldAmount decimal.Decimal `gorm:"column:has_amount;type:numeric;not null;default:0"`
	SilverAmount   decimal.Decimal `gorm:"column:silver_amount;type:numeric;not null;default:0"`
	Date           time.Time       `gorm:"column:date;type:date;not null"`
	Note           string          `gorm:"column:note"`
	AutoGenerated  bool            `gorm:"column:is_auto_generated;not null;default:false"`
	IsEdited       bool            `gorm:"column:is_edited;not null;default:false"`
	LastEditedAt   *time.Time      `gorm:"column:last_edited_at"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
