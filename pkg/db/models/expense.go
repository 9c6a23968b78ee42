package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	"github.com/shopspring/decimal"
)

// Expense is a workshop cost. It has no customer relation and never affects
// job/payment balances.
type Expense struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Type        enums.ExpenseType `gorm:"column:type;not null"`
	Description string            `gorm:"column:description"`
	Amount      decimal.Decimal   `gorm:"column:amount;type:numeric;not null"`
	Date        time.Time         `gorm:"column:date;type:date;not null"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Expense) TableName() string {
	return "expenses"
}
