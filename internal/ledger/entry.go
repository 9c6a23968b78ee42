package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
	"github.com/shopspring/decimal"
)

// Entry is the canonical in-memory shape every consumer reads. The normalizer
// produces it once; nothing downstream branches on raw field presence again.
type Entry struct {
	ID       uuid.UUID
	Kind     enums.EntryKind
	Customer string
	Date     time.Time

	// job fields
	Quantity   int
	JobType    string
	Fineness   string
	GoldWeight decimal.Decimal
	UnitPrice  decimal.Decimal
	FineWeight decimal.Decimal
	IsPaid     bool

	// payment fields
	CashAmount     decimal.Decimal
	FineGoldAmount decimal.Decimal
	SilverAmount   decimal.Decimal
	AutoGenerated  bool

	Note         string
	IsEdited     bool
	LastEditedAt *time.Time
}

// Charge returns the job's total cash charge (unit price times quantity).
func (e Entry) Charge() decimal.Decimal {
	qty := e.Quantity
	if qty <= 0 {
		qty = 1
	}
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// IsSilver reports whether the job's fineness marker designates silver.
func (e Entry) IsSilver() bool {
	return IsSilverMarker(e.Fineness)
}

// CustomerEntries pairs a customer with their date-ordered entries. A slice of
// these, rather than a map, keeps aggregation order deterministic.
type CustomerEntries struct {
	Name    string
	Entries []Entry
}
