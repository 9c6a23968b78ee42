package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kilincfaruk/FuatAtolye/pkg/enums"
)

// RawRecord is a stored row before alias resolution. Rows written by older
// versions of the system carry Turkish legacy field names alongside (or
// instead of) the current ones; the normalizer resolves each pair with
// current-name precedence exactly once.
type RawRecord struct {
	ID       uuid.UUID `json:"id"`
	Type     string    `json:"type"`
	Customer string    `json:"customer"`

	Quantity   int    `json:"quantity"`
	JobType    string `json:"jobType"`
	TamiratIsi string `json:"tamiratIsi"` // legacy job type; presence also implies kind=job
	Fineness   string `json:"milyem"`
	Ayar       string `json:"ayar"` // legacy fineness
	GoldWeight string `json:"goldWeight"`
	AltinGr    string `json:"altinGr"` // legacy raw weight
	UnitPrice  string `json:"price"`
	Ucret      string `json:"ucret"` // legacy unit price
	FineWeight string `json:"has"`
	IsPaid     bool   `json:"isPaid"`

	CashAmount     string `json:"cashAmount"`
	FineGoldAmount string `json:"hasAmount"`
	SilverAmount   string `json:"silverAmount"`
	AutoGenerated  bool   `json:"autoGenerated"`

	Date         string     `json:"date"`
	Tarih        string     `json:"tarih"` // legacy date
	Note         string     `json:"note"`
	IsEdited     bool       `json:"isEdited"`
	LastEditedAt *time.Time `json:"lastEditedAt"`
}

// date sanity bounds; rows outside are treated as malformed and excluded
var (
	minValidDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	maxValidDate = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Normalize maps a raw row into the canonical Entry. ok is false when the row
// has no recognizable kind or a malformed date; such rows are excluded from
// aggregation rather than crashing (or silently skewing) the caller.
func Normalize(raw RawRecord) (Entry, bool) {
	kind, ok := resolveKind(raw)
	if !ok {
		return Entry{}, false
	}

	date, ok := resolveDate(raw)
	if !ok {
		return Entry{}, false
	}

	entry := Entry{
		ID:           raw.ID,
		Kind:         kind,
		Customer:     raw.Customer,
		Date:         date,
		Note:         raw.Note,
		IsEdited:     raw.IsEdited,
		LastEditedAt: raw.LastEditedAt,
	}

	switch kind {
	case enums.EntryKindJob:
		entry.Quantity = raw.Quantity
		if entry.Quantity <= 0 {
			entry.Quantity = 1
		}
		entry.JobType = firstNonEmpty(raw.JobType, raw.TamiratIsi)
		entry.Fineness = firstNonEmpty(raw.Fineness, raw.Ayar)
		entry.GoldWeight = ParseDecimal(firstNonEmpty(raw.GoldWeight, raw.AltinGr))
		entry.UnitPrice = ParseDecimal(firstNonEmpty(raw.UnitPrice, raw.Ucret))
		entry.FineWeight = ParseDecimal(raw.FineWeight)
		entry.IsPaid = raw.IsPaid
	case enums.EntryKindPayment:
		entry.CashAmount = ParseDecimal(raw.CashAmount)
		entry.FineGoldAmount = ParseDecimal(raw.FineGoldAmount)
		entry.SilverAmount = ParseDecimal(raw.SilverAmount)
		entry.AutoGenerated = raw.AutoGenerated
	}

	return entry, true
}

func resolveKind(raw RawRecord) (enums.EntryKind, bool) {
	if raw.Type != "" {
		kind, err := enums.ParseEntryKind(raw.Type)
		if err != nil {
			return "", false
		}
		return kind, true
	}
	// legacy rows have no type column; a tamirat işi value marks a job.
	// Anything else stays unclassified; it must never default to a payment.
	if strings.TrimSpace(raw.TamiratIsi) != "" {
		return enums.EntryKindJob, true
	}
	return "", false
}

func resolveDate(raw RawRecord) (time.Time, bool) {
	value := firstNonEmpty(raw.Date, raw.Tarih)
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, false
		}
	}
	if t.Before(minValidDate) || t.After(maxValidDate) {
		return time.Time{}, false
	}
	return t, true
}

func firstNonEmpty(current, legacy string) string {
	if strings.TrimSpace(current) != "" {
		return current
	}
	return legacy
}
