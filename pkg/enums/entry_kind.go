package enums

import "fmt"

// EntryKind classifies a normalized ledger entry.
type EntryKind string

const (
	EntryKindJob     EntryKind = "job"
	EntryKindPayment EntryKind = "payment"
	EntryKindExpense EntryKind = "expense"
)

var validEntryKinds = []EntryKind{
	EntryKindJob,
	EntryKindPayment,
	EntryKindExpense,
}

// IsValid reports whether the value matches the canonical entry kind enum.
func (k EntryKind) IsValid() bool {
	for _, candidate := range validEntryKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseEntryKind converts the raw string to EntryKind.
func ParseEntryKind(value string) (EntryKind, error) {
	for _, candidate := range validEntryKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid entry kind %q", value)
}
