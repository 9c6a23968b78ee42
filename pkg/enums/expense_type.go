package enums

// ExpenseType is the fixed expense category set. Free-text categories collapse
// into ExpenseTypeOther.
type ExpenseType string

const (
	ExpenseTypeRent     ExpenseType = "Kira"
	ExpenseTypeUtility  ExpenseType = "Fatura"
	ExpenseTypeMaterial ExpenseType = "Malzeme"
	ExpenseTypeSalary   ExpenseType = "Maaş"
	ExpenseTypeOther    ExpenseType = "Diğer"
)

var validExpenseTypes = []ExpenseType{
	ExpenseTypeRent,
	ExpenseTypeUtility,
	ExpenseTypeMaterial,
	ExpenseTypeSalary,
	ExpenseTypeOther,
}

// IsValid reports whether the value matches the canonical expense type enum.
func (e ExpenseType) IsValid() bool {
	for _, candidate := range validExpenseTypes {
		if candidate == e {
			return true
		}
	}
	return false
}

// NormalizeExpenseType maps unknown categories to ExpenseTypeOther.
func NormalizeExpenseType(value string) ExpenseType {
	t := ExpenseType(value)
	if t.IsValid() {
		return t
	}
	return ExpenseTypeOther
}
