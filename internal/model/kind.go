package model

import (
	"fmt"
	"strings"
)

// Kind is the category tag stored in the first column of the ledger file.
// The persisted labels are German because existing ledger files use them.
type Kind string

const (
	KindIncome  Kind = "Eingang"
	KindExpense Kind = "Ausgabe"
)

// Label returns the English display name of the kind.
// Unknown kinds are displayed verbatim.
func (k Kind) Label() string {
	switch k {
	case KindIncome:
		return "Income"
	case KindExpense:
		return "Expense"
	default:
		return string(k)
	}
}

func (k Kind) Known() bool {
	return k == KindIncome || k == KindExpense
}

// ParseKind accepts the English and the persisted German names, case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "eingang", "einnahme", "in":
		return KindIncome, nil
	case "expense", "ausgabe", "out":
		return KindExpense, nil
	case "":
		return "", fmt.Errorf("%w: kind is required", ErrInvalidKind)
	default:
		return "", fmt.Errorf("%w: %q (use income or expense)", ErrInvalidKind, s)
	}
}
