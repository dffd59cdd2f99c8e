package model

// Transaction is one recorded income or expense entry.
// Date is free text and is never parsed.
type Transaction struct {
	Kind        Kind
	Amount      float64
	Description string
	Date        string
}

func NewTransaction(kind Kind, amount float64, description, date string) Transaction {
	return Transaction{
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Date:        date,
	}
}

// IsIncome reports whether the transaction counts towards total income.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense reports whether the transaction counts towards total expense.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}
