package constants

const (
	// Transaction Modes
	ModeExpense = "expense"
	ModeIncome  = "income"

	// Date hint shown in prompts (dd-MM-yyyy)
	DateFormat = "02-01-2006"

	DefaultCurrency = "EUR"
)
