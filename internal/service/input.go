package service

import "github.com/hance08/fintrack/internal/model"

// TransactionFields holds the raw text a user entered for a new transaction.
type TransactionFields struct {
	AmountText  string
	Description string
	Date        string
}

// InputCollector gathers the fields of a new transaction, e.g. from an
// interactive form or from command line flags.
type InputCollector interface {
	CollectTransactionFields(kind model.Kind) (TransactionFields, error)
}

// StaticInput returns fixed fields; used for flag driven input.
type StaticInput TransactionFields

func (in StaticInput) CollectTransactionFields(model.Kind) (TransactionFields, error) {
	return TransactionFields(in), nil
}
