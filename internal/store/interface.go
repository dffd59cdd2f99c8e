package store

import "github.com/hance08/fintrack/internal/model"

// Persister mirrors the full ledger to durable storage.
// Save always rewrites everything; there are no incremental updates.
type Persister interface {
	Load() ([]model.Transaction, error)
	Save(txs []model.Transaction) error
	// Location describes where the ledger is stored, for display.
	Location() string
}
