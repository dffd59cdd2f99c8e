package store

import (
	"fmt"
	"sync"

	"github.com/hance08/fintrack/internal/model"
)

// Ledger owns the ordered in-memory collection of transactions.
type Ledger struct {
	mu           sync.RWMutex
	transactions []model.Transaction
}

func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]model.Transaction, 0),
	}
}

// Add appends tx to the end of the ledger.
func (l *Ledger) Add(tx model.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions = append(l.transactions, tx)
}

// RemoveAt removes the transaction at the zero-based index and returns it.
// Remaining transactions keep their relative order.
func (l *Ledger) RemoveAt(index int) (model.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.transactions) {
		return model.Transaction{}, fmt.Errorf("%w: %d (ledger has %d entries)", model.ErrOutOfRange, index, len(l.transactions))
	}

	removed := l.transactions[index]
	l.transactions = append(l.transactions[:index], l.transactions[index+1:]...)
	return removed, nil
}

// At returns the transaction at the zero-based index.
func (l *Ledger) At(index int) (model.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.transactions) {
		return model.Transaction{}, fmt.Errorf("%w: %d (ledger has %d entries)", model.ErrOutOfRange, index, len(l.transactions))
	}
	return l.transactions[index], nil
}

// All returns a snapshot copy; callers may modify it freely.
func (l *Ledger) All() []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	copied := make([]model.Transaction, len(l.transactions))
	copy(copied, l.transactions)
	return copied
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.transactions)
}

// Replace discards the current contents and takes a copy of txs.
func (l *Ledger) Replace(txs []model.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions = make([]model.Transaction, len(txs))
	copy(l.transactions, txs)
}
