package service

import (
	"fmt"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/store"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
)

// Preserver is implemented by persisters that can keep a copy of the
// current on-disk ledger before it is overwritten.
type Preserver interface {
	Preserve(suffix string) (string, error)
}

// LedgerService keeps the in-memory ledger and its persisted mirror in sync.
// Every mutation rewrites the whole mirror.
type LedgerService struct {
	ledger    *store.Ledger
	persister store.Persister
	logger    *pterm.Logger

	loadFailed bool
	preserved  bool
}

func NewLedgerService(ledger *store.Ledger, persister store.Persister, logger *pterm.Logger) *LedgerService {
	return &LedgerService{
		ledger:    ledger,
		persister: persister,
		logger:    logger,
	}
}

// LoadAll replaces the ledger with the persisted contents.
// When the mirror can not be read the ledger is left empty and the error is returned.
func (s *LedgerService) LoadAll() ([]model.Transaction, error) {
	txs, err := s.persister.Load()
	if err != nil {
		s.ledger.Replace(nil)
		s.loadFailed = true
		s.logger.Error("ledger load failed, starting with an empty ledger",
			s.logger.Args("location", s.persister.Location(), "error", err))
		return nil, err
	}

	s.loadFailed = false
	s.preserved = false
	s.ledger.Replace(txs)
	s.logger.Info("ledger loaded", s.logger.Args("location", s.persister.Location(), "transactions", len(txs)))

	return s.ledger.All(), nil
}

// LoadFailed reports whether the last LoadAll could not read the mirror.
func (s *LedgerService) LoadFailed() bool {
	return s.loadFailed
}

// Add appends a transaction and saves. A save error leaves the in-memory
// transaction in place.
func (s *LedgerService) Add(kind model.Kind, amount float64, description, date string) error {
	s.ledger.Add(model.NewTransaction(kind, amount, description, date))
	s.logger.Debug("transaction added", s.logger.Args("kind", string(kind), "amount", amount))

	return s.SaveAll()
}

// AddFromInput parses the raw amount text before adding.
// Nothing is added when the amount is invalid.
func (s *LedgerService) AddFromInput(kind model.Kind, amountText, description, date string) (model.Transaction, error) {
	if !kind.Known() {
		return model.Transaction{}, fmt.Errorf("%w: %q", model.ErrInvalidKind, string(kind))
	}

	amount, err := utils.ParseAmount(amountText)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.NewTransaction(kind, amount, description, date)
	return tx, s.Add(tx.Kind, tx.Amount, tx.Description, tx.Date)
}

// Record collects the fields through the given collector and adds the transaction.
func (s *LedgerService) Record(kind model.Kind, collector InputCollector) (model.Transaction, error) {
	fields, err := collector.CollectTransactionFields(kind)
	if err != nil {
		return model.Transaction{}, err
	}
	return s.AddFromInput(kind, fields.AmountText, fields.Description, fields.Date)
}

// RemoveAt deletes the transaction at the zero-based index and saves.
func (s *LedgerService) RemoveAt(index int) (model.Transaction, error) {
	removed, err := s.ledger.RemoveAt(index)
	if err != nil {
		return model.Transaction{}, err
	}
	s.logger.Debug("transaction removed", s.logger.Args("index", index))

	return removed, s.SaveAll()
}

// SaveAll rewrites the mirror with the current ledger.
func (s *LedgerService) SaveAll() error {
	if s.loadFailed && !s.preserved {
		if err := s.preserveUnreadable(); err != nil {
			return err
		}
	}

	if err := s.persister.Save(s.ledger.All()); err != nil {
		s.logger.Error("ledger save failed, file is out of date",
			s.logger.Args("location", s.persister.Location(), "error", err))
		return err
	}
	return nil
}

func (s *LedgerService) preserveUnreadable() error {
	p, ok := s.persister.(Preserver)
	if !ok {
		s.preserved = true
		return nil
	}

	backup, err := p.Preserve(constants.CorruptSuffix)
	if err != nil {
		return fmt.Errorf("%w: could not keep a copy of the unreadable ledger: %w", model.ErrPersistenceWriteFailed, err)
	}

	s.preserved = true
	if backup != "" {
		s.logger.Warn("unreadable ledger preserved", s.logger.Args("backup", backup))
	}
	return nil
}

// ExportTo writes the current ledger to another destination.
func (s *LedgerService) ExportTo(dest store.Persister) error {
	if err := dest.Save(s.ledger.All()); err != nil {
		return err
	}
	s.logger.Info("ledger exported", s.logger.Args("location", dest.Location(), "transactions", s.ledger.Len()))
	return nil
}

func (s *LedgerService) Summarize() Summary {
	return Summarize(s.ledger.All())
}

func (s *LedgerService) All() []model.Transaction {
	return s.ledger.All()
}

func (s *LedgerService) At(index int) (model.Transaction, error) {
	return s.ledger.At(index)
}

func (s *LedgerService) Len() int {
	return s.ledger.Len()
}

func (s *LedgerService) Location() string {
	return s.persister.Location()
}
