package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/hance08/fintrack/internal/logger"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/store"
	"github.com/hance08/fintrack/internal/store/csvfile"
	"github.com/spf13/afero"
)

const ledgerPath = "/ledger/finance_data.csv"

// memPersister records every save and can be told to fail.
type memPersister struct {
	saved   [][]model.Transaction
	loadTxs []model.Transaction
	loadErr error
	saveErr error
}

func (m *memPersister) Load() ([]model.Transaction, error) {
	return m.loadTxs, m.loadErr
}

func (m *memPersister) Save(txs []model.Transaction) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, txs)
	return nil
}

func (m *memPersister) Location() string { return "memory" }

func (m *memPersister) last() []model.Transaction {
	if len(m.saved) == 0 {
		return nil
	}
	return m.saved[len(m.saved)-1]
}

func newTestService(p store.Persister) *LedgerService {
	return NewLedgerService(store.NewLedger(), p, logger.Discard())
}

func TestAddSavesAfterEveryMutation(t *testing.T) {
	p := &memPersister{}
	svc := newTestService(p)

	if err := svc.Add(model.KindIncome, 1000, "Salary", "01-01-2024"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := svc.Add(model.KindExpense, 200.5, "Groceries", "02-01-2024"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := svc.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt() error = %v", err)
	}

	if len(p.saved) != 3 {
		t.Fatalf("saved %d times, want 3", len(p.saved))
	}
	if last := p.last(); len(last) != 1 || last[0].Description != "Groceries" {
		t.Errorf("last save = %+v", last)
	}
}

func TestAddKeepsTransactionWhenSaveFails(t *testing.T) {
	p := &memPersister{saveErr: model.ErrPersistenceWriteFailed}
	svc := newTestService(p)

	err := svc.Add(model.KindExpense, 5, "Coffee", "")
	if !errors.Is(err, model.ErrPersistenceWriteFailed) {
		t.Fatalf("Add() error = %v, want ErrPersistenceWriteFailed", err)
	}
	if svc.Len() != 1 {
		t.Errorf("Len() = %d, want the in-memory add to survive", svc.Len())
	}
}

func TestAddFromInput(t *testing.T) {
	p := &memPersister{}
	svc := newTestService(p)

	tx, err := svc.AddFromInput(model.KindIncome, " 1000.00 ", "Salary", "01-01-2024")
	if err != nil {
		t.Fatalf("AddFromInput() error = %v", err)
	}
	if tx.Amount != 1000 || tx.Kind != model.KindIncome {
		t.Errorf("AddFromInput() = %+v", tx)
	}

	_, err = svc.AddFromInput(model.KindExpense, "zwölf", "Groceries", "")
	if !errors.Is(err, model.ErrInvalidAmount) {
		t.Errorf("AddFromInput(bad amount) error = %v, want ErrInvalidAmount", err)
	}

	_, err = svc.AddFromInput(model.Kind("Umbuchung"), "1", "", "")
	if !errors.Is(err, model.ErrInvalidKind) {
		t.Errorf("AddFromInput(bad kind) error = %v, want ErrInvalidKind", err)
	}

	if svc.Len() != 1 {
		t.Errorf("Len() = %d, rejected input must not be added", svc.Len())
	}
	if len(p.saved) != 1 {
		t.Errorf("saved %d times, rejected input must not trigger a save", len(p.saved))
	}
}

func TestRecordUsesCollector(t *testing.T) {
	svc := newTestService(&memPersister{})

	in := StaticInput{AmountText: "200.50", Description: "Groceries", Date: "02-01-2024"}
	tx, err := svc.Record(model.KindExpense, in)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if tx.Amount != 200.5 || tx.Description != "Groceries" || tx.Date != "02-01-2024" {
		t.Errorf("Record() = %+v", tx)
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	p := &memPersister{}
	svc := newTestService(p)
	svc.Add(model.KindIncome, 1, "a", "")

	if _, err := svc.RemoveAt(1); !errors.Is(err, model.ErrOutOfRange) {
		t.Fatalf("RemoveAt(1) error = %v, want ErrOutOfRange", err)
	}
	if svc.Len() != 1 {
		t.Errorf("Len() = %d after failed remove", svc.Len())
	}
	if len(p.saved) != 1 {
		t.Errorf("failed remove triggered a save")
	}
}

func TestLoadAllReplacesLedger(t *testing.T) {
	p := &memPersister{loadTxs: []model.Transaction{
		model.NewTransaction(model.KindIncome, 1, "from file", ""),
	}}
	svc := newTestService(p)
	svc.ledger.Add(model.NewTransaction(model.KindExpense, 9, "stale", ""))

	txs, err := svc.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(txs) != 1 || txs[0].Description != "from file" {
		t.Errorf("LoadAll() = %+v", txs)
	}
	if svc.LoadFailed() {
		t.Errorf("LoadFailed() = true after successful load")
	}
}

func TestLoadAllFailureLeavesEmptyLedger(t *testing.T) {
	p := &memPersister{loadErr: model.ErrPersistenceReadFailed}
	svc := newTestService(p)
	svc.ledger.Add(model.NewTransaction(model.KindExpense, 9, "stale", ""))

	txs, err := svc.LoadAll()
	if !errors.Is(err, model.ErrPersistenceReadFailed) {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if txs != nil || svc.Len() != 0 {
		t.Errorf("ledger not empty after failed load: %v, len %d", txs, svc.Len())
	}
	if !svc.LoadFailed() {
		t.Errorf("LoadFailed() = false")
	}
}

func TestSaveAfterFailedLoadPreservesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	broken := "Type,Summe,Beschreibung,Datum\nEingang,abc,Salary,01-01-2024\n"
	if err := afero.WriteFile(fs, ledgerPath, []byte(broken), 0644); err != nil {
		t.Fatal(err)
	}
	svc := newTestService(csvfile.NewStore(fs, ledgerPath, logger.Discard()))

	if _, err := svc.LoadAll(); !errors.Is(err, model.ErrPersistenceReadFailed) {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if err := svc.Add(model.KindExpense, 3, "Coffee", ""); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	backup, err := afero.ReadFile(fs, ledgerPath+".corrupt")
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != broken {
		t.Errorf("backup = %q, want the unreadable content", backup)
	}

	current, _ := afero.ReadFile(fs, ledgerPath)
	if !strings.Contains(string(current), "Ausgabe,3,Coffee,") {
		t.Errorf("ledger file = %q", current)
	}
}

func TestSaveAllRoundTripThroughCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	first := newTestService(csvfile.NewStore(fs, ledgerPath, logger.Discard()))

	first.Add(model.KindIncome, 1000, "Salary, January", "01-01-2024")
	first.Add(model.KindExpense, 200.5, "Groceries", "02-01-2024")
	if err := first.SaveAll(); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	second := newTestService(csvfile.NewStore(fs, ledgerPath, logger.Discard()))
	txs, err := second.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	want := first.All()
	if len(txs) != len(want) {
		t.Fatalf("loaded %d transactions, want %d", len(txs), len(want))
	}
	for i := range want {
		if txs[i] != want[i] {
			t.Errorf("transaction %d = %+v, want %+v", i, txs[i], want[i])
		}
	}

	income, expense, balance := second.Summarize().Totals()
	if income != 1000 || expense != 200.5 || balance != 799.5 {
		t.Errorf("Summarize() = (%v, %v, %v)", income, expense, balance)
	}
}

func TestAddAfterLoadKeepsLegacyRows(t *testing.T) {
	fs := afero.NewMemMapFs()
	legacy := "Type,Summe,Beschreibung,Datum\n" +
		"Eingang,1000.0,Salary,01-01-2024\n" +
		"Ausgabe,5.0,\"Hi\" said Bob,02-01-2024\n" +
		"Ausgabe,3.0,Coffee,03-01-2024\n"
	if err := afero.WriteFile(fs, ledgerPath, []byte(legacy), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	svc := newTestService(csvfile.NewStore(fs, ledgerPath, logger.Discard()))
	if _, err := svc.LoadAll(); err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if err := svc.Add(model.KindExpense, 1, "x", ""); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	reloaded, err := csvfile.NewStore(fs, ledgerPath, logger.Discard()).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(reloaded) != 4 {
		t.Fatalf("reloaded %d transactions, want 4: %+v", len(reloaded), reloaded)
	}
	if reloaded[1].Description != `"Hi" said Bob` || reloaded[2].Description != "Coffee" {
		t.Errorf("reloaded = %+v", reloaded)
	}
}

func TestExportTo(t *testing.T) {
	svc := newTestService(&memPersister{})
	svc.Add(model.KindIncome, 1, "a", "")

	dest := &memPersister{}
	if err := svc.ExportTo(dest); err != nil {
		t.Fatalf("ExportTo() error = %v", err)
	}
	if len(dest.last()) != 1 {
		t.Errorf("export wrote %+v", dest.last())
	}
}
