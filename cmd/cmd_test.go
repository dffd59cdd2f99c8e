package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/logger"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/store"
	"github.com/hance08/fintrack/internal/store/csvfile"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

const testLedgerPath = "/ledger/finance_data.csv"

func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	fs := afero.NewMemMapFs()
	log := logger.Discard()
	persister := csvfile.NewStore(fs, testLedgerPath, log)
	svc := service.NewService(store.NewLedger(), persister, config.NewDefault(), log)

	return &Deps{Service: svc, Fs: fs, Logger: log}
}

func run(t *testing.T, deps *Deps, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(deps, nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func readLedger(t *testing.T, deps *Deps) string {
	t.Helper()
	data, err := afero.ReadFile(deps.Fs, testLedgerPath)
	if err != nil {
		t.Fatalf("read ledger: %v", err)
	}
	return string(data)
}

func TestAddWithFlagsWritesLedger(t *testing.T) {
	deps := newTestDeps(t)

	if _, err := run(t, deps, "add", "income", "--amount", "1000.00", "--desc", "Salary", "--date", "01-01-2024"); err != nil {
		t.Fatalf("add income: %v", err)
	}
	if _, err := run(t, deps, "expense", "-a", "200.50", "-d", "Groceries", "--date", "02-01-2024"); err != nil {
		t.Fatalf("expense: %v", err)
	}

	want := "Type,Summe,Beschreibung,Datum\n" +
		"Eingang,1000,Salary,01-01-2024\n" +
		"Ausgabe,200.5,Groceries,02-01-2024\n"
	if got := readLedger(t, deps); got != want {
		t.Errorf("ledger =\n%s\nwant\n%s", got, want)
	}

	income, expense, balance := deps.Service.Ledger.Summarize().Totals()
	if income != 1000 || expense != 200.5 || balance != 799.5 {
		t.Errorf("totals = (%v, %v, %v)", income, expense, balance)
	}
}

func TestAddRejectsInvalidAmount(t *testing.T) {
	deps := newTestDeps(t)

	_, err := run(t, deps, "add", "expense", "--amount", "zwölf")
	if !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("add error = %v, want ErrInvalidAmount", err)
	}
	if deps.Service.Ledger.Len() != 0 {
		t.Errorf("invalid amount added an entry")
	}
	if ok, _ := afero.Exists(deps.Fs, testLedgerPath); ok {
		t.Errorf("invalid amount triggered a save")
	}
}

func TestAddRejectsUnknownKind(t *testing.T) {
	deps := newTestDeps(t)

	if _, err := run(t, deps, "add", "transfer", "--amount", "5"); !errors.Is(err, model.ErrInvalidKind) {
		t.Fatalf("add error = %v, want ErrInvalidKind", err)
	}
}

func TestDeleteByPosition(t *testing.T) {
	deps := newTestDeps(t)
	ledger := deps.Service.Ledger
	ledger.Add(model.KindIncome, 1, "a", "")
	ledger.Add(model.KindExpense, 2, "b", "")
	ledger.Add(model.KindExpense, 3, "c", "")

	if _, err := run(t, deps, "delete", "2", "--yes"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	all := ledger.All()
	if len(all) != 2 || all[0].Description != "a" || all[1].Description != "c" {
		t.Errorf("ledger after delete = %+v", all)
	}
	if strings.Contains(readLedger(t, deps), ",b,") {
		t.Errorf("deleted entry still in file")
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	deps := newTestDeps(t)
	deps.Service.Ledger.Add(model.KindIncome, 1, "a", "")

	for _, pos := range []string{"0", "2"} {
		_, err := run(t, deps, "delete", pos, "-y")
		if !errors.Is(err, model.ErrOutOfRange) {
			t.Errorf("delete %s error = %v, want ErrOutOfRange", pos, err)
		}
	}
	if _, err := run(t, deps, "delete", "abc", "-y"); err == nil {
		t.Errorf("delete abc returned no error")
	}
	if deps.Service.Ledger.Len() != 1 {
		t.Errorf("ledger changed by failed deletes")
	}
}

func TestDeleteAtDeclined(t *testing.T) {
	deps := newTestDeps(t)
	deps.Service.Ledger.Add(model.KindIncome, 1, "a", "")

	err := deleteAt(deps, 1, false, func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("deleteAt() error = %v", err)
	}
	if deps.Service.Ledger.Len() != 1 {
		t.Errorf("declined delete removed the entry")
	}
}

func TestExportToStdout(t *testing.T) {
	deps := newTestDeps(t)
	deps.Service.Ledger.Add(model.KindExpense, 4.5, "Tea, green", "06-01-2024")

	out, err := run(t, deps, "export", "--output", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	want := "Type,Summe,Beschreibung,Datum\nAusgabe,4.5,\"Tea, green\",06-01-2024\n"
	if out != want {
		t.Errorf("export output = %q, want %q", out, want)
	}
}

func TestExportToFile(t *testing.T) {
	deps := newTestDeps(t)
	deps.Service.Ledger.Add(model.KindIncome, 10, "Gift", "")

	if _, err := run(t, deps, "export", "-o", "/backup/copy.csv"); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := afero.ReadFile(deps.Fs, "/backup/copy.csv")
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if !strings.Contains(string(data), "Eingang,10,Gift,") {
		t.Errorf("export content = %q", data)
	}
}

func TestExportRewritesLedgerFile(t *testing.T) {
	deps := newTestDeps(t)

	if _, err := run(t, deps, "export"); err != nil {
		t.Fatalf("export: %v", err)
	}
	if got := readLedger(t, deps); got != "Type,Summe,Beschreibung,Datum\n" {
		t.Errorf("ledger = %q, want header only", got)
	}
}

func TestListSummaryAndInfoRun(t *testing.T) {
	deps := newTestDeps(t)
	deps.Service.Ledger.Add(model.KindIncome, 1000, "Salary", "01-01-2024")
	deps.Service.Ledger.Add(model.KindExpense, 200.5, "Groceries", "02-01-2024")

	for _, args := range [][]string{
		{"list"},
		{"ls", "--kind", "expense"},
		{"list", "--limit", "1"},
		{"summary"},
		{"analyze"},
		{"info"},
	} {
		if _, err := run(t, deps, args...); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}

	if _, err := run(t, deps, "list", "--kind", "transfer"); !errors.Is(err, model.ErrInvalidKind) {
		t.Errorf("list --kind transfer error = %v", err)
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("failed to write"); got != "Failed to write" {
		t.Errorf("capitalize = %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Errorf("capitalize(\"\") = %q", got)
	}
}
