package views

import (
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionAdded(position int, tx model.Transaction, currency string) error {
	pterm.Success.Printf("%s recorded (#%d)\n", tx.Kind.Label(), position)

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Type", tx.Kind.Label()},
		{"Summe", utils.FormatAmountWithCurrency(tx.Amount, currency)},
		{"Beschreibung", tx.Description},
		{"Datum", tx.Date},
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	ui.Separator()
	return nil
}

// RenderStaleWarning tells the user the file no longer matches memory.
func RenderStaleWarning(err error) {
	pterm.Error.Printf("The change is kept in memory, but the ledger file is now out of date: %v\n", err)
}

func RenderExportSuccess(location string, count int) {
	pterm.Success.Printf("Data exported to %s (%d transactions)\n", location, count)
}
