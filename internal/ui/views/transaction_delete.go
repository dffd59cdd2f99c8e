package views

import (
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(position int, tx model.Transaction, currency string) error {
	pterm.Warning.Printf("About to delete transaction #%d:\n", position)

	deletionInfo := pterm.TableData{
		{"Type", tx.Kind.Label()},
		{"Summe", utils.FormatAmountWithCurrency(tx.Amount, currency)},
		{"Beschreibung", tx.Description},
		{"Datum", tx.Date},
	}

	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("This action cannot be undone!")
	return nil
}

func RenderTransactionDeleteSuccess(position int) {
	pterm.Success.Printf("Transaction #%d deleted successfully\n", position)
	ui.Separator()
}
