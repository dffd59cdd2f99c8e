package views

import (
	"fmt"

	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListItem struct {
	Position    int // 1-based, as accepted by delete
	Type        string
	Amount      string
	Description string
	Date        string
	Kind        model.Kind
}

// NewTransactionListItems converts ledger entries into display rows.
func NewTransactionListItems(txs []model.Transaction, currency string) []TransactionListItem {
	items := make([]TransactionListItem, 0, len(txs))
	for i, tx := range txs {
		items = append(items, TransactionListItem{
			Position:    i + 1,
			Type:        tx.Kind.Label(),
			Amount:      utils.FormatAmountWithCurrency(tx.Amount, currency),
			Description: tx.Description,
			Date:        tx.Date,
			Kind:        tx.Kind,
		})
	}
	return items
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(items []TransactionListItem, total int) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println("Transactions")

	tableData := pterm.TableData{
		{"#", "Type", "Summe", "Beschreibung", "Datum"},
	}

	for _, item := range items {
		var coloredType, coloredAmount string

		switch item.Kind {
		case model.KindExpense:
			coloredType = pterm.Red(item.Type)
			coloredAmount = pterm.Red(item.Amount)
		case model.KindIncome:
			coloredType = pterm.Green(item.Type)
			coloredAmount = pterm.Green(item.Amount)
		default:
			coloredType = item.Type
			coloredAmount = item.Amount
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.Position),
			coloredType,
			coloredAmount,
			item.Description,
			item.Date,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	if len(items) == total {
		pterm.Info.Printf("Total: %d transactions\n", total)
	} else {
		pterm.Info.Printf("Showing %d of %d transactions\n", len(items), total)
	}
	return nil
}
