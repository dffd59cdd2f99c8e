package views

import (
	"fmt"

	"github.com/hance08/fintrack/internal/service"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderLedgerSummary(sum service.Summary, currency string) error {
	pterm.DefaultSection.Println("Finanzen Analyse")

	balance := formatTotal(sum.Balance, currency)
	if sum.Balance.IsNegative() {
		balance = pterm.Red(balance)
	} else {
		balance = pterm.Green(balance)
	}

	tableData := pterm.TableData{
		{"", "Entries", "Amount"},
		{"Einkommen insgesamt", fmt.Sprint(sum.IncomeCount), formatTotal(sum.TotalIncome, currency)},
		{"Ausgaben insgesamt", fmt.Sprint(sum.ExpenseCount), formatTotal(sum.TotalExpense, currency)},
		{"Saldo", "", balance},
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if sum.Ignored > 0 {
		pterm.Warning.Printf("%d entries with an unknown type were not counted\n", sum.Ignored)
	}
	return nil
}

func formatTotal(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}
