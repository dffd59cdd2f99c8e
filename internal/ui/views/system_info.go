package views

import (
	"fmt"

	"github.com/hance08/fintrack/internal/ui"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	LedgerPath      string
	LedgerExists    bool // true = Found, false = Not Found
	Backend         string
	Transactions    int
	DefaultCurrency string
	AppDataDir      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	ledgerStatus := pterm.Green("Found")
	if !data.LedgerExists {
		ledgerStatus = pterm.Red("Not Found (Will be created)")
	}

	ui.PrintL2Title("System Info")
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Ledger Backend", data.Backend},
		{"Ledger Path", data.LedgerPath},
		{"Ledger Status", ledgerStatus},
		{"Transactions", fmt.Sprint(data.Transactions)},
		{"Default Currency", data.DefaultCurrency},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
