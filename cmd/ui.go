package cmd

import (
	"errors"

	"github.com/hance08/fintrack/internal/errhandler"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	actionAddIncome  = "Einnahme hinzufügen"
	actionAddExpense = "Ausgabe hinzufügen"
	actionDelete     = "Transaktion löschen"
	actionAnalyze    = "Finanzen Analyze"
	actionExport     = "Export to CSV"
	actionQuit       = "Quit"
)

type uiRunner struct {
	deps *Deps
}

func NewUICmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Start the interactive ledger session",
		Long: `Start an interactive session that shows the ledger and lets you add,
delete, analyze and export until you quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &uiRunner{
				deps: deps,
			}
			return runner.Run()
		},
	}
}

func (r *uiRunner) Run() error {
	ledger := r.deps.Service.Ledger

	for {
		ui.PrintL1Title("Finance Tracker")
		items := views.NewTransactionListItems(ledger.All(), r.deps.currency())
		if err := views.NewTransactionListView().Render(items, len(items)); err != nil {
			return err
		}

		action, err := prompts.PromptSelect("What do you want to do?", []string{
			actionAddIncome,
			actionAddExpense,
			actionDelete,
			actionAnalyze,
			actionExport,
			actionQuit,
		}, actionAddIncome)
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}

		if action == actionQuit {
			return nil
		}

		if err := r.dispatch(action); err != nil {
			r.report(err)
		}
	}
}

func (r *uiRunner) dispatch(action string) error {
	ledger := r.deps.Service.Ledger

	switch action {
	case actionAddIncome, actionAddExpense:
		kind := model.KindIncome
		if action == actionAddExpense {
			kind = model.KindExpense
		}
		tx, err := ledger.Record(kind, prompts.FormCollector{})
		if err != nil {
			return err
		}
		return views.RenderTransactionAdded(ledger.Len(), tx, r.deps.currency())

	case actionDelete:
		if ledger.Len() == 0 {
			pterm.Error.Println("Bitte wählen Sie eine Transaktion zum löschen aus.")
			return nil
		}
		position, err := prompts.PromptPosition(ledger.Len())
		if err != nil {
			return err
		}
		return deleteAt(r.deps, position, false, func(message string) (bool, error) {
			return prompts.PromptConfirm(message, false)
		})

	case actionAnalyze:
		return views.RenderLedgerSummary(ledger.Summarize(), r.deps.currency())

	case actionExport:
		if err := ledger.SaveAll(); err != nil {
			return err
		}
		views.RenderExportSuccess(ledger.Location(), ledger.Len())
	}

	return nil
}

// report keeps the session alive; every error is shown and the menu returns.
func (r *uiRunner) report(err error) {
	switch {
	case errhandler.IsCancelled(err):
		pterm.Info.Println("Cancelled")
	case errors.Is(err, model.ErrPersistenceWriteFailed):
		views.RenderStaleWarning(err)
	case errors.Is(err, model.ErrInvalidAmount):
		pterm.Error.Println("Falsche Eingabe: " + err.Error())
	default:
		pterm.Error.Println(capitalize(err.Error()))
	}
}
