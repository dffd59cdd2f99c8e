package cmd

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

type deleteRunner struct {
	deps  *Deps
	flags *deleteFlags
}

func NewDeleteCmd(deps *Deps) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:     "delete <position>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long: `Delete the transaction at the given position, as shown by "fintrack list".
This action cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &deleteRunner{
				deps:  deps,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Delete without asking for confirmation")

	return cmd
}

func (r *deleteRunner) Run(args []string) error {
	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid position: %s", args[0])
	}

	return deleteAt(r.deps, position, r.flags.Yes, confirmWithSurvey)
}

// deleteAt removes the 1-based position after showing a preview.
func deleteAt(deps *Deps, position int, skipConfirm bool, confirm func(string) (bool, error)) error {
	ledger := deps.Service.Ledger

	tx, err := ledger.At(position - 1)
	if err != nil {
		return fmt.Errorf("no transaction at position %d: %w", position, model.ErrOutOfRange)
	}

	if !skipConfirm {
		if err := views.RenderTransactionDeletePreview(position, tx, deps.currency()); err != nil {
			return err
		}

		ok, err := confirm("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if _, err := ledger.RemoveAt(position - 1); err != nil {
		return err
	}

	views.RenderTransactionDeleteSuccess(position)
	return nil
}

func confirmWithSurvey(message string) (bool, error) {
	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
		return false, err
	}
	return confirmation, nil
}
