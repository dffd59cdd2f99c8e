package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Desc   string
	Amount string
	Date   string
}

type addRunner struct {
	deps  *Deps
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(deps *Deps) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add [income|expense]",
		Short: "Add a new income or expense",
		Long: `Add a new income or expense entry to the ledger.

You can use flags for quick entry or interactive mode for guided input.
The ledger file is rewritten right after the entry is added.

Examples:
	# Interactive mode
	fintrack add

	# Quick mode with flags
	fintrack add income --amount 1000 --desc "Salary" --date 01-01-2024
	fintrack add expense -a 200.50 -d "Groceries"`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{constants.ModeIncome, constants.ModeExpense},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				deps:  deps,
				flags: flags,
				cmd:   cmd,
			}

			var kind model.Kind
			if len(args) == 1 {
				k, err := model.ParseKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}
			return runner.Run(kind)
		},
	}
	bindAddFlags(cmd, flags)

	return cmd
}

// NewKindCmd is a shortcut for "add <kind>", e.g. "fintrack income".
func NewKindCmd(deps *Deps, kind model.Kind) *cobra.Command {
	flags := &addFlags{}
	name := strings.ToLower(kind.Label())

	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Add a new %s (shortcut for: add %s)", name, name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				deps:  deps,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(kind)
		},
	}
	bindAddFlags(cmd, flags)

	return cmd
}

func bindAddFlags(cmd *cobra.Command, flags *addFlags) {
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Transaction amount (e.g., 150 or 150.50)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (free text, e.g. 01-01-2024), default is today")
}

func (r *addRunner) Run(kind model.Kind) error {
	var err error

	if kind == "" {
		kind, err = prompts.PromptKind()
		if err != nil {
			return err
		}
	}

	tx, err := r.deps.Service.Ledger.Record(kind, r.collector())
	if err != nil {
		return err
	}

	return views.RenderTransactionAdded(r.deps.Service.Ledger.Len(), tx, r.deps.currency())
}

// collector uses the flags as-is when an amount was given, otherwise asks
// for the missing fields interactively.
func (r *addRunner) collector() service.InputCollector {
	preset := service.TransactionFields{
		AmountText:  r.flags.Amount,
		Description: r.flags.Desc,
		Date:        r.flags.Date,
	}

	if r.cmd.Flags().Changed("amount") {
		if preset.Date == "" {
			preset.Date = time.Now().Format(constants.DateFormat)
		}
		return service.StaticInput(preset)
	}

	return prompts.FormCollector{Preset: preset}
}
