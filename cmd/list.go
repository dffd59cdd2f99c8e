package cmd

import (
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Kind  string
	Limit int
}

type listRunner struct {
	deps  *Deps
	flags *listFlags
}

func NewListCmd(deps *Deps) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List all transactions",
		Long: `List the transactions in ledger order.

The first column is the position used by the delete command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				deps:  deps,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Only show income or expense entries")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Show only the last N transactions (0 = all)")

	return cmd
}

func (r *listRunner) Run() error {
	txs := r.deps.Service.Ledger.All()
	items := views.NewTransactionListItems(txs, r.deps.currency())

	if r.flags.Kind != "" {
		kind, err := model.ParseKind(r.flags.Kind)
		if err != nil {
			return err
		}
		filtered := items[:0]
		for _, item := range items {
			if item.Kind == kind {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if r.flags.Limit > 0 && len(items) > r.flags.Limit {
		items = items[len(items)-r.flags.Limit:]
	}

	return views.NewTransactionListView().Render(items, len(txs))
}
