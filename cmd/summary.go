package cmd

import (
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type summaryRunner struct {
	deps *Deps
}

func NewSummaryCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Aliases: []string{"analyze", "balance"},
		Short:   "Show total income, total expense and balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &summaryRunner{
				deps: deps,
			}
			return runner.Run()
		},
	}
}

func (r *summaryRunner) Run() error {
	sum := r.deps.Service.Ledger.Summarize()
	return views.RenderLedgerSummary(sum, r.deps.currency())
}
