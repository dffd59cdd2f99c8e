package cmd

import (
	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/store/csvfile"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	Output string
}

type exportRunner struct {
	deps  *Deps
	flags *exportFlags
	cmd   *cobra.Command
}

func NewExportCmd(deps *Deps) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ledger to CSV",
		Long: `Write the whole ledger to CSV.

Without --output the configured ledger file is rewritten.
Use --output - to print the CSV to standard output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &exportRunner{
				deps:  deps,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Export to this file instead of the ledger file")

	return cmd
}

func (r *exportRunner) Run() error {
	ledger := r.deps.Service.Ledger

	switch r.flags.Output {
	case "":
		if err := ledger.SaveAll(); err != nil {
			return err
		}
		views.RenderExportSuccess(ledger.Location(), ledger.Len())
		return nil

	case "-":
		return csvfile.Encode(r.cmd.OutOrStdout(), ledger.All())

	default:
		path, err := app.ExpandPath(r.flags.Output)
		if err != nil {
			return err
		}
		dest := csvfile.NewStore(r.deps.Fs, path, r.deps.Logger)
		if err := ledger.ExportTo(dest); err != nil {
			return err
		}
		views.RenderExportSuccess(dest.Location(), ledger.Len())
		return nil
	}
}
