package cmd

import (
	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	deps *Deps
}

func NewInfoCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, ledger location and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				deps: deps,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.deps.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	ledgerPath := r.deps.Service.Ledger.Location()
	ledgerExists, _ := afero.Exists(r.deps.Fs, ledgerPath)

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		LedgerPath:      ledgerPath,
		LedgerExists:    ledgerExists,
		Backend:         cfg.Ledger.Backend,
		Transactions:    r.deps.Service.Ledger.Len(),
		DefaultCurrency: cfg.Defaults.Currency,
		AppDataDir:      appDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
