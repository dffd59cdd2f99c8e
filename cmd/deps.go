package cmd

import (
	"github.com/hance08/fintrack/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

// Deps is filled in once configuration has been read, before any command runs.
type Deps struct {
	Service *service.Service
	Fs      afero.Fs
	Logger  *pterm.Logger
}

func (d *Deps) currency() string {
	if d.Service == nil || d.Service.Config == nil {
		return ""
	}
	return d.Service.Config.Defaults.Currency
}
