package service

import (
	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Ledger *LedgerService
	Config *config.Config
}

func NewService(ledger *store.Ledger, persister store.Persister, cfg *config.Config, logger *pterm.Logger) *Service {
	return &Service{
		Ledger: NewLedgerService(ledger, persister, logger),
		Config: cfg,
	}
}
