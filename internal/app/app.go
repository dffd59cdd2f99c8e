package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/logger"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/store"
	"github.com/hance08/fintrack/internal/store/csvfile"
	"github.com/hance08/fintrack/internal/store/sqlite"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

type App struct {
	Service   *service.Service
	Ledger    *store.Ledger
	Persister store.Persister
	Logger    *pterm.Logger
}

// NewApp builds the ledger, its persistence backend and the service layer.
// The ledger is not loaded yet; callers decide how to report load failures.
func NewApp(cfg *config.Config, fs afero.Fs) (*App, func(), error) {
	log := logger.New(cfg.Log.Level)

	persister, cleanup, err := newPersister(cfg, fs, log)
	if err != nil {
		return nil, nil, err
	}

	ledger := store.NewLedger()
	svc := service.NewService(ledger, persister, cfg, log)

	return &App{
		Service:   svc,
		Ledger:    ledger,
		Persister: persister,
		Logger:    log,
	}, cleanup, nil
}

func newPersister(cfg *config.Config, fs afero.Fs, log *pterm.Logger) (store.Persister, func(), error) {
	switch strings.ToLower(cfg.Ledger.Backend) {
	case "", constants.BackendCSV:
		path, err := LedgerPath(cfg)
		if err != nil {
			return nil, nil, err
		}
		return csvfile.NewStore(fs, path, log), func() {}, nil

	case constants.BackendSQLite:
		path, err := SQLitePath(cfg)
		if err != nil {
			return nil, nil, err
		}
		dbStore, err := sqlite.NewStore(path, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		cleanup := func() {
			if err := dbStore.Close(); err != nil {
				fmt.Printf("Error closing DB: %v\n", err)
			}
		}
		return dbStore, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q (use %s or %s)", cfg.Ledger.Backend, constants.BackendCSV, constants.BackendSQLite)
	}
}

// LedgerPath resolves the CSV ledger location from the configuration.
func LedgerPath(cfg *config.Config) (string, error) {
	return resolvePath(cfg.Ledger.Path, constants.LedgerFileName)
}

func SQLitePath(cfg *config.Config) (string, error) {
	return resolvePath(cfg.Ledger.SQLitePath, constants.SQLiteFileName)
}

func resolvePath(configured, fileName string) (string, error) {
	if configured == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, fileName), nil
	}
	return ExpandPath(configured)
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
