package config

import "github.com/hance08/fintrack/internal/constants"

type Config struct {
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type LedgerConfig struct {
	// Path of the CSV ledger file; empty means <app dir>/finance_data.csv
	Path    string `mapstructure:"path"`
	Backend string `mapstructure:"backend"`
	// SQLitePath is only used with the sqlite backend
	SQLitePath string `mapstructure:"sqlite_path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Ledger:   LedgerConfig{Path: "", Backend: constants.BackendCSV, SQLitePath: ""},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log:      LogConfig{Level: "warn"},
	}
}

// Defaults returns the flat key/value defaults registered with viper.
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"ledger.path":        d.Ledger.Path,
		"ledger.backend":     d.Ledger.Backend,
		"ledger.sqlite_path": d.Ledger.SQLitePath,
		"defaults.currency":  d.Defaults.Currency,
		"log.level":          d.Log.Level,
	}
}
