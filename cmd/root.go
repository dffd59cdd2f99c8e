package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/errhandler"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/service"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	deps := &Deps{}
	cleanup := func() {}

	rootCmd := NewRootCmd(deps, func() error {
		if err := initConfig(); err != nil {
			return err
		}

		fs := afero.NewOsFs()
		application, appCleanup, err := app.NewApp(cfg, fs)
		if err != nil {
			return err
		}
		cleanup = appCleanup

		deps.Service = application.Service
		deps.Fs = fs
		deps.Logger = application.Logger

		loadLedger(deps.Service)
		return nil
	})

	err := rootCmd.Execute()
	cleanup()

	if err != nil {
		if errhandler.IsCancelled(err) {
			pterm.Warning.Println("Operation Cancelled")
			return
		}

		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

// NewRootCmd wires all subcommands. setup runs after flag parsing and before
// any subcommand; it may be nil when deps are already populated (tests).
func NewRootCmd(deps *Deps, setup func() error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "fintrack is a CLI/TUI based personal finance ledger",
		Long: `fintrack is a CLI/TUI based personal finance ledger.

Record income and expenses, list and delete entries and see your balance.
Every change is written straight to a CSV file (finance_data.csv).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if setup == nil {
				return nil
			}
			return setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewAddCmd(deps))
	rootCmd.AddCommand(NewKindCmd(deps, model.KindIncome))
	rootCmd.AddCommand(NewKindCmd(deps, model.KindExpense))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewDeleteCmd(deps))
	rootCmd.AddCommand(NewSummaryCmd(deps))
	rootCmd.AddCommand(NewExportCmd(deps))
	rootCmd.AddCommand(NewInfoCmd(deps))
	rootCmd.AddCommand(NewUICmd(deps))

	return rootCmd
}

func loadLedger(svc *service.Service) {
	if _, err := svc.Ledger.LoadAll(); err != nil {
		pterm.Warning.Printf("Could not load the ledger: %v\n", err)
		pterm.Warning.Printf("Starting with an empty ledger. The unreadable file is kept as %s%s on the next save.\n",
			svc.Ledger.Location(), constants.CorruptSuffix)
	}
}

func initConfig() error {
	// .env in the working directory may override FINTRACK_* variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read .env file: %w", err)
	}

	for key, value := range config.Defaults() {
		viper.SetDefault(key, value)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(strings.ToUpper(constants.AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
