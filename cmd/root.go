// Package cmd implements the cbank CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/cbank/internal/cli"
	"github.com/theirongolddev/cbank/internal/config"
	"github.com/theirongolddev/cbank/internal/store"
	"github.com/theirongolddev/cbank/internal/teller"
	"github.com/theirongolddev/cbank/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagFile    string
	flagBackend string
	flagPlain   bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:           "cbank",
	Short:         "Single-account balance ledger",
	Long:          "Track one balance with deposits and withdrawals, persisted to a plain text file.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cbank: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Balance file (overrides config and $"+config.EnvBalanceFile+")")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: file or sqlite")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Disable colors and styling")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress diagnostic output")
}

// settings is the effective configuration after flags are applied.
type settings struct {
	cfg    config.Config
	path   string
	symbol string
}

// loadSettings merges the config file, environment and flags, and applies
// the appearance settings to the shared theme and color profile.
func loadSettings() settings {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config unavailable (%v), using defaults\n", err)
	}

	if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	path := config.BalancePath(cfg)
	if flagFile != "" {
		path = flagFile
	}

	theme.SetActive(cfg.Appearance.Theme)
	if flagPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return settings{
		cfg:    cfg,
		path:   path,
		symbol: cli.CurrencySymbol(cfg.Appearance.Currency),
	}
}

func openStore(s settings) (store.Backend, error) {
	st, err := store.Open(store.Options{
		Backend:       s.cfg.Storage.Backend,
		Path:          s.path,
		BackupCorrupt: s.cfg.Storage.BackupCorrupt,
	})
	if err != nil {
		return nil, fmt.Errorf("opening balance storage: %w", err)
	}
	return st, nil
}

func runMenu(cmd *cobra.Command, _ []string) error {
	s := loadSettings()
	st, err := openStore(s)
	if err != nil {
		return err
	}
	defer st.Close()

	styles := cli.NewStyles(theme.Active)
	t := teller.New(st, cmd.InOrStdin(), cmd.OutOrStdout(), teller.Options{
		Symbol: s.symbol,
		Styles: &styles,
	})
	_, err = t.Run()
	return err
}
