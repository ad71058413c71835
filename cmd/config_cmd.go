package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbank/internal/cli"
	"github.com/theirongolddev/cbank/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	s := loadSettings()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	backend := s.cfg.Storage.Backend
	if backend == "" {
		backend = "file"
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Balance path", s.path},
			{"Backend", backend},
			{"Backup corrupt", fmt.Sprintf("%v", s.cfg.Storage.BackupCorrupt)},
			{"---"},
			{"Theme", s.cfg.Appearance.Theme},
			{"Currency", fmt.Sprintf("%s (%s)", s.cfg.Appearance.Currency, s.symbol)},
		},
	}))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Run `cbank setup` to reconfigure.")
	return nil
}
