package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/cbank/internal/cli"
	"github.com/theirongolddev/cbank/internal/config"
	"github.com/theirongolddev/cbank/internal/store"
	"github.com/theirongolddev/cbank/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues are the fields the wizard edits.
type setupValues struct {
	Path          string
	Backend       string
	BackupCorrupt bool
	Theme         string
	Currency      string
}

func newSetupValues(cfg config.Config) setupValues {
	return setupValues{
		Path:          cfg.Storage.Path,
		Backend:       cfg.Storage.Backend,
		BackupCorrupt: cfg.Storage.BackupCorrupt,
		Theme:         cfg.Appearance.Theme,
		Currency:      cfg.Appearance.Currency,
	}
}

// apply copies the wizard answers onto cfg.
func (v setupValues) apply(cfg config.Config) config.Config {
	cfg.Storage.Path = config.StoragePath(v.Backend, strings.TrimSpace(v.Path))
	cfg.Storage.Backend = v.Backend
	cfg.Storage.BackupCorrupt = v.BackupCorrupt
	cfg.Appearance.Theme = v.Theme
	cfg.Appearance.Currency = strings.ToUpper(strings.TrimSpace(v.Currency))
	return cfg
}

func newSetupForm(v *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Balance file").
				Description("Relative paths resolve against the working directory. With SQLite, "+config.DefaultPath+" becomes "+config.DefaultSQLitePath+".").
				Value(&v.Path).
				Validate(validatePath),
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("Plain text file", store.BackendFile),
					huh.NewOption("SQLite database", store.BackendSQLite),
				).
				Value(&v.Backend),
			huh.NewConfirm().
				Title("Keep a copy of corrupt balance data before resetting?").
				Value(&v.BackupCorrupt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewInput().
				Title("Currency code").
				Description("ISO 4217, e.g. USD, EUR, GBP").
				Value(&v.Currency).
				Validate(validateCurrency),
		),
	)
}

func validatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("path cannot be empty")
	}
	return nil
}

func validateCurrency(s string) error {
	if !cli.KnownCurrency(s) {
		return fmt.Errorf("unknown currency %q", strings.TrimSpace(s))
	}
	return nil
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	vals := newSetupValues(cfg)
	form := newSetupForm(&vals).WithAccessible(flagPlain)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled; nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := config.Save(vals.apply(cfg)); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.ConfigPath())
	fmt.Fprintln(out, "  Run `cbank setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
