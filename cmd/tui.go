package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbank/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the full-screen interactive menu",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s := loadSettings()
	st, err := openStore(s)
	if err != nil {
		return err
	}
	defer st.Close()

	// Force TrueColor so themed borders render even when lipgloss
	// cannot detect the terminal's profile.
	if !flagPlain {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	app := tui.NewApp(st, s.symbol, s.path)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
