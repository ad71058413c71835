package cmd

import (
	"github.com/theirongolddev/cbank/internal/cli"
	"github.com/theirongolddev/cbank/internal/teller"
	"github.com/theirongolddev/cbank/internal/tui/theme"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the current balance and exit",
	Args:  cobra.NoArgs,
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, _ []string) error {
	s := loadSettings()
	st, err := openStore(s)
	if err != nil {
		return err
	}
	defer st.Close()

	styles := cli.NewStyles(theme.Active)
	t := teller.New(st, nil, cmd.OutOrStdout(), teller.Options{Symbol: s.symbol, Styles: &styles})
	t.CheckBalance(t.Open())
	return nil
}
