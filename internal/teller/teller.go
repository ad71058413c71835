// Package teller implements the interactive balance operations and the
// menu loop that dispatches to them.
package teller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/cbank/internal/cli"
	"github.com/theirongolddev/cbank/internal/ledger"
	"github.com/theirongolddev/cbank/internal/store"
	"github.com/theirongolddev/cbank/internal/tui/theme"
)

// Store persists the balance. *store.FileStore and *store.SQLiteStore satisfy it.
type Store interface {
	Load() (float64, error)
	Save(balance float64) error
}

// Options controls how a Teller reports.
type Options struct {
	// Symbol prefixes every displayed amount. Defaults to "$".
	Symbol string
	Styles *cli.Styles
}

// Teller runs balance operations against a Store, prompting on in and
// reporting on out. The balance itself is passed in and returned by each
// handler; a Teller holds no balance state.
type Teller struct {
	store  Store
	in     *bufio.Reader
	out    io.Writer
	symbol string
	styles cli.Styles
}

// New returns a Teller. in may be nil when only the *Amount handlers are used.
func New(st Store, in io.Reader, out io.Writer, opts Options) *Teller {
	t := &Teller{
		store:  st,
		out:    out,
		symbol: opts.Symbol,
	}
	if in != nil {
		t.in = bufio.NewReader(in)
	}
	if t.symbol == "" {
		t.symbol = "$"
	}
	if opts.Styles != nil {
		t.styles = *opts.Styles
	} else {
		t.styles = cli.NewStyles(theme.Active)
	}
	return t
}

// Open loads the persisted balance. Missing storage yields 0 silently;
// corrupt or unreadable storage is reported and yields 0.
func (t *Teller) Open() float64 {
	balance, err := t.store.Load()
	if err == nil {
		return balance
	}

	var ce *store.CorruptError
	switch {
	case errors.As(err, &ce) && ce.Backup != "":
		t.warnf("Corrupted balance file (copy saved to %s). Resetting to 0.0", ce.Backup)
	case errors.As(err, &ce):
		t.warnf("Corrupted balance file. Resetting to 0.0")
	default:
		t.warnf("Could not read balance: %v. Starting from 0.0", err)
	}
	return 0
}

// Deposit prompts for an amount and credits it to balance.
func (t *Teller) Deposit(balance float64) (float64, error) {
	raw, err := t.prompt("Enter amount to deposit: ")
	if err != nil {
		return balance, err
	}
	return t.DepositAmount(balance, raw), nil
}

// DepositAmount credits the amount typed as raw and returns the balance to keep.
func (t *Teller) DepositAmount(balance float64, raw string) float64 {
	return t.settle(ledger.Deposit(balance, raw), "deposited")
}

// Withdraw prompts for an amount and debits it from balance.
func (t *Teller) Withdraw(balance float64) (float64, error) {
	raw, err := t.prompt("Enter amount to withdraw: ")
	if err != nil {
		return balance, err
	}
	return t.WithdrawAmount(balance, raw), nil
}

// WithdrawAmount debits the amount typed as raw and returns the balance to keep.
func (t *Teller) WithdrawAmount(balance float64, raw string) float64 {
	return t.settle(ledger.Withdraw(balance, raw), "withdrew")
}

// CheckBalance reports balance with two decimals.
func (t *Teller) CheckBalance(balance float64) {
	t.printf("\n%s %s\n",
		t.styles.Header.Render("Current Balance:"),
		t.styles.Balance.Render(cli.FormatMoney(t.symbol, balance)))
}

// settle reports an outcome and writes a successful one through to the store.
// A failed save is reported but the new balance is still returned.
func (t *Teller) settle(o ledger.Outcome, verb string) float64 {
	switch o.Kind {
	case ledger.InvalidInput:
		t.errorf("Invalid input! Please enter a number.")
	case ledger.NonPositiveAmount:
		t.errorf("Amount must be positive!")
	case ledger.InsufficientFunds:
		t.errorf("Insufficient funds! Transaction cancelled.")
	case ledger.Success:
		if err := t.store.Save(o.Balance); err != nil {
			t.warnf("Could not save data to file: %v", err)
		}
		t.successf("Successfully %s %s", verb, cli.FormatMoney(t.symbol, o.Amount))
	}
	return o.Balance
}

// prompt writes label and reads one line. The line terminator is stripped;
// other whitespace is kept. io.EOF is returned only when no text was read.
func (t *Teller) prompt(label string) (string, error) {
	t.printf("%s", t.styles.Prompt.Render(label))
	if t.in == nil {
		return "", io.EOF
	}
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (t *Teller) printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *Teller) successf(format string, args ...any) {
	t.printf("%s\n", t.styles.Success.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (t *Teller) errorf(format string, args ...any) {
	t.printf("%s\n", t.styles.Error.Render("✗ "+fmt.Sprintf(format, args...)))
}

func (t *Teller) warnf(format string, args ...any) {
	t.printf("%s\n", t.styles.Warn.Render("! Error: "+fmt.Sprintf(format, args...)))
}
