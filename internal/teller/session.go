package teller

import (
	"errors"
	"io"

	"github.com/theirongolddev/cbank/internal/cli"
)

// State is the menu loop state.
type State int

const (
	Running State = iota
	Terminated
)

// Menu choices.
const (
	ChoiceDeposit  = "1"
	ChoiceWithdraw = "2"
	ChoiceCheck    = "3"
	ChoiceExit     = "4"
)

// MenuItems lists the menu entries in display order.
var MenuItems = []string{
	"1. Deposit",
	"2. Withdraw",
	"3. Check Balance",
	"4. Exit",
}

// Step dispatches one menu choice and returns the balance to keep and the
// next state. Only the exact strings "1" to "4" are accepted.
func (t *Teller) Step(choice string, balance float64) (float64, State, error) {
	var err error
	switch choice {
	case ChoiceDeposit:
		balance, err = t.Deposit(balance)
	case ChoiceWithdraw:
		balance, err = t.Withdraw(balance)
	case ChoiceCheck:
		t.CheckBalance(balance)
	case ChoiceExit:
		t.printf("%s\n", t.styles.Header.Render("Thank you for banking with us. Goodbye!"))
		return balance, Terminated, nil
	default:
		t.errorf("Invalid choice. Please try again.")
	}
	return balance, Running, err
}

// Run greets the user, loads the balance and loops over the menu until the
// user exits or input ends. It returns the final balance. End of input is a
// normal exit; any other read error is returned.
func (t *Teller) Run() (float64, error) {
	t.printf("%s\n", cli.RenderTitle("Welcome to the Banking System"))
	balance := t.Open()

	for state := Running; state == Running; {
		t.printMenu()
		choice, err := t.prompt("Enter your choice (1-4): ")
		if err != nil {
			return balance, endOfInput(err)
		}
		balance, state, err = t.Step(choice, balance)
		if err != nil {
			return balance, endOfInput(err)
		}
	}
	return balance, nil
}

func (t *Teller) printMenu() {
	t.printf("\n%s\n", t.styles.Header.Render("Choose an option:"))
	for _, item := range MenuItems {
		t.printf("%s\n", t.styles.Item.Render(item))
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
