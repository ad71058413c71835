package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type fakeStore struct {
	balance float64
	loadErr error
	saves   []float64
}

func (s *fakeStore) Load() (float64, error) { return s.balance, s.loadErr }

func (s *fakeStore) Save(v float64) error {
	s.balance = v
	s.saves = append(s.saves, v)
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update and returns the resulting model and last command.
func send(t *testing.T, a App, msgs ...tea.Msg) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var m tea.Model
		m, cmd = a.Update(msg)
		var ok bool
		if a, ok = m.(App); !ok {
			t.Fatalf("Update returned %T, want App", m)
		}
	}
	return a, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestDepositFlow(t *testing.T) {
	st := &fakeStore{}
	a := NewApp(st, "$", "account.txt")

	a, _ = send(t, a, runes("1"))
	if a.mode != modeAmount || a.op.label != "deposit" {
		t.Fatalf("after '1': mode=%v op=%q, want amount entry for deposit", a.mode, a.op.label)
	}

	a, _ = send(t, a, runes("25"), tea.KeyMsg{Type: tea.KeyEnter})
	if a.Balance() != 25 {
		t.Fatalf("balance = %v, want 25", a.Balance())
	}
	if len(st.saves) != 1 || st.saves[0] != 25 {
		t.Fatalf("saves = %v, want [25]", st.saves)
	}
	if !strings.Contains(a.notice, "Successfully deposited $25.00") {
		t.Fatalf("notice = %q", a.notice)
	}
	if a.mode != modeMenu {
		t.Fatal("did not return to the menu after enter")
	}
}

func TestWithdrawInsufficient(t *testing.T) {
	st := &fakeStore{balance: 10}
	a := NewApp(st, "$", "")

	a, _ = send(t, a, runes("2"), runes("100"), tea.KeyMsg{Type: tea.KeyEnter})
	if a.Balance() != 10 {
		t.Fatalf("balance = %v, want 10", a.Balance())
	}
	if len(st.saves) != 0 {
		t.Fatalf("rejected withdrawal saved %v", st.saves)
	}
	if !strings.Contains(a.notice, "Insufficient funds!") {
		t.Fatalf("notice = %q", a.notice)
	}
}

func TestEscCancelsAmount(t *testing.T) {
	st := &fakeStore{balance: 10}
	a := NewApp(st, "$", "")

	a, _ = send(t, a, runes("1"), runes("5"), tea.KeyMsg{Type: tea.KeyEsc})
	if a.mode != modeMenu || a.Balance() != 10 || len(st.saves) != 0 {
		t.Fatalf("esc: mode=%v balance=%v saves=%v", a.mode, a.Balance(), st.saves)
	}
	if a.input.Value() != "" {
		t.Fatalf("input not cleared: %q", a.input.Value())
	}
}

func TestMenuChoices(t *testing.T) {
	a := NewApp(&fakeStore{balance: 42}, "€", "")

	a, cmd := send(t, a, runes("3"))
	if isQuit(cmd) || !strings.Contains(a.notice, "Current Balance: €42.00") {
		t.Fatalf("check balance notice = %q", a.notice)
	}

	a, cmd = send(t, a, runes("x"))
	if isQuit(cmd) || !strings.Contains(a.notice, "Invalid choice. Please try again.") {
		t.Fatalf("invalid choice notice = %q", a.notice)
	}

	_, cmd = send(t, a, runes("4"))
	if !isQuit(cmd) {
		t.Fatal("'4' did not quit")
	}

	_, cmd = send(t, a, runes("q"))
	if !isQuit(cmd) {
		t.Fatal("'q' did not quit")
	}
}

func TestCorruptLoadNotice(t *testing.T) {
	a := NewApp(&fakeStore{loadErr: errors.New("boom")}, "$", "")
	if a.Balance() != 0 {
		t.Fatalf("balance = %v, want 0", a.Balance())
	}
	if !strings.Contains(a.notice, "Could not read balance") {
		t.Fatalf("notice = %q", a.notice)
	}
}

func TestView(t *testing.T) {
	a := NewApp(&fakeStore{balance: 60}, "$", "account.txt")
	if a.View() != "" {
		t.Fatal("View before first resize should be empty")
	}

	a, _ = send(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
	v := a.View()
	for _, want := range []string{"$60.00", "Choose an option", "3. Check Balance", "account.txt"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if n := len(strings.Split(v, "\n")); n != 24 {
		t.Errorf("view height = %d lines, want 24", n)
	}

	a, _ = send(t, a, runes("2"))
	if v := a.View(); !strings.Contains(v, "Enter amount to withdraw") {
		t.Errorf("amount view missing title:\n%s", v)
	}
}
