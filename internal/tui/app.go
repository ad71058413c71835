// Package tui provides the full-screen Bubble Tea rendition of the cbank menu.
package tui

import (
	"bytes"
	"strings"

	"github.com/theirongolddev/cbank/internal/cli"
	"github.com/theirongolddev/cbank/internal/teller"
	"github.com/theirongolddev/cbank/internal/tui/components"
	"github.com/theirongolddev/cbank/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeMenu mode = iota
	modeAmount
)

// operation is a pending amount-taking handler.
type operation struct {
	label string
	apply func(balance float64, raw string) float64
}

const (
	maxCardWidth = 48
	menuHints    = "[1-4] choose  [q]uit"
	amountHints  = "[enter] confirm  [esc] cancel"
)

// App is the root Bubble Tea model.
type App struct {
	teller   *teller.Teller
	notices  *bytes.Buffer // teller output, drained into notice after each action
	symbol   string
	location string

	balance float64
	mode    mode
	op      operation
	input   textinput.Model
	notice  string

	width  int
	height int
}

// NewApp loads the balance from st and returns the model.
// location is shown in the status bar.
func NewApp(st teller.Store, symbol, location string) App {
	var buf bytes.Buffer
	tl := teller.New(st, nil, &buf, teller.Options{Symbol: symbol})

	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.Prompt = symbol
	ti.CharLimit = 32
	ti.Width = 20

	a := App{
		teller:   tl,
		notices:  &buf,
		symbol:   symbol,
		location: location,
		input:    ti,
	}
	a.balance = tl.Open()
	a.notice = a.drain()
	return a
}

// Balance returns the balance currently held by the model.
func (a App) Balance() float64 {
	return a.balance
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.mode == modeAmount {
			return a.updateAmount(msg)
		}
		return a.updateMenu(msg.String())
	}

	// Forward cursor blinks to the amount input
	if a.mode == modeAmount {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateMenu(key string) (tea.Model, tea.Cmd) {
	switch key {
	case teller.ChoiceDeposit:
		return a.startAmount(operation{label: "deposit", apply: a.teller.DepositAmount})
	case teller.ChoiceWithdraw:
		return a.startAmount(operation{label: "withdraw", apply: a.teller.WithdrawAmount})
	case "q":
		key = teller.ChoiceExit
	}

	balance, state, _ := a.teller.Step(key, a.balance)
	a.balance = balance
	a.notice = a.drain()
	if state == teller.Terminated {
		return a, tea.Quit
	}
	return a, nil
}

func (a App) startAmount(op operation) (tea.Model, tea.Cmd) {
	a.mode = modeAmount
	a.op = op
	a.notice = ""
	a.input.Reset()
	return a, a.input.Focus()
}

func (a App) updateAmount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.balance = a.op.apply(a.balance, a.input.Value())
		a.notice = a.drain()
		a.endAmount()
		return a, nil
	case "esc":
		a.endAmount()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) endAmount() {
	a.mode = modeMenu
	a.input.Reset()
	a.input.Blur()
}

// drain returns and clears what the teller reported since the last call.
func (a App) drain() string {
	s := strings.TrimSpace(a.notices.String())
	a.notices.Reset()
	return s
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	t := theme.Active

	cardW := a.width - 4
	if cardW > maxCardWidth {
		cardW = maxCardWidth
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  ◈ cbank"))
	b.WriteString("\n\n")
	b.WriteString(indent(components.BalanceCard("Current Balance", cli.FormatMoney(a.symbol, a.balance), cardW)))
	b.WriteString("\n")

	hints := menuHints
	if a.mode == modeAmount {
		hints = amountHints
		b.WriteString(indent(components.ContentCard("Enter amount to "+a.op.label, a.input.View(), cardW)))
	} else {
		b.WriteString(indent(components.ContentCard("Choose an option", strings.Join(teller.MenuItems, "\n"), cardW)))
	}
	b.WriteString("\n")

	if a.notice != "" {
		b.WriteString("\n")
		b.WriteString(indent(a.notice))
		b.WriteString("\n")
	}

	body := b.String()
	if a.height > 0 {
		body = padHeight(truncateHeight(body, a.height-1), a.height-1)
	}
	return body + "\n" + components.RenderStatusBar(a.width, hints, a.location)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
