package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/cbank/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestBalanceCardWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	card := BalanceCard("Current Balance", "$60.00", 30)
	lines := strings.Split(card, "\n")
	if len(lines) != 4 {
		t.Fatalf("card has %d lines, want 4 (border, label, value, border)", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 30 {
			t.Errorf("line %d width = %d, want 30: %q", i, w, line)
		}
	}
	if !strings.Contains(card, "$60.00") {
		t.Fatalf("card missing value:\n%s", card)
	}
}

func TestContentCardMinimumWidth(t *testing.T) {
	card := ContentCard("Menu", "1. Deposit", 4)
	for i, line := range strings.Split(card, "\n") {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, want clamped 12", i, w)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(40, "[q]uit", "account.txt")
	if w := lipgloss.Width(bar); w != 40 {
		t.Fatalf("status bar width = %d, want 40", w)
	}
	if !strings.HasPrefix(bar, " [q]uit") || !strings.HasSuffix(bar, "account.txt ") {
		t.Fatalf("status bar = %q", bar)
	}
}
