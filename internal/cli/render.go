package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cbank/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the interactive menu.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Item    lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warn    lipgloss.Style
	Balance lipgloss.Style
	Muted   lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles derives menu styles from a theme.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Item:    lipgloss.NewStyle().Foreground(t.TextPrimary),
		Prompt:  lipgloss.NewStyle().Foreground(t.TextMuted),
		Success: lipgloss.NewStyle().Foreground(t.Green),
		Error:   lipgloss.NewStyle().Foreground(t.Red),
		Warn:    lipgloss.NewStyle().Foreground(t.Orange),
		Balance: lipgloss.NewStyle().Bold(true).Foreground(t.AccentBright),
		Muted:   lipgloss.NewStyle().Foreground(t.TextMuted),
		Dim:     lipgloss.NewStyle().Foreground(t.TextDim),
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	t := theme.Active
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(44).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	measure := func(cells []string) {
		for i, c := range cells {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		if !isSeparator(row) {
			measure(row)
		}
	}

	s := NewStyles(theme.Active)
	rule := func(left, mid, right string) string {
		parts := make([]string, numCols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return s.Dim.Render(left+strings.Join(parts, mid)+right) + "\n"
	}
	line := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(s.Dim.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", w-lipgloss.Width(cell))
			b.WriteString(style.Render(" " + cell + pad + " "))
			b.WriteString(s.Dim.Render("│"))
		}
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		fmt.Fprintf(&b, "  %s\n", s.Header.Render(t.Title))
	}
	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, s.Header))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(line(row, s.Item))
	}
	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}
