package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Backend", "file"},
			{"---"},
			{"Theme", "terminal"},
		},
	})

	want := strings.Join([]string{
		"╭─────────┬──────────╮",
		"│ Setting │ Value    │",
		"├─────────┼──────────┤",
		"│ Backend │ file     │",
		"├─────────┼──────────┤",
		"│ Theme   │ terminal │",
		"╰─────────┴──────────╯",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("RenderTable =\n%s\nwant\n%s", out, want)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Fatalf("RenderTable(empty) = %q, want empty", out)
	}
}

func TestRenderTitleContainsText(t *testing.T) {
	out := RenderTitle("Welcome")
	if !strings.Contains(out, "Welcome") {
		t.Fatalf("RenderTitle output missing title:\n%s", out)
	}
	if !strings.HasPrefix(out, "╭") {
		t.Fatalf("RenderTitle not bordered:\n%s", out)
	}
}
