package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderTableIncludesHeader(t *testing.T) {
	state := TableViewState{
		Width:        20,
		Headers:      []string{"Hdr"},
		HeaderStyles: []lipgloss.Style{lipgloss.NewStyle()},
		Content: TableContent{
			Rows:       [][]string{{"Cell"}},
			CellStyles: [][]lipgloss.Style{{lipgloss.NewStyle()}},
		},
		BorderStyle: lipgloss.NewStyle(),
	}

	out := RenderTable(state)
	if !strings.Contains(out, "Hdr") {
		t.Fatalf("expected header in output: %q", out)
	}
	if !strings.Contains(out, "Cell") {
		t.Fatalf("expected cell in output: %q", out)
	}
}

func TestRenderTableToleratesMissingStyles(t *testing.T) {
	state := TableViewState{
		Headers: []string{"A", "B"},
		Content: TableContent{
			Rows: [][]string{{"1", "2"}, {"3", "4"}},
		},
	}

	out := RenderTable(state)
	for _, want := range []string{"A", "B", "1", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output: %q", want, out)
		}
	}
}

func TestCellText(t *testing.T) {
	got := CellText([]string{"Short", "A very long course name"}, 8)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "Short" {
		t.Errorf("line 0 = %q, want Short", lines[0])
	}
	if w := ansi.StringWidth(lines[1]); w > 8 {
		t.Errorf("line 1 width = %d, want <= 8", w)
	}
	if !strings.HasSuffix(lines[1], Ellipsis) {
		t.Errorf("line 1 = %q, want ellipsis suffix", lines[1])
	}
}

func TestCellText_NoWidth(t *testing.T) {
	if got := CellText([]string{"a", "b"}, 0); got != "a\nb" {
		t.Errorf("CellText = %q, want a\\nb", got)
	}
}

func TestColumnWidth(t *testing.T) {
	if got := ColumnWidth(100, 7, 5); got != (100-7-7)/5 {
		t.Errorf("ColumnWidth(100, 7, 5) = %d", got)
	}
	if got := ColumnWidth(10, 7, 5); got != 4 {
		t.Errorf("narrow terminal: got %d, want minimum 4", got)
	}
	if got := ColumnWidth(100, 7, 0); got != 0 {
		t.Errorf("no columns: got %d, want 0", got)
	}
}
