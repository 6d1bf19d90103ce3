package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated cell text.
const Ellipsis = "…"

// CellText joins lines for one grid cell, truncating each to width.
func CellText(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansi.Truncate(l, width, Ellipsis)
	}
	return strings.Join(out, "\n")
}

// ColumnWidth splits total width between a fixed first column and n equal
// columns, accounting for one border cell per column plus the outer edge.
func ColumnWidth(total, first, n int) int {
	if n <= 0 {
		return 0
	}
	w := (total - first - (n + 2)) / n
	return max(w, 4)
}
