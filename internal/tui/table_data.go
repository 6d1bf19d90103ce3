package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/tui/view"
)

// TableOptions controls how the week grid is drawn.
type TableOptions struct {
	Width  int
	Styles *Styles

	// Cursor is the highlighted cell, nil for none.
	Cursor *grid.Position
	// Picked is the session being moved.
	Picked *schedule.Entry
	// Match selects sessions to highlight, nil for none.
	Match func(e schedule.Entry) bool
}

// RenderWeek draws g as a table with one column per weekday and one row per
// slot. Each cell lists the course names of the sessions that start there.
func RenderWeek(g *grid.Grid, opts TableOptions) string {
	styles := opts.Styles
	if styles == nil {
		styles = NewStyles(nil)
	}
	colW := view.ColumnWidth(opts.Width, timeColWidth, len(grid.Days))

	headers := make([]string, 0, len(grid.Days)+1)
	headerStyles := make([]lipgloss.Style, 0, len(grid.Days)+1)
	headers = append(headers, "")
	headerStyles = append(headerStyles, styles.TimeStyle)
	for _, d := range grid.Days {
		headers = append(headers, d.Short())
		headerStyles = append(headerStyles, styles.HeaderStyle.Width(colW))
	}

	content := view.TableContent{
		Rows:       make([][]string, len(grid.Slots)),
		CellStyles: make([][]lipgloss.Style, len(grid.Slots)),
	}
	for s, slot := range grid.Slots {
		row := make([]string, 0, len(grid.Days)+1)
		rowStyles := make([]lipgloss.Style, 0, len(grid.Days)+1)
		row = append(row, slot)
		rowStyles = append(rowStyles, styles.TimeStyle)

		for d := range grid.Days {
			pos := grid.Position{Day: d, Slot: s}
			cell := g.Cell(pos)
			row = append(row, view.CellText(cellLines(cell, opts.Picked), colW))
			rowStyles = append(rowStyles, cellStyle(cell, pos, opts, styles).Width(colW))
		}
		content.Rows[s] = row
		content.CellStyles[s] = rowStyles
	}

	return view.RenderTable(view.TableViewState{
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content:      content,
		BorderStyle:  styles.BorderStyle,
	})
}

func cellLines(c grid.Cell, picked *schedule.Entry) []string {
	if len(c.Entries) == 0 {
		return []string{"·"}
	}
	lines := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		name := e.Name
		if picked != nil && picked.Key() == e.Key() {
			name = "» " + name
		}
		if c.Clash {
			name = "! " + name
		}
		lines[i] = name
	}
	return lines
}

func cellStyle(c grid.Cell, pos grid.Position, opts TableOptions, s *Styles) lipgloss.Style {
	style := s.CellStyle
	switch {
	case len(c.Entries) == 0:
		style = s.EmptyCellStyle
	case c.Clash:
		style = s.ClashCellStyle
	case opts.Match != nil && anyEntry(c.Entries, opts.Match):
		style = s.MatchCellStyle
	case opts.Picked != nil && anyEntry(c.Entries, func(e schedule.Entry) bool { return e.Key() == opts.Picked.Key() }):
		style = s.PickedStyle
	}
	if opts.Cursor != nil && *opts.Cursor == pos {
		style = style.Background(s.CursorStyle.GetBackground())
	}
	return style
}

func anyEntry(entries []schedule.Entry, fn func(schedule.Entry) bool) bool {
	for _, e := range entries {
		if fn(e) {
			return true
		}
	}
	return false
}
