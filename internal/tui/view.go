package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/summary"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(RenderWeek(m.grid, TableOptions{
		Width:  m.width,
		Styles: m.styles,
		Cursor: &m.cursor,
		Picked: m.picked,
		Match:  m.matches(),
	}))
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderTitle() string {
	title := "classgrid  " + summary.Summarize(m.repo.Entries()).String()
	if n := len(m.grid.Clashes()); n > 0 {
		title += "  " + m.styles.WarningStyle.Render(fmt.Sprintf("%d clashing cells", n))
	}
	if m.filter != "" {
		title += "  " + m.styles.MutedStyle.Render("filter: "+m.filter)
	}
	return m.styles.TitleStyle.Render(title)
}

// renderDetail lists the sessions in the cursor cell.
func (m Model) renderDetail() string {
	cell := m.currentCell()
	lines := []string{m.styles.MutedStyle.Render(fmt.Sprintf("%s %s", cell.Day, cell.Slot))}

	if len(cell.Entries) == 0 {
		lines = append(lines, m.styles.MutedStyle.Render("  no sessions"))
	}
	for i, e := range cell.Entries {
		line := fmt.Sprintf("  %s  %s-%s", e.Name, e.TimeStart, e.TimeEnd)
		if e.Location != "" {
			line += "  " + e.Location
		}
		if n := len(m.repo.Conflicts(e)); n > 0 {
			line += "  " + m.styles.WarningStyle.Render(fmt.Sprintf("(%d %s)", n, plural(n, "conflict")))
		}
		if i == m.index {
			line = m.styles.SelectedLine.Render(">" + line[1:])
		}
		lines = append(lines, line)
	}

	if unplaced := m.grid.Unplaced(); len(unplaced) > 0 {
		lines = append(lines, m.styles.MutedStyle.Render(fmt.Sprintf("%d sessions outside the grid", len(unplaced))))
	}
	return m.styles.DetailStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	var lines []string

	if m.mode == ModePrompt {
		lines = append(lines, m.styles.PromptStyle.Render(m.prompt.View()))
	}
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusWarn {
			style = m.styles.WarningStyle
		}
		lines = append(lines, style.Render(m.statusMsg))
	}
	lines = append(lines, m.styles.HelpStyle.Render(m.helpText()))

	return strings.Join(lines, "\n")
}

func (m Model) helpText() string {
	switch m.mode {
	case ModeMove:
		return "←↓↑→ choose cell  enter drop  esc cancel"
	case ModePrompt:
		return "enter search  esc cancel"
	default:
		return "←↓↑→/hjkl move  tab next  enter pick up  x remove  X remove course  / search  y copy  q quit"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// entryLine formats e for the status line.
func entryLine(e schedule.Entry) string {
	return fmt.Sprintf("%s %s %s-%s", e.Name, e.Day, e.TimeStart, e.TimeEnd)
}
