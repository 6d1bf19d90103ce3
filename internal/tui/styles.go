package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/classgrid/internal/tui/theme"
)

// timeColWidth is the width of the slot label column.
const timeColWidth = 7

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	TitleStyle     lipgloss.Style
	HeaderStyle    lipgloss.Style
	TimeStyle      lipgloss.Style
	BorderStyle    lipgloss.Style
	CellStyle      lipgloss.Style
	EmptyCellStyle lipgloss.Style
	ClashCellStyle lipgloss.Style
	MatchCellStyle lipgloss.Style
	CursorStyle    lipgloss.Style
	PickedStyle    lipgloss.Style

	// Detail pane below the grid
	DetailStyle  lipgloss.Style
	SelectedLine lipgloss.Style
	MutedStyle   lipgloss.Style

	// Footer
	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style
	HelpStyle    lipgloss.Style
	PromptStyle  lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	if t == nil {
		t = theme.MustLoad(theme.DefaultName)
	}
	fg := theme.Color(t.Fg)
	muted := theme.Color(t.FgMuted)
	accent := theme.Color(t.Accent)

	s := &Styles{}
	s.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	s.HeaderStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Foreground(accent)
	s.TimeStyle = lipgloss.NewStyle().Width(timeColWidth).Foreground(muted)
	s.BorderStyle = lipgloss.NewStyle().Foreground(muted)

	s.CellStyle = lipgloss.NewStyle().Foreground(theme.Color(t.Course))
	s.EmptyCellStyle = lipgloss.NewStyle().Foreground(muted)
	s.ClashCellStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Color(t.Clash))
	s.MatchCellStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Color(t.Match))
	s.CursorStyle = lipgloss.NewStyle().Background(theme.Color(t.BgSelection))
	s.PickedStyle = lipgloss.NewStyle().Italic(true).Foreground(theme.Color(t.Picked))

	s.DetailStyle = lipgloss.NewStyle().Foreground(fg).PaddingLeft(1)
	s.SelectedLine = lipgloss.NewStyle().Bold(true).Foreground(accent)
	s.MutedStyle = lipgloss.NewStyle().Foreground(muted)

	s.StatusStyle = lipgloss.NewStyle().Foreground(fg)
	s.WarningStyle = lipgloss.NewStyle().Foreground(theme.Color(t.Clash))
	s.HelpStyle = lipgloss.NewStyle().Foreground(muted)
	s.PromptStyle = lipgloss.NewStyle().Foreground(accent)

	return s
}
