// Package tui provides the terminal user interface for classgrid.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/config"
	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
	"github.com/javiermolinar/classgrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // A session is picked up and follows the cursor
	ModePrompt      // Typing a search query
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModePrompt:
		return "prompt"
	default:
		return "normal"
	}
}

// statusDuration is how long a status message stays on screen.
const statusDuration = 4 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   *schedule.Repository
	config *config.Config
	logger *zap.Logger
	styles *Styles

	// State
	grid   *grid.Grid
	cursor grid.Position
	index  int // selected session within the cursor cell
	mode   Mode
	picked *schedule.Entry
	filter string

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusWarn bool
	statusTime time.Time

	// clipboard is swapped in tests
	clipboard func(string) error
}

// New creates a model over repo. A nil logger disables logging.
func New(repo *schedule.Repository, cfg *config.Config, logger *zap.Logger) Model {
	if repo == nil {
		repo = schedule.NewRepository()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	prompt := textinput.New()
	prompt.Placeholder = "course name"
	prompt.Prompt = "/ "
	prompt.CharLimit = 64

	m := Model{
		repo:      repo,
		config:    cfg,
		logger:    logger,
		styles:    NewStyles(theme.MustLoad(cfg.UI.Theme)),
		prompt:    prompt,
		width:     100,
		height:    40,
		clipboard: copyToClipboard,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI and blocks until the user quits. Changes are applied
// to repo as they are made.
func Run(repo *schedule.Repository, cfg *config.Config, logger *zap.Logger) error {
	m := New(repo, cfg, logger)
	m.logger.Debug("tui start", zap.Int("entries", m.repo.Len()))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	m.logger.Debug("tui exit", zap.Int("entries", m.repo.Len()))
	return nil
}

// refresh rebuilds the grid from the repository and clamps the selection.
func (m *Model) refresh() {
	m.grid = grid.Build(m.repo.Entries())
	m.clampIndex()
}

func (m *Model) clampIndex() {
	n := len(m.currentCell().Entries)
	if m.index >= n {
		m.index = max(n-1, 0)
	}
}

func (m Model) currentCell() grid.Cell {
	return m.grid.Cell(m.cursor)
}

// selected returns the session under the cursor, if any.
func (m Model) selected() (schedule.Entry, bool) {
	entries := m.currentCell().Entries
	if m.index < 0 || m.index >= len(entries) {
		return schedule.Entry{}, false
	}
	return entries[m.index], true
}

// matches reports whether e matches the active search filter.
func (m Model) matches() func(schedule.Entry) bool {
	if m.filter == "" {
		return nil
	}
	keep := make(map[schedule.Key]bool)
	for _, g := range m.repo.Search(m.filter) {
		for _, e := range g.Items {
			keep[e.Key()] = true
		}
	}
	return func(e schedule.Entry) bool { return keep[e.Key()] }
}
