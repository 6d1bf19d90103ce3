package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key", zap.String("key", msg.String()), zap.Stringer("mode", m.mode))

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeMove:
		return m.handleMoveKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigation(msg.String()) {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if n := len(m.currentCell().Entries); n > 0 {
			m.index = (m.index + 1) % n
		}
	case "shift+tab":
		if n := len(m.currentCell().Entries); n > 0 {
			m.index = (m.index - 1 + n) % n
		}

	case "enter", "m":
		e, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.picked = &e
		m.mode = ModeMove
		return m, m.setStatus(fmt.Sprintf("Moving %s: pick a cell and press enter", e.Name), false)

	case "x", "delete":
		e, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.repo.RemoveOne(e.Key())
		m.refresh()
		m.logger.Info("removed entry", zap.Stringer("key", e.Key()))
		return m, m.setStatus("Removed "+entryLine(e), false)

	case "X":
		e, ok := m.selected()
		if !ok {
			return m, nil
		}
		n := m.repo.RemoveByCourse(e.Name)
		m.refresh()
		m.logger.Info("removed course", zap.String("name", e.Name), zap.Int("sessions", n))
		return m, m.setStatus(fmt.Sprintf("Removed %d sessions of %s", n, e.Name), false)

	case "/":
		m.mode = ModePrompt
		m.prompt.SetValue(m.filter)
		return m, m.prompt.Focus()

	case "esc":
		m.filter = ""

	case "y":
		e, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.clipboard(e.String()); err != nil {
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		}
		return m, m.setStatus("Copied "+e.Name, false)
	}

	return m, nil
}

// handleMoveKeys handles keys while a session is picked up.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigation(msg.String()) {
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.picked = nil
		m.mode = ModeNormal
		return m, m.setStatus("Move cancelled", false)

	case "enter", "m":
		return m.drop()
	}
	return m, nil
}

// drop places the picked session into the cursor cell.
func (m Model) drop() (tea.Model, tea.Cmd) {
	e := *m.picked
	day := grid.Days[m.cursor.Day]
	slot := grid.Slots[m.cursor.Slot]

	m.picked = nil
	m.mode = ModeNormal

	res, err := grid.Move(m.repo, e, day, slot)
	if err != nil {
		return m, m.setStatus(fmt.Sprintf("Error: %v", err), true)
	}
	m.refresh()

	moved, _ := grid.Candidate(e, day, slot)
	m.index = m.indexOf(moved)
	m.logger.Info("moved entry",
		zap.Stringer("from", e.Key()),
		zap.Stringer("to", moved.Key()),
		zap.Int("conflicts", len(res.Warning.Conflicts)),
	)

	switch {
	case !res.Warning.Empty():
		return m, m.setStatus("Warning: "+res.Warning.String(), true)
	case res.Duplicates > 0:
		return m, m.setStatus(fmt.Sprintf("%s already has a session there; not moved", e.Name), true)
	case res.Committed == 0:
		return m, nil
	}
	return m, m.setStatus("Moved to "+entryLine(moved), false)
}

// handlePromptKeys handles keys while typing a search query.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt.Blur()
		m.mode = ModeNormal
		return m, nil
	case "enter":
		m.filter = strings.TrimSpace(m.prompt.Value())
		m.prompt.Blur()
		m.mode = ModeNormal
		if m.filter == "" {
			return m, nil
		}
		groups := m.repo.Search(m.filter)
		return m, m.setStatus(fmt.Sprintf("%d courses match %q", len(groups), m.filter), false)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleNavigation moves the cursor and reports whether key was a
// navigation key.
func (m *Model) handleNavigation(key string) bool {
	switch key {
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
		}
	case "l", "right":
		if m.cursor.Day < len(grid.Days)-1 {
			m.cursor.Day++
		}
	case "k", "up":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
		}
	case "j", "down":
		if m.cursor.Slot < len(grid.Slots)-1 {
			m.cursor.Slot++
		}
	case "g", "home":
		m.cursor.Slot = 0
	case "G", "end":
		m.cursor.Slot = len(grid.Slots) - 1
	default:
		return false
	}
	m.index = 0
	return true
}

// indexOf returns the position of target in the cursor cell, or 0.
func (m Model) indexOf(target schedule.Entry) int {
	for i, e := range m.currentCell().Entries {
		if e.Key() == target.Key() {
			return i
		}
	}
	return 0
}

func copyToClipboard(s string) error {
	return clipboard.WriteAll(s)
}
