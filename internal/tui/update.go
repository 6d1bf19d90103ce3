package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearStatusMsg clears the status line once its time has passed.
type clearStatusMsg struct{}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(msg.Width-4, 10)
		return m, nil

	case clearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusWarn = false
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setStatus shows msg in the status line and schedules it to clear.
func (m *Model) setStatus(msg string, warn bool) tea.Cmd {
	m.statusMsg = msg
	m.statusWarn = warn
	m.statusTime = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
