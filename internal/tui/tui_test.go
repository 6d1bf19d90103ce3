package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/classgrid/internal/grid"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestModel(t *testing.T, entries ...schedule.Entry) (Model, *schedule.Repository) {
	t.Helper()
	repo := schedule.NewRepository()
	repo.Reset(entries)
	return New(repo, nil, nil), repo
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		next, ok := updated.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", updated)
		}
		m = next
	}
	return m
}

func phys1() schedule.Entry {
	return schedule.Entry{Name: "Phys1", Day: schedule.Tuesday, TimeStart: "09:30", TimeEnd: "10:30", Location: "Lab 2"}
}

func TestNew_Defaults(t *testing.T) {
	m := New(nil, nil, nil)
	if m.repo == nil || m.config == nil || m.logger == nil || m.styles == nil {
		t.Fatal("expected dependencies to be defaulted")
	}
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
	if _, ok := m.selected(); ok {
		t.Error("expected no selection on an empty grid")
	}
}

func TestNavigationClamps(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "h", "k")
	if m.cursor != (grid.Position{}) {
		t.Errorf("cursor = %+v, want origin", m.cursor)
	}

	m = press(t, m, "l", "l", "l", "l", "l", "l", "G")
	if m.cursor.Day != len(grid.Days)-1 || m.cursor.Slot != len(grid.Slots)-1 {
		t.Errorf("cursor = %+v, want bottom right", m.cursor)
	}

	m = press(t, m, "g")
	if m.cursor.Slot != 0 {
		t.Errorf("slot = %d, want 0", m.cursor.Slot)
	}
}

func TestTabCyclesCell(t *testing.T) {
	a := schedule.Entry{Name: "A", Day: schedule.Monday, TimeStart: "08:30", TimeEnd: "09:30"}
	b := schedule.Entry{Name: "B", Day: schedule.Monday, TimeStart: "08:30", TimeEnd: "09:00"}
	m, _ := newTestModel(t, a, b)

	if e, _ := m.selected(); e.Name != "A" {
		t.Fatalf("selected %q, want A", e.Name)
	}
	m = press(t, m, "tab")
	if e, _ := m.selected(); e.Name != "B" {
		t.Errorf("selected %q, want B", e.Name)
	}
	m = press(t, m, "tab")
	if e, _ := m.selected(); e.Name != "A" {
		t.Errorf("selected %q, want A after wrap", e.Name)
	}
}

func TestMove(t *testing.T) {
	m, repo := newTestModel(t, phys1())

	// Tuesday 09:30
	m = press(t, m, "l", "j", "enter")
	if m.mode != ModeMove || m.picked == nil {
		t.Fatalf("expected move mode with a picked session, got %v", m.mode)
	}

	// Wednesday 13:30
	m = press(t, m, "l", "j", "j", "j", "j", "enter")
	if m.mode != ModeNormal || m.picked != nil {
		t.Errorf("expected normal mode after drop, got %v", m.mode)
	}

	want := schedule.Entry{Name: "Phys1", Day: schedule.Wednesday, TimeStart: "13:30", TimeEnd: "14:30", Location: "Lab 2"}
	got := repo.Entries()
	if len(got) != 1 || got[0] != want {
		t.Fatalf("entries = %v, want [%v]", got, want)
	}
	if e, ok := m.selected(); !ok || e != want {
		t.Errorf("selected = %v, want moved session", e)
	}
	if !strings.Contains(m.statusMsg, "Moved") {
		t.Errorf("status = %q, want move confirmation", m.statusMsg)
	}
}

func TestMove_ReportsConflict(t *testing.T) {
	other := schedule.Entry{Name: "CS101", Day: schedule.Wednesday, TimeStart: "13:30", TimeEnd: "14:30"}
	m, repo := newTestModel(t, phys1(), other)

	m = press(t, m, "l", "j", "enter", "l", "j", "j", "j", "j", "enter")

	if repo.Len() != 2 {
		t.Fatalf("Len = %d, want 2", repo.Len())
	}
	if !m.statusWarn || !strings.Contains(m.statusMsg, "CS101") {
		t.Errorf("status = %q (warn %v), want conflict warning", m.statusMsg, m.statusWarn)
	}
	if !m.grid.Cell(grid.Position{Day: 2, Slot: 5}).Clash {
		t.Error("expected target cell to be flagged")
	}
}

func TestMove_Cancel(t *testing.T) {
	m, repo := newTestModel(t, phys1())

	m = press(t, m, "l", "j", "enter", "l", "esc")
	if m.mode != ModeNormal || m.picked != nil {
		t.Errorf("expected move cancelled, got mode %v", m.mode)
	}
	if got := repo.Entries(); got[0] != phys1() {
		t.Errorf("entry changed to %v", got[0])
	}
}

func TestMove_SameCellIsNoop(t *testing.T) {
	m, repo := newTestModel(t, phys1())

	m = press(t, m, "l", "j", "enter", "enter")
	if got := repo.Entries(); len(got) != 1 || got[0] != phys1() {
		t.Errorf("entries = %v, want unchanged", got)
	}
	if m.statusMsg != "" && strings.Contains(m.statusMsg, "Moved") {
		t.Errorf("status = %q, want no move", m.statusMsg)
	}
}

func TestMove_OntoSameCourseKeepsBoth(t *testing.T) {
	later := phys1()
	later.TimeStart, later.TimeEnd = "10:30", "11:00"
	m, repo := newTestModel(t, phys1(), later)

	// Tuesday 09:30 to Tuesday 10:30
	m = press(t, m, "l", "j", "enter", "j", "enter")

	got := repo.Entries()
	if len(got) != 2 || got[0] != phys1() || got[1] != later {
		t.Fatalf("entries = %v, want both sessions unchanged", got)
	}
	if !m.statusWarn || !strings.Contains(m.statusMsg, "not moved") {
		t.Errorf("status = %q (warn %v), want not-moved warning", m.statusMsg, m.statusWarn)
	}
}

func TestRemove(t *testing.T) {
	second := phys1()
	second.Day = schedule.Thursday
	m, repo := newTestModel(t, phys1(), second)

	m = press(t, m, "l", "j", "x")
	if repo.Len() != 1 {
		t.Fatalf("Len = %d, want 1", repo.Len())
	}
	if _, ok := m.selected(); ok {
		t.Error("expected empty cell after remove")
	}
}

func TestRemoveCourse(t *testing.T) {
	second := phys1()
	second.Day = schedule.Thursday
	other := schedule.Entry{Name: "CS101", Day: schedule.Monday, TimeStart: "08:30", TimeEnd: "09:30"}
	m, repo := newTestModel(t, phys1(), second, other)

	m = press(t, m, "l", "j", "X")
	if repo.Len() != 1 || repo.Entries()[0].Name != "CS101" {
		t.Errorf("entries = %v, want only CS101", repo.Entries())
	}
	if !strings.Contains(m.statusMsg, "2 sessions") {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestSearchPrompt(t *testing.T) {
	cs := schedule.Entry{Name: "CS101", Day: schedule.Monday, TimeStart: "08:30", TimeEnd: "09:30"}
	m, _ := newTestModel(t, cs, phys1())

	m = press(t, m, "/")
	if m.mode != ModePrompt {
		t.Fatalf("mode = %v, want prompt", m.mode)
	}
	m = press(t, m, "c", "s", "enter")
	if m.mode != ModeNormal || m.filter != "cs" {
		t.Fatalf("mode %v filter %q, want normal/cs", m.mode, m.filter)
	}

	match := m.matches()
	if !match(cs) || match(phys1()) {
		t.Error("expected only CS101 to match")
	}

	m = press(t, m, "esc")
	if m.filter != "" || m.matches() != nil {
		t.Error("expected esc to clear the filter")
	}
}

func TestCopy(t *testing.T) {
	m, _ := newTestModel(t, phys1())
	var copied string
	m.clipboard = func(s string) error {
		copied = s
		return nil
	}

	m = press(t, m, "l", "j", "y")
	if copied != phys1().String() {
		t.Errorf("copied %q, want %q", copied, phys1().String())
	}
}

func TestView(t *testing.T) {
	clash := schedule.Entry{Name: "Chem", Day: schedule.Tuesday, TimeStart: "09:30", TimeEnd: "10:00"}
	away := schedule.Entry{Name: "Late", Day: schedule.Monday, TimeStart: "18:30", TimeEnd: "19:30"}
	m, _ := newTestModel(t, phys1(), clash, away)
	m = press(t, m, "l", "j")

	out := m.View()
	for _, want := range []string{"Mon", "Fri", "08:30", "17:30", "Phys1", "Lab 2", "1 clashing cells", "1 sessions outside the grid", "q quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("View missing %q:\n%s", want, out)
		}
	}
}

func TestRenderWeek_Plain(t *testing.T) {
	g := grid.Build([]schedule.Entry{phys1()})
	out := RenderWeek(g, TableOptions{Width: 120})

	if !strings.Contains(out, "Tue") || !strings.Contains(out, "Phys1") {
		t.Errorf("RenderWeek output missing content:\n%s", out)
	}
}
