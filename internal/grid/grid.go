// Package grid lays timetable entries out on the fixed Monday–Friday by
// ten-slot week grid and validates moves between cells.
package grid

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

// SlotMinutes is the width of one grid slot.
const SlotMinutes = 60

// Slots are the start times of the grid rows.
var Slots = []string{
	"08:30", "09:30", "10:30", "11:30", "12:30",
	"13:30", "14:30", "15:30", "16:30", "17:30",
}

// Days are the grid columns.
var Days = schedule.Weekdays

// ErrInvalidCell is returned when a day or slot is not part of the grid.
var ErrInvalidCell = errors.New("cell is not on the grid")

// Position addresses a cell by column and row index.
type Position struct {
	Day  int // 0=Monday
	Slot int // index into Slots
}

// Valid returns true if p is inside the grid.
func (p Position) Valid() bool {
	return p.Day >= 0 && p.Day < len(Days) && p.Slot >= 0 && p.Slot < len(Slots)
}

// Cell holds the entries that start in one slot of one day.
type Cell struct {
	Day     schedule.Day
	Slot    string
	Entries []schedule.Entry
	Clash   bool // two or more co-resident entries overlap
}

// Grid is a read-only placement of entries onto cells.
type Grid struct {
	cells    [][]Cell // [day][slot]
	unplaced []schedule.Entry
}

// Build places each entry in the cell whose day matches and whose slot
// equals the entry's normalized start time. Entries that match no cell are
// kept aside and returned by Unplaced.
func Build(entries []schedule.Entry) *Grid {
	g := &Grid{cells: make([][]Cell, len(Days))}
	for d, day := range Days {
		g.cells[d] = make([]Cell, len(Slots))
		for s, slot := range Slots {
			g.cells[d][s] = Cell{Day: day, Slot: slot}
		}
	}

	for _, e := range entries {
		pos, ok := Locate(e)
		if !ok {
			g.unplaced = append(g.unplaced, e)
			continue
		}
		c := &g.cells[pos.Day][pos.Slot]
		c.Entries = append(c.Entries, e)
	}

	for d := range g.cells {
		for s := range g.cells[d] {
			c := &g.cells[d][s]
			c.Clash = schedule.HasInternalClash(c.Entries)
		}
	}
	return g
}

// Locate returns the position of the cell that e occupies.
func Locate(e schedule.Entry) (Position, bool) {
	d := e.Day.Index()
	if d < 0 {
		return Position{}, false
	}
	start, err := schedule.NormalizeTime(e.TimeStart)
	if err != nil {
		return Position{}, false
	}
	s := SlotIndex(start)
	if s < 0 {
		return Position{}, false
	}
	return Position{Day: d, Slot: s}, true
}

// SlotIndex returns the row index of slot, or -1.
func SlotIndex(slot string) int {
	for i, s := range Slots {
		if s == slot {
			return i
		}
	}
	return -1
}

// Cell returns the cell at pos. It panics if pos is outside the grid.
func (g *Grid) Cell(pos Position) Cell {
	return g.cells[pos.Day][pos.Slot]
}

// CellAt returns the cell for a day and slot start time.
func (g *Grid) CellAt(day schedule.Day, slot string) (Cell, error) {
	pos, err := position(day, slot)
	if err != nil {
		return Cell{}, err
	}
	return g.Cell(pos), nil
}

// Unplaced returns entries that do not start on a grid slot of a weekday.
func (g *Grid) Unplaced() []schedule.Entry {
	return g.unplaced
}

// Clashes returns the positions of every cell flagged with an internal clash.
func (g *Grid) Clashes() []Position {
	var out []Position
	for d := range g.cells {
		for s := range g.cells[d] {
			if g.cells[d][s].Clash {
				out = append(out, Position{Day: d, Slot: s})
			}
		}
	}
	return out
}

// Candidate returns e placed into the given cell. Placement always spans
// exactly one slot, whatever e's previous duration.
func Candidate(e schedule.Entry, day schedule.Day, slot string) (schedule.Entry, error) {
	if _, err := position(day, slot); err != nil {
		return schedule.Entry{}, err
	}
	e.Day = day
	e.TimeStart = slot
	e.TimeEnd = schedule.AddMinutes(slot, SlotMinutes)
	return e, nil
}

// Move relocates e into the given cell and commits it to repo. Moving an
// entry onto its own name, day and start is a no-op. Overlaps with other
// entries are reported in the result and do not block the move.
func Move(repo *schedule.Repository, e schedule.Entry, day schedule.Day, slot string) (schedule.Result, error) {
	next, err := Candidate(e, day, slot)
	if err != nil {
		return schedule.Result{}, err
	}
	if next.Key() == e.Key() {
		return schedule.Result{}, nil
	}
	res, err := repo.Replace(e, next)
	if err != nil {
		return schedule.Result{}, fmt.Errorf("moving %s: %w", e.Key(), err)
	}
	return res, nil
}

func position(day schedule.Day, slot string) (Position, error) {
	pos := Position{Day: day.Index(), Slot: SlotIndex(slot)}
	if !pos.Valid() {
		return Position{}, fmt.Errorf("%w: %s %s", ErrInvalidCell, day, slot)
	}
	return pos, nil
}
