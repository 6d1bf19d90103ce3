package grid

import (
	"errors"
	"testing"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

func entry(name string, day schedule.Day, start, end string) schedule.Entry {
	return schedule.Entry{Name: name, Day: day, TimeStart: start, TimeEnd: end, Location: "Room"}
}

func TestSlots(t *testing.T) {
	if len(Slots) != 10 {
		t.Fatalf("got %d slots, want 10", len(Slots))
	}
	for i := 1; i < len(Slots); i++ {
		if got := schedule.TimeToMinutes(Slots[i]) - schedule.TimeToMinutes(Slots[i-1]); got != SlotMinutes {
			t.Errorf("slot %d is %d minutes after the previous one", i, got)
		}
	}
	if Slots[0] != schedule.DayStart || Slots[len(Slots)-1] != schedule.DayEnd {
		t.Errorf("slots span %s-%s", Slots[0], Slots[len(Slots)-1])
	}
}

func TestBuild(t *testing.T) {
	entries := []schedule.Entry{
		entry("CS101", schedule.Monday, "09:30", "10:30"),
		entry("MA200", schedule.Monday, "9:30", "10:00"), // unpadded start still maps
		entry("PH100", schedule.Friday, "17:30", "18:30"),
		entry("Off grid", schedule.Tuesday, "09:00", "10:00"),
		entry("Weekend", "Saturday", "09:30", "10:30"),
		entry("Broken", schedule.Monday, "00:00", "00:00"),
	}

	g := Build(entries)

	cell, err := g.CellAt(schedule.Monday, "09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cell.Entries) != 2 {
		t.Fatalf("got %d entries in Monday 09:30, want 2", len(cell.Entries))
	}
	if !cell.Clash {
		t.Error("expected Monday 09:30 to be flagged as clashing")
	}

	cell, _ = g.CellAt(schedule.Friday, "17:30")
	if len(cell.Entries) != 1 || cell.Clash {
		t.Errorf("Friday 17:30: got %+v", cell)
	}

	if got := len(g.Unplaced()); got != 3 {
		t.Errorf("got %d unplaced entries, want 3", got)
	}
	if got := g.Clashes(); len(got) != 1 || got[0] != (Position{Day: 0, Slot: 1}) {
		t.Errorf("got clashes %v, want [{0 1}]", got)
	}
}

func TestBuild_CoResidentWithoutOverlap(t *testing.T) {
	// Two sessions sharing a start slot always overlap, but a zero-length
	// imported entry does not.
	g := Build([]schedule.Entry{
		entry("A", schedule.Wednesday, "10:30", "11:30"),
		entry("B", schedule.Wednesday, "10:30", "10:30"),
	})
	cell, _ := g.CellAt(schedule.Wednesday, "10:30")
	if len(cell.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(cell.Entries))
	}
	if cell.Clash {
		t.Error("zero-length entry should not clash")
	}
}

func TestCellAt_Invalid(t *testing.T) {
	g := Build(nil)
	if _, err := g.CellAt("Sunday", "09:30"); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("got %v, want ErrInvalidCell", err)
	}
	if _, err := g.CellAt(schedule.Monday, "09:00"); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("got %v, want ErrInvalidCell", err)
	}
}

func TestCandidate(t *testing.T) {
	tests := []struct {
		name string
		in   schedule.Entry
		day  schedule.Day
		slot string
		want schedule.Entry
	}{
		{
			name: "one hour session",
			in:   entry("Phys1", schedule.Tuesday, "09:30", "10:30"),
			day:  schedule.Wednesday,
			slot: "13:30",
			want: entry("Phys1", schedule.Wednesday, "13:30", "14:30"),
		},
		{
			name: "half hour session widens to a slot",
			in:   entry("Phys1", schedule.Tuesday, "09:30", "10:00"),
			day:  schedule.Wednesday,
			slot: "13:30",
			want: entry("Phys1", schedule.Wednesday, "13:30", "14:30"),
		},
		{
			name: "last slot",
			in:   entry("Late", schedule.Monday, "08:30", "09:30"),
			day:  schedule.Friday,
			slot: "17:30",
			want: entry("Late", schedule.Friday, "17:30", "18:30"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Candidate(tt.in, tt.day, tt.slot)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMove(t *testing.T) {
	t.Run("moves to new cell", func(t *testing.T) {
		repo := schedule.NewRepository()
		phys := entry("Phys1", schedule.Tuesday, "09:30", "10:30")
		repo.AddMany([]schedule.Entry{phys})

		res, err := Move(repo, phys, schedule.Wednesday, "13:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Committed != 1 {
			t.Errorf("got committed %d, want 1", res.Committed)
		}
		want := entry("Phys1", schedule.Wednesday, "13:30", "14:30")
		if got := repo.Entries(); len(got) != 1 || got[0] != want {
			t.Errorf("got %v, want [%v]", got, want)
		}
	})

	t.Run("same cell is a no-op", func(t *testing.T) {
		repo := schedule.NewRepository()
		short := entry("Phys1", schedule.Tuesday, "09:30", "10:00")
		repo.AddMany([]schedule.Entry{short})

		res, err := Move(repo, short, schedule.Tuesday, "09:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Committed != 0 {
			t.Errorf("expected no commit, got %+v", res)
		}
		if got := repo.Entries()[0]; got != short {
			t.Errorf("entry changed to %v", got)
		}
	})

	t.Run("onto another session of the same course keeps both", func(t *testing.T) {
		repo := schedule.NewRepository()
		a := entry("CS101", schedule.Monday, "09:30", "10:30")
		b := entry("CS101", schedule.Monday, "10:30", "11:00")
		repo.AddMany([]schedule.Entry{a, b})

		res, err := Move(repo, a, schedule.Monday, "10:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Duplicates != 1 || res.Committed != 0 {
			t.Errorf("got %+v, want one duplicate", res)
		}
		if got := repo.Entries(); len(got) != 2 || got[0] != a || got[1] != b {
			t.Errorf("got %v, want %v and %v unchanged", got, a, b)
		}
	})

	t.Run("conflict warns and commits", func(t *testing.T) {
		var batches int
		repo := schedule.NewRepository(schedule.WithWarningFunc(func(schedule.ConflictWarning) {
			batches++
		}))
		a := entry("A", schedule.Monday, "08:30", "09:30")
		b := entry("B", schedule.Monday, "10:30", "11:30")
		repo.AddMany([]schedule.Entry{a, b})
		batches = 0

		res, err := Move(repo, a, schedule.Monday, "10:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Warning.Conflicts) != 1 || res.Warning.Conflicts[0].With != b {
			t.Errorf("got warning %v, want conflict with B", res.Warning.Messages())
		}
		if batches != 1 {
			t.Errorf("got %d warning batches, want 1", batches)
		}

		g := Build(repo.Entries())
		cell, _ := g.CellAt(schedule.Monday, "10:30")
		if len(cell.Entries) != 2 || !cell.Clash {
			t.Errorf("expected clashing cell with two entries, got %+v", cell)
		}
	})

	t.Run("does not conflict with own previous position", func(t *testing.T) {
		repo := schedule.NewRepository()
		a := entry("A", schedule.Monday, "09:30", "10:30")
		repo.AddMany([]schedule.Entry{a})

		res, err := Move(repo, a, schedule.Monday, "10:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Warning.Empty() {
			t.Errorf("unexpected warning: %s", res.Warning)
		}
	})

	t.Run("invalid target", func(t *testing.T) {
		repo := schedule.NewRepository()
		a := entry("A", schedule.Monday, "09:30", "10:30")
		repo.AddMany([]schedule.Entry{a})

		if _, err := Move(repo, a, "Saturday", "09:30"); !errors.Is(err, ErrInvalidCell) {
			t.Errorf("got %v, want ErrInvalidCell", err)
		}
		if _, err := Move(repo, a, schedule.Monday, "09:00"); !errors.Is(err, ErrInvalidCell) {
			t.Errorf("got %v, want ErrInvalidCell", err)
		}
	})

	t.Run("entry not stored", func(t *testing.T) {
		repo := schedule.NewRepository()
		_, err := Move(repo, entry("Ghost", schedule.Monday, "09:30", "10:30"), schedule.Tuesday, "09:30")
		if !errors.Is(err, schedule.ErrEntryNotFound) {
			t.Errorf("got %v, want ErrEntryNotFound", err)
		}
	})
}
