package schedule

import (
	"fmt"
	"strings"
)

// Overlaps reports whether a and b are on the same day and their half-open
// [start, end) intervals intersect. Sessions that only touch end-to-start do
// not overlap. Entries whose times cannot be parsed never overlap.
func Overlaps(a, b Entry) bool {
	if a.Day != b.Day {
		return false
	}
	startA, ok1 := parseMinutes(a.TimeStart)
	endA, ok2 := parseMinutes(a.TimeEnd)
	startB, ok3 := parseMinutes(b.TimeStart)
	endB, ok4 := parseMinutes(b.TimeEnd)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return startA < endB && endA > startB
}

// FindConflicts returns every entry of pool that overlaps candidate, in pool
// order. Pool entries identical to *exclude are skipped, which lets an edit
// compare the updated entry against the pool without matching its old self.
func FindConflicts(candidate Entry, pool []Entry, exclude *Entry) []Entry {
	var conflicts []Entry
	for _, e := range pool {
		if exclude != nil && e.Same(*exclude) {
			continue
		}
		if Overlaps(candidate, e) {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}

// HasInternalClash reports whether any two of the given entries overlap.
func HasInternalClash(entries []Entry) bool {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if len(FindConflicts(entries[i], entries[j:j+1], nil)) > 0 {
				return true
			}
		}
	}
	return false
}

// Conflict pairs an entry being committed with one entry it overlaps.
type Conflict struct {
	Entry Entry // the entry being added, updated or moved
	With  Entry // the stored entry it overlaps
}

// Message renders the conflict for display.
func (c Conflict) Message() string {
	return fmt.Sprintf("%q on %s at %s conflicts with %q (%s-%s)",
		c.Entry.Name, c.Entry.Day, c.Entry.TimeStart,
		c.With.Name, c.With.TimeStart, c.With.TimeEnd,
	)
}

// ConflictWarning is the advisory result of a mutation: the mutation was
// committed, but it overlaps the listed entries.
type ConflictWarning struct {
	Conflicts []Conflict
}

// Empty returns true if the warning carries no conflicts.
func (w ConflictWarning) Empty() bool {
	return len(w.Conflicts) == 0
}

// Messages returns one message per conflict.
func (w ConflictWarning) Messages() []string {
	msgs := make([]string, 0, len(w.Conflicts))
	for _, c := range w.Conflicts {
		msgs = append(msgs, c.Message())
	}
	return msgs
}

// String joins all messages with "; ".
func (w ConflictWarning) String() string {
	return strings.Join(w.Messages(), "; ")
}

func newWarning(subject Entry, with []Entry) ConflictWarning {
	var w ConflictWarning
	for _, other := range with {
		w.Conflicts = append(w.Conflicts, Conflict{Entry: subject, With: other})
	}
	return w
}
