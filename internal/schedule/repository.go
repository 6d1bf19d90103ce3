package schedule

import (
	"errors"
	"slices"
	"strings"
)

// ErrEntryNotFound is returned when a key does not match any stored entry.
var ErrEntryNotFound = errors.New("entry not found")

// Result describes the outcome of a committed mutation.
type Result struct {
	Committed  int             // entries added or replaced
	Duplicates int             // entries dropped because their key already existed
	Warning    ConflictWarning // advisory overlaps, never blocking
}

// Option configures a Repository.
type Option func(*Repository)

// WithWarningFunc registers fn to be called once per mutation whose result
// carries a non-empty warning.
func WithWarningFunc(fn func(ConflictWarning)) Option {
	return func(r *Repository) {
		r.onWarning = fn
	}
}

// Repository is the single owner of the timetable: an ordered collection of
// entries with unique identity keys. It is not safe for concurrent use.
type Repository struct {
	entries   []Entry
	onWarning func(ConflictWarning)
}

// NewRepository creates an empty Repository.
func NewRepository(opts ...Option) *Repository {
	r := &Repository{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Entries returns a copy of the stored entries in insertion order.
func (r *Repository) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Len returns the number of stored entries.
func (r *Repository) Len() int {
	return len(r.entries)
}

// Get returns the entry with the given key.
func (r *Repository) Get(key Key) (Entry, bool) {
	if i := r.indexOf(key); i >= 0 {
		return r.entries[i], true
	}
	return Entry{}, false
}

// Add validates e and appends it with its day and times in canonical form.
// Adding an entry whose key is already
// stored is a no-op reported through Result.Duplicates. Overlaps with stored
// entries are reported in Result.Warning but do not prevent the add.
func (r *Repository) Add(e Entry) (Result, error) {
	e = e.canonical()
	if err := e.Validate(); err != nil {
		return Result{}, err
	}
	if r.indexOf(e.Key()) >= 0 {
		return Result{Duplicates: 1}, nil
	}

	res := Result{
		Committed: 1,
		Warning:   newWarning(e, FindConflicts(e, r.entries, nil)),
	}
	r.entries = append(r.entries, e)
	r.notify(res)
	return res, nil
}

// AddMany appends a batch without interval validation; this is the bulk
// import path, where entries are stored as read. Duplicates, within the batch
// or against stored entries, are dropped. Conflicts are checked against the
// entries stored before the call and reported as a single warning.
func (r *Repository) AddMany(entries []Entry) Result {
	var res Result
	existing := r.entries
	added := make([]Entry, 0, len(entries))
	seen := make(map[Key]bool, len(r.entries)+len(entries))
	for _, e := range r.entries {
		seen[e.Key()] = true
	}

	for _, e := range entries {
		if seen[e.Key()] {
			res.Duplicates++
			continue
		}
		seen[e.Key()] = true
		w := newWarning(e, FindConflicts(e, existing, nil))
		res.Warning.Conflicts = append(res.Warning.Conflicts, w.Conflicts...)
		added = append(added, e)
	}

	res.Committed = len(added)
	r.entries = append(slices.Clip(r.entries), added...)
	r.notify(res)
	return res
}

// RemoveOne deletes the entry with the given key. It returns false if no
// entry matched.
func (r *Repository) RemoveOne(key Key) bool {
	i := r.indexOf(key)
	if i < 0 {
		return false
	}
	r.entries = slices.Delete(slices.Clone(r.entries), i, i+1)
	return true
}

// RemoveByCourse deletes every session of the named course and returns how
// many were removed.
func (r *Repository) RemoveByCourse(name string) int {
	before := len(r.entries)
	r.entries = slices.DeleteFunc(slices.Clone(r.entries), func(e Entry) bool {
		return e.Name == name
	})
	return before - len(r.entries)
}

// Update replaces the entry stored under oldKey with next. next must pass
// validation; otherwise the repository is left unchanged. An edit onto a key
// held by another entry is dropped as a duplicate. Overlaps are
// computed against every other entry and reported, not enforced.
func (r *Repository) Update(oldKey Key, next Entry) (Result, error) {
	i := r.indexOf(oldKey)
	if i < 0 {
		return Result{}, ErrEntryNotFound
	}
	next = next.canonical()
	if err := next.Validate(); err != nil {
		return Result{}, err
	}
	return r.replaceAt(i, next), nil
}

// Replace swaps old for next without interval validation. Grid moves use it,
// since the target slot defines the interval.
func (r *Repository) Replace(old, next Entry) (Result, error) {
	i := r.indexOf(old.Key())
	if i < 0 {
		return Result{}, ErrEntryNotFound
	}
	return r.replaceAt(i, next), nil
}

// replaceAt stores next at position i. When next's key already belongs to a
// different entry the change is dropped and both entries stay as they were.
func (r *Repository) replaceAt(i int, next Entry) Result {
	if j := r.indexOf(next.Key()); j >= 0 && j != i {
		return Result{Duplicates: 1}
	}

	old := r.entries[i]
	entries := slices.Clone(r.entries)

	res := Result{
		Committed: 1,
		Warning:   newWarning(next, FindConflicts(next, r.entries, &old)),
	}
	entries[i] = next
	r.entries = entries
	r.notify(res)
	return res
}

// Reset replaces the whole timetable, dropping duplicate keys.
func (r *Repository) Reset(entries []Entry) {
	r.entries = nil
	seen := make(map[Key]bool, len(entries))
	for _, e := range entries {
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		r.entries = append(r.entries, e)
	}
}

// Clear removes every entry.
func (r *Repository) Clear() {
	r.entries = nil
}

// GroupByCourse partitions the entries by course name. Groups are ordered by
// the first appearance of each name; items keep insertion order.
func (r *Repository) GroupByCourse() []GroupedClass {
	return group(r.entries, func(Entry) bool { return true })
}

// Search returns the groups whose course name contains query, ignoring case.
func (r *Repository) Search(query string) []GroupedClass {
	q := strings.ToLower(query)
	return group(r.entries, func(e Entry) bool {
		return strings.Contains(strings.ToLower(e.Name), q)
	})
}

// Conflicts returns the entries overlapping the stored entry e, other than e.
func (r *Repository) Conflicts(e Entry) []Entry {
	return FindConflicts(e, r.entries, &e)
}

func (r *Repository) indexOf(key Key) int {
	return slices.IndexFunc(r.entries, func(e Entry) bool {
		return e.Key() == key
	})
}

func (r *Repository) notify(res Result) {
	if r.onWarning != nil && !res.Warning.Empty() {
		r.onWarning(res.Warning)
	}
}

func group(entries []Entry, keep func(Entry) bool) []GroupedClass {
	var groups []GroupedClass
	index := make(map[string]int)
	for _, e := range entries {
		if !keep(e) {
			continue
		}
		i, ok := index[e.Name]
		if !ok {
			i = len(groups)
			index[e.Name] = i
			groups = append(groups, GroupedClass{Name: e.Name})
		}
		groups[i].Items = append(groups[i].Items, e)
	}
	return groups
}
