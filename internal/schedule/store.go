package schedule

import "context"

// Store persists a timetable between sessions. The Repository stays the
// owner of entries while a program runs; a Store only loads and saves
// snapshots of it.
type Store interface {
	// Load returns the saved entries in their stored order.
	Load(ctx context.Context) ([]Entry, error)

	// Save replaces the saved timetable with entries.
	Save(ctx context.Context, entries []Entry) error

	// Close releases any resources held by the store.
	Close() error
}
