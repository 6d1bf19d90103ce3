// Package schedule defines the core timetable types: entries, time
// normalization, conflict detection and the in-memory repository.
package schedule

import "fmt"

// Day is a weekday name. Canonical values are Monday through Friday;
// entries imported from spreadsheets may carry other, raw values.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
)

// Weekdays lists the canonical days in calendar order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid returns true if d is one of the canonical weekdays.
func (d Day) Valid() bool {
	return d.Index() >= 0
}

// Index returns the position of d in Weekdays (0=Monday), or -1.
func (d Day) Index() int {
	for i, w := range Weekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// Short returns the three-letter label used by the grid, e.g. "Mon".
func (d Day) Short() string {
	if !d.Valid() {
		return string(d)
	}
	return string(d[:3])
}

// Entry is a single class session. Entries are values: edits produce a new
// Entry rather than modifying a stored one.
type Entry struct {
	Name      string `json:"name"`
	Day       Day    `json:"day"`
	TimeStart string `json:"timeStart"` // "HH:MM"
	TimeEnd   string `json:"timeEnd"`   // "HH:MM"
	Location  string `json:"location"`
}

// Key identifies an entry within a Repository.
type Key struct {
	Name      string
	Day       Day
	TimeStart string
}

// String renders the key as "name/day/start".
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Name, k.Day, k.TimeStart)
}

// Key returns the identity key of the entry.
func (e Entry) Key() Key {
	return Key{Name: e.Name, Day: e.Day, TimeStart: e.TimeStart}
}

// Same reports whether all five fields of e and other are equal.
func (e Entry) Same(other Entry) bool {
	return e == other
}

// Duration returns the entry length in minutes.
func (e Entry) Duration() int {
	return TimeToMinutes(e.TimeEnd) - TimeToMinutes(e.TimeStart)
}

// String formats the entry for messages and logs.
func (e Entry) String() string {
	return fmt.Sprintf("%q %s %s-%s @ %s", e.Name, e.Day, e.TimeStart, e.TimeEnd, e.Location)
}

// GroupedClass pairs a course name with all of its sessions.
type GroupedClass struct {
	Name  string
	Items []Entry
}
