package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bounds of the class day and the granularity of session times.
const (
	DayStart    = "08:30"
	DayEnd      = "17:30"
	MaxDuration = 60 // minutes
	Granularity = 30 // minutes
)

// Normalization errors.
var (
	ErrMalformedTime = errors.New("time must be in H:MM or HH:MM format")
	ErrUnknownDay    = errors.New("day must be Monday through Friday")
	ErrEmptyName     = errors.New("name cannot be empty")
)

// ErrValidationFailed is matched by every *ValidationError.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError describes the first interval rule an entry violates.
// Message is shown to the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidationFailed) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Messages returned by ValidateInterval.
const (
	MsgStartOutOfRange = "Start time must be between 08:30 and 17:30."
	MsgEndOutOfRange   = "End time must be between 08:30 and 17:30."
	MsgStartNotBefore  = "Start time must be earlier than end time."
	MsgTooLong         = "Class duration cannot be more than 1 hour."
	MsgStartOffGrid    = "Start time must be a valid 30-minute interval (e.g., 08:00, 08:30)."
	MsgEndOffGrid      = "End time must be a valid 30-minute interval (e.g., 08:00, 08:30)."
)

var titleCaser = cases.Title(language.English)

var dayAliases = map[string]Day{
	"Monday":    Monday,
	"Tuesday":   Tuesday,
	"Wednesday": Wednesday,
	"Thursday":  Thursday,
	"Friday":    Friday,
	"Mon":       Monday,
	"Tue":       Tuesday,
	"Wed":       Wednesday,
	"Thu":       Thursday,
	"Fri":       Friday,
}

// NormalizeTime converts "H:MM", "HH:M" and similar into zero-padded
// "HH:MM". Non-numeric or out-of-clock input fails with ErrMalformedTime.
func NormalizeTime(raw string) (string, error) {
	hour, minute, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || !isDigits(hour) || !isDigits(minute) {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}
	if len(hour) > 2 || len(minute) > 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}
	s := pad2(hour) + ":" + pad2(minute)
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}
	return s, nil
}

// NormalizeDay maps a free-form day name onto a canonical weekday.
// Weekends and unrecognised names fail with ErrUnknownDay.
func NormalizeDay(raw string) (Day, error) {
	s := titleCaser.String(strings.TrimSpace(raw))
	if d, ok := dayAliases[s]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDay, raw)
}

// ValidateInterval checks start and end against the class-day rules and
// returns the first violation, or nil. Rules are applied in this order:
// range, ordering, duration, granularity.
func ValidateInterval(start, end string) *ValidationError {
	s, sok := parseMinutes(start)
	e, eok := parseMinutes(end)
	lo, hi := TimeToMinutes(DayStart), TimeToMinutes(DayEnd)

	if !sok || s < lo || s > hi {
		return &ValidationError{Message: MsgStartOutOfRange}
	}
	if !eok || e < lo || e > hi {
		return &ValidationError{Message: MsgEndOutOfRange}
	}
	if s >= e {
		return &ValidationError{Message: MsgStartNotBefore}
	}
	if e-s > MaxDuration {
		return &ValidationError{Message: MsgTooLong}
	}
	if s%Granularity != 0 {
		return &ValidationError{Message: MsgStartOffGrid}
	}
	if e%Granularity != 0 {
		return &ValidationError{Message: MsgEndOffGrid}
	}
	return nil
}

// NewEntry builds a validated entry from user input.
func NewEntry(name, day, start, end, location string) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, ErrEmptyName
	}

	d, err := NormalizeDay(day)
	if err != nil {
		return Entry{}, err
	}

	s, err := NormalizeTime(start)
	if err != nil {
		return Entry{}, fmt.Errorf("start time: %w", err)
	}
	e, err := NormalizeTime(end)
	if err != nil {
		return Entry{}, fmt.Errorf("end time: %w", err)
	}

	if verr := ValidateInterval(s, e); verr != nil {
		return Entry{}, verr
	}

	return Entry{
		Name:      name,
		Day:       d,
		TimeStart: s,
		TimeEnd:   e,
		Location:  strings.TrimSpace(location),
	}, nil
}

// Validate runs the strict checks of NewEntry against an existing entry.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if !e.Day.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDay, e.Day)
	}
	if verr := ValidateInterval(e.TimeStart, e.TimeEnd); verr != nil {
		return verr
	}
	return nil
}

// canonical returns e with day and times rewritten to their canonical form
// where they parse. Fields that do not parse are left for Validate to reject.
func (e Entry) canonical() Entry {
	if d, err := NormalizeDay(string(e.Day)); err == nil {
		e.Day = d
	}
	if t, err := NormalizeTime(e.TimeStart); err == nil {
		e.TimeStart = t
	}
	if t, err := NormalizeTime(e.TimeEnd); err == nil {
		e.TimeEnd = t
	}
	e.Name = strings.TrimSpace(e.Name)
	return e
}

// TimeToMinutes converts "HH:MM" (or "H:MM") to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	m, _ := parseMinutes(t)
	return m
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes shifts a time by delta minutes. The hour is not wrapped at
// midnight, so "23:30"+60 yields "24:30".
func AddMinutes(t string, delta int) string {
	m := TimeToMinutes(t) + delta
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func parseMinutes(t string) (int, bool) {
	s, err := NormalizeTime(t)
	if err != nil {
		return 0, false
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + mins, true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
