// Package dateutil provides date parsing for calendar exports.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned for input ParseWeekOf does not recognise.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// ParseDate parses a date string in YYYY-MM-DD format in loc.
// If the string is empty, returns today's date.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now().In(loc)), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// WeekRange returns the Monday and Friday of the ISO week containing t.
func WeekRange(t time.Time) (monday, friday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	friday = monday.AddDate(0, 0, 4)
	return monday, friday
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseWeekOf resolves s to the Monday of a week. s can be:
//   - Empty string or "this-week": the week containing relativeTo
//   - "next-week" or "last-week"
//   - Absolute date: "2025-01-15" (YYYY-MM-DD), any day of the week
//
// All inputs are case-insensitive. Dates are taken in relativeTo's location.
func ParseWeekOf(s string, relativeTo time.Time) (time.Time, error) {
	monday, _ := WeekRange(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "this-week":
		return monday, nil
	case "next-week":
		return monday.AddDate(0, 0, 7), nil
	case "last-week":
		return monday.AddDate(0, 0, -7), nil
	}

	date, err := ParseDate(input, relativeTo.Location())
	if err != nil {
		return time.Time{}, err
	}
	monday, _ = WeekRange(date)
	return monday, nil
}
