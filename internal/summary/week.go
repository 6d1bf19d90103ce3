// Package summary provides shared week summary utilities.
package summary

import (
	"fmt"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

// DayStats holds the load of one weekday.
type DayStats struct {
	Day      schedule.Day
	Sessions int
	Minutes  int
}

// WeekSummary holds aggregated timetable data.
type WeekSummary struct {
	Sessions int
	Courses  int
	Minutes  int
	Days     []DayStats // Monday to Friday
	Clashes  int        // sessions overlapping at least one other
	Offweek  int        // sessions whose day is not a weekday
}

// Summarize aggregates entries. Sessions with unparsable or reversed times
// count as sessions but add no minutes.
func Summarize(entries []schedule.Entry) *WeekSummary {
	s := &WeekSummary{
		Sessions: len(entries),
		Days:     make([]DayStats, len(schedule.Weekdays)),
	}
	for i, d := range schedule.Weekdays {
		s.Days[i].Day = d
	}

	courses := make(map[string]bool)
	for _, e := range entries {
		courses[e.Name] = true

		if len(schedule.FindConflicts(e, entries, &e)) > 0 {
			s.Clashes++
		}

		i := e.Day.Index()
		if i < 0 {
			s.Offweek++
			continue
		}
		s.Days[i].Sessions++
		if m := minutes(e); m > 0 {
			s.Days[i].Minutes += m
			s.Minutes += m
		}
	}
	s.Courses = len(courses)
	return s
}

func minutes(e schedule.Entry) int {
	start, err := schedule.NormalizeTime(e.TimeStart)
	if err != nil {
		return 0
	}
	end, err := schedule.NormalizeTime(e.TimeEnd)
	if err != nil {
		return 0
	}
	return schedule.TimeToMinutes(end) - schedule.TimeToMinutes(start)
}

// BusiestDay returns the weekday with the most scheduled minutes. Ties go
// to the earlier day. ok is false when nothing is scheduled.
func (s *WeekSummary) BusiestDay() (day schedule.Day, minutes int, ok bool) {
	for _, d := range s.Days {
		if d.Minutes > minutes {
			day, minutes, ok = d.Day, d.Minutes, true
		}
	}
	return day, minutes, ok
}

// String renders a one-line overview.
func (s *WeekSummary) String() string {
	out := fmt.Sprintf("%d sessions, %d courses, %s a week", s.Sessions, s.Courses, FormatDuration(s.Minutes))
	if day, m, ok := s.BusiestDay(); ok {
		out += fmt.Sprintf(", busiest %s (%s)", day, FormatDuration(m))
	}
	return out
}

// FormatDuration formats minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
