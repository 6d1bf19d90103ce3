package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

// formatEntry renders a session as "Name  Day start-end  location".
func formatEntry(e schedule.Entry) string {
	s := fmt.Sprintf("%s  %s %s-%s", formatCourse(e.Name), e.Day, e.TimeStart, e.TimeEnd)
	if e.Location != "" {
		s += "  " + formatMuted(e.Location)
	}
	return s
}

// printGroups prints grouped sessions, one course per block. Sessions that
// overlap another stored session are flagged.
func (a *App) printGroups(w io.Writer, groups []schedule.GroupedClass) {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", formatCourse(g.Name), formatMuted(fmt.Sprintf("(%d)", len(g.Items))))
		for _, e := range g.Items {
			line := fmt.Sprintf("  %-9s %s-%s", e.Day, e.TimeStart, e.TimeEnd)
			if e.Location != "" {
				line += "  " + e.Location
			}
			if with := a.repo.Conflicts(e); len(with) > 0 {
				line += "  " + formatClash(fmt.Sprintf("clashes with %s", conflictNames(with)))
			}
			fmt.Fprintln(w, line)
		}
	}
}

func conflictNames(entries []schedule.Entry) string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return strings.Join(names, ", ")
}
