// Package export writes timetable snapshots as JSON and iCalendar.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/javiermolinar/classgrid/internal/dateutil"
	"github.com/javiermolinar/classgrid/internal/schedule"
)

// WriteJSON writes entries as an indented JSON array of
// {name, day, timeStart, timeEnd, location} records.
func WriteJSON(w io.Writer, entries []schedule.Entry) error {
	if entries == nil {
		entries = []schedule.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding timetable: %w", err)
	}
	return nil
}

// ReadJSON reads a snapshot written by WriteJSON.
func ReadJSON(r io.Reader) ([]schedule.Entry, error) {
	var entries []schedule.Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding timetable: %w", err)
	}
	return entries, nil
}

// WriteICS writes one event per entry for the week starting on the Monday of
// weekOf. Entries with a non-weekday or unparsable times are skipped; the
// number of written events is returned. Events are stamped with that Monday,
// so the same snapshot and week always serialize to the same bytes.
func WriteICS(w io.Writer, entries []schedule.Entry, weekOf time.Time) (int, error) {
	monday, _ := dateutil.WeekRange(weekOf)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//classgrid//timetable//EN")

	written := 0
	for i, e := range entries {
		d := e.Day.Index()
		start, err1 := schedule.NormalizeTime(e.TimeStart)
		end, err2 := schedule.NormalizeTime(e.TimeEnd)
		if d < 0 || err1 != nil || err2 != nil {
			continue
		}
		date := monday.AddDate(0, 0, d)

		event := cal.AddEvent(fmt.Sprintf("%s-%d@classgrid", date.Format("20060102"), i))
		event.SetDtStampTime(monday)
		event.SetStartAt(at(date, start))
		event.SetEndAt(at(date, end))
		event.SetSummary(e.Name)
		if e.Location != "" {
			event.SetLocation(e.Location)
		}
		written++
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return written, fmt.Errorf("writing calendar: %w", err)
	}
	return written, nil
}

func at(date time.Time, hhmm string) time.Time {
	m := schedule.TimeToMinutes(hhmm)
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location())
}
