package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

func sample() []schedule.Entry {
	return []schedule.Entry{
		{Name: "CS101", Day: schedule.Monday, TimeStart: "09:30", TimeEnd: "10:30", Location: "RoomA"},
		{Name: "Lineare Algebra", Day: schedule.Wednesday, TimeStart: "13:30", TimeEnd: "14:30", Location: "WF-EX-7/3"},
		{Name: "Imported", Day: "Sat", TimeStart: "09:30", TimeEnd: "00:00", Location: "Unknown Location"},
	}
}

func TestWriteJSON_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()[:1]); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	out := buf.String()
	for _, field := range []string{`"name": "CS101"`, `"day": "Monday"`, `"timeStart": "09:30"`, `"timeEnd": "10:30"`, `"location": "RoomA"`} {
		if !strings.Contains(out, field) {
			t.Errorf("expected %s in output:\n%s", field, out)
		}
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("got %q, want []", got)
	}
}

func TestReadJSON(t *testing.T) {
	var buf bytes.Buffer
	want := sample()
	if err := WriteJSON(&buf, want); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}

	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	weekOf := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC) // a Wednesday

	n, err := WriteICS(&buf, sample(), weekOf)
	if err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d events, want 2", n)
	}

	out := buf.String()
	checks := []string{
		"SUMMARY:CS101",
		"LOCATION:RoomA",
		"DTSTART:20260302T093000Z",
		"DTEND:20260302T103000Z",
		"SUMMARY:Lineare Algebra",
		"DTSTART:20260304T133000Z",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Errorf("expected %q in calendar:\n%s", c, out)
		}
	}
	if strings.Contains(out, "SUMMARY:Imported") {
		t.Error("entries without a weekday should be skipped")
	}
}

func TestWriteICS_Deterministic(t *testing.T) {
	weekOf := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)

	var first, second bytes.Buffer
	if _, err := WriteICS(&first, sample(), weekOf); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}
	if _, err := WriteICS(&second, sample(), weekOf.Add(2*time.Hour)); err != nil {
		t.Fatalf("WriteICS failed: %v", err)
	}

	if first.String() != second.String() {
		t.Errorf("calendars differ:\n%s\n---\n%s", first.String(), second.String())
	}
	if !strings.Contains(first.String(), "DTSTAMP:20260302T000000Z") {
		t.Errorf("expected events stamped with the week's Monday:\n%s", first.String())
	}
}
