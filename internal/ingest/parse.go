package ingest

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/javiermolinar/classgrid/internal/schedule"
)

// Positions of the spreadsheet template. Rows and columns start at 1.
const (
	RoomCol      = 1
	DayRow       = 2
	TimeRow      = 3
	FirstDataRow = 4
	FirstDataCol = 5
)

// Defaults for blank cells.
const (
	UnknownName     = "Unknown"
	UnknownLocation = "Unknown Location"
	MissingTime     = "00:00"
)

var parenDay = regexp.MustCompile(`\(([^)]+)\)`)

// Parse reads every non-blank course cell of t into an entry. It never
// fails: unrecognised days are kept as written and missing times become
// "00:00". Entries are not validated; they are stored as read.
func Parse(t Table) []schedule.Entry {
	var entries []schedule.Entry
	for col := FirstDataCol; col <= t.Cols(); col++ {
		day := parseDay(t.Cell(DayRow, col))
		start, end := parseTimeRange(t.Cell(TimeRow, col))

		for row := FirstDataRow; row <= t.Rows(); row++ {
			course := strings.TrimSpace(t.Cell(row, col))
			if course == "" {
				continue
			}
			entries = append(entries, schedule.Entry{
				Name:      orDefault(course, UnknownName),
				Day:       day,
				TimeStart: start,
				TimeEnd:   end,
				Location:  orDefault(strings.TrimSpace(t.Cell(row, RoomCol)), UnknownLocation),
			})
		}
	}
	return entries
}

// parseDay takes the text inside the first pair of parentheses, or the
// whole cell, and canonicalizes it when it names a weekday.
func parseDay(raw string) schedule.Day {
	token := strings.TrimSpace(raw)
	if m := parenDay.FindStringSubmatch(token); m != nil {
		token = strings.TrimSpace(m[1])
	}
	if d, err := schedule.NormalizeDay(token); err == nil {
		return d
	}
	return schedule.Day(token)
}

// parseTimeRange splits "start-end" on hyphens. A blank half becomes
// MissingTime.
func parseTimeRange(raw string) (start, end string) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	start = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		end = strings.TrimSpace(parts[1])
	}
	return orDefault(start, MissingTime), orDefault(end, MissingTime)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Importer feeds parsed tables into a Repository.
type Importer struct {
	repo   *schedule.Repository
	logger *zap.Logger
}

// NewImporter creates an Importer. A nil logger disables logging.
func NewImporter(repo *schedule.Repository, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{repo: repo, logger: logger}
}

// Import parses t and adds the entries in one batch. Re-importing the same
// table adds nothing.
func (im *Importer) Import(t Table) schedule.Result {
	entries := Parse(t)
	res := im.repo.AddMany(entries)

	im.logger.Info("imported table",
		zap.Int("rows", t.Rows()),
		zap.Int("cols", t.Cols()),
		zap.Int("parsed", len(entries)),
		zap.Int("added", res.Committed),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("conflicts", len(res.Warning.Conflicts)),
	)
	for _, e := range entries {
		if !e.Day.Valid() {
			im.logger.Debug("non-canonical day kept", zap.String("name", e.Name), zap.String("day", string(e.Day)))
		}
	}
	return res
}
