package report

import (
	"errors"
	"time"
)

var errStartAfterEnd = errors.New("start date is after end date")

// All date windows are evaluated in one fixed reference zone so every
// user of a company sees the same "current month" boundary regardless
// of where they are physically located.
const ReferenceZone = "Europe/Madrid"

// DateRange is an inclusive [Start, End] window at day granularity,
// both bounds formatted YYYY-MM-DD.
type DateRange struct {
	Start string `json:"start_date"`
	End   string `json:"end_date"`
}

func refLocation() *time.Location {
	loc, err := time.LoadLocation(ReferenceZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CurrentMonth returns the first through last calendar day of the
// month containing now, evaluated in the reference zone.
func CurrentMonth(now time.Time) DateRange {
	local := now.In(refLocation())
	y, m, _ := local.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return DateRange{
		Start: first.Format("2006-01-02"),
		End:   last.Format("2006-01-02"),
	}
}

// QuickRange resolves the quick-select windows "today", "yesterday"
// and "last7" (the last 7 calendar days ending today, inclusive)
// anchored at now in the reference zone. Unknown names report false.
func QuickRange(name string, now time.Time) (DateRange, bool) {
	local := now.In(refLocation())
	y, m, d := local.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var start, end time.Time
	switch name {
	case "today":
		start, end = today, today
	case "yesterday":
		start = today.AddDate(0, 0, -1)
		end = start
	case "last7":
		end = today
		start = today.AddDate(0, 0, -6)
	default:
		return DateRange{}, false
	}
	return DateRange{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}, true
}

// ParseRange validates a manually entered window. Both bounds are
// required and Start must not be after End.
func ParseRange(start, end string) (DateRange, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return DateRange{}, err
	}
	if s.After(e) {
		return DateRange{}, errStartAfterEnd
	}
	return DateRange{Start: start, End: end}, nil
}
