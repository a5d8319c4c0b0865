package report

import (
	"testing"
	"time"
)

// noon in the reference zone keeps the tests away from DST edges.
func refNoon(y int, m time.Month, d int) time.Time {
	loc, err := time.LoadLocation(ReferenceZone)
	if err != nil {
		panic(err)
	}
	return time.Date(y, m, d, 12, 0, 0, 0, loc)
}

func TestCurrentMonth(t *testing.T) {
	got := CurrentMonth(refNoon(2025, time.March, 17))
	if got.Start != "2025-03-01" || got.End != "2025-03-31" {
		t.Errorf("March window = %s..%s, want 2025-03-01..2025-03-31", got.Start, got.End)
	}

	// February of a leap year
	got = CurrentMonth(refNoon(2024, time.February, 10))
	if got.Start != "2024-02-01" || got.End != "2024-02-29" {
		t.Errorf("Feb 2024 window = %s..%s, want 2024-02-01..2024-02-29", got.Start, got.End)
	}
}

func TestCurrentMonthUsesReferenceZone(t *testing.T) {
	// 23:30 UTC on March 31 is already April 1 in Madrid; the window
	// must be April's, not March's.
	now := time.Date(2025, time.March, 31, 23, 30, 0, 0, time.UTC)
	got := CurrentMonth(now)
	if got.Start != "2025-04-01" || got.End != "2025-04-30" {
		t.Errorf("window = %s..%s, want 2025-04-01..2025-04-30", got.Start, got.End)
	}
}

func TestQuickRange(t *testing.T) {
	now := refNoon(2025, time.March, 17)

	tests := []struct {
		name       string
		start, end string
	}{
		{"today", "2025-03-17", "2025-03-17"},
		{"yesterday", "2025-03-16", "2025-03-16"},
		{"last7", "2025-03-11", "2025-03-17"},
	}

	for _, tt := range tests {
		got, ok := QuickRange(tt.name, now)
		if !ok {
			t.Errorf("QuickRange(%q) not recognized", tt.name)
			continue
		}
		if got.Start != tt.start || got.End != tt.end {
			t.Errorf("QuickRange(%q) = %s..%s, want %s..%s", tt.name, got.Start, got.End, tt.start, tt.end)
		}
	}

	if _, ok := QuickRange("lastYear", now); ok {
		t.Error("QuickRange accepted an unknown window name")
	}
}

func TestParseRange(t *testing.T) {
	got, err := ParseRange("2025-03-01", "2025-03-15")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if got.Start != "2025-03-01" || got.End != "2025-03-15" {
		t.Errorf("got %s..%s", got.Start, got.End)
	}

	if _, err := ParseRange("2025-03-15", "2025-03-01"); err == nil {
		t.Error("expected error for start after end")
	}
	if _, err := ParseRange("not-a-date", "2025-03-01"); err == nil {
		t.Error("expected error for malformed start date")
	}
	if _, err := ParseRange("2025-03-01", ""); err == nil {
		t.Error("expected error for missing end date")
	}
}
