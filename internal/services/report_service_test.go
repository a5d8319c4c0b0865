package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func madridNoon(y int, m time.Month, d int) time.Time {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		panic(err)
	}
	return time.Date(y, m, d, 12, 0, 0, 0, loc)
}

func TestResolveRange(t *testing.T) {
	now := madridNoon(2025, time.March, 17)

	// Quick-select wins over explicit bounds.
	got, err := ResolveRange("last7", "2025-01-01", "2025-01-31", now)
	if err != nil {
		t.Fatalf("ResolveRange quick: %v", err)
	}
	if got.Start != "2025-03-11" || got.End != "2025-03-17" {
		t.Errorf("last7 = %s..%s, want 2025-03-11..2025-03-17", got.Start, got.End)
	}

	// Explicit bounds.
	got, err = ResolveRange("", "2025-01-01", "2025-01-31", now)
	if err != nil {
		t.Fatalf("ResolveRange explicit: %v", err)
	}
	if got.Start != "2025-01-01" || got.End != "2025-01-31" {
		t.Errorf("explicit = %s..%s", got.Start, got.End)
	}

	// Nothing given: current month in the reference zone.
	got, err = ResolveRange("", "", "", now)
	if err != nil {
		t.Fatalf("ResolveRange default: %v", err)
	}
	if got.Start != "2025-03-01" || got.End != "2025-03-31" {
		t.Errorf("default = %s..%s, want 2025-03-01..2025-03-31", got.Start, got.End)
	}

	// Malformed explicit bounds.
	if _, err := ResolveRange("", "bad", "2025-01-31", now); err == nil {
		t.Error("expected error for malformed start date")
	}
}

func TestClampCommission(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"-5", "0"},
		{"0", "0"},
		{"15", "15"},
		{"100", "100"},
		{"150", "100"},
	}
	for _, tt := range tests {
		in, _ := decimal.NewFromString(tt.in)
		want, _ := decimal.NewFromString(tt.want)
		if got := ClampCommission(in); !got.Equal(want) {
			t.Errorf("ClampCommission(%s) = %s, want %s", tt.in, got, want)
		}
	}
}
