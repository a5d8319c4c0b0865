package report

import "testing"

func TestLatestInOrderCommits(t *testing.T) {
	var l Latest[string]

	t1 := l.Begin()
	if got, accepted := l.Commit(t1, "first"); !accepted || got != "first" {
		t.Fatalf("Commit(t1) = (%q, %v), want (first, true)", got, accepted)
	}

	t2 := l.Begin()
	if got, accepted := l.Commit(t2, "second"); !accepted || got != "second" {
		t.Fatalf("Commit(t2) = (%q, %v), want (second, true)", got, accepted)
	}
}

func TestLatestDiscardsStaleCompletion(t *testing.T) {
	var l Latest[string]

	slow := l.Begin()
	fast := l.Begin()

	// The later-issued refresh completes first.
	if got, accepted := l.Commit(fast, "new"); !accepted || got != "new" {
		t.Fatalf("Commit(fast) = (%q, %v), want (new, true)", got, accepted)
	}

	// The earlier refresh straggles in afterwards: its result must be
	// discarded and the caller served the newer value.
	got, accepted := l.Commit(slow, "stale")
	if accepted {
		t.Error("stale completion was accepted")
	}
	if got != "new" {
		t.Errorf("superseded caller served %q, want %q", got, "new")
	}

	if v, ok := l.Get(); !ok || v != "new" {
		t.Errorf("Get() = (%q, %v), want (new, true)", v, ok)
	}
}

func TestLatestAcceptsNewestCompletedWhileNewerInFlight(t *testing.T) {
	var l Latest[string]

	older := l.Begin()
	_ = l.Begin() // newer refresh issued, still in flight

	// Until the newer refresh lands, the older completion is the best
	// data available and must be kept.
	if got, accepted := l.Commit(older, "older"); !accepted || got != "older" {
		t.Fatalf("Commit(older) = (%q, %v), want (older, true)", got, accepted)
	}
}

func TestLatestGetEmpty(t *testing.T) {
	var l Latest[int]
	if _, ok := l.Get(); ok {
		t.Error("Get on fresh guard reported a value")
	}
}
