package report

import "sync"

// Latest keeps only the result of the most recently begun refresh.
// Refreshes over the same data can complete out of order under real
// network and query latency; without a guard a slow older completion
// would overwrite a newer result. Callers take a ticket with Begin,
// run their fetch-then-aggregate pass, and offer the result through
// Commit: a completion whose ticket is no longer the latest issued is
// discarded and the newer stored value is returned instead.
type Latest[T any] struct {
	mu     sync.Mutex
	issued uint64
	stored uint64
	value  T
	ok     bool
}

// Begin issues a monotonically increasing ticket for a new refresh.
func (l *Latest[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return l.issued
}

// Commit offers the result of the refresh identified by ticket.
// It returns the value that should be served: v itself when the
// ticket is still current, or the previously stored newer value when
// the refresh was superseded while in flight. The boolean reports
// whether v was accepted.
func (l *Latest[T]) Commit(ticket uint64, v T) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ticket < l.issued && l.ok && l.stored > ticket {
		return l.value, false
	}
	l.stored = ticket
	l.value = v
	l.ok = true
	return v, true
}

// Get returns the most recently committed value, if any.
func (l *Latest[T]) Get() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.ok
}
