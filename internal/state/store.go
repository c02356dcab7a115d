package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/hordewatch/hordewatch/internal/watch"
	"github.com/hordewatch/hordewatch/internal/webhook"
)

// Entry is one timestamped line in the activity log.
type Entry struct {
	Time time.Time
	Text string
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Session watch.State
	Entries []Entry

	ChatCount      int
	DeliveredCount int
	FailedCount    int
	SkippedCount   int

	LastOutcome *webhook.Outcome
	LastChange  time.Time
}

const defaultEntryLimit = 500

// Store coordinates concurrent updates between the session event consumer and
// the UI refresh tick. A single writer appends; the UI takes snapshots.
type Store struct {
	mu       sync.RWMutex
	limit    int
	snapshot Snapshot
}

// NewStore builds a store keeping at most limit activity entries; limit <= 0
// uses the default.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	return &Store{limit: limit}
}

// Apply folds one session event into the store: diagnostics become activity
// entries, chat and delivery events also bump their counters.
func (s *Store) Apply(ev watch.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case watch.KindDiagnostic:
		s.append(Entry{Time: ev.Time, Text: ev.Text})

	case watch.KindChat:
		s.snapshot.ChatCount++

	case watch.KindDelivery:
		outcome := ev.Outcome
		s.snapshot.LastOutcome = &outcome
		switch outcome.Status {
		case webhook.StatusDelivered:
			s.snapshot.DeliveredCount++
			s.append(Entry{Time: ev.Time, Text: "message delivered to webhook"})
		case webhook.StatusSkipped:
			s.snapshot.SkippedCount++
			s.append(Entry{Time: ev.Time, Text: fmt.Sprintf("delivery skipped: %s", outcome.Reason)})
		case webhook.StatusFailed:
			s.snapshot.FailedCount++
			s.append(Entry{Time: ev.Time, Text: fmt.Sprintf("webhook delivery failed: %s", outcome.Reason)})
		}
	}
	s.snapshot.LastChange = time.Now()
}

// Append adds a free-form activity entry (application-level messages that do
// not originate from a session, e.g. "configuration saved").
func (s *Store) Append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.append(Entry{Time: time.Now(), Text: text})
	s.snapshot.LastChange = time.Now()
}

// SetSession records the session lifecycle state for display.
func (s *Store) SetSession(st watch.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Session = st
	s.snapshot.LastChange = time.Now()
}

// Snapshot returns a copy of the current snapshot. The entries slice is
// cloned so callers can hold it across further updates.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	if s.snapshot.LastOutcome != nil {
		outcome := *s.snapshot.LastOutcome
		snap.LastOutcome = &outcome
	}
	return snap
}

func (s *Store) append(e Entry) {
	s.snapshot.Entries = append(s.snapshot.Entries, e)
	if overflow := len(s.snapshot.Entries) - s.limit; overflow > 0 {
		s.snapshot.Entries = append(s.snapshot.Entries[:0], s.snapshot.Entries[overflow:]...)
	}
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
