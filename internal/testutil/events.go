package testutil

import (
	"sync"

	"frota/internal/events"
)

// RecordingBus is an events.Bus that remembers every published change.
type RecordingBus struct {
	mu      sync.Mutex
	changes []events.Change
}

// Publish implements events.Publisher.
func (b *RecordingBus) Publish(changes ...events.Change) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.changes = append(b.changes, changes...)
}

// Subscribe implements events.Subscriber; the recorder never delivers.
func (b *RecordingBus) Subscribe(string, []string, events.Filter, func(events.Change)) (events.Subscription, error) {
	return nil, events.ErrUnavailable
}

// Changes returns a copy of the published changes.
func (b *RecordingBus) Changes() []events.Change {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]events.Change, len(b.changes))
	copy(out, b.changes)
	return out
}

// Tables returns the set of tables that received at least one change.
func (b *RecordingBus) Tables() map[string]bool {
	tables := make(map[string]bool)
	for _, c := range b.Changes() {
		tables[c.Table] = true
	}
	return tables
}
