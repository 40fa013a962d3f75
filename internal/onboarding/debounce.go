package onboarding

import (
	"sync"
	"time"
)

// DefaultDebounceInterval is the idle window after which queued field
// writes are flushed to the store.
const DefaultDebounceInterval = 300 * time.Millisecond

// Debouncer coalesces rapid field updates (keystrokes) into a single store
// write after an idle window. Pending writes must be flushed before any
// navigation transition so no keystroke is lost at a step boundary, and
// cancelled on teardown so stale values never land in a record that has
// moved on.
type Debouncer struct {
	mu       sync.Mutex
	store    *FormStateStore
	interval time.Duration
	pending  Record
	timer    *time.Timer
}

// NewDebouncer creates a debouncer writing into store after interval of
// idle time. A non-positive interval falls back to the default.
func NewDebouncer(store *FormStateStore, interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{store: store, interval: interval, pending: Record{}}
}

// Queue merges partial into the pending write and restarts the idle timer.
func (d *Debouncer) Queue(partial Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for k, v := range partial {
		d.pending[k] = v
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.Flush)
}

// Flush writes any pending fields to the store immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	pending := d.pending
	d.pending = Record{}
	d.mu.Unlock()

	if len(pending) > 0 {
		d.store.Update(pending)
	}
}

// Stop discards pending writes without flushing. Used on teardown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = Record{}
}
