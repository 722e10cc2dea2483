package watcher

import (
	"sync"
	"time"

	"go.trai.ch/cachet/internal/core/ports"
)

// DefaultDebounceWindow is the default time window for coalescing file events.
// A configure run touches the cache file many times in quick succession; the
// consumer only needs one reload at the end.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces rapid events on the watched file into one callback per
// quiet window. Later operations win: a write followed by a remove reports a
// remove.
type Debouncer struct {
	mu       sync.Mutex
	op       ports.WatchOp
	pending  bool
	timer    *time.Timer
	window   time.Duration
	callback func(op ports.WatchOp)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(op ports.WatchOp)) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Add records an operation and restarts the debounce window.
func (d *Debouncer) Add(op ports.WatchOp) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.op = op
	d.pending = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	if !d.pending {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	op := d.op
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		d.callback(op)
	}
}

// Flush immediately triggers the callback with the pending operation, if
// any. It blocks until the callback completes, for shutdown paths that need
// the last event delivered before proceeding.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than firing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	if !d.pending {
		d.mu.Unlock()
		return
	}
	op := d.op
	d.pending = false
	d.mu.Unlock()

	if d.callback != nil {
		d.callback(op)
	}
}
