package watcher

import (
	"sync"
	"time"

	"github.com/gaecom/arco-cli/internal/core/ports"
)

// Debouncer coalesces bursts of watch events into batches. Each batch holds
// one event per path, carrying the latest operation, in first-seen order.
type Debouncer struct {
	mu       sync.Mutex
	pending  []ports.WatchEvent
	index    map[string]int
	timer    *time.Timer
	window   time.Duration
	callback func(batch []ports.WatchEvent)
	stopped  bool
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(batch []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		index:    make(map[string]int),
		window:   window,
		callback: callback,
	}
}

// Add records ev and restarts the debounce window.
func (d *Debouncer) Add(ev ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if i, ok := d.index[ev.Path]; ok {
		d.pending[i].Operation = ev.Operation
	} else {
		d.index[ev.Path] = len(d.pending)
		d.pending = append(d.pending, ev)
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	batch := d.take()
	if len(batch) > 0 && d.callback != nil {
		go d.callback(batch)
	}
}

// take empties the pending set and returns it.
func (d *Debouncer) take() []ports.WatchEvent {
	d.mu.Lock()
	defer d.mu.Unlock()

	batch := d.pending
	d.pending = nil
	d.index = make(map[string]int)
	d.timer = nil
	return batch
}

// Flush runs the callback with all pending events and blocks until it returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && !d.timer.Stop() {
		// Timer already fired; let it deliver the batch.
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	batch := d.take()
	if len(batch) > 0 && d.callback != nil {
		d.callback(batch)
	}
}

// Stop drops pending events and ignores later ones.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.index = make(map[string]int)
}
