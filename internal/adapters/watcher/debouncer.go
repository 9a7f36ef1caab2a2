package watcher

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the quiet period before a batch of changes triggers a rebuild.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces bursts of change events into one callback carrying
// the distinct paths of the burst in sorted order.
type Debouncer struct {
	window time.Duration
	notify func(paths []string)

	mu    sync.Mutex
	batch map[unique.Handle[string]]struct{}
	timer *time.Timer
	// gen identifies the armed timer; a timer whose generation is stale
	// when it fires does nothing.
	gen uint64
}

// NewDebouncer returns a Debouncer calling notify once window has passed
// without a new event. A nil notify drops batches.
func NewDebouncer(window time.Duration, notify func(paths []string)) *Debouncer {
	return &Debouncer{
		window: window,
		notify: notify,
		batch:  make(map[unique.Handle[string]]struct{}),
	}
}

// Add records a changed path and restarts the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.batch[unique.Make(path)] = struct{}{}
	d.arm()
}

// Flush delivers the pending batch immediately, on the calling goroutine.
func (d *Debouncer) Flush() {
	d.deliver(d.take())
}

// Stop drops the pending batch.
func (d *Debouncer) Stop() {
	d.take()
}

// arm replaces the running timer. d.mu must be held.
func (d *Debouncer) arm() {
	d.disarm()
	gen := d.gen
	d.timer = time.AfterFunc(d.window, func() { d.expire(gen) })
}

// disarm stops the running timer and invalidates it. d.mu must be held.
func (d *Debouncer) disarm() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) expire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	paths := d.drain()
	d.mu.Unlock()

	d.deliver(paths)
}

// take disarms the timer and returns the pending batch.
func (d *Debouncer) take() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.disarm()
	return d.drain()
}

// drain empties the batch. d.mu must be held.
func (d *Debouncer) drain() []string {
	if len(d.batch) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.batch))
	for h := range d.batch {
		paths = append(paths, h.Value())
	}
	clear(d.batch)
	slices.Sort(paths)
	return paths
}

func (d *Debouncer) deliver(paths []string) {
	if len(paths) == 0 || d.notify == nil {
		return
	}
	d.notify(paths)
}
