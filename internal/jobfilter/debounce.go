package jobfilter

import (
	"sync"
	"time"
)

// DefaultSyncDelay is the quiet period before filter state is reflected into
// the shareable URL.
const DefaultSyncDelay = 300 * time.Millisecond

// Debouncer coalesces rapid state changes into a single scheduled sync.
// Every Schedule call cancels the previously pending task and arms a new one;
// only a task that survives the full delay fires. Each fire receives the
// state captured at schedule time, so out-of-order completions cannot mix
// fields from different states — last write wins.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
	sync  func(State)
}

// NewDebouncer creates a debouncer that calls sync with the encoded state
// after the quiet period. A non-positive delay falls back to
// DefaultSyncDelay.
func NewDebouncer(delay time.Duration, sync func(State)) *Debouncer {
	if delay <= 0 {
		delay = DefaultSyncDelay
	}
	return &Debouncer{
		delay: delay,
		sync:  sync,
	}
}

// Schedule arms a sync for the given state, cancelling any pending one.
func (d *Debouncer) Schedule(state State) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	captured := state.Normalize()

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A newer Schedule superseded this task after the timer fired but
		// before we got the lock. Timer.Stop cannot cover that window.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.sync(captured)
	})
}

// Cancel drops any pending sync.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Flush fires a pending sync immediately, if any.
func (d *Debouncer) Flush(state State) {
	d.Cancel()
	d.sync(state.Normalize())
}
