package wave

import "time"

// Debouncer coalesces bursts of calls into one deferred invocation that runs
// delay after the last call. It never starts goroutines: the owner polls it
// from its own loop, so fn always runs on the caller's thread.
type Debouncer struct {
	delay    time.Duration
	fn       func()
	deadline time.Time
	armed    bool
}

// NewDebouncer returns a Debouncer that invokes fn delay after the last Call.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call (re)arms the deferred invocation relative to now.
func (d *Debouncer) Call(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.armed = true
}

// Poll runs fn if the deadline has passed and reports whether it did.
func (d *Debouncer) Poll(now time.Time) bool {
	if !d.armed || now.Before(d.deadline) {
		return false
	}
	d.armed = false
	if d.fn != nil {
		d.fn()
	}
	return true
}

// Cancel drops a pending invocation.
func (d *Debouncer) Cancel() {
	d.armed = false
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer) Pending() bool {
	return d.armed
}
