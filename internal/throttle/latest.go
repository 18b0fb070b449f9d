// Package throttle coalesces bursts of events into at most one pending value
// per consumer tick.
package throttle

import "sync/atomic"

// Latest is a single-slot mailbox. Post may be called from any goroutine;
// Take is called once per frame by the consumer. Values posted between two
// Takes collapse to the most recent one.
type Latest[T any] struct {
	pending atomic.Bool
	value   atomic.Pointer[T]
}

// Post stores v as the latest value. It reports whether this post scheduled
// new work, i.e. no value was pending yet.
func (l *Latest[T]) Post(v T) bool {
	l.value.Store(&v)
	return l.pending.CompareAndSwap(false, true)
}

// Take returns the latest posted value and clears the pending flag. ok is
// false when nothing was posted since the previous Take.
func (l *Latest[T]) Take() (v T, ok bool) {
	if !l.pending.CompareAndSwap(true, false) {
		return v, false
	}
	return *l.value.Load(), true
}
