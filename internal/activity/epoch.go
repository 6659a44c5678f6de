package activity

// Epoch is a monotonically increasing generation counter used to
// invalidate stale scheduled callbacks. A timer captures the counter
// value when scheduled; if the counter has moved on by the time the
// timer fires, the callback is discarded. Screens with one-off timers
// outside a Machine (the market hint overlay, for example) use it too.
type Epoch struct {
	n uint64
}

// Next invalidates all timers holding the old value and returns the new one.
func (e *Epoch) Next() uint64 {
	e.n++
	return e.n
}

// Matches reports whether v is still the live generation.
func (e *Epoch) Matches(v uint64) bool {
	return e.n == v
}
