package tui

// ContinuationTrigger decides when a listing surface should request its next
// page. It is edge-triggered on sentinel visibility: a request fires only on
// the transition to "sentinel visible", so holding the scroll position at
// the bottom does not spam requests. The surface re-arms the trigger when a
// page is accepted or the accumulator resets.
type ContinuationTrigger struct {
	wasVisible bool
}

// ShouldFire reports whether a next-page request should be issued. The gates
// mirror the pager's own: no fire while a fetch is in flight, after
// exhaustion, or without an active query context.
func (t *ContinuationTrigger) ShouldFire(sentinelVisible, loading, exhausted, active bool) bool {
	fire := sentinelVisible && !t.wasVisible && !loading && !exhausted && active
	t.wasVisible = sentinelVisible
	return fire
}

// Reset re-arms the trigger. Surfaces call it when new items arrive or the
// accumulation resets, so a sentinel that stayed visible can fire again.
func (t *ContinuationTrigger) Reset() {
	t.wasVisible = false
}
