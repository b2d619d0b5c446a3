package pointer

import "sync"

// regionListener is a registered callback with its liveness flag.
// Unbound listeners stay in the slice until the next Dispatch sweeps
// them out.
type regionListener struct {
	fn     func(Event)
	active bool
}

// Region is a rectangular hit area that implements Target. Sources
// and routers deliver events to it with Dispatch; trackers subscribe
// to it with On. Thread-safe.
type Region struct {
	mu        sync.RWMutex
	bounds    Rect
	listeners map[EventKind][]*regionListener
}

// Ensure Region implements Target.
var _ Target = (*Region)(nil)

// NewRegion creates a region with the given viewport bounds.
func NewRegion(bounds Rect) *Region {
	return &Region{
		bounds:    bounds,
		listeners: make(map[EventKind][]*regionListener),
	}
}

// Bounds returns the region's bounding box in viewport coordinates.
func (r *Region) Bounds() Rect {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bounds
}

// SetBounds moves or resizes the region. Listeners are unaffected.
func (r *Region) SetBounds(bounds Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bounds = bounds
}

// On registers fn for events of the given kind. The returned Unbind
// removes the listener; calling it more than once is safe.
func (r *Region) On(kind EventKind, fn func(Event)) Unbind {
	l := &regionListener{fn: fn, active: true}
	r.mu.Lock()
	r.listeners[kind] = append(r.listeners[kind], l)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		l.active = false
		r.mu.Unlock()
	}
}

// Dispatch delivers an event to every active listener registered for
// its kind, in registration order. Inactive listeners are swept out
// so unbound entries do not accumulate.
func (r *Region) Dispatch(ev Event) {
	r.mu.Lock()
	registered := r.listeners[ev.Kind]
	active := make([]*regionListener, 0, len(registered))
	for _, l := range registered {
		if l.active {
			active = append(active, l)
		}
	}
	r.listeners[ev.Kind] = active
	r.mu.Unlock()

	for _, l := range active {
		l.fn(ev)
	}
}

// listenerCount returns the number of active listeners for a kind.
func (r *Region) listenerCount(kind EventKind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, l := range r.listeners[kind] {
		if l.active {
			n++
		}
	}
	return n
}
