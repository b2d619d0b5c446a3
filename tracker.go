package pointer

import (
	"sync"

	"github.com/grindlemire/go-pointer/internal/debug"
)

// Callbacks is the set of handlers a Tracker dispatches to. Each
// receives a Sample with the target-relative position and, after the
// first event of a binding session, the displacement since the
// previous sample. Any subset may be nil; a Callbacks value with all
// five nil counts as no callbacks at all.
type Callbacks struct {
	OnMove  func(Sample)
	OnDown  func(Sample)
	OnUp    func(Sample)
	OnEnter func(Sample)
	OnLeave func(Sample)
}

// empty reports whether no handler is set.
func (c Callbacks) empty() bool {
	return c.OnMove == nil && c.OnDown == nil && c.OnUp == nil &&
		c.OnEnter == nil && c.OnLeave == nil
}

// handler returns the callback for the given event kind, or nil.
func (c Callbacks) handler(kind EventKind) func(Sample) {
	switch kind {
	case KindMove:
		return c.OnMove
	case KindDown:
		return c.OnDown
	case KindUp:
		return c.OnUp
	case KindEnter:
		return c.OnEnter
	case KindLeave:
		return c.OnLeave
	}
	return nil
}

// Tracker binds one target to one callback set and forwards pointer
// samples. It owns the session state (the last tracked position) for
// the lifetime of the binding.
//
// The tracker is unbound until both a target and callbacks are
// present. Changing either tears the old binding down completely —
// all five listeners are removed and the session state is reset —
// before the new one is attached, so a rebind never leaks listeners
// or carries a delta across bindings.
type Tracker struct {
	mu        sync.Mutex
	viewport  Viewport
	target    Target
	callbacks Callbacks
	unbinds   []Unbind
	last      *Point // nil until the first sample of a binding session
}

// NewTracker creates an unbound tracker that maps positions against
// the given viewport metrics. A nil viewport reads as an unscrolled
// document.
func NewTracker(v Viewport) *Tracker {
	return &Tracker{viewport: v}
}

// SetTarget registers the bound element. Passing nil unbinds.
func (t *Tracker) SetTarget(target Target) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.target = target
	t.rebind()
}

// SetCallbacks registers the callback set. Passing an empty Callbacks
// unbinds.
func (t *Tracker) SetCallbacks(cb Callbacks) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.callbacks = cb
	t.rebind()
}

// Bound reports whether the tracker currently has listeners attached.
func (t *Tracker) Bound() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.unbinds) > 0
}

// rebind tears down the current binding and, if both target and
// callbacks are present, attaches one listener per event kind.
// Old listeners are always removed before new ones are added.
// Callers must hold t.mu.
func (t *Tracker) rebind() {
	for _, unbind := range t.unbinds {
		unbind()
	}
	t.unbinds = nil
	t.last = nil

	if t.target == nil || t.callbacks.empty() {
		debug.Log("Tracker.rebind: unbound (target=%v empty=%v)", t.target != nil, t.callbacks.empty())
		return
	}

	target := t.target
	for _, kind := range eventKinds {
		k := kind
		t.unbinds = append(t.unbinds, target.On(k, func(ev Event) {
			t.handle(k, ev)
		}))
	}
	debug.Log("Tracker.rebind: attached %d listeners", len(t.unbinds))
}

// handle maps one raw event to a sample and dispatches it. The
// session state update happens before the callback runs so that a
// callback which rebinds the tracker still observes a clean reset.
func (t *Tracker) handle(kind EventKind, ev Event) {
	t.mu.Lock()
	pos := mapPosition(ev, t.target, t.viewport)
	sample := Sample{Position: pos}
	if t.last != nil {
		sample.Delta = pos.Sub(*t.last)
		sample.HasDelta = true
	}
	cur := pos
	t.last = &cur
	cb := t.callbacks.handler(kind)
	t.mu.Unlock()

	if cb != nil {
		cb(sample)
	}
}
