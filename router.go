package pointer

import "github.com/grindlemire/go-pointer/internal/debug"

// Router fans a stream of raw pointer events out to registered
// regions. It hit-tests against region bounds and synthesizes the
// Enter and Leave events that a native DOM would deliver for free:
// when a move crosses a boundary, the region gets a Leave or Enter
// before the moves continue.
//
// Router is not thread-safe; confine it to one dispatch goroutine,
// typically a Loop.
type Router struct {
	regions []*Region
	inside  map[*Region]bool
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{inside: make(map[*Region]bool)}
}

// Add registers a region. Events route to overlapping regions in
// registration order.
func (r *Router) Add(reg *Region) {
	r.regions = append(r.regions, reg)
}

// Remove unregisters a region. If the pointer was inside it, the
// containment state is dropped without a synthetic Leave.
func (r *Router) Remove(reg *Region) {
	for i, existing := range r.regions {
		if existing == reg {
			r.regions = append(r.regions[:i], r.regions[i+1:]...)
			break
		}
	}
	delete(r.inside, reg)
}

// Route delivers one raw event. Moves update containment state and
// synthesize boundary crossings; all Leave events fire before any
// Enter, and Enter fires before the Move itself reaches a region.
// Down and Up go to every region containing the point.
func (r *Router) Route(ev Event) {
	pt := ev.Viewport()

	switch ev.Kind {
	case KindMove:
		var entered []*Region
		for _, reg := range r.regions {
			was := r.inside[reg]
			now := reg.Bounds().Contains(pt)
			if was && !now {
				r.inside[reg] = false
				leave := ev
				leave.Kind = KindLeave
				reg.Dispatch(leave)
			} else if !was && now {
				entered = append(entered, reg)
			}
		}
		for _, reg := range entered {
			r.inside[reg] = true
			enter := ev
			enter.Kind = KindEnter
			reg.Dispatch(enter)
		}
		for _, reg := range r.regions {
			if r.inside[reg] {
				reg.Dispatch(ev)
			}
		}

	case KindDown, KindUp:
		for _, reg := range r.regions {
			if reg.Bounds().Contains(pt) {
				reg.Dispatch(ev)
			}
		}

	default:
		// Enter/Leave are synthesized here, never routed raw.
		debug.Log("Router.Route: dropping raw %v event", ev.Kind)
	}
}
