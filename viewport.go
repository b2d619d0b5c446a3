package pointer

// Viewport supplies document scroll and client-edge metrics for
// offset resolution. Implementations report whether each scroll
// source is available so the resolver can fall back the way layout
// engines historically required: window-level scroll first, then the
// root element, then the body.
type Viewport interface {
	// WindowScroll returns the window-level scroll offset, if the
	// platform exposes one.
	WindowScroll() (Point, bool)
	// RootScroll returns the root element's scroll offset, if the
	// platform exposes one.
	RootScroll() (Point, bool)
	// BodyScroll returns the body scroll offset. Always available;
	// the last stop in the fallback chain.
	BodyScroll() Point
	// ClientEdge returns the top/left border contributed by the root
	// or body, which is excluded from document offsets.
	ClientEdge() Point
}

// documentScroll resolves the document scroll offset through the
// fallback chain. A nil viewport reads as an unscrolled document.
func documentScroll(v Viewport) Point {
	if v == nil {
		return Point{}
	}
	if s, ok := v.WindowScroll(); ok {
		return s
	}
	if s, ok := v.RootScroll(); ok {
		return s
	}
	return v.BodyScroll()
}

// FixedViewport is a Viewport with static metrics. The zero value is
// an unscrolled, borderless document, which fits surfaces that do not
// scroll under the pointer (terminals, whole desktops).
type FixedViewport struct {
	// Scroll is the document scroll offset.
	Scroll Point
	// Edge is the client-edge inset.
	Edge Point
}

// Ensure FixedViewport implements Viewport.
var _ Viewport = FixedViewport{}

// WindowScroll returns the configured scroll offset.
func (f FixedViewport) WindowScroll() (Point, bool) {
	return f.Scroll, true
}

// RootScroll returns the configured scroll offset.
func (f FixedViewport) RootScroll() (Point, bool) {
	return f.Scroll, true
}

// BodyScroll returns the configured scroll offset.
func (f FixedViewport) BodyScroll() Point {
	return f.Scroll
}

// ClientEdge returns the configured client-edge inset.
func (f FixedViewport) ClientEdge() Point {
	return f.Edge
}
