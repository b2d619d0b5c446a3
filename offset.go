package pointer

import "math"

// Offset is a target's document-relative top/left position in whole
// pixels.
type Offset struct {
	Top, Left int
}

// ResolveOffset computes the target's document-relative offset: the
// viewport bounding box shifted by the document scroll and stripped
// of the client edge. A nil target resolves to the origin regardless
// of scroll state.
//
// Pure function: no caching, no mutation. Safe to call on every
// event, which keeps offsets correct under resize and reflow.
func ResolveOffset(t Target, v Viewport) Offset {
	if t == nil {
		return Offset{}
	}
	b := t.Bounds()
	scroll := documentScroll(v)
	var edge Point
	if v != nil {
		edge = v.ClientEdge()
	}
	return Offset{
		Top:  int(math.Round(b.Y + float64(scroll.Y-edge.Y))),
		Left: int(math.Round(b.X + float64(scroll.X-edge.X))),
	}
}

// mapPosition converts a raw viewport event into a position relative
// to the target's document offset, compensating for scroll that
// happened between offset measurement and event dispatch.
func mapPosition(ev Event, t Target, v Viewport) Point {
	off := ResolveOffset(t, v)
	scroll := documentScroll(v)
	return Point{
		X: ev.X - off.Left + scroll.X,
		Y: ev.Y - off.Top + scroll.Y,
	}
}
