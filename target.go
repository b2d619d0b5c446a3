package pointer

// Unbind is a handle to remove a registered listener. Call it to
// prevent future invocations for the associated listener.
type Unbind func()

// Target is a trackable element: something with a viewport bounding
// box that emits pointer events. Region is the concrete
// implementation; UI layers with their own element trees can
// implement Target directly.
type Target interface {
	// Bounds returns the target's bounding box in viewport
	// coordinates.
	Bounds() Rect
	// On registers fn for events of the given kind and returns an
	// Unbind handle that removes it.
	On(kind EventKind, fn func(Event)) Unbind
}
