package pointer

// EventKind identifies one of the five pointer event kinds a tracker
// dispatches on.
type EventKind int

const (
	// KindMove is pointer motion, with or without a held button.
	KindMove EventKind = iota
	// KindDown is a button press.
	KindDown
	// KindUp is a button release.
	KindUp
	// KindEnter is the pointer crossing into a target's bounds.
	KindEnter
	// KindLeave is the pointer crossing out of a target's bounds.
	KindLeave
)

// eventKinds lists every kind in dispatch order. A bound tracker
// attaches exactly one listener per entry.
var eventKinds = [...]EventKind{KindMove, KindDown, KindUp, KindEnter, KindLeave}

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case KindMove:
		return "Move"
	case KindDown:
		return "Down"
	case KindUp:
		return "Up"
	case KindEnter:
		return "Enter"
	case KindLeave:
		return "Leave"
	}
	return "Unknown"
}

// Button represents which pointer button was involved in an event.
type Button int

const (
	// ButtonNone indicates plain motion with no button held.
	ButtonNone Button = iota
	// ButtonLeft is the left (primary) button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the right (secondary) button.
	ButtonRight
	// ButtonWheelUp is a scroll wheel up tick.
	ButtonWheelUp
	// ButtonWheelDown is a scroll wheel down tick.
	ButtonWheelDown
)

// Modifier is a bitmask of modifier keys held during an event.
type Modifier uint8

const (
	// ModShift indicates the Shift key was held.
	ModShift Modifier = 1 << iota
	// ModAlt indicates the Alt/Meta key was held.
	ModAlt
	// ModCtrl indicates the Ctrl key was held.
	ModCtrl

	// ModNone indicates no modifiers.
	ModNone Modifier = 0
)

// Event is a raw pointer event in viewport coordinates, before any
// target-relative mapping.
type Event struct {
	// Kind is which of the five event kinds this is.
	Kind EventKind
	// X is the horizontal viewport position in pixels.
	X int
	// Y is the vertical viewport position in pixels.
	Y int
	// Button is the button involved, if any.
	Button Button
	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

// Viewport returns the event position as a Point.
func (e Event) Viewport() Point {
	return Point{X: e.X, Y: e.Y}
}

// Sample is a target-relative pointer position plus the displacement
// from the previous sample in the same binding session. HasDelta is
// false on the first sample after a tracker binds or rebinds.
type Sample struct {
	Position Point
	Delta    Point
	HasDelta bool
}
