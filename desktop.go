package pointer

import (
	"context"

	"github.com/go-vgo/robotgo"
	hook "github.com/robotn/gohook"

	"github.com/grindlemire/go-pointer/internal/debug"
)

// DesktopSource feeds global OS pointer events into a Router via a
// Loop. It hooks the platform mouse (gohook) and exposes a root
// region covering the whole primary screen, so a tracker bound to
// Screen() observes every desktop pointer event.
type DesktopSource struct {
	loop   *Loop
	router *Router
	screen *Region
}

// NewDesktopSource creates a desktop source. The screen region is
// sized to the primary display and registered with the router.
func NewDesktopSource(loop *Loop, router *Router) *DesktopSource {
	w, h := robotgo.GetScreenSize()
	screen := NewRegion(NewRect(0, 0, float64(w), float64(h)))
	router.Add(screen)

	return &DesktopSource{
		loop:   loop,
		router: router,
		screen: screen,
	}
}

// Screen returns the root region covering the primary display.
func (s *DesktopSource) Screen() *Region {
	return s.screen
}

// Run registers the mouse hooks and blocks processing OS events until
// the context is canceled. The initial cursor position is routed as a
// move before any hook event so containment state starts correct.
func (s *DesktopSource) Run(ctx context.Context) error {
	x, y := robotgo.Location()
	s.post(Event{Kind: KindMove, X: x, Y: y})

	hook.Register(hook.MouseMove, []string{}, func(e hook.Event) {
		s.post(Event{Kind: KindMove, X: int(e.X), Y: int(e.Y)})
	})
	hook.Register(hook.MouseDrag, []string{}, func(e hook.Event) {
		s.post(Event{Kind: KindMove, X: int(e.X), Y: int(e.Y), Button: hookButton(e.Button)})
	})
	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		s.post(Event{Kind: KindDown, X: int(e.X), Y: int(e.Y), Button: hookButton(e.Button)})
	})
	hook.Register(hook.MouseUp, []string{}, func(e hook.Event) {
		s.post(Event{Kind: KindUp, X: int(e.X), Y: int(e.Y), Button: hookButton(e.Button)})
	})

	evCh := hook.Start()

	go func() {
		<-ctx.Done()
		debug.Log("DesktopSource.Run: context canceled, ending hook")
		hook.End()
	}()

	// Blocks until hook.End() drains the event channel
	<-hook.Process(evCh)
	return ctx.Err()
}

// post hands an event to the loop for routing in source order.
func (s *DesktopSource) post(ev Event) {
	s.loop.Post(func() { s.router.Route(ev) })
}

// hookButton maps a gohook button code to a Button.
func hookButton(b uint16) Button {
	switch b {
	case hook.MouseMap["left"]:
		return ButtonLeft
	case hook.MouseMap["center"]:
		return ButtonMiddle
	case hook.MouseMap["right"]:
		return ButtonRight
	}
	return ButtonNone
}
