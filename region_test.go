package pointer

import "testing"

func TestRegion_DispatchRoutesByKind(t *testing.T) {
	region := NewRegion(NewRect(0, 0, 100, 100))

	var moves, downs int
	region.On(KindMove, func(Event) { moves++ })
	region.On(KindDown, func(Event) { downs++ })

	region.Dispatch(Event{Kind: KindMove, X: 1, Y: 1})
	region.Dispatch(Event{Kind: KindMove, X: 2, Y: 2})
	region.Dispatch(Event{Kind: KindDown, X: 3, Y: 3, Button: ButtonLeft})
	region.Dispatch(Event{Kind: KindUp, X: 3, Y: 3, Button: ButtonLeft})

	if moves != 2 {
		t.Errorf("move listener invoked %d times, want 2", moves)
	}
	if downs != 1 {
		t.Errorf("down listener invoked %d times, want 1", downs)
	}
}

func TestRegion_ListenersInvokedInRegistrationOrder(t *testing.T) {
	region := NewRegion(NewRect(0, 0, 100, 100))

	var order []string
	region.On(KindMove, func(Event) { order = append(order, "first") })
	region.On(KindMove, func(Event) { order = append(order, "second") })
	region.On(KindMove, func(Event) { order = append(order, "third") })

	region.Dispatch(Event{Kind: KindMove})

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("got %d invocations, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("invocation %d = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestRegion_UnbindStopsDelivery(t *testing.T) {
	region := NewRegion(NewRect(0, 0, 100, 100))

	var calls int
	unbind := region.On(KindMove, func(Event) { calls++ })

	region.Dispatch(Event{Kind: KindMove})
	unbind()
	region.Dispatch(Event{Kind: KindMove})

	if calls != 1 {
		t.Errorf("listener invoked %d times after unbind, want 1", calls)
	}

	// Unbind is safe to call repeatedly
	unbind()
	if n := region.listenerCount(KindMove); n != 0 {
		t.Errorf("listenerCount = %d after unbind, want 0", n)
	}
}

func TestRegion_DispatchSweepsInactiveListeners(t *testing.T) {
	region := NewRegion(NewRect(0, 0, 100, 100))

	unbind := region.On(KindMove, func(Event) {})
	region.On(KindMove, func(Event) {})
	unbind()

	region.Dispatch(Event{Kind: KindMove})

	region.mu.RLock()
	stored := len(region.listeners[KindMove])
	region.mu.RUnlock()
	if stored != 1 {
		t.Errorf("stored listeners after sweep = %d, want 1", stored)
	}
}

func TestRegion_SetBounds(t *testing.T) {
	region := NewRegion(NewRect(0, 0, 100, 100))
	region.SetBounds(NewRect(10, 20, 30, 40))

	if got := region.Bounds(); got != NewRect(10, 20, 30, 40) {
		t.Errorf("Bounds() = %+v, want {10 20 30 40}", got)
	}
}
