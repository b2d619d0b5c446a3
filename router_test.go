package pointer

import "testing"

// collect records every event kind delivered to a region.
func collect(region *Region, into *[]EventKind) {
	for _, kind := range eventKinds {
		k := kind
		region.On(k, func(Event) { *into = append(*into, k) })
	}
}

func TestRouter_SynthesizesEnterAndLeave(t *testing.T) {
	router := NewRouter()
	region := NewRegion(NewRect(10, 10, 20, 20))
	router.Add(region)

	var kinds []EventKind
	collect(region, &kinds)

	router.Route(moveEvent(0, 0))   // outside
	router.Route(moveEvent(15, 15)) // enters
	router.Route(moveEvent(16, 16)) // stays inside
	router.Route(moveEvent(50, 50)) // leaves

	want := []EventKind{KindEnter, KindMove, KindMove, KindLeave}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("got %v, want %v", kinds, want)
		}
	}
}

func TestRouter_EnterNotRepeatedWhileInside(t *testing.T) {
	router := NewRouter()
	region := NewRegion(NewRect(0, 0, 100, 100))
	router.Add(region)

	var enters int
	region.On(KindEnter, func(Event) { enters++ })

	router.Route(moveEvent(10, 10))
	router.Route(moveEvent(20, 20))
	router.Route(moveEvent(30, 30))

	if enters != 1 {
		t.Errorf("enter synthesized %d times, want 1", enters)
	}
}

func TestRouter_DownUpRoutedByContainment(t *testing.T) {
	type tc struct {
		event     Event
		delivered bool
	}

	tests := map[string]tc{
		"down inside": {
			event:     Event{Kind: KindDown, X: 15, Y: 15, Button: ButtonLeft},
			delivered: true,
		},
		"down outside": {
			event:     Event{Kind: KindDown, X: 5, Y: 5, Button: ButtonLeft},
			delivered: false,
		},
		"up inside": {
			event:     Event{Kind: KindUp, X: 29, Y: 29, Button: ButtonLeft},
			delivered: true,
		},
		"up on exclusive edge": {
			event:     Event{Kind: KindUp, X: 30, Y: 30, Button: ButtonLeft},
			delivered: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			router := NewRouter()
			region := NewRegion(NewRect(10, 10, 20, 20))
			router.Add(region)

			var calls int
			region.On(tt.event.Kind, func(Event) { calls++ })

			router.Route(tt.event)

			want := 0
			if tt.delivered {
				want = 1
			}
			if calls != want {
				t.Errorf("listener invoked %d times, want %d", calls, want)
			}
		})
	}
}

func TestRouter_LeaveBeforeEnterAcrossRegions(t *testing.T) {
	router := NewRouter()
	left := NewRegion(NewRect(0, 0, 10, 10))
	right := NewRegion(NewRect(10, 0, 10, 10))
	router.Add(left)
	router.Add(right)

	var order []string
	left.On(KindLeave, func(Event) { order = append(order, "left.leave") })
	right.On(KindEnter, func(Event) { order = append(order, "right.enter") })
	right.On(KindMove, func(Event) { order = append(order, "right.move") })

	router.Route(moveEvent(5, 5))  // inside left
	router.Route(moveEvent(15, 5)) // crosses into right

	want := []string{"left.leave", "right.enter", "right.move"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestRouter_OverlappingRegionsBothReceive(t *testing.T) {
	router := NewRouter()
	under := NewRegion(NewRect(0, 0, 100, 100))
	over := NewRegion(NewRect(40, 40, 20, 20))
	router.Add(under)
	router.Add(over)

	var underMoves, overMoves int
	under.On(KindMove, func(Event) { underMoves++ })
	over.On(KindMove, func(Event) { overMoves++ })

	router.Route(moveEvent(50, 50)) // inside both
	router.Route(moveEvent(10, 10)) // only under

	if underMoves != 2 {
		t.Errorf("under region got %d moves, want 2", underMoves)
	}
	if overMoves != 1 {
		t.Errorf("over region got %d moves, want 1", overMoves)
	}
}

func TestRouter_RemoveDropsRegion(t *testing.T) {
	router := NewRouter()
	region := NewRegion(NewRect(0, 0, 100, 100))
	router.Add(region)

	var calls int
	region.On(KindMove, func(Event) { calls++ })

	router.Route(moveEvent(10, 10))
	router.Remove(region)
	router.Route(moveEvent(20, 20))

	if calls != 1 {
		t.Errorf("listener invoked %d times after Remove, want 1", calls)
	}
}

func TestRouter_TrackerEndToEnd(t *testing.T) {
	// Full path: raw events through the router into a bound tracker.
	router := NewRouter()
	region := NewRegion(NewRect(50, 100, 200, 150))
	router.Add(region)

	moves := &recorder{}
	enters := &recorder{}
	tracker := NewTracker(FixedViewport{})
	tracker.SetCallbacks(Callbacks{OnMove: moves.callback(), OnEnter: enters.callback()})
	tracker.SetTarget(region)

	router.Route(moveEvent(60, 110))
	router.Route(moveEvent(70, 130))

	if len(enters.samples) != 1 {
		t.Fatalf("got %d enter samples, want 1", len(enters.samples))
	}
	if got := enters.samples[0].Position; got != (Point{X: 10, Y: 10}) {
		t.Errorf("enter position = %v, want (10,10)", got)
	}
	if len(moves.samples) != 2 {
		t.Fatalf("got %d move samples, want 2", len(moves.samples))
	}
	second := moves.samples[1]
	if !second.HasDelta || second.Delta != (Point{X: 10, Y: 20}) {
		t.Errorf("second move delta = %v (has=%v), want (10,20)", second.Delta, second.HasDelta)
	}
}
