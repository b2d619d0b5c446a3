package pointer

import (
	"testing"
	"time"
)

func TestLoop_PreservesPostOrder(t *testing.T) {
	loop := NewLoop()

	var got []int
	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		n := i
		loop.Post(func() { got = append(got, n) })
	}
	loop.Post(func() {
		close(done)
		loop.Stop()
	})

	go loop.Run()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not drain posted functions")
	}

	if len(got) != 10 {
		t.Fatalf("executed %d functions, want 10", len(got))
	}
	for i, n := range got {
		if n != i {
			t.Errorf("execution %d = %d, want %d", i, n, i)
		}
	}
}

func TestLoop_StopIsIdempotent(t *testing.T) {
	loop := NewLoop()
	loop.Stop()
	loop.Stop()

	select {
	case <-loop.Done():
	default:
		t.Error("Done() not closed after Stop()")
	}
}

func TestLoop_PostAfterStopDoesNotBlock(t *testing.T) {
	loop := NewLoop()
	loop.Stop()

	done := make(chan struct{})
	go func() {
		loop.Post(func() {})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Post blocked after Stop")
	}
}

func TestLoop_RunExitsOnStop(t *testing.T) {
	loop := NewLoop()

	exited := make(chan struct{})
	go func() {
		loop.Run()
		close(exited)
	}()

	loop.Stop()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("Run did not exit after Stop")
	}
}
