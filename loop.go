package pointer

import (
	"sync"

	"github.com/grindlemire/go-pointer/internal/debug"
)

// Loop serializes event delivery from background sources onto a
// single goroutine, preserving source order. Sources Post closures
// from their read goroutines; the goroutine running Run executes them
// one at a time, so routing and tracker dispatch never race.
type Loop struct {
	queue    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop with a buffered delivery queue.
func NewLoop() *Loop {
	return &Loop{
		queue:  make(chan func(), 64),
		stopCh: make(chan struct{}),
	}
}

// Run executes posted functions until Stop is called. Blocks.
func (l *Loop) Run() {
	debug.Log("Loop.Run: started")
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.stopCh:
			debug.Log("Loop.Run: stopped")
			return
		}
	}
}

// Post enqueues fn for execution on the loop goroutine. Safe to call
// from any goroutine. Posts after Stop are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.stopCh:
	}
}

// Stop signals Run to exit. Idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}

// Done returns a channel closed when the loop has been stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.stopCh
}
