//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows

package pointer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/grindlemire/go-pointer/internal/debug"
)

// Mouse reporting escape codes: any-motion tracking (1003) so plain
// moves are reported, plus SGR extended encoding (1006) for
// coordinates beyond column 223.
const (
	enableMouseReporting  = "\x1b[?1003h\x1b[?1006h"
	disableMouseReporting = "\x1b[?1006l\x1b[?1003l"
)

// TermSource turns a terminal into a pointer event source. It puts
// the terminal into raw mode, enables SGR mouse reporting, and feeds
// parsed events through a Loop into a Router. One terminal cell is
// one pixel; the terminal never scrolls under the pointer, so
// trackers fed by this source use an unscrolled viewport such as the
// FixedViewport zero value.
type TermSource struct {
	in     *os.File
	out    io.Writer
	loop   *Loop
	router *Router

	raw    *rawModeState
	stopCh chan struct{}
}

// NewTermSource creates a source reading from in (usually os.Stdin)
// and writing mode-switch sequences to out (usually os.Stdout).
func NewTermSource(in *os.File, out io.Writer, loop *Loop, router *Router) *TermSource {
	return &TermSource{
		in:     in,
		out:    out,
		loop:   loop,
		router: router,
		stopCh: make(chan struct{}),
	}
}

// Start enables raw mode and mouse reporting and begins reading in a
// background goroutine. Parsed events are posted to the loop in read
// order.
func (s *TermSource) Start() error {
	raw, err := enableRawMode(int(s.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	s.raw = raw

	if _, err := io.WriteString(s.out, enableMouseReporting); err != nil {
		disableRawMode(int(s.in.Fd()), s.raw)
		return fmt.Errorf("enabling mouse reporting: %w", err)
	}

	go s.readEvents()
	return nil
}

// Stop ends the read goroutine and restores the terminal. Safe to
// call once; the terminal is restored even if reads are mid-flight.
func (s *TermSource) Stop() error {
	close(s.stopCh)

	var firstErr error
	if _, err := io.WriteString(s.out, disableMouseReporting); err != nil {
		firstErr = fmt.Errorf("disabling mouse reporting: %w", err)
	}
	if err := disableRawMode(int(s.in.Fd()), s.raw); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("restoring terminal mode: %w", err)
	}
	return firstErr
}

// Size returns the terminal dimensions in cells, defaulting to 80x24
// when the size cannot be read. Useful for building a root region
// covering the whole terminal.
func (s *TermSource) Size() (width, height int) {
	return terminalSize(int(s.in.Fd()))
}

// readEvents polls the terminal for input and routes parsed pointer
// events. The short poll timeout keeps shutdown responsive without
// burning CPU between events.
func (s *TermSource) readEvents() {
	buf := make([]byte, 256)
	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ready, err := waitReadable(int(s.in.Fd()), 50*time.Millisecond)
		if err != nil {
			debug.Log("TermSource.readEvents: wait failed: %v", err)
			return
		}
		if !ready {
			continue
		}

		n, err := s.in.Read(buf)
		if n > 0 {
			for _, ev := range parseEvents(buf[:n]) {
				e := ev
				s.loop.Post(func() { s.router.Route(e) })
			}
		}
		if err != nil {
			debug.Log("TermSource.readEvents: read failed: %v", err)
			return
		}
	}
}
