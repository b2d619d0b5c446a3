//go:build windows

package pointer

import (
	"time"

	"golang.org/x/sys/windows"
)

// rawModeState stores the original console mode for restoration.
type rawModeState struct {
	fd   windows.Handle
	mode uint32
}

// enableRawMode switches the console to virtual terminal input so SGR
// mouse sequences arrive as bytes, and returns the previous mode.
func enableRawMode(fd int) (*rawModeState, error) {
	h := windows.Handle(fd)

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, err
	}

	raw := mode
	raw &^= windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
	raw |= windows.ENABLE_EXTENDED_FLAGS | windows.ENABLE_WINDOW_INPUT | windows.ENABLE_VIRTUAL_TERMINAL_INPUT

	if err := windows.SetConsoleMode(h, raw); err != nil {
		return nil, err
	}

	return &rawModeState{fd: h, mode: mode}, nil
}

// disableRawMode restores the console to its previous mode.
func disableRawMode(fd int, state *rawModeState) error {
	if state == nil {
		return nil
	}
	return windows.SetConsoleMode(state.fd, state.mode)
}

// waitReadable waits for console input with a timeout.
// Returns (true, nil) when input is available and (false, nil) on
// timeout.
func waitReadable(fd int, timeout time.Duration) (ready bool, err error) {
	ms := uint32(windows.INFINITE)
	if timeout >= 0 {
		ms = uint32(timeout / time.Millisecond)
	}

	ev, err := windows.WaitForSingleObject(windows.Handle(fd), ms)
	if err != nil {
		return false, err
	}
	return ev == windows.WAIT_OBJECT_0, nil
}

// terminalSize returns the console dimensions in cells.
func terminalSize(fd int) (width, height int) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		// Default to standard terminal size on error
		return 80, 24
	}
	return int(info.Window.Right-info.Window.Left) + 1, int(info.Window.Bottom-info.Window.Top) + 1
}
