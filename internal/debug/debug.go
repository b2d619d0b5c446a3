package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	once sync.Once
	out  *os.File
)

// open initializes the log destination from the POINTER_DEBUG
// environment variable. Left nil when unset or unopenable, which
// makes Log a no-op.
func open() {
	path := os.Getenv("POINTER_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	out = f
}

// Log appends a timestamped message to the debug file, if enabled.
func Log(format string, args ...any) {
	once.Do(open)
	if out == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s "+format+"\n", append([]any{time.Now().Format("15:04:05.000")}, args...)...)
}
