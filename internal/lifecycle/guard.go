// Package lifecycle tracks the single workspace pending cleanup during an
// invocation and watches for signals that must trigger emergency removal.
package lifecycle

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aligoren/iz/internal/logfields"
)

// Guard tracks at most one workspace path pending cleanup. The normal
// completion path and the signal watcher race for it; whichever takes the
// path first owns the removal, the other observes an empty marker and does
// nothing.
type Guard struct {
	mu   sync.Mutex
	path string
}

// NewGuard returns an empty guard. One guard serves one invocation.
func NewGuard() *Guard {
	return &Guard{}
}

// Arm stores path as the pending-cleanup target. Arming while already armed
// is a logged no-op keeping the original target.
func (g *Guard) Arm(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.path != "" {
		slog.Warn("Cleanup already armed, keeping original target", logfields.Path(g.path))
		return
	}
	g.path = path
}

// DisarmAndTake atomically clears the marker and returns the previous value.
// The critical section is take-only, so at-most-once cleanup holds no matter
// which caller wins the race.
func (g *Guard) DisarmAndTake() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	path := g.path
	g.path = ""
	return path, path != ""
}

// EmergencyCleanup takes the armed path, if any, and removes it. Filesystem
// errors are logged, not propagated; the process is about to exit. The lock
// is never held across the removal.
func (g *Guard) EmergencyCleanup() {
	path, ok := g.DisarmAndTake()
	if !ok {
		return
	}

	if err := os.RemoveAll(path); err != nil {
		slog.Error("Error during signal cleanup", logfields.Path(path), logfields.Error(err))
		return
	}
	fmt.Printf("Temporary directory cleaned up: %s\n", path)
}
