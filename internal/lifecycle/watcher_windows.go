//go:build windows

package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// WatchSignals blocks until Ctrl+C arrives (the only interrupt notification
// Windows delivers), runs the guard's emergency cleanup, and terminates the
// process. Cancelling ctx ends the wait without any cleanup; at that point
// the normal path owns the workspace.
func WatchSignals(ctx context.Context, guard *Guard) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
		fmt.Println("\nReceived Ctrl+C")
		guard.EmergencyCleanup()
		os.Exit(130) // 128 + 2
	case <-ctx.Done():
	}
}
