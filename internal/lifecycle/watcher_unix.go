//go:build !windows

package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// WatchSignals blocks until SIGINT or SIGTERM arrives, runs the guard's
// emergency cleanup, and terminates the process with 128+signo. The hard
// exit is deliberate: the main sequence may be blocked inside a subprocess
// wait that cannot be unwound. Cancelling ctx ends the wait without any
// cleanup; at that point the normal path owns the workspace.
func WatchSignals(ctx context.Context, guard *Guard) {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		switch sig {
		case syscall.SIGINT:
			fmt.Println("\nReceived SIGINT (Ctrl+C)")
			guard.EmergencyCleanup()
			os.Exit(130) // 128 + 2
		case syscall.SIGTERM:
			fmt.Println("\nReceived SIGTERM")
			guard.EmergencyCleanup()
			os.Exit(143) // 128 + 15
		}
	case <-ctx.Done():
	}
}
