// Package sigwinch turns terminal resize signals into coalesced
// notifications.
package sigwinch

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// The signal channel is process-wide: it is allocated before the handler
// is armed and never replaced.
var (
	once sync.Once
	sigs chan os.Signal
)

func arm() <-chan os.Signal {
	once.Do(func() {
		sigs = make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGWINCH)
	})
	return sigs
}

// Run forwards SIGWINCH to out until ctx is done. Sends never block: a
// resize arriving while a previous one is still pending is dropped, so out
// should have a buffer of one.
func Run(ctx context.Context, out chan<- struct{}) error {
	in := arm()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-in:
			Notify(out)
		}
	}
}

// Notify performs a coalescing send on out.
func Notify(out chan<- struct{}) {
	select {
	case out <- struct{}{}:
	default:
	}
}
