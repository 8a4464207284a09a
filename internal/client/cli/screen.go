package cli

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrSubmitInProgress is returned when a form is submitted again before the
// previous submission has finished.
var ErrSubmitInProgress = errors.New("submission in progress")

// submitGuard disables a screen's submit action while a request is pending.
type submitGuard struct {
	busy atomic.Bool
}

func (g *submitGuard) acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	return nil
}

func (g *submitGuard) release() { g.busy.Store(false) }

// Submitting reports whether a submission is pending.
func (g *submitGuard) Submitting() bool { return g.busy.Load() }

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
