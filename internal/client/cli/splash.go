package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/psptechhub/leadcap/internal/client/session"
)

// SplashGate shows the banner for a fixed duration while the stored
// session is looked up in the background. It yields when the duration
// elapses, whether or not the lookup has finished; a late lookup still
// seeds the session store.
type SplashGate struct {
	duration time.Duration
	restore  func(ctx context.Context) session.Session
	out      io.Writer
}

func NewSplashGate(duration time.Duration, restore func(ctx context.Context) session.Session, out io.Writer) *SplashGate {
	return &SplashGate{duration: duration, restore: restore, out: out}
}

// Run blocks for the splash duration. The returned channel receives the
// restored session once the lookup completes.
func (g *SplashGate) Run(ctx context.Context) (<-chan session.Session, error) {
	fmt.Fprintln(g.out, bannerStyle.Render(bannerText))

	done := make(chan session.Session, 1)
	go func() {
		done <- g.restore(ctx)
	}()

	timer := time.NewTimer(g.duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return done, nil
	case <-ctx.Done():
		return done, ctx.Err()
	}
}
