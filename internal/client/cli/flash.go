package cli

import (
	"sync"
	"time"
)

// Flash holds a transient screen message that clears itself after ttl.
// Showing a new message restarts the window.
type Flash struct {
	ttl time.Duration

	mu    sync.Mutex
	msg   string
	gen   uint64
	timer *time.Timer
}

func NewFlash(ttl time.Duration) *Flash {
	return &Flash{ttl: ttl}
}

func (f *Flash) Show(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()
	f.msg = msg
	gen := f.gen
	f.timer = time.AfterFunc(f.ttl, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen == gen {
			f.msg = ""
			f.timer = nil
		}
	})
}

func (f *Flash) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.msg
}

// Stop clears the message and cancels the pending expiry.
func (f *Flash) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopLocked()
	f.msg = ""
}

func (f *Flash) stopLocked() {
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
