package ui

import (
	"sync"
	"time"
)

// CopyAckDuration is how long a copied command shows its acknowledgement.
const CopyAckDuration = 2 * time.Second

type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// CopyAck remembers the most recently copied command until its timer
// fires. A newer copy replaces the pending timer, and Close cancels it so
// nothing fires after the view is gone.
type CopyAck struct {
	mu         sync.Mutex
	delay      time.Duration
	after      afterFunc
	command    string
	generation uint64
	timer      stopper
	closed     bool
}

// NewCopyAck creates an acknowledgement that clears after delay.
func NewCopyAck(delay time.Duration) *CopyAck {
	return &CopyAck{delay: delay, after: realAfterFunc}
}

// Acknowledge marks command as copied.
func (a *CopyAck) Acknowledge(command string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}

	a.generation++
	gen := a.generation
	a.command = command
	a.timer = a.after(a.delay, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.generation == gen {
			a.command = ""
			a.timer = nil
		}
	})
}

// IsCopied reports whether command is currently acknowledged.
func (a *CopyAck) IsCopied(command string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.command != "" && a.command == command
}

// Close cancels any pending timer. Later acknowledgements are ignored.
func (a *CopyAck) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	a.command = ""
	a.generation++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
