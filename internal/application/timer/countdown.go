// Package timer implements the cook-along countdown clock for the
// recipe detail view.
package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State is the countdown's lifecycle state
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateExpired State = "expired"
)

// Snapshot is an immutable view of the countdown for display
type Snapshot struct {
	State     State
	Remaining int
}

// Display formats the remaining time as minutes:seconds with the
// seconds zero-padded to two digits (90 seconds renders as "1:30").
func (s Snapshot) Display() string {
	return Format(s.Remaining)
}

// Format renders a second count as "m:ss"
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Countdown is the single-instance ticking clock driving cook-step
// timers. Starting a new timer while one is running replaces it
// immediately; there is no queueing. The tick loop is owned by the
// context passed to Start and must be cancelled when the owning view
// is torn down.
type Countdown struct {
	mu        sync.Mutex
	state     State
	remaining int
	cancel    context.CancelFunc
	logger    *zap.Logger
}

// NewCountdown creates an idle countdown
func NewCountdown(logger *zap.Logger) *Countdown {
	return &Countdown{state: StateIdle, logger: logger}
}

// Start begins a countdown of the given duration in seconds,
// replacing any timer already running. The tick loop stops when the
// countdown expires, Stop is called, or ctx is cancelled.
func (c *Countdown) Start(ctx context.Context, seconds int) {
	if seconds <= 0 {
		return
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = StateRunning
	c.remaining = seconds
	c.mu.Unlock()

	c.logger.Debug("countdown started", zap.Int("seconds", seconds))

	go c.run(loopCtx)
}

// run drives one-second ticks until the countdown leaves Running.
func (c *Countdown) run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !c.Tick() {
				return
			}
		}
	}
}

// Tick decrements the remaining counter by exactly one second and
// reports whether the countdown is still running. Reaching zero
// transitions to Expired; there is no automatic return to Idle.
func (c *Countdown) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = StateExpired
		if c.cancel != nil {
			c.cancel()
			c.cancel = nil
		}
		c.logger.Debug("countdown expired")
		return false
	}
	return true
}

// Stop cancels a running countdown, discarding the remaining counter
// and returning to Idle. Stopping an idle or expired countdown resets
// it to Idle as well (explicit restart path).
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state = StateIdle
	c.remaining = 0
}

// Snapshot returns the current state and remaining seconds
func (c *Countdown) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, Remaining: c.remaining}
}
