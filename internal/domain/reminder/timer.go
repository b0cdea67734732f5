package reminder

import (
	"sync"
	"time"
)

// State is the lifecycle of a reapplication timer.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateExpired State = "expired"
)

// Timer is a cancellable one-shot countdown. Expiry invokes the callback
// exactly once per run; Restart arms a fresh run from any state.
type Timer struct {
	mu       sync.Mutex
	state    State
	deadline time.Time
	cancel   func() bool
	onExpire func()

	// Injectable for tests.
	now      func() time.Time
	schedule func(d time.Duration, fn func()) func() bool
}

// NewTimer builds an idle timer. onExpire may be nil.
func NewTimer(onExpire func()) *Timer {
	return &Timer{
		state:    StateIdle,
		onExpire: onExpire,
		now:      time.Now,
		schedule: func(d time.Duration, fn func()) func() bool {
			t := time.AfterFunc(d, fn)
			return t.Stop
		},
	}
}

// Start arms the countdown. Starting over a running timer replaces the
// pending expiry.
func (t *Timer) Start(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.armLocked(d)
}

// Restart re-arms the countdown from any state, including expired.
func (t *Timer) Restart(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.armLocked(d)
}

func (t *Timer) armLocked(d time.Duration) {
	if t.cancel != nil {
		t.cancel()
	}
	deadline := t.now().Add(d)
	t.state = StateRunning
	t.deadline = deadline
	t.cancel = t.schedule(d, func() { t.expire(deadline) })
}

// Stop cancels a pending expiry and returns the timer to idle. The callback
// will not fire for the cancelled run.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.state = StateIdle
	t.deadline = time.Time{}
}

// expire transitions to expired only if the given run is still the active
// one. A run superseded by Restart or Stop is a no-op.
func (t *Timer) expire(deadline time.Time) {
	t.mu.Lock()
	if t.state != StateRunning || !t.deadline.Equal(deadline) {
		t.mu.Unlock()
		return
	}
	t.state = StateExpired
	t.cancel = nil
	callback := t.onExpire
	t.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// State reports the current lifecycle state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Remaining reports the time left on a running timer, clamped at zero.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateRunning {
		return 0
	}
	remaining := t.deadline.Sub(t.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}
