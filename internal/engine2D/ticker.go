package engine2D

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultTickInterval is the cadence of the update loop.
const DefaultTickInterval = time.Second

// Ticker owns the displayed ClockState and advances it on a fixed interval.
// It is the single writer; readers get immutable copies through State or
// Updates.
type Ticker struct {
	clock    clockwork.Clock
	interval time.Duration
	resync   time.Duration
	onTick   func(ClockState)

	state   atomic.Pointer[ClockState]
	updates chan ClockState

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	lastSync time.Time
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithInterval overrides the one second cadence.
func WithInterval(d time.Duration) TickerOption {
	return func(t *Ticker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithResync reloads the state from the clock once at least d has passed
// since the last sync. Zero keeps free-running increments, which drift from
// wall-clock time over long sessions.
func WithResync(d time.Duration) TickerOption {
	return func(t *Ticker) {
		if d > 0 {
			t.resync = d
		}
	}
}

// WithOnTick registers a redraw callback, called on the loop goroutine after
// every transition.
func WithOnTick(fn func(ClockState)) TickerOption {
	return func(t *Ticker) {
		t.onTick = fn
	}
}

// NewTicker creates a stopped ticker showing initial.
func NewTicker(clock clockwork.Clock, initial ClockState, opts ...TickerOption) *Ticker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	t := &Ticker{
		clock:    clock,
		interval: DefaultTickInterval,
		updates:  make(chan ClockState, 1),
		lastSync: clock.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.state.Store(&initial)
	return t
}

// State returns the latest snapshot.
func (t *Ticker) State() ClockState {
	return *t.state.Load()
}

// Updates delivers snapshots after each transition. Only the newest pending
// snapshot is kept, so a slow reader never blocks the loop.
func (t *Ticker) Updates() <-chan ClockState {
	return t.updates
}

// Start runs the loop on its own goroutine until Stop or ctx is done.
// Calling Start on a running ticker does nothing.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go func() {
		_ = t.Run(ctx)

		// The parent context may end the run without Stop; forget it so a
		// later Start launches a new loop.
		t.mu.Lock()
		if t.done == done {
			t.cancel, t.done = nil, nil
		}
		t.mu.Unlock()
		cancel()
		close(done)
	}()
}

// Stop cancels a running loop and waits for it to exit.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Run blocks, applying one transition per interval, until ctx is done.
func (t *Ticker) Run(ctx context.Context) error {
	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.Chan():
			t.step(now)
		}
	}
}

func (t *Ticker) step(now time.Time) {
	next := t.State().Next()
	if t.resync > 0 && now.Sub(t.lastSync) >= t.resync {
		next = ClockStateFromTime(t.clock.Now())
		t.lastSync = now
	}
	t.state.Store(&next)
	t.publish(next)

	if t.onTick != nil {
		t.onTick(next)
	}
}

func (t *Ticker) publish(state ClockState) {
	select {
	case <-t.updates:
	default:
	}
	select {
	case t.updates <- state:
	default:
	}
}
