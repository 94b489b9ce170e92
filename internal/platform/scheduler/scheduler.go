// Package scheduler provides the clock and tick sources consumed by the
// application layer: a goroutine-per-loop ticker for production and a
// manually driven source for deterministic tests.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Ticker runs each registered loop on its own goroutine around a
// time.Ticker. Stop cancels every loop and waits for them to return.
type Ticker struct {
	mu      sync.Mutex
	stopped bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewTicker returns a running Ticker.
func NewTicker() *Ticker {
	return &Ticker{stop: make(chan struct{})}
}

// Every starts a loop that calls fn once per interval until fn returns
// false, ctx is done, or the Ticker is stopped.
func (t *Ticker) Every(ctx context.Context, interval time.Duration, fn func(ctx context.Context) bool) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()

		tk := time.NewTicker(interval)
		defer tk.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.stop:
				return
			case <-tk.C:
				if !fn(ctx) {
					return
				}
			}
		}
	}()
}

// Stop cancels all loops and blocks until they have returned. It is safe to
// call more than once.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.stopped {
		t.stopped = true
		close(t.stop)
	}
	t.mu.Unlock()
	t.wg.Wait()
}

// Manual is a tick source driven by explicit Tick calls. The interval passed
// to Every is ignored.
type Manual struct {
	mu    sync.Mutex
	loops []*manualLoop
}

type manualLoop struct {
	ctx  context.Context
	fn   func(context.Context) bool
	done bool
}

// NewManual returns an empty manual tick source.
func NewManual() *Manual {
	return &Manual{}
}

// Every registers fn to be called on each Tick.
func (m *Manual) Every(ctx context.Context, _ time.Duration, fn func(ctx context.Context) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loops = append(m.loops, &manualLoop{ctx: ctx, fn: fn})
}

// Tick calls every live loop once, in registration order, and drops loops
// whose fn returned false or whose context is done. It returns the number of
// loops that were called. Tick must not be called concurrently with itself.
func (m *Manual) Tick() int {
	m.mu.Lock()
	loops := make([]*manualLoop, 0, len(m.loops))
	for _, l := range m.loops {
		if !l.done {
			loops = append(loops, l)
		}
	}
	m.mu.Unlock()

	called := 0
	for _, l := range loops {
		if l.ctx.Err() != nil {
			l.done = true
			continue
		}
		called++
		if !l.fn(l.ctx) {
			l.done = true
		}
	}

	m.mu.Lock()
	live := m.loops[:0]
	for _, l := range m.loops {
		if !l.done {
			live = append(live, l)
		}
	}
	m.loops = live
	m.mu.Unlock()

	return called
}

// Active returns the number of loops still registered.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.loops)
}
