// Package scheduler runs fixed-rate callbacks.
//
// Callbacks run on their own goroutine, standing in for the timer interrupt
// of the panel hardware. They must be short and non-blocking: sample input,
// set a flag, return. A callback that overruns simply misses ticks; ticks
// never queue up behind it.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Callback is invoked once per period.
type Callback func()

type entry struct {
	name     string
	interval time.Duration
	fn       Callback
}

// Scheduler owns a set of periodic callbacks.
type Scheduler struct {
	mu      sync.Mutex
	entries []entry
	running bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns an idle scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Attach registers fn to run hz times per second. Callbacks must be attached
// before Start.
func (s *Scheduler) Attach(name string, hz int, fn Callback) error {
	if hz <= 0 {
		return fmt.Errorf("attach %s: frequency must be > 0 (got %d)", name, hz)
	}
	if fn == nil {
		return fmt.Errorf("attach %s: nil callback", name)
	}
	return s.AttachEvery(name, time.Second/time.Duration(hz), fn)
}

// AttachEvery registers fn with an explicit period.
func (s *Scheduler) AttachEvery(name string, interval time.Duration, fn Callback) error {
	if interval <= 0 {
		return fmt.Errorf("attach %s: interval must be > 0", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("attach %s: scheduler already running", name)
	}
	s.entries = append(s.entries, entry{name: name, interval: interval, fn: fn})
	return nil
}

// Start launches one ticker per callback. They stop when ctx is cancelled or
// Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	ctx, s.cancel = context.WithCancel(ctx)
	for _, e := range s.entries {
		s.wg.Add(1)
		go s.loop(ctx, e)
	}
}

// Stop cancels every callback; use Wait for a clean drain.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until every callback goroutine has exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, e entry) {
	defer s.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.fn()
		}
	}
}
