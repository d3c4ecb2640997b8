// Package loop provides the frame scheduler and the pointer/resize event
// source a visualization is mounted against. A window host drives Tick from
// its display refresh; a headless host calls Run.
package loop

import (
	"context"
	"sync"
	"time"
)

// Handle identifies a requested frame callback. The zero Handle is never
// issued.
type Handle uint64

// Scheduler runs frame callbacks cooperatively, one batch per Tick. A
// callback that wants another frame must request it again.
type Scheduler struct {
	mu      sync.Mutex
	next    Handle
	pending map[Handle]func()
	order   []Handle
}

// NewScheduler returns an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[Handle]func())}
}

// RequestFrame queues fn for the next Tick.
func (s *Scheduler) RequestFrame(fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

// CancelFrame drops a queued callback. Cancelling a handle that already ran
// or was never issued is a no-op.
func (s *Scheduler) CancelFrame(h Handle) {
	s.mu.Lock()
	delete(s.pending, h)
	s.mu.Unlock()
}

// Pending returns the number of queued callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Tick runs every callback that was queued when it was called, in request
// order, and returns how many ran. Callbacks requested during the tick wait
// for the next one.
func (s *Scheduler) Tick() int {
	s.mu.Lock()
	batch := s.order
	s.order = nil
	s.mu.Unlock()

	ran := 0
	for _, h := range batch {
		s.mu.Lock()
		fn, ok := s.pending[h]
		delete(s.pending, h)
		s.mu.Unlock()
		if !ok {
			continue
		}
		fn()
		ran++
	}
	return ran
}

// Run ticks frames times, or until ctx is done when frames is zero. With a
// positive interval ticks are paced by a ticker, otherwise they run back to
// back. It returns ctx.Err() if the context ended the run.
func (s *Scheduler) Run(ctx context.Context, frames int, interval time.Duration) error {
	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for n := 0; frames == 0 || n < frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		s.Tick()
	}
	return nil
}
