package game

import (
	"sync"
	"time"
)

// frameStats records the cost of the last N frames in a ring buffer so the
// overlay can show a rolling average.
type frameStats struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func newFrameStats(ringSize int) *frameStats {
	return &frameStats{
		buffer: make([]time.Duration, ringSize),
	}
}

func (s *frameStats) record(d time.Duration) {
	s.mu.Lock()
	s.buffer[s.nextIndex] = d
	s.nextIndex++
	if s.nextIndex >= len(s.buffer) {
		s.nextIndex = 0
	}
	if s.filled < len(s.buffer) {
		s.filled++
	}
	s.mu.Unlock()
}

// snapshot returns up to the last n timings, oldest first.
func (s *frameStats) snapshot(n int) []time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > s.filled {
		n = s.filled
	}
	out := make([]time.Duration, n)
	// Walk backwards from nextIndex - 1
	idx := s.nextIndex
	for i := n - 1; i >= 0; i-- {
		idx--
		if idx < 0 {
			idx = len(s.buffer) - 1
		}
		out[i] = s.buffer[idx]
	}
	return out
}

// average returns the mean of the recorded timings, zero if there are none.
func (s *frameStats) average() time.Duration {
	samples := s.snapshot(len(s.buffer))
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	return sum / time.Duration(len(samples))
}
