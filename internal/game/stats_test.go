package game

import (
	"testing"
	"time"
)

func TestFrameStatsRing(t *testing.T) {
	s := newFrameStats(4)
	if got := s.average(); got != 0 {
		t.Errorf("empty average = %v, want 0", got)
	}

	for i := 1; i <= 6; i++ {
		s.record(time.Duration(i) * time.Millisecond)
	}
	got := s.snapshot(10)
	want := []time.Duration{3 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond, 6 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("snapshot len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("snapshot[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if avg := s.average(); avg != 4500*time.Microsecond {
		t.Errorf("average = %v, want 4.5ms", avg)
	}
	if last := s.snapshot(1); len(last) != 1 || last[0] != 6*time.Millisecond {
		t.Errorf("snapshot(1) = %v, want [6ms]", last)
	}
}

func TestFormatting(t *testing.T) {
	if got := formatDuration(83 * time.Second); got != "01:23" {
		t.Errorf("formatDuration = %q, want 01:23", got)
	}
	if got := formatMillis(1250 * time.Microsecond); got != "1.25ms" {
		t.Errorf("formatMillis = %q, want 1.25ms", got)
	}
}
