package orbs

import (
	"math"
	"testing"

	"github.com/iburimskiy/particle-field/internal/render"
	"github.com/iburimskiy/particle-field/internal/render/rendertest"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-3 }

func testOrb() Orb {
	return Orb{
		X: 0.5, Y: 0.5, Size: 100, Alpha: 0.2,
		Period: 3, Falloff: 0.7,
		OffsetsX: []float32{0, 100, -50, 0},
		OffsetsY: []float32{0, -80, 100, 0},
		Scales:   []float32{1, 1.1, 0.9, 1},
	}
}

func TestTrackHitsKeyframes(t *testing.T) {
	tr := newTrack([]float32{0, 100, -50, 0}, 3)
	tr.update(1)
	if !near(tr.value, 100) {
		t.Errorf("after one segment value = %v, want 100", tr.value)
	}
	tr.update(0.5)
	if !near(tr.value, 25) {
		t.Errorf("half way through second segment value = %v, want 25", tr.value)
	}
	tr.update(1.5)
	if !near(tr.value, 0) || tr.index != 0 {
		t.Errorf("after full loop value = %v index = %d, want 0 and 0", tr.value, tr.index)
	}
	tr.update(1)
	if !near(tr.value, 100) {
		t.Errorf("second loop value = %v, want 100", tr.value)
	}
}

func TestTrackLargeStepSpansSegments(t *testing.T) {
	tr := newTrack([]float32{0, 100, -50, 0}, 3)
	tr.update(2)
	if !near(tr.value, -50) || tr.index != 2 {
		t.Errorf("value = %v index = %d, want -50 at segment 2", tr.value, tr.index)
	}
}

func TestLayerDelay(t *testing.T) {
	o := testOrb()
	o.Delay = 2
	l := New(800, 600, []Orb{o})

	x0, y0, r0 := l.Position(0)
	if x0 != 450 || y0 != 350 || r0 != 50 {
		t.Errorf("initial position = (%v, %v, %v), want (450, 350, 50)", x0, y0, r0)
	}

	l.Update(1.5)
	if x, _, _ := l.Position(0); x != x0 {
		t.Errorf("orb moved during its delay: x = %v", x)
	}
	l.Update(1.5) // 0.5s past the delay
	if x, _, _ := l.Position(0); x <= x0 {
		t.Errorf("orb did not move after its delay: x = %v", x)
	}
}

func TestLayerDrawAndResize(t *testing.T) {
	l := New(800, 600, Defaults())
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	rec := &rendertest.Recorder{}
	l.Draw(rec)
	if len(rec.Discs) != 3 {
		t.Fatalf("discs = %d, want 3", len(rec.Discs))
	}
	first := rec.Discs[0]
	if first.X != 0.1*800+300 || first.Y != 0.2*600+300 {
		t.Errorf("first orb at (%v, %v), want (380, 420)", first.X, first.Y)
	}
	if first.R != 300*0.7 {
		t.Errorf("first orb radius = %v, want %v", first.R, 300*0.7)
	}
	if first.Inner != render.Accent(0.15) || first.Outer.A != 0 {
		t.Errorf("first orb colours = %v -> %v", first.Inner, first.Outer)
	}

	l.Resize(1600, 1200)
	if x, _, _ := l.Position(0); x != 0.1*1600+300 {
		t.Errorf("x after resize = %v, want %v", x, 0.1*1600+300)
	}
}
