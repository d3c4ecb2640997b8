// Package orbs draws large, soft accent-coloured orbs that drift slowly on
// looping eased keyframes. It is meant as a background Layer beneath the
// particle field.
package orbs

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/particle-field/internal/render"
)

// Orb describes one orb. X and Y are fractions of the surface size.
type Orb struct {
	X, Y     float64
	Size     float64 // diameter in logical units
	Alpha    float64 // centre alpha
	Period   float32 // seconds for one full keyframe loop
	Delay    float32 // seconds before the first loop starts
	Falloff  float64 // fraction of the radius where the gradient reaches zero
	OffsetsX []float32
	OffsetsY []float32
	Scales   []float32
}

// Defaults are the three orbs of the page background.
func Defaults() []Orb {
	base := func(x, y, size, alpha float64, period, delay float32) Orb {
		return Orb{
			X: x, Y: y, Size: size, Alpha: alpha,
			Period: period, Delay: delay, Falloff: 0.7,
			OffsetsX: []float32{0, 100, -50, 0},
			OffsetsY: []float32{0, -80, 100, 0},
			Scales:   []float32{1, 1.1, 0.9, 1},
		}
	}
	return []Orb{
		base(0.1, 0.2, 600, 0.15, 20, 0),
		base(0.8, 0.6, 500, 0.10, 25, 5),
		base(0.5, 0.8, 450, 0.08, 30, 10),
	}
}

// track plays a looping keyframe sequence, one gween tween per segment.
type track struct {
	frames  []float32
	segment float32
	elapsed float32
	index   int
	tween   *gween.Tween
	value   float32
}

func newTrack(frames []float32, period float32) *track {
	t := &track{frames: frames}
	if len(frames) > 0 {
		t.value = frames[0]
	}
	if len(frames) > 1 && period > 0 {
		t.segment = period / float32(len(frames)-1)
		t.start(0)
	}
	return t
}

func (t *track) start(i int) {
	t.index = i
	t.elapsed = 0
	t.tween = gween.New(t.frames[i], t.frames[i+1], t.segment, ease.InOutCubic)
}

func (t *track) update(dt float32) {
	for t.tween != nil && dt > 0 {
		remaining := t.segment - t.elapsed
		if dt < remaining {
			t.value, _ = t.tween.Update(dt)
			t.elapsed += dt
			return
		}
		// Finish this segment and carry the rest into the next one.
		dt -= remaining
		next := t.index + 1
		if next >= len(t.frames)-1 {
			next = 0
		}
		t.start(next)
		t.value = t.frames[next]
	}
}

type state struct {
	orb     Orb
	wait    float32
	x, y, s *track
}

// Layer animates a set of orbs over a surface of the given logical size.
type Layer struct {
	orbs          []*state
	width, height float64
}

// New returns a layer for a width x height surface.
func New(width, height float64, list []Orb) *Layer {
	l := &Layer{width: width, height: height}
	for _, o := range list {
		l.orbs = append(l.orbs, &state{
			orb:  o,
			wait: o.Delay,
			x:    newTrack(o.OffsetsX, o.Period),
			y:    newTrack(o.OffsetsY, o.Period),
			s:    newTrack(o.Scales, o.Period),
		})
	}
	return l
}

// Resize updates the surface size orbs are positioned against.
func (l *Layer) Resize(width, height float64) {
	l.width, l.height = width, height
}

// Update advances every orb by dt seconds.
func (l *Layer) Update(dt float32) {
	for _, st := range l.orbs {
		if st.wait > 0 {
			st.wait -= dt
			if st.wait > 0 {
				continue
			}
			carry := -st.wait
			st.wait = 0
			st.advance(carry)
			continue
		}
		st.advance(dt)
	}
}

func (st *state) advance(dt float32) {
	st.x.update(dt)
	st.y.update(dt)
	st.s.update(dt)
}

// Position returns the centre and radius of orb i in logical units.
func (l *Layer) Position(i int) (x, y, r float64) {
	st := l.orbs[i]
	r = st.orb.Size / 2 * float64(st.s.value)
	x = st.orb.X*l.width + st.orb.Size/2 + float64(st.x.value)
	y = st.orb.Y*l.height + st.orb.Size/2 + float64(st.y.value)
	return x, y, r
}

// Len returns the number of orbs.
func (l *Layer) Len() int { return len(l.orbs) }

// Draw implements render.Layer.
func (l *Layer) Draw(c render.Canvas) {
	for i, st := range l.orbs {
		x, y, r := l.Position(i)
		falloff := st.orb.Falloff
		if falloff <= 0 {
			falloff = 1
		}
		c.RadialDisc(x, y, r*falloff, render.Accent(st.orb.Alpha), render.Accent(0))
	}
}
