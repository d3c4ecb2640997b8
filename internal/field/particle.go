package field

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Particle is one dot of the field. Only Pos and Base change after creation
// (and Phase, when pulsing).
type Particle struct {
	// ID is unique across every Init of the owning Field.
	ID uint64

	Pos  Vec // rendered position, may sit outside the canvas
	Base Vec // drift position, always inside [0,w) x [0,h)
	Vel  Vec

	Radius  float64
	Opacity float64
	Label   string
	Phase   float64
}

// spawn fills in a particle at a uniform random spot of a w x h canvas.
func spawn(rng *rand.Rand, s *Settings, id uint64, w, h float64) Particle {
	base := Vec{rng.Float64() * w, rng.Float64() * h}
	p := Particle{
		ID:   id,
		Pos:  base,
		Base: base,
		Vel: Vec{
			(rng.Float64() - 0.5) * s.Speed,
			(rng.Float64() - 0.5) * s.Speed,
		},
		Radius:  uniform(rng, s.RadiusMin, s.RadiusMax),
		Opacity: uniform(rng, s.OpacityMin, s.OpacityMax),
		Phase:   rng.Float64() * 2 * math.Pi,
	}
	if s.LabelChance > 0 && rng.Float64() < s.LabelChance {
		p.Label = fmt.Sprintf("%02X", rng.IntN(256))
	}
	return p
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// step advances p by one frame.
func (p *Particle) step(s *Settings, w, h float64, pointer, center Vec) {
	p.Base.X = Wrap(p.Base.X+p.Vel.X, w)
	p.Base.Y = Wrap(p.Base.Y+p.Vel.Y, h)
	p.Pos = s.Rendered(p.Base, pointer, center)
	if s.Pulse {
		p.Phase += s.PulseStep
	}
}
