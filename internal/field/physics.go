package field

import "math"

// Vec is a point or displacement in logical canvas units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Dist(o Vec) float64  { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Wrap folds a coordinate that has just stepped past [0, limit) back inside.
// Crossing the upper bound lands on exactly 0; crossing the lower bound lands
// on the largest float below limit.
func Wrap(c, limit float64) float64 {
	switch {
	case c >= limit:
		return 0
	case c < 0:
		if limit <= 0 {
			return 0
		}
		return math.Nextafter(limit, 0)
	}
	return c
}

// falloff is 1 at distance zero and falls linearly to 0 at radius.
func falloff(dist, radius float64) float64 {
	if dist >= radius {
		return 0
	}
	return 1 - dist/radius
}

// AttractionForce is the fraction of the base-to-pointer vector a particle
// is pulled by. Zero at or beyond radius.
func AttractionForce(dist, radius, strength float64) float64 {
	return falloff(dist, radius) * strength
}

// Rendered returns the drawn position for a particle drifting at base, given
// the pointer and the canvas centre.
func (s *Settings) Rendered(base, pointer, center Vec) Vec {
	if s.Attract {
		if d := base.Dist(pointer); d < s.AttractionRadius {
			force := AttractionForce(d, s.AttractionRadius, s.AttractionStrength)
			return base.Add(pointer.Sub(base).Scale(force))
		}
	}
	return base.Add(pointer.Sub(center).Scale(s.ParallaxFactor))
}

// ConnectionAlpha is the line alpha for two particles dist apart, before any
// pointer boost. Zero means no line.
func (s *Settings) ConnectionAlpha(dist float64) float64 {
	return s.ConnectionOpacity * falloff(dist, s.ConnectionThreshold)
}

// ProximityBoost is added to a line whose endpoints are, on average,
// avgDist from the pointer.
func (s *Settings) ProximityBoost(avgDist float64) float64 {
	if s.Boost == 0 {
		return 0
	}
	return falloff(avgDist, s.BoostRadius) * s.Boost
}

// GlowAlpha is the glow contribution for a particle dist from the pointer.
func (s *Settings) GlowAlpha(dist float64) float64 {
	if !s.Glow {
		return 0
	}
	return falloff(dist, s.GlowRadius) * s.GlowStrength
}

// PulseFactor scales the particle radius for the given phase.
func (s *Settings) PulseFactor(phase float64) float64 {
	if !s.Pulse {
		return 1
	}
	return math.Sin(phase)*s.PulseAmplitude + 1
}
