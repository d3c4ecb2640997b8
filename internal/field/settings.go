package field

import "errors"

// Settings controls population and per-frame behaviour of a Field. The two
// presets differ only in these values; there is a single code path.
type Settings struct {
	// Count is the fixed number of particles created on every Init.
	Count int

	// Speed is the width of the uniform range each velocity component is
	// drawn from, centred on zero.
	Speed float64
	// RadiusMin and RadiusMax bound the uniform particle radius.
	RadiusMin, RadiusMax float64
	// OpacityMin and OpacityMax bound the uniform base opacity.
	OpacityMin, OpacityMax float64
	// LabelChance is the probability that a particle carries a hex label.
	LabelChance float64

	// Attract enables pointer attraction inside AttractionRadius. When false
	// only the parallax offset is applied.
	Attract            bool
	AttractionRadius   float64
	AttractionStrength float64
	// ParallaxFactor scales the pointer's displacement from the canvas centre.
	ParallaxFactor float64

	// ConnectionThreshold is the distance below which two particles are joined.
	ConnectionThreshold float64
	// ConnectionOpacity is the line alpha at distance zero.
	ConnectionOpacity float64
	// Boost brightens lines whose endpoints average less than BoostRadius
	// from the pointer. Zero disables it.
	Boost       float64
	BoostRadius float64
	LineWidth   float64

	Glow         bool
	GlowRadius   float64
	GlowStrength float64

	Pulse          bool
	PulseStep      float64
	PulseAmplitude float64

	LabelSize    float64
	LabelOffsetX float64
	LabelOffsetY float64
}

var (
	ErrNegativeCount = errors.New("field: particle count must not be negative")
	ErrRadius        = errors.New("field: radii and thresholds must be positive")
)

// Rich is the canonical preset: 200 particles with attraction, glow and pulse.
func Rich() Settings {
	return Settings{
		Count:               200,
		Speed:               0.15,
		RadiusMin:           0.3,
		RadiusMax:           1.5,
		OpacityMin:          0.08,
		OpacityMax:          0.38,
		LabelChance:         0.03,
		Attract:             true,
		AttractionRadius:    200,
		AttractionStrength:  0.5,
		ParallaxFactor:      0.01,
		ConnectionThreshold: 150,
		ConnectionOpacity:   0.08,
		Boost:               0.3,
		BoostRadius:         200,
		LineWidth:           0.5,
		Glow:                true,
		GlowRadius:          150,
		GlowStrength:        0.4,
		Pulse:               true,
		PulseStep:           0.02,
		PulseAmplitude:      0.2,
		LabelSize:           6,
		LabelOffsetX:        3,
		LabelOffsetY:        1,
	}
}

// Light is the 45-particle preset: parallax only, no glow, pulse or boost.
func Light() Settings {
	s := Rich()
	s.Count = 45
	s.Attract = false
	s.ConnectionThreshold = 120
	s.Boost = 0
	s.Glow = false
	s.Pulse = false
	return s
}

// Validate reports settings that would make the per-frame math undefined.
func (s Settings) Validate() error {
	if s.Count < 0 {
		return ErrNegativeCount
	}
	if s.AttractionRadius <= 0 || s.ConnectionThreshold <= 0 || s.GlowRadius <= 0 {
		return ErrRadius
	}
	if s.Boost > 0 && s.BoostRadius <= 0 {
		return ErrRadius
	}
	return nil
}
