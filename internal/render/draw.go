package render

import (
	"github.com/iburimskiy/particle-field/internal/field"
)

// Draw clears c, draws the layers in order, then the connection and particle
// passes for f as seen from pointer.
func Draw(c Canvas, f *field.Field, pointer field.Vec, layers ...Layer) {
	c.Clear()
	for _, l := range layers {
		l.Draw(c)
	}
	Connections(c, f, pointer)
	Particles(c, f, pointer)
}

// Connections joins every pair of particles closer than the connection
// threshold. It is quadratic in the particle count.
func Connections(c Canvas, f *field.Field, pointer field.Vec) {
	s := f.Settings()
	ps := f.Particles()
	for i := range ps {
		a := ps[i].Pos
		da := a.Dist(pointer)
		for j := i + 1; j < len(ps); j++ {
			b := ps[j].Pos
			alpha := s.ConnectionAlpha(a.Dist(b))
			if alpha == 0 {
				continue
			}
			alpha += s.ProximityBoost((da + b.Dist(pointer)) / 2)
			c.Line(a.X, a.Y, b.X, b.Y, s.LineWidth, Accent(alpha))
		}
	}
}

// Particles draws each particle as a gradient disc with an optional glow
// halo and label.
func Particles(c Canvas, f *field.Field, pointer field.Vec) {
	s := f.Settings()
	for i := range f.Particles() {
		p := &f.Particles()[i]
		glow := s.GlowAlpha(p.Pos.Dist(pointer))
		size := p.Radius * s.PulseFactor(p.Phase)
		opacity := p.Opacity + glow

		if glow > 0 {
			c.RadialDisc(p.Pos.X, p.Pos.Y, size*4, Accent(glow*0.3), Accent(0))
		}
		c.RadialDisc(p.Pos.X, p.Pos.Y, size, Accent(opacity), Accent(opacity*0.3))

		if p.Label != "" {
			c.Text(p.Label, p.Pos.X+s.LabelOffsetX, p.Pos.Y+s.LabelOffsetY, s.LabelSize, Accent(opacity*0.4))
		}
	}
}
