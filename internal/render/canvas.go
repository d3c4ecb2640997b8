// Package render draws a particle field onto a 2D surface. The drawing
// passes are written once against Canvas; backends adapt it to an ebiten
// screen, an offscreen fogleman/gg context, or the rendertest recorder.
package render

import (
	"image/color"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Canvas is a 2D drawing surface addressed in logical units.
type Canvas interface {
	// Resize sets the backing buffer size in device pixels.
	Resize(width, height int)
	// SetScale sets the uniform logical-to-device scale applied to every
	// subsequent command.
	SetScale(s float64)
	Clear()
	Line(x0, y0, x1, y1, width float64, c color.NRGBA)
	// RadialDisc fills a disc of radius r with a radial gradient from inner
	// at the centre to outer at the rim.
	RadialDisc(x, y, r float64, inner, outer color.NRGBA)
	Text(s string, x, y, size float64, c color.NRGBA)
}

// Layer is drawn after Clear and beneath the particle field.
type Layer interface {
	Draw(c Canvas)
}

// Accent returns the accent colour at the given alpha, clamped to [0, 1].
func Accent(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: config.AccentR,
		G: config.AccentG,
		B: config.AccentB,
		A: uint8(clamp01(alpha)*255 + 0.5),
	}
}

// Background is the opaque page colour behind the field.
func Background() color.NRGBA {
	return color.NRGBA{config.BackgroundR, config.BackgroundG, config.BackgroundB, 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerpColor mixes a and b in non-premultiplied space, t in [0, 1].
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
