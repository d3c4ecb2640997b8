package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// gradientSteps is how many concentric circles approximate a radial gradient
// on the screen canvas.
const gradientSteps = 5

// Screen draws onto the ebiten screen image bound for the current frame.
// Commands issued while no image is bound are dropped.
type Screen struct {
	dst           *ebiten.Image
	width, height int
	scale         float64
	background    color.Color
	font          *text.GoTextFaceSource
	faces         map[float64]*text.GoTextFace
}

// NewScreen loads the label font. Clear fills with background; nil leaves
// the screen transparent. An error means the canvas is unusable.
func NewScreen(background color.Color) (*Screen, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &Screen{
		scale:      1,
		background: background,
		font:       src,
		faces:      make(map[float64]*text.GoTextFace),
	}, nil
}

// Bind sets the image the next commands draw to.
func (s *Screen) Bind(dst *ebiten.Image) { s.dst = dst }

// BufferSize returns the backing buffer size requested by the last Resize.
func (s *Screen) BufferSize() (int, int) { return s.width, s.height }

func (s *Screen) Resize(width, height int) { s.width, s.height = width, height }

func (s *Screen) SetScale(k float64) {
	if k <= 0 {
		k = 1
	}
	s.scale = k
}

func (s *Screen) Clear() {
	switch {
	case s.dst == nil:
	case s.background == nil:
		s.dst.Clear()
	default:
		s.dst.Fill(s.background)
	}
}

func (s *Screen) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if s.dst == nil || c.A == 0 {
		return
	}
	k := s.scale
	vector.StrokeLine(s.dst,
		float32(x0*k), float32(y0*k), float32(x1*k), float32(y1*k),
		float32(width*k), c, true)
}

func (s *Screen) RadialDisc(x, y, r float64, inner, outer color.NRGBA) {
	if s.dst == nil || r <= 0 {
		return
	}
	k := s.scale
	cx, cy := float32(x*k), float32(y*k)
	rr := r * k
	// Sub-pixel discs get a single fill of the centre colour.
	if rr < 1.5 {
		vector.DrawFilledCircle(s.dst, cx, cy, float32(rr), inner, true)
		return
	}
	for i, c := range ringColors(inner, outer) {
		if c.A == 0 {
			continue
		}
		t := float64(i) / gradientSteps
		vector.DrawFilledCircle(s.dst, cx, cy, float32(rr*(1-t)), c, true)
	}
}

// ringColors returns the fills of the stacked circles, largest first. Each
// alpha is what it takes, blended over the circles beneath, to bring its band
// to the gradient value at that step. Bands cannot get lighter than the one
// outside them.
func ringColors(inner, outer color.NRGBA) [gradientSteps]color.NRGBA {
	var rings [gradientSteps]color.NRGBA
	below := 0.0
	for i := range rings {
		c := lerpColor(outer, inner, float64(i)/gradientSteps)
		target := float64(c.A) / 255
		a := 0.0
		if target > below && below < 1 {
			a = (target - below) / (1 - below)
		}
		c.A = uint8(clamp01(a)*255 + 0.5)
		rings[i] = c
		below = over(below, float64(c.A)/255)
	}
	return rings
}

// over is the alpha of src blended onto dst.
func over(dst, src float64) float64 {
	return 1 - (1-dst)*(1-src)
}

func (s *Screen) Text(str string, x, y, size float64, c color.NRGBA) {
	if s.dst == nil || str == "" {
		return
	}
	px := size * s.scale
	face, ok := s.faces[px]
	if !ok {
		face = &text.GoTextFace{Source: s.font, Size: px}
		s.faces[px] = face
	}
	op := &text.DrawOptions{}
	// Labels are placed by baseline; text/v2 draws from the top of the line.
	op.GeoM.Translate(x*s.scale, y*s.scale-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, face, op)
}
