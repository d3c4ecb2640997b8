package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ErrEmptySurface is returned when a snapshot would have no pixels.
var ErrEmptySurface = errors.New("render: snapshot surface has no area")

// Snapshot is an offscreen canvas backed by a fogleman/gg context. It renders
// true radial gradients and hinted labels, and encodes to PNG.
type Snapshot struct {
	dc         *gg.Context
	scale      float64
	background color.Color
	ttf        *truetype.Font
	faces      map[float64]font.Face
}

// NewSnapshot allocates a width x height pixel canvas cleared to background.
// A nil background is transparent.
func NewSnapshot(width, height int, background color.Color) (*Snapshot, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptySurface
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	if background == nil {
		background = color.Transparent
	}
	s := &Snapshot{
		dc:         gg.NewContext(width, height),
		scale:      1,
		background: background,
		ttf:        ttf,
		faces:      make(map[float64]font.Face),
	}
	s.Clear()
	return s, nil
}

// Resize reallocates the backing image when the size changes. Non-positive
// sizes are raised to one pixel.
func (s *Snapshot) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == s.dc.Width() && height == s.dc.Height() {
		return
	}
	s.dc = gg.NewContext(width, height)
	s.dc.Scale(s.scale, s.scale)
}

func (s *Snapshot) SetScale(k float64) {
	if k <= 0 {
		k = 1
	}
	s.scale = k
	s.dc.Identity()
	s.dc.Scale(k, k)
}

func (s *Snapshot) Clear() {
	s.dc.SetColor(s.background)
	s.dc.Clear()
}

func (s *Snapshot) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	s.dc.SetColor(c)
	// gg strokes in device pixels.
	s.dc.SetLineWidth(width * s.scale)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

func (s *Snapshot) RadialDisc(x, y, r float64, inner, outer color.NRGBA) {
	if r <= 0 {
		return
	}
	// Gradients are evaluated in device space.
	dx, dy := s.dc.TransformPoint(x, y)
	grad := gg.NewRadialGradient(dx, dy, 0, dx, dy, r*s.scale)
	grad.AddColorStop(0, inner)
	grad.AddColorStop(1, outer)
	s.dc.SetFillStyle(grad)
	s.dc.DrawCircle(x, y, r)
	s.dc.Fill()
}

func (s *Snapshot) Text(str string, x, y, size float64, c color.NRGBA) {
	if str == "" {
		return
	}
	// Glyphs go through the context matrix, so the face stays at the
	// logical size.
	face, ok := s.faces[size]
	if !ok {
		face = truetype.NewFace(s.ttf, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		s.faces[size] = face
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	s.dc.DrawString(str, x, y)
}

// Image returns the rendered pixels.
func (s *Snapshot) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the snapshot as PNG.
func (s *Snapshot) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the snapshot to path.
func (s *Snapshot) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
