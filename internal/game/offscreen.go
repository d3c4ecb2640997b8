package game

import (
	"image/color"
	"math"

	"github.com/iburimskiy/particle-field/internal/render"
)

// Offscreen is a Surface backed by a render.Snapshot, for headless runs.
type Offscreen struct {
	rect       Rect
	ratio      float64
	background color.Color
	snap       *render.Snapshot
}

// NewOffscreen describes a w x h logical surface at the given pixel ratio.
// The canvas is allocated on first acquisition.
func NewOffscreen(w, h, ratio float64, background color.Color) *Offscreen {
	if ratio <= 0 {
		ratio = 1
	}
	return &Offscreen{rect: Rect{W: w, H: h}, ratio: ratio, background: background}
}

func (o *Offscreen) Bounds() Rect        { return o.rect }
func (o *Offscreen) PixelRatio() float64 { return o.ratio }

// Canvas allocates the snapshot. It fails for a surface with no area.
func (o *Offscreen) Canvas() (render.Canvas, error) {
	if o.snap != nil {
		return o.snap, nil
	}
	snap, err := render.NewSnapshot(
		int(math.Ceil(o.rect.W*o.ratio)),
		int(math.Ceil(o.rect.H*o.ratio)),
		o.background)
	if err != nil {
		return nil, err
	}
	o.snap = snap
	return snap, nil
}

// Resize changes the logical size; fire the resize event afterwards.
func (o *Offscreen) Resize(w, h float64) {
	o.rect.W, o.rect.H = w, h
}

// SavePNG writes the last drawn frame.
func (o *Offscreen) SavePNG(path string) error {
	if o.snap == nil {
		return ErrNotMounted
	}
	return o.snap.SavePNG(path)
}

// Snapshot returns the backing canvas, nil before acquisition.
func (o *Offscreen) Snapshot() *render.Snapshot {
	return o.snap
}
