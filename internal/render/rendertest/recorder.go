// Package rendertest provides a recording canvas for tests of code that
// draws through render.Canvas.
package rendertest

import "image/color"

// Recorder is a render.Canvas that keeps every command instead of drawing it.
type Recorder struct {
	Width, Height int
	Scale         float64
	Clears        int
	Lines         []Line
	Discs         []Disc
	Texts         []Text
}

type Line struct {
	X0, Y0, X1, Y1, Width float64
	Color                 color.NRGBA
}

type Disc struct {
	X, Y, R      float64
	Inner, Outer color.NRGBA
}

type Text struct {
	S          string
	X, Y, Size float64
	Color      color.NRGBA
}

func (r *Recorder) Resize(width, height int) { r.Width, r.Height = width, height }
func (r *Recorder) SetScale(s float64)       { r.Scale = s }
func (r *Recorder) Clear()                   { r.Clears++ }

func (r *Recorder) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.Lines = append(r.Lines, Line{x0, y0, x1, y1, width, c})
}

func (r *Recorder) RadialDisc(x, y, radius float64, inner, outer color.NRGBA) {
	r.Discs = append(r.Discs, Disc{x, y, radius, inner, outer})
}

func (r *Recorder) Text(s string, x, y, size float64, c color.NRGBA) {
	r.Texts = append(r.Texts, Text{s, x, y, size, c})
}

// Commands returns the number of drawing commands recorded, clears included.
func (r *Recorder) Commands() int {
	return r.Clears + len(r.Lines) + len(r.Discs) + len(r.Texts)
}

// Reset forgets recorded commands but keeps size and scale.
func (r *Recorder) Reset() {
	r.Clears = 0
	r.Lines = r.Lines[:0]
	r.Discs = r.Discs[:0]
	r.Texts = r.Texts[:0]
}
