package game

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/logger"
	"github.com/iburimskiy/particle-field/internal/loop"
	"github.com/iburimskiy/particle-field/internal/orbs"
	"github.com/iburimskiy/particle-field/internal/render"
)

// Rect is a region of the host's client area in logical units.
type Rect struct {
	X, Y, W, H float64
}

// Surface is the host element the visualization fills.
type Surface interface {
	// Bounds is the surface's position and logical size in client space.
	Bounds() Rect
	// PixelRatio is the number of device pixels per logical unit.
	PixelRatio() float64
	// Canvas acquires the drawing context. An error leaves the
	// visualization inert.
	Canvas() (render.Canvas, error)
}

// FrameScheduler queues callbacks for the next display refresh.
type FrameScheduler interface {
	RequestFrame(fn func()) loop.Handle
	CancelFrame(h loop.Handle)
}

// EventSource delivers pointer moves in client coordinates and resizes.
type EventSource interface {
	OnPointerMove(fn func(x, y float64)) (remove func())
	OnResize(fn func()) (remove func())
}

var ErrNotMounted = errors.New("game: visualization is not mounted")

// Option configures a Visualization at mount time.
type Option func(*Visualization)

// WithRand seeds particle creation, for reproducible fields.
func WithRand(rng *rand.Rand) Option {
	return func(v *Visualization) { v.rng = rng }
}

// WithOrbs draws the given floating orbs beneath the field.
func WithOrbs(list []orbs.Orb) Option {
	return func(v *Visualization) { v.orbList = list }
}

// WithFrameHook is called after every frame with its update+draw cost.
func WithFrameHook(fn func(cost time.Duration)) Option {
	return func(v *Visualization) { v.hook = fn }
}

// Visualization is a mounted particle field: it owns the field, the pointer
// register, the pending frame handle and the attached listeners.
type Visualization struct {
	surface Surface
	canvas  render.Canvas
	frames  FrameScheduler
	field   *field.Field
	pointer field.Pointer

	rng     *rand.Rand
	orbList []orbs.Orb
	orbs    *orbs.Layer
	hook    func(time.Duration)

	handle  loop.Handle
	mounted bool
	detach  []func()
	ticks   uint64
}

// Mount acquires the surface's canvas, builds the field, attaches pointer
// and resize listeners and schedules the first frame. If the canvas cannot be
// acquired the returned visualization does nothing.
func Mount(surface Surface, events EventSource, frames FrameScheduler, s field.Settings, opts ...Option) *Visualization {
	v := &Visualization{surface: surface, frames: frames}
	for _, opt := range opts {
		opt(v)
	}

	canvas, err := surface.Canvas()
	if err != nil || canvas == nil {
		logger.Logger().Warn("particle field disabled: no drawing surface", "err", err)
		return v
	}
	v.canvas = canvas
	v.field = field.New(s, v.rng)
	v.mounted = true
	v.init()

	v.detach = append(v.detach,
		events.OnPointerMove(v.pointerMove),
		events.OnResize(v.resize),
	)
	v.handle = frames.RequestFrame(v.frame)
	logger.Logger().Debug("particle field mounted", "count", s.Count)
	return v
}

// init sizes the canvas backing buffer and rebuilds the particle set.
func (v *Visualization) init() {
	b := v.surface.Bounds()
	ratio := v.surface.PixelRatio()
	if ratio <= 0 {
		ratio = 1
	}
	v.canvas.Resize(int(math.Ceil(b.W*ratio)), int(math.Ceil(b.H*ratio)))
	v.canvas.SetScale(ratio)
	v.field.Init(b.W, b.H, ratio)

	if v.orbList == nil {
		return
	}
	if v.orbs == nil {
		v.orbs = orbs.New(b.W, b.H, v.orbList)
	} else {
		v.orbs.Resize(b.W, b.H)
	}
}

func (v *Visualization) resize() {
	if !v.mounted {
		return
	}
	v.init()
}

func (v *Visualization) pointerMove(x, y float64) {
	b := v.surface.Bounds()
	v.pointer.Set(x-b.X, y-b.Y)
}

func (v *Visualization) frame() {
	if !v.mounted {
		return
	}
	start := time.Now()
	p := v.pointer.Load()
	v.field.Update(p)
	if v.orbs != nil {
		v.orbs.Update(config.FrameStep)
		render.Draw(v.canvas, v.field, p, v.orbs)
	} else {
		render.Draw(v.canvas, v.field, p)
	}
	v.ticks++
	if v.hook != nil {
		v.hook(time.Since(start))
	}
	v.handle = v.frames.RequestFrame(v.frame)
}

// Unmount cancels the pending frame and removes the listeners. It is safe to
// call more than once.
func (v *Visualization) Unmount() {
	if !v.mounted {
		return
	}
	v.mounted = false
	v.frames.CancelFrame(v.handle)
	v.handle = 0
	for _, remove := range v.detach {
		remove()
	}
	v.detach = nil
	logger.Logger().Debug("particle field unmounted", "frames", v.ticks)
}

// Mounted reports whether the visualization is live.
func (v *Visualization) Mounted() bool { return v.mounted }

// Field returns the simulation, or nil if mounting failed.
func (v *Visualization) Field() *field.Field { return v.field }

// Pointer returns the last pointer position in canvas coordinates.
func (v *Visualization) Pointer() field.Vec { return v.pointer.Load() }

// Frames returns how many frames have been drawn.
func (v *Visualization) Frames() uint64 { return v.ticks }

// Snapshot renders the current state offscreen at device resolution.
func (v *Visualization) Snapshot(background color.Color) (*render.Snapshot, error) {
	if v.field == nil {
		return nil, ErrNotMounted
	}
	w, h := v.field.Size()
	ratio := v.field.PixelRatio()
	snap, err := render.NewSnapshot(int(math.Ceil(w*ratio)), int(math.Ceil(h*ratio)), background)
	if err != nil {
		return nil, err
	}
	snap.SetScale(ratio)
	if v.orbs != nil {
		render.Draw(snap, v.field, v.pointer.Load(), v.orbs)
	} else {
		render.Draw(snap, v.field, v.pointer.Load())
	}
	return snap, nil
}
