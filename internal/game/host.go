package game

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/loop"
	"github.com/iburimskiy/particle-field/internal/orbs"
	"github.com/iburimskiy/particle-field/internal/render"
)

// screenSurface is the window's client area as a Surface.
type screenSurface struct {
	w, h   float64
	ratio  float64
	canvas *render.Screen
	err    error
}

func (s *screenSurface) Bounds() Rect        { return Rect{W: s.w, H: s.h} }
func (s *screenSurface) PixelRatio() float64 { return s.ratio }

func (s *screenSurface) Canvas() (render.Canvas, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.canvas == nil {
		return nil, errors.New("screen canvas unavailable")
	}
	return s.canvas, nil
}

// Game hosts a Visualization in an ebiten window. The display refresh drives
// the frame scheduler from Draw; Update forwards cursor moves and keys, and
// Layout turns window size changes into resize events.
type Game struct {
	cfg      config.Config
	settings field.Settings
	opts     []Option

	surface *screenSurface
	frames  *loop.Scheduler
	events  *loop.Events
	vis     *Visualization

	stats   *frameStats
	started time.Time
	cursor  image.Point

	debug   bool
	closed  bool
	lastErr error
}

// NewGame prepares a window host. The visualization mounts on the first
// Layout, once the window size is known.
func NewGame(cfg config.Config, s field.Settings, opts ...Option) *Game {
	screen, err := render.NewScreen(render.Background())
	g := &Game{
		cfg:      cfg,
		settings: s,
		surface:  &screenSurface{ratio: 1, canvas: screen, err: err},
		frames:   loop.NewScheduler(),
		events:   loop.NewEvents(),
		stats:    newFrameStats(config.FrameRingSize),
		started:  time.Now(),
		cursor:   image.Pt(-1, -1),
		debug:    cfg.Debug,
	}
	g.opts = append(g.opts, WithFrameHook(g.stats.record))
	if cfg.Orbs {
		g.opts = append(g.opts, WithOrbs(orbs.Defaults()))
	}
	g.opts = append(g.opts, opts...)
	return g
}

func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != g.cursor {
		g.cursor = p
		// The screen is laid out in device pixels.
		g.events.PointerMove(float64(x)/g.surface.ratio, float64(y)/g.surface.ratio)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshot(); err != nil {
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface.canvas != nil {
		g.surface.canvas.Bind(screen)
		g.frames.Tick()
		g.surface.canvas.Bind(nil)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) status() string {
	count := 0
	if g.vis != nil && g.vis.Field() != nil {
		count = g.vis.Field().Len()
	}
	s := fmt.Sprintf("particles %d  frame %s  fps %.0f  up %s  [S]ave [D]ebug [Q]uit",
		count, formatMillis(g.stats.average()), ebiten.ActualFPS(), formatDuration(time.Since(g.started)))
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := 1.0
	if m := ebiten.Monitor(); m != nil && m.DeviceScaleFactor() > 0 {
		ratio = m.DeviceScaleFactor()
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	s := g.surface
	if w != s.w || h != s.h || ratio != s.ratio {
		s.w, s.h, s.ratio = w, h, ratio
		switch {
		case g.closed:
		case g.vis == nil:
			g.vis = Mount(s, g.events, g.frames, g.settings, g.opts...)
		default:
			g.events.Resize()
		}
	}
	if s.canvas != nil {
		if bw, bh := s.canvas.BufferSize(); bw > 0 && bh > 0 {
			return bw, bh
		}
	}
	return int(math.Ceil(w * ratio)), int(math.Ceil(h * ratio))
}

// Close unmounts the visualization; the next Update terminates the game.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.vis != nil {
		g.vis.Unmount()
	}
}

// Visualization returns the mounted visualization, nil before first Layout.
func (g *Game) Visualization() *Visualization { return g.vis }
