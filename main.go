package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/logger"
	"github.com/iburimskiy/particle-field/internal/loop"
	"github.com/iburimskiy/particle-field/internal/orbs"
	"github.com/iburimskiy/particle-field/internal/render"
)

var (
	configFlag   = flag.String("config", config.DefaultPath(), "Path to the rc file.")
	presetFlag   = flag.String("preset", "", "Particle preset: rich, light.")
	countFlag    = flag.Int("count", 0, "Override the preset's particle count.")
	widthFlag    = flag.Int("width", 0, "Window or snapshot width in logical pixels.")
	heightFlag   = flag.Int("height", 0, "Window or snapshot height in logical pixels.")
	orbsFlag     = flag.Bool("orbs", true, "Draw floating orbs beneath the field.")
	debugFlag    = flag.Bool("debug", false, "Show the debug overlay.")
	seedFlag     = flag.Uint64("seed", 0, "Random seed; 0 picks one.")
	snapshotFlag = flag.String("snapshot", "", "Render headless and write a PNG to this path.")
	framesFlag   = flag.Int("frames", config.SnapshotFrames, "Frames to simulate before a snapshot.")
	pointerFlag  = flag.String("pointer", "", "Pointer position x,y for a snapshot.")
	ratioFlag    = flag.Float64("ratio", 1, "Pixel ratio for a snapshot.")
	verboseFlag  = flag.Bool("v", false, "Log debug output to stderr.")
)

func main() {
	flag.Parse()

	if *verboseFlag {
		logger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = config.WindowWidth, config.WindowHeight
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	var opts []game.Option
	if cfg.Seed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}

	if *snapshotFlag != "" {
		return snapshot(cfg, settings, opts)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Particle Field - S: Save snapshot, D: Debug, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(cfg, settings, opts...)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// applyFlags overrides the loaded config with flags set on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "preset":
			cfg.Preset = strings.ToLower(*presetFlag)
		case "count":
			cfg.Count, cfg.CountSet = *countFlag, true
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "orbs":
			cfg.Orbs = *orbsFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})
}

// snapshot runs the field headless for the requested number of frames and
// writes the last one as PNG.
func snapshot(cfg config.Config, settings field.Settings, opts []game.Option) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	surface := game.NewOffscreen(float64(cfg.Width), float64(cfg.Height), *ratioFlag, render.Background())
	frames := loop.NewScheduler()
	events := loop.NewEvents()
	if cfg.Orbs {
		opts = append(opts, game.WithOrbs(orbs.Defaults()))
	}

	vis := game.Mount(surface, events, frames, settings, opts...)
	defer vis.Unmount()
	if !vis.Mounted() {
		return fmt.Errorf("cannot render a %dx%d snapshot", cfg.Width, cfg.Height)
	}

	if *pointerFlag != "" {
		x, y, err := parsePoint(*pointerFlag)
		if err != nil {
			return err
		}
		events.PointerMove(x, y)
	}

	// With -frames 0 the run ends on interrupt and the last frame is kept.
	if err := frames.Run(ctx, *framesFlag, 0); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err := surface.SavePNG(*snapshotFlag); err != nil {
		return err
	}
	logger.Logger().Info("snapshot saved", "path", *snapshotFlag, "frames", vis.Frames())
	return nil
}

func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("pointer y: %w", err)
	}
	return x, y, nil
}
