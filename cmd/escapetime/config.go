package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/binum/plane"
)

// Defaults for the command-line flags.
const (
	defaultSystem   = "complex"
	defaultFractal  = "mandelbrot"
	defaultWidth    = 78
	defaultHeight   = 32
	defaultMaxIters = 256
	defaultLogLevel = "info"
)

// defaultJuliaC and defaultBounds return fresh slices so a flag set never
// shares backing storage with another.
func defaultJuliaC() []float64 { return []float64{-0.8, 0.156} }

func defaultBounds() []float64 { return []float64{-2.2, -1.2, 0.8, 1.2} }

// errConfig marks invalid flag values.
var errConfig = errors.New("escapetime: invalid configuration")

// flags holds the raw flag values as cobra binds them.
type flags struct {
	system   string
	fractal  string
	juliaC   []float64
	bounds   []float64
	width    int
	height   int
	maxIters int
	bailout  float64
	smooth   bool
	workers  int
	ramp     string
	logLevel string
}

// config is the validated form of flags.
type config struct {
	system   string
	fractal  string
	juliaX   float64
	juliaY   float64
	viewport plane.Viewport
	maxIters int
	bailout  float64
	smooth   bool
	workers  int
	ramp     string
	level    slog.Level
}

// resolve validates f and converts it into a config.
func (f flags) resolve() (config, error) {
	cfg := config{
		system:   strings.ToLower(f.system),
		fractal:  strings.ToLower(f.fractal),
		maxIters: f.maxIters,
		bailout:  f.bailout,
		smooth:   f.smooth,
		workers:  f.workers,
		ramp:     f.ramp,
	}

	switch cfg.system {
	case "complex", "dual", "split":
	default:
		return config{}, fmt.Errorf("--system %q: want complex, dual or split: %w", f.system, errConfig)
	}
	switch cfg.fractal {
	case "mandelbrot", "julia":
	default:
		return config{}, fmt.Errorf("--fractal %q: want mandelbrot or julia: %w", f.fractal, errConfig)
	}
	if cfg.maxIters < 1 {
		return config{}, fmt.Errorf("--max-iters %d: must be >= 1: %w", f.maxIters, errConfig)
	}
	if !(cfg.bailout > 0) {
		return config{}, fmt.Errorf("--bailout %g: must be > 0: %w", f.bailout, errConfig)
	}
	if cfg.workers < 0 {
		return config{}, fmt.Errorf("--workers %d: must be >= 0: %w", f.workers, errConfig)
	}

	if len(f.juliaC) != 2 {
		return config{}, fmt.Errorf("--julia-c %v: want x,y: %w", f.juliaC, errConfig)
	}
	cfg.juliaX, cfg.juliaY = f.juliaC[0], f.juliaC[1]

	if len(f.bounds) != 4 {
		return config{}, fmt.Errorf("--bounds %v: want minx,miny,maxx,maxy: %w", f.bounds, errConfig)
	}
	b := f.bounds
	var err error
	cfg.viewport, err = plane.NewViewport(b[0], b[1], b[2], b[3], f.width, f.height)
	if err != nil {
		return config{}, fmt.Errorf("--bounds/--width/--height: %w", err)
	}

	if err := cfg.level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return config{}, fmt.Errorf("--log-level %q: %w", f.logLevel, errConfig)
	}

	return cfg, nil
}
