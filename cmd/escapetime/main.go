// Command escapetime prints ASCII escape-time images of z² + c over complex,
// dual or split-complex numbers.
//
// Usage:
//
//	escapetime --system complex --fractal mandelbrot --max-iters 256
//	escapetime --fractal julia --julia-c -0.8,0.156 --smooth
//	escapetime --system split --bounds -2,-2,2,2 --log-level debug
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/binum/bnum"
	"github.com/katalvlaran/binum/complexnum"
	"github.com/katalvlaran/binum/dualnum"
	"github.com/katalvlaran/binum/escape"
	"github.com/katalvlaran/binum/plane"
	"github.com/katalvlaran/binum/splitnum"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCommand wires the flags into a cobra command.
func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "escapetime",
		Short:        "Render escape-time fractals over binary number systems",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve()
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.level)

			return run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.system, "system", defaultSystem, "number system: complex, dual or split")
	fs.StringVar(&f.fractal, "fractal", defaultFractal, "iteration: mandelbrot or julia")
	fs.Float64SliceVar(&f.juliaC, "julia-c", defaultJuliaC(), "Julia parameter k as x,y")
	fs.Float64SliceVar(&f.bounds, "bounds", defaultBounds(), "viewport as minx,miny,maxx,maxy")
	fs.IntVar(&f.width, "width", defaultWidth, "columns")
	fs.IntVar(&f.height, "height", defaultHeight, "rows")
	fs.IntVar(&f.maxIters, "max-iters", defaultMaxIters, "iteration cap")
	fs.Float64Var(&f.bailout, "bailout", escape.DefaultBailout, "escape radius")
	fs.BoolVar(&f.smooth, "smooth", false, "shade by divergence smoothing instead of iteration count")
	fs.IntVar(&f.workers, "workers", plane.DefaultWorkers, "row workers (0 = GOMAXPROCS)")
	fs.StringVar(&f.ramp, "ramp", plane.DefaultRamp, "shading runes, slow to fast; the last marks contained cells")
	fs.StringVar(&f.logLevel, "log-level", defaultLogLevel, "debug, info, warn or error")

	return cmd
}

// newLogger returns a tint handler writing to w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// run renders cfg in the selected number system and writes the image to out.
func run(ctx context.Context, cfg config, out io.Writer, logger *slog.Logger) error {
	logger.Info("rendering",
		"system", cfg.system,
		"fractal", cfg.fractal,
		"size", fmt.Sprintf("%dx%d", cfg.viewport.Width, cfg.viewport.Height),
		"maxIters", cfg.maxIters,
	)

	var (
		image string
		err   error
	)
	switch cfg.system {
	case "dual":
		image, err = render(ctx, cfg, dualnum.New, nil, logger)
	case "split":
		image, err = render(ctx, cfg, splitnum.New, nil, logger)
	default:
		shortcut := escape.Predicate[complexnum.Complex](nil)
		if cfg.fractal == "mandelbrot" && !cfg.smooth {
			shortcut = complexnum.InMandelbrotBulbs
		}
		image, err = render(ctx, cfg, complexnum.New, shortcut, logger)
	}
	if err != nil {
		logger.Error("render failed", "err", err)

		return err
	}

	_, err = io.WriteString(out, image)

	return err
}

// render builds the configured function for T and returns the ASCII image.
func render[T bnum.Number[T]](
	ctx context.Context,
	cfg config,
	newT func(x, y float64) T,
	shortcut escape.Predicate[T],
	logger *slog.Logger,
) (string, error) {
	var b escape.Builder[T]
	if cfg.fractal == "julia" {
		b = escape.Julia(newT(cfg.juliaX, cfg.juliaY), cfg.maxIters, cfg.bailout)
	} else {
		b = escape.Mandelbrot[T](cfg.maxIters, cfg.bailout)
	}
	if shortcut != nil {
		b = b.ShortcutContainmentTest(shortcut)
	}
	if cfg.smooth {
		b = b.EnableDivergenceSmoothing()
	}
	fn, err := b.Build()
	if err != nil {
		return "", err
	}

	opts := []plane.Option{plane.WithLogger(logger)}
	if cfg.workers > 0 {
		opts = append(opts, plane.WithWorkers(cfg.workers))
	}
	g, err := plane.Render(ctx, cfg.viewport, newT, fn, opts...)
	if err != nil {
		return "", err
	}
	logger.Debug("contained regions", "count", len(g.ContainedComponents(plane.Conn8)))

	return g.ASCII(cfg.ramp), nil
}
