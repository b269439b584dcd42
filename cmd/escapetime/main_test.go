package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() flags {
	return flags{
		system:   defaultSystem,
		fractal:  defaultFractal,
		juliaC:   defaultJuliaC(),
		bounds:   defaultBounds(),
		width:    defaultWidth,
		height:   defaultHeight,
		maxIters: defaultMaxIters,
		bailout:  2,
		logLevel: defaultLogLevel,
	}
}

func TestFlags_Resolve(t *testing.T) {
	cfg, err := defaults().resolve()
	require.NoError(t, err)
	assert.Equal(t, "complex", cfg.system)
	assert.Equal(t, -0.8, cfg.juliaX)
	assert.Equal(t, 0.156, cfg.juliaY)
	assert.Equal(t, -2.2, cfg.viewport.MinX)
	assert.Equal(t, 1.2, cfg.viewport.MaxY)
	assert.Equal(t, slog.LevelInfo, cfg.level)

	f := defaults()
	f.system, f.logLevel = "SPLIT", "debug"
	cfg, err = f.resolve()
	require.NoError(t, err)
	assert.Equal(t, "split", cfg.system)
	assert.Equal(t, slog.LevelDebug, cfg.level)
}

func TestFlags_ResolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*flags)
	}{
		{"system", func(f *flags) { f.system = "quaternion" }},
		{"fractal", func(f *flags) { f.fractal = "burning-ship" }},
		{"max iters", func(f *flags) { f.maxIters = 0 }},
		{"bailout", func(f *flags) { f.bailout = 0 }},
		{"workers", func(f *flags) { f.workers = -1 }},
		{"julia arity", func(f *flags) { f.juliaC = []float64{1} }},
		{"julia empty", func(f *flags) { f.juliaC = nil }},
		{"bounds arity", func(f *flags) { f.bounds = []float64{0, 0, 1} }},
		{"bounds order", func(f *flags) { f.bounds = []float64{1, 0, 0, 1} }},
		{"width", func(f *flags) { f.width = 0 }},
		{"log level", func(f *flags) { f.logLevel = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := defaults()
			tc.mutate(&f)
			_, err := f.resolve()
			assert.Error(t, err)
		})
	}
}

func TestRun_AllSystems(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, system := range []string{"complex", "dual", "split"} {
		for _, fractal := range []string{"mandelbrot", "julia"} {
			t.Run(system+"/"+fractal, func(t *testing.T) {
				f := defaults()
				f.system, f.fractal = system, fractal
				f.width, f.height, f.maxIters = 20, 8, 32
				f.smooth = fractal == "julia"
				cfg, err := f.resolve()
				require.NoError(t, err)

				var out bytes.Buffer
				require.NoError(t, run(context.Background(), cfg, &out, logger))
				lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
				assert.Len(t, lines, 8)
			})
		}
	}
}

func TestRun_Cancelled(t *testing.T) {
	cfg, err := defaults().resolve()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err = run(ctx, cfg, &out, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--width", "16", "--height", "6", "--max-iters", "20", "--log-level", "debug"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, 6, strings.Count(out.String(), "\n"))
	assert.Contains(t, errOut.String(), "rendering")
	assert.Contains(t, errOut.String(), "render done")

	cmd = newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--system", "octonion"})
	assert.Error(t, cmd.Execute())
}

func TestRootCommand_FloatLists(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{"julia pair", []string{"--fractal", "julia", "--julia-c", "0.285,0.01"}, true},
		{"bounds quad", []string{"--bounds", "-2,-1,1,1"}, true},
		{"julia not a number", []string{"--julia-c", "1,x"}, false},
		{"julia arity", []string{"--julia-c", "1,2,3"}, false},
		{"bounds arity", []string{"--bounds", "-2,-1,1"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newRootCommand()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(append([]string{"--width", "8", "--height", "4", "--max-iters", "8"}, tc.args...))
			err := cmd.ExecuteContext(context.Background())
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
