package plane

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// DefaultWorkers selects runtime.GOMAXPROCS(0) row workers.
const DefaultWorkers = 0

// Option configures Render.
type Option func(*options)

type options struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets the number of row workers.
// Panics if n < 1: a non-positive pool is a programming error.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("plane: WithWorkers(%d): must be >= 1", n))
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger used for the render summary. nil keeps the
// discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies opts in order (later overrides earlier) over the defaults.
func gatherOptions(opts []Option) options {
	o := options{
		workers: DefaultWorkers,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
