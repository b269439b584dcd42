package plane

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/binum/escape"
)

// Render evaluates fn at every cell centre of vp and returns the grid.
//
// newT builds a number-system value from plane coordinates, e.g.
// complexnum.New. Rows are handed to a pool of workers; each worker checks
// ctx before starting a row, so cancellation latency is one row.
//
// Errors:
//   - ErrNilFunction if fn or newT is nil.
//   - ctx.Err() if ctx is cancelled before every row was rendered; the
//     partial grid is discarded.
//
// Complexity: O(W×H×maxIters) time, O(W×H) memory.
func Render[T any](
	ctx context.Context,
	vp Viewport,
	newT func(x, y float64) T,
	fn escape.Function[T],
	opts ...Option,
) (*Grid[T], error) {
	if fn == nil || newT == nil {
		return nil, fmt.Errorf("Render: %w", ErrNilFunction)
	}
	if vp.Width < 1 || vp.Height < 1 {
		return nil, fmt.Errorf("Render: %dx%d: %w", vp.Width, vp.Height, ErrEmptyGrid)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	workers := o.workers
	if workers > vp.Height {
		workers = vp.Height
	}

	g := &Grid[T]{
		Viewport: vp,
		MaxIters: fn.MaxIters(),
		Cells:    make([]escape.Result[T], vp.Len()),
	}

	start := time.Now()
	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				if ctx.Err() != nil {
					continue // drain
				}
				for col := 0; col < vp.Width; col++ {
					x, y := vp.At(col, row)
					g.Cells[vp.index(col, row)] = fn.Evaluate(newT(x, y))
				}
			}
		}()
	}

feed:
	for row := 0; row < vp.Height; row++ {
		select {
		case <-ctx.Done():
			break feed
		case rows <- row:
		}
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		o.logger.Debug("render cancelled", "width", vp.Width, "height", vp.Height, "err", err)

		return nil, err
	}
	o.logger.Debug("render done",
		"width", vp.Width,
		"height", vp.Height,
		"workers", workers,
		"escaped", g.EscapedCount(),
		"elapsed", time.Since(start),
	)

	return g, nil
}
