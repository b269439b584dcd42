// Package plane samples a rectangular region of the number plane and
// renders escape-time results over it.
//
// What:
//
//   - Viewport maps integer cells (col,row) to plane coordinates (x,y);
//     row 0 is the top edge (MaxY), cells are sampled at their centres.
//   - Render evaluates an escape.Function over every cell with a pool of
//     row workers, honouring context cancellation between rows.
//   - Grid holds the results with helpers for counting, ASCII shading and
//     finding connected regions of contained cells.
//
// Complexity:
//
//   - Render:     O(W×H×maxIters), Memory: O(W×H).
//   - Components: O(W×H×d), Memory: O(W×H) (d = 4 or 8 neighbours).
//   - ASCII:      O(W×H).
//
// Options:
//
//   - WithWorkers(n): number of row workers (default GOMAXPROCS).
//   - WithLogger(l):  *slog.Logger for a debug summary (default discards).
//
// Errors:
//
//   - ErrEmptyGrid:    width or height below 1.
//   - ErrBadBounds:    non-finite bounds or Min ≥ Max.
//   - ErrNilFunction:  Render without a function or value constructor.
//   - ctx.Err():       Render cancelled before completion.
package plane
