// SPDX-License-Identifier: MIT
// Package bnum: sentinel errors.
//
// Error policy:
//   - Numerical edge cases (NaN, ±Inf, zero divisors) are values, never errors.
//   - Errors are reserved for construction-time misuse (argument validation).
//   - Callers match with errors.Is; implementations wrap with
//     fmt.Errorf("Method: detail: %w", ErrInvalidArgument).

package bnum

import "errors"

// ErrInvalidArgument indicates an argument outside the documented domain of an
// operation (e.g. a root count n < 1 or n > MaxRoots).
var ErrInvalidArgument = errors.New("bnum: invalid argument")
