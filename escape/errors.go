// SPDX-License-Identifier: MIT
// Package: binum/escape
//
// errors.go — sentinel errors for the escape package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Build and NewNewton wrap them with method context via %w.
//   - Evaluation never fails: NaN and ±Inf are ordinary values there.

package escape

import (
	"errors"
	"fmt"
)

// ErrMissingStep indicates Build was called without Step (or Newton without
// a function and its derivative).
var ErrMissingStep = errors.New("escape: step function is required")

// ErrMissingMaxIters indicates Build was called without MaxIters.
var ErrMissingMaxIters = errors.New("escape: max iterations are required")

// ErrInvalidMaxIters indicates an iteration cap below 1.
var ErrInvalidMaxIters = errors.New("escape: max iterations must be >= 1")

// ErrMissingEscapeTest indicates that neither EscapeTest nor ContainmentTest
// was supplied.
var ErrMissingEscapeTest = errors.New("escape: escape or containment test is required")

// ErrInvalidFactor indicates a smoothing factor that is not finite and > 0.
var ErrInvalidFactor = errors.New("escape: smoothing factor must be finite and > 0")

// ErrInvalidTolerance indicates a Newton tolerance that is not finite and > 0.
var ErrInvalidTolerance = errors.New("escape: tolerance must be finite and > 0")

// Method names used as error prefixes.
const (
	methodBuild  = "Build"
	methodNewton = "NewNewton"
)

// wrapf prefixes err with the method name and a formatted detail, keeping
// err matchable with errors.Is.
func wrapf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
