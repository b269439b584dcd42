// Package binum is an algebra of binary numbers x + j·y and an escape-time
// iteration engine built on it.
//
// 🚀 What is binum?
//
// One generic contract, three number systems, one iteration engine:
//
//	complex numbers       j² = −1   IEEE-exact special values, stable log/sqrt/asin
//	dual numbers          j² =  0   first-order closed forms, automatic derivatives
//	split-complex numbers j² = +1   hyperbolic regions, null vectors
//	escape-time engine    z ← step(c, z) with escape tests and smoothing
//
// ✨ Why binum?
//
//   - Same code over every system – Pow, Tan, Mandelbrot, Newton are written once
//   - Numerically careful – Annex G multiply/divide, Friedland sqrt, Hull asin
//   - Immutable values – share freely between goroutines
//   - Explicit region mapping – log and pow stay single-valued off the complex plane
//
// Under the hood, everything is organized under these subpackages:
//
//	bnum/           — Number[T] contract, generic defaults, region mapping, bit equality
//	complexnum/     — Complex
//	dualnum/        — Dual
//	splitnum/       — SplitComplex and its plane classification
//	escape/         — Builder, DefaultFunction, Result, presets, Newton
//	plane/          — viewport sampling, parallel Render, ASCII output
//	cmd/escapetime/ — command-line renderer
//
// Quick ASCII example (Mandelbrot, 24×9 cells, 20 iterations, upper half):
//
//	...,,,,,,,,,::=#:,,,,...
//	..,,,,,,,::@=*@@*--:,,..
//	.,,,,::::-@@@@@@@@@-,,,.
//	,,,::-%@@*@@@@@@@@@+,,,,
//	@@@@@@@@@@@@@@@@@@=:,,,,
//
//	go get github.com/katalvlaran/binum
package binum
