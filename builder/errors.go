// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with "%s: ...: %w" (method tag first).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, partition)
// below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic step without an RNG
// (RandomSparse with 0<p<1, or WithShuffle, without WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph could not run at all
// (no constructors, or a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
