// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; generators attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the generator's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidWeightRange indicates lo > hi in a weight range.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")
