// Copyright 2025 The Terasology Foundation
// SPDX-License-Identifier: Apache-2.0

// Package primitives provides float32 based geometric shape value types
// for 3D graphics and simulation: vectors, line segments, and spheres.
// All types are plain value structs with exported fields, compared by
// structural equality and copied by assignment.
package primitives

import (
	"github.com/chewxy/math32"
)

// These are thin wrappers around chewxy/math32, which has
// some optimized implementations.

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}
