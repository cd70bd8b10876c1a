// Copyright 2025 The Terasology Foundation
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"math"
	"strconv"
	"strings"
)

// FloatFormatter renders a single float32 component for the String
// methods of the shape types. Callers may pass their own to StringWith;
// [FormatScientific] is the default used by String.
type FloatFormatter func(v float32) string

// FormatScientific formats v in fixed-precision normalized scientific
// notation with a three-digit mantissa and a bare decimal exponent,
// e.g. 1 -> "1.000E0", -0.5 -> "-5.000E-1", 11 -> "1.100E1".
// Zero formats as "0.000E0". NaN and infinities are rendered as-is.
func FormatScientific(v float32) string {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 32)
	}
	if f == 0 {
		return "0.000E0"
	}
	s := strconv.FormatFloat(f, 'e', 3, 32)
	i := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	return s[:i] + "E" + strconv.Itoa(exp)
}
