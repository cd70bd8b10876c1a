// Copyright 2025 The Terasology Foundation
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineSegment(t *testing.T) {
	assert.Equal(t, LineSegment{}, NewLineSegment(Vector3{}, Vector3{}))

	l := Seg(1, 2, 3, 4, 5, 6)
	assert.Equal(t, Vec3(1, 2, 3), l.A)
	assert.Equal(t, Vec3(4, 5, 6), l.B)

	m := LineSegment{}
	m.Set(Vec3(1, 2, 3), Vec3(4, 5, 6))
	assert.Equal(t, l, m)
}

// Copying is struct assignment; every field must land in its own slot.
// A.X != B.X here so any crossed endpoint assignment would be caught.
func TestLineSegmentCopy(t *testing.T) {
	src := Seg(1, 2, 3, 4, 5, 6)
	dup := src

	assert.Equal(t, float32(1), dup.A.X)
	assert.Equal(t, float32(2), dup.A.Y)
	assert.Equal(t, float32(3), dup.A.Z)
	assert.Equal(t, float32(4), dup.B.X)
	assert.Equal(t, float32(5), dup.B.Y)
	assert.Equal(t, float32(6), dup.B.Z)
	assert.True(t, dup.Equals(src))
}

func TestLineSegmentDerived(t *testing.T) {
	st := Vec3(6, 12, 9)
	ed := Vec3(12, 24, 15)
	l := NewLineSegment(st, ed)
	ctr := l.Center()

	tolAssertEqualVector3(t, Vec3(9, 18, 12), ctr)
	tolAssertEqualVector3(t, Vec3(6, 12, 6), l.Delta())
	tolAssertEqual(t, standardTol, 216, l.LengthSquared())
	tolAssertEqual(t, standardTol, Sqrt(216), l.Length())

	tolAssertEqualVector3(t, st, l.ClosestPointToPoint(st))
	tolAssertEqualVector3(t, ed, l.ClosestPointToPoint(ed))
	tolAssertEqualVector3(t, ctr, l.ClosestPointToPoint(ctr))
	tolAssertEqualVector3(t, st, l.ClosestPointToPoint(st.Sub(Vec3(2, 2, 2))))
	tolAssertEqualVector3(t, ed, l.ClosestPointToPoint(ed.Add(Vec3(2, 2, 2))))
}

func TestLineSegmentEquals(t *testing.T) {
	a := Seg(1, 2, 3, 4, 5, 6)
	b := Seg(1, 2, 3, 4, 5, 6)
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.False(t, a.Equals(Seg(1, 2, 3, 4, 5, 7)))

	// NaN fields compare equal to themselves under bit-pattern equality,
	// where == says the opposite.
	nan := float32(math.NaN())
	n1 := Seg(nan, 0, 0, 1, 1, 1)
	n2 := Seg(nan, 0, 0, 1, 1, 1)
	assert.True(t, n1.Equals(n2))
	assert.False(t, n1 == n2)

	// +0 and -0 are distinct bit patterns but numerically equal.
	negZero := float32(math.Copysign(0, -1))
	z1 := Seg(0, 0, 0, 1, 1, 1)
	z2 := Seg(negZero, 0, 0, 1, 1, 1)
	assert.True(t, z1 == z2)
	assert.False(t, z1.Equals(z2))
}

func TestLineSegmentHash(t *testing.T) {
	assert.Equal(t, uint32(887503681), LineSegment{}.Hash())
	assert.Equal(t, uint32(4056300353), Seg(1, 2, 3, 4, 5, 6).Hash())

	a := Seg(1, 2, 3, 4, 5, 6)
	b := Seg(1, 2, 3, 4, 5, 6)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash64(), b.Hash64())
	assert.NotEqual(t, a.Hash64(), Seg(6, 5, 4, 3, 2, 1).Hash64())
}

func TestLineSegmentString(t *testing.T) {
	s := Seg(0, 0, 0, 1, 1, 1).String()
	assert.True(t, strings.HasPrefix(s, "(0"))
	assert.Contains(t, s, ") - (")
	assert.Equal(t, "(0.000E0 0.000E0 0.000E0) - (1.000E0 1.000E0 1.000E0)", s)

	got := Seg(1, 2, 3, 4, 5, 6).StringWith(func(v float32) string {
		return fmt.Sprintf("%g", v)
	})
	assert.Equal(t, "(1 2 3) - (4 5 6)", got)
}

func TestLineSegmentBinary(t *testing.T) {
	l := Seg(1, 2, 3, 4, 5, 6)
	data, err := l.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, data, LineSegmentSize)

	got := LineSegment{}
	assert.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, l, got)

	// NaN and -0 round-trip bit-exactly.
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	w := Seg(nan, negZero, 0, 1, 1, 1)
	data, err = w.MarshalBinary()
	assert.NoError(t, err)
	back := LineSegment{}
	assert.NoError(t, back.UnmarshalBinary(data))
	assert.True(t, w.Equals(back))

	// Truncated input is an error and leaves the receiver unchanged.
	prev := got
	assert.Error(t, got.UnmarshalBinary(data[:10]))
	assert.Equal(t, prev, got)
	assert.Error(t, got.UnmarshalBinary(nil))
}

func TestLineSegmentSlice(t *testing.T) {
	arr := make([]float32, 8)
	Seg(1, 2, 3, 4, 5, 6).ToSlice(arr, 1)
	assert.Equal(t, []float32{0, 1, 2, 3, 4, 5, 6, 0}, arr)

	l := LineSegment{}
	l.FromSlice(arr, 1)
	assert.Equal(t, Seg(1, 2, 3, 4, 5, 6), l)
}
