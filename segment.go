// Copyright 2025 The Terasology Foundation
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// LineSegment represents an undirected 3D line segment defined by the
// endpoints A and B. The zero value is a zero-length segment at the
// origin; zero-length segments (A == B) are valid.
//
// LineSegment is a plain value type: copying is struct assignment,
// which copies all six fields faithfully. There is deliberately no
// copy constructor that could misassign endpoint fields.
type LineSegment struct {
	A Vector3
	B Vector3
}

// LineSegmentSize is the encoded size of a LineSegment in bytes:
// six consecutive little-endian float32s.
const LineSegmentSize = 24

// NewLineSegment creates and returns a new LineSegment with the
// specified endpoints.
func NewLineSegment(a, b Vector3) LineSegment {
	return LineSegment{a, b}
}

// Seg returns a new [LineSegment] from the given endpoint coordinates.
func Seg(ax, ay, az, bx, by, bz float32) LineSegment {
	return LineSegment{Vec3(ax, ay, az), Vec3(bx, by, bz)}
}

// Set sets this line segment's endpoints.
func (l *LineSegment) Set(a, b Vector3) {
	l.A = a
	l.B = b
}

// Center calculates this line segment center point.
func (l LineSegment) Center() Vector3 {
	return l.A.Add(l.B).MulScalar(0.5)
}

// Delta calculates the vector from the A to the B endpoint of this line segment.
func (l LineSegment) Delta() Vector3 {
	return l.B.Sub(l.A)
}

// LengthSquared returns the square of the distance between the endpoints.
func (l LineSegment) LengthSquared() float32 {
	return l.A.DistanceToSquared(l.B)
}

// Length returns the distance between the endpoints.
func (l LineSegment) Length() float32 {
	return l.A.DistanceTo(l.B)
}

// ClosestPointToPoint returns the point along the segment that is
// closest to the given point.
func (l LineSegment) ClosestPointToPoint(point Vector3) Vector3 {
	v := l.Delta()
	u := point.Sub(l.A)
	vu := v.Dot(u)
	ds := v.LengthSquared()
	t := vu / ds
	switch {
	case t <= 0:
		return l.A
	case t >= 1:
		return l.B
	default:
		return l.A.Add(v.MulScalar(t))
	}
}

// Equals reports whether this segment and other have bit-identical
// fields. Unlike ==, NaN components compare equal to themselves and
// +0 is distinct from -0.
func (l LineSegment) Equals(other LineSegment) bool {
	return math.Float32bits(l.A.X) == math.Float32bits(other.A.X) &&
		math.Float32bits(l.A.Y) == math.Float32bits(other.A.Y) &&
		math.Float32bits(l.A.Z) == math.Float32bits(other.A.Z) &&
		math.Float32bits(l.B.X) == math.Float32bits(other.B.X) &&
		math.Float32bits(l.B.Y) == math.Float32bits(other.B.Y) &&
		math.Float32bits(l.B.Z) == math.Float32bits(other.B.Z)
}

// Hash returns a 32-bit hash of the segment, mixing the bit patterns
// of A.X, A.Y, A.Z, B.X, B.Y, B.Z in that order with multiplier 31.
// The field order is fixed so hash values are reproducible across
// implementations. Equal segments (per [LineSegment.Equals]) hash equally.
func (l LineSegment) Hash() uint32 {
	const prime = 31
	h := uint32(1)
	h = prime*h + math.Float32bits(l.A.X)
	h = prime*h + math.Float32bits(l.A.Y)
	h = prime*h + math.Float32bits(l.A.Z)
	h = prime*h + math.Float32bits(l.B.X)
	h = prime*h + math.Float32bits(l.B.Y)
	h = prime*h + math.Float32bits(l.B.Z)
	return h
}

// Hash64 returns the xxhash of the segment's binary encoding.
func (l LineSegment) Hash64() uint64 {
	var b [LineSegmentSize]byte
	l.encode(b[:])
	return xxhash.Sum64(b[:])
}

// String returns a string representation of this segment in the form
// "(aX aY aZ) - (bX bY bZ)", using [FormatScientific] for each component.
func (l LineSegment) String() string {
	return l.StringWith(FormatScientific)
}

// StringWith returns a string representation of this segment, formatting
// each component with the given formatter.
func (l LineSegment) StringWith(f FloatFormatter) string {
	return "(" + f(l.A.X) + " " + f(l.A.Y) + " " + f(l.A.Z) + ") - (" +
		f(l.B.X) + " " + f(l.B.Y) + " " + f(l.B.Z) + ")"
}

func (l LineSegment) encode(b []byte) {
	putFloat32(b[0:], l.A.X)
	putFloat32(b[4:], l.A.Y)
	putFloat32(b[8:], l.A.Z)
	putFloat32(b[12:], l.B.X)
	putFloat32(b[16:], l.B.Y)
	putFloat32(b[20:], l.B.Z)
}

// MarshalBinary encodes the segment as six consecutive little-endian
// float32s in the order A.X, A.Y, A.Z, B.X, B.Y, B.Z (24 bytes).
func (l LineSegment) MarshalBinary() ([]byte, error) {
	b := make([]byte, LineSegmentSize)
	l.encode(b)
	return b, nil
}

// UnmarshalBinary decodes the segment from the wire form produced by
// [LineSegment.MarshalBinary]. data must be exactly [LineSegmentSize]
// bytes; on error the receiver is left unchanged.
func (l *LineSegment) UnmarshalBinary(data []byte) error {
	if len(data) != LineSegmentSize {
		return errDecodeSize("LineSegment", len(data), LineSegmentSize)
	}
	l.A.X = getFloat32(data[0:])
	l.A.Y = getFloat32(data[4:])
	l.A.Z = getFloat32(data[8:])
	l.B.X = getFloat32(data[12:])
	l.B.Y = getFloat32(data[16:])
	l.B.Z = getFloat32(data[20:])
	return nil
}

// FromSlice sets this segment's components from the given slice,
// starting at offset, in wire field order.
func (l *LineSegment) FromSlice(array []float32, offset int) {
	l.A.FromSlice(array, offset)
	l.B.FromSlice(array, offset+3)
}

// ToSlice copies this segment's components to the given slice,
// starting at offset, in wire field order.
func (l LineSegment) ToSlice(array []float32, offset int) {
	l.A.ToSlice(array, offset)
	l.B.ToSlice(array, offset+3)
}
