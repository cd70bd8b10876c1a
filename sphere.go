// Copyright 2025 The Terasology Foundation
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sphere represents a 3D sphere defined by its center point and radius.
// The zero value is a sphere of radius 0 at the origin. The radius is
// not validated: negative and zero radii are accepted.
type Sphere struct {
	Center Vector3
	Radius float32
}

// SphereSize is the encoded size of a Sphere in bytes:
// four consecutive little-endian float32s.
const SphereSize = 16

// NewSphere creates and returns a new Sphere with the specified
// center and radius.
func NewSphere(center Vector3, radius float32) Sphere {
	return Sphere{center, radius}
}

// Sph returns a new [Sphere] with center (x, y, z) and radius r.
func Sph(x, y, z, r float32) Sphere {
	return Sphere{Vec3(x, y, z), r}
}

// Set sets this sphere's center and radius.
func (s *Sphere) Set(center Vector3, radius float32) {
	s.Center = center
	s.Radius = radius
}

// Translate returns a new sphere with the given offset added to the
// center. The radius is unchanged. The receiver is not modified.
func (s Sphere) Translate(offset Vector3) Sphere {
	return Sphere{s.Center.Add(offset), s.Radius}
}

// SetTranslate adds the given offset to the center in place,
// leaving the radius unchanged. Equivalent to s = s.Translate(offset).
func (s *Sphere) SetTranslate(offset Vector3) {
	s.Center.SetAdd(offset)
}

// Equals reports whether this sphere and other have bit-identical
// fields. Unlike ==, NaN components compare equal to themselves and
// +0 is distinct from -0.
func (s Sphere) Equals(other Sphere) bool {
	return math.Float32bits(s.Radius) == math.Float32bits(other.Radius) &&
		math.Float32bits(s.Center.X) == math.Float32bits(other.Center.X) &&
		math.Float32bits(s.Center.Y) == math.Float32bits(other.Center.Y) &&
		math.Float32bits(s.Center.Z) == math.Float32bits(other.Center.Z)
}

// Hash returns a 32-bit hash of the sphere, mixing the bit patterns of
// Radius, Center.X, Center.Y, Center.Z in that order with multiplier 31.
// The radius is mixed first; the order is fixed so hash values are
// reproducible across implementations. Equal spheres (per
// [Sphere.Equals]) hash equally.
func (s Sphere) Hash() uint32 {
	const prime = 31
	h := uint32(1)
	h = prime*h + math.Float32bits(s.Radius)
	h = prime*h + math.Float32bits(s.Center.X)
	h = prime*h + math.Float32bits(s.Center.Y)
	h = prime*h + math.Float32bits(s.Center.Z)
	return h
}

// Hash64 returns the xxhash of the sphere's binary encoding.
func (s Sphere) Hash64() uint64 {
	var b [SphereSize]byte
	s.encode(b[:])
	return xxhash.Sum64(b[:])
}

// String returns a string representation of this sphere in the form
// "[x y z r]", using [FormatScientific] for each component.
func (s Sphere) String() string {
	return s.StringWith(FormatScientific)
}

// StringWith returns a string representation of this sphere, formatting
// each component with the given formatter.
func (s Sphere) StringWith(f FloatFormatter) string {
	return "[" + f(s.Center.X) + " " + f(s.Center.Y) + " " + f(s.Center.Z) +
		" " + f(s.Radius) + "]"
}

func (s Sphere) encode(b []byte) {
	putFloat32(b[0:], s.Center.X)
	putFloat32(b[4:], s.Center.Y)
	putFloat32(b[8:], s.Center.Z)
	putFloat32(b[12:], s.Radius)
}

// MarshalBinary encodes the sphere as four consecutive little-endian
// float32s in the order Center.X, Center.Y, Center.Z, Radius (16 bytes).
func (s Sphere) MarshalBinary() ([]byte, error) {
	b := make([]byte, SphereSize)
	s.encode(b)
	return b, nil
}

// UnmarshalBinary decodes the sphere from the wire form produced by
// [Sphere.MarshalBinary]. data must be exactly [SphereSize] bytes;
// on error the receiver is left unchanged.
func (s *Sphere) UnmarshalBinary(data []byte) error {
	if len(data) != SphereSize {
		return errDecodeSize("Sphere", len(data), SphereSize)
	}
	s.Center.X = getFloat32(data[0:])
	s.Center.Y = getFloat32(data[4:])
	s.Center.Z = getFloat32(data[8:])
	s.Radius = getFloat32(data[12:])
	return nil
}

// FromSlice sets this sphere's components from the given slice,
// starting at offset, in wire field order.
func (s *Sphere) FromSlice(array []float32, offset int) {
	s.Center.FromSlice(array, offset)
	s.Radius = array[offset+3]
}

// ToSlice copies this sphere's components to the given slice,
// starting at offset, in wire field order.
func (s Sphere) ToSlice(array []float32, offset int) {
	s.Center.ToSlice(array, offset)
	array[offset+3] = s.Radius
}
