// Copyright 2025 The Terasology Foundation
// SPDX-License-Identifier: Apache-2.0

package primitives

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Binary wire helpers shared by the shape types. Every encoding is a
// fixed run of little-endian float32s with no length prefix and no
// versioning; the type and field order alone define the layout.

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// errDecodeSize reports a truncated or oversized encoding. Decoding
// never writes partial fields: the receiver is untouched on error.
func errDecodeSize(typ string, have, want int) error {
	return fmt.Errorf("primitives: decoding %s: have %d bytes, want %d", typ, have, want)
}
