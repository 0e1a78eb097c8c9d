// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"encoding/binary"
	"math"

	"github.com/sprightkit/spright/math32"
)

// Geometry buffers are raw bytes bound for GPU upload, written in
// native byte order with caller-specified strides so that interleaved
// custom vertex formats can be filled directly.

// Vector2Size is the number of bytes of one encoded [math32.Vector2]:
// two float32 components. Vertex and UV strides must be at least this.
const Vector2Size = 8

// IndexSize is the number of bytes of one encoded index.
// Index strides must be at least this.
const IndexSize = 4

// PutVector2 encodes the given vector at the given byte offset of buf.
func PutVector2(buf []byte, offset int, v math32.Vector2) {
	binary.NativeEndian.PutUint32(buf[offset:], math.Float32bits(v.X))
	binary.NativeEndian.PutUint32(buf[offset+4:], math.Float32bits(v.Y))
}

// GetVector2 decodes a vector from the given byte offset of buf.
func GetVector2(buf []byte, offset int) math32.Vector2 {
	return math32.Vec2(
		math.Float32frombits(binary.NativeEndian.Uint32(buf[offset:])),
		math.Float32frombits(binary.NativeEndian.Uint32(buf[offset+4:])))
}

// PutIndex encodes the given index at the given byte offset of buf.
func PutIndex(buf []byte, offset int, idx uint32) {
	binary.NativeEndian.PutUint32(buf[offset:], idx)
}

// GetIndex decodes an index from the given byte offset of buf.
func GetIndex(buf []byte, offset int) uint32 {
	return binary.NativeEndian.Uint32(buf[offset:])
}
