// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"testing"

	"github.com/sprightkit/spright/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeQuadsElement returns a render element with numQuads unit-UV
// 10x10 quads, quad q positioned at x = q*10.
func makeQuadsElement(numQuads int, mat MaterialInfo) RenderElement {
	elem := RenderElement{NumQuads: numQuads, Material: mat}
	for q := 0; q < numQuads; q++ {
		x := float32(q * 10)
		elem.Vertices = append(elem.Vertices,
			math32.Vec2(x, 0), math32.Vec2(x+10, 0),
			math32.Vec2(x+10, 10), math32.Vec2(x, 10))
		elem.UVs = append(elem.UVs,
			math32.Vec2(0, 0), math32.Vec2(1, 0),
			math32.Vec2(1, 1), math32.Vec2(0, 1))
		base := uint32(q * QuadVertices)
		for _, ord := range quadIndexOrder {
			elem.Indices = append(elem.Indices, base+ord)
		}
	}
	return elem
}

func makeQuadsSprite(numQuads int) *Sprite {
	s := &Sprite{}
	s.SetRenderElements([]RenderElement{makeQuadsElement(numQuads, MaterialInfo{Type: Image})})
	return s
}

func TestSpriteAccessors(t *testing.T) {
	s := makeQuadsSprite(3)
	assert.Equal(t, 1, s.NumRenderElements())
	assert.Equal(t, 3, s.NumQuads(0))
	assert.Equal(t, Image, s.MaterialInfo(0).Type)
	assert.Len(t, s.RenderElements(), 1)

	// out-of-range render element indices are programmer error
	assert.Panics(t, func() { s.MaterialInfo(1) })
	assert.Panics(t, func() { s.NumQuads(-1) })

	s.Clear()
	assert.Equal(t, 0, s.NumRenderElements())
}

func TestSpriteBounds(t *testing.T) {
	s := &Sprite{}
	assert.Equal(t, math32.Rect2{}, s.Bounds(math32.Vector2{}, math32.Rect2{}))

	s.SetRenderElements([]RenderElement{
		makeQuadsElement(2, MaterialInfo{Type: Image}),
		makeQuadsElement(1, MaterialInfo{Type: ImageAlpha, GroupID: 1}),
	})
	assert.Equal(t, 2, s.NumRenderElements())
	assert.Equal(t, math32.R2(0, 0, 20, 10), s.Bounds(math32.Vector2{}, math32.Rect2{}))

	// offset is added to the returned bounds
	assert.Equal(t, math32.R2(3, -4, 20, 10), s.Bounds(math32.Vec2(3, -4), math32.Rect2{}))

	// a non-degenerate clip rect clips in local space, before offset
	assert.Equal(t, math32.R2(10, 5, 10, 5), s.Bounds(math32.Vec2(5, 0), math32.R2(5, 5, 10, 10)))

	// a degenerate clip rect means no clipping
	assert.Equal(t, math32.R2(0, 0, 20, 10), s.Bounds(math32.Vector2{}, math32.R2(5, 5, 0, 10)))

	// geometry writes invalidate the cached bounds
	s.SetRenderElements([]RenderElement{makeQuadsElement(5, MaterialInfo{})})
	assert.Equal(t, math32.R2(0, 0, 50, 10), s.Bounds(math32.Vector2{}, math32.Rect2{}))
}

func TestFillBufferWindow(t *testing.T) {
	s := makeQuadsSprite(10)

	const numQuads = 3
	const vertexStride, indexStride = Vector2Size, IndexSize
	vertices := make([]byte, numQuads*QuadVertices*vertexStride)
	uvs := make([]byte, numQuads*QuadVertices*vertexStride)
	indices := make([]byte, numQuads*QuadIndices*indexStride)

	// 10 quads, starting at 5 with room for 3: writes quads 5, 6, 7
	n := s.FillBuffer(vertices, uvs, indices, 5, numQuads, vertexStride, indexStride,
		0, math32.Vector2{}, math32.Rect2{}, false)
	require.Equal(t, 3, n)

	assert.Equal(t, math32.Vec2(50, 0), GetVector2(vertices, 0))
	assert.Equal(t, math32.Vec2(70, 0), GetVector2(vertices, 2*QuadVertices*vertexStride))
	assert.Equal(t, math32.Vec2(70, 10), GetVector2(vertices, (2*QuadVertices+3)*vertexStride))
	assert.Equal(t, math32.Vec2(0, 0), GetVector2(uvs, 0))
	assert.Equal(t, math32.Vec2(1, 1), GetVector2(uvs, 2*vertexStride))

	// indices are rebased to the written window
	assert.Equal(t, uint32(0), GetIndex(indices, 0))
	assert.Equal(t, uint32(8), GetIndex(indices, 2*QuadIndices*indexStride))
	assert.Equal(t, uint32(11), GetIndex(indices, (2*QuadIndices+5)*indexStride))

	// the full triangulation of the first quad
	var tri [QuadIndices]uint32
	for k := range tri {
		tri[k] = GetIndex(indices, k*indexStride)
	}
	assert.Equal(t, [QuadIndices]uint32{0, 1, 2, 0, 2, 3}, tri)

	// starting past the end or with no room writes nothing
	assert.Equal(t, 0, s.FillBuffer(vertices, uvs, indices, 10, numQuads, vertexStride, indexStride,
		0, math32.Vector2{}, math32.Rect2{}, false))
	assert.Equal(t, 0, s.FillBuffer(vertices, uvs, indices, 0, 0, vertexStride, indexStride,
		0, math32.Vector2{}, math32.Rect2{}, false))

	// the remainder shorter than maxNumQuads is clamped to what exists
	assert.Equal(t, 2, s.FillBuffer(vertices, uvs, indices, 8, numQuads, vertexStride, indexStride,
		0, math32.Vector2{}, math32.Rect2{}, false))
}

func TestFillBufferOffsetAndClip(t *testing.T) {
	s := makeQuadsSprite(1)

	const vertexStride, indexStride = Vector2Size, IndexSize
	vertices := make([]byte, QuadVertices*vertexStride)
	uvs := make([]byte, QuadVertices*vertexStride)
	indices := make([]byte, QuadIndices*indexStride)

	// clipping is applied in local space, before the offset
	clipRect := math32.R2(2, 0, 18, 10)
	n := s.FillBuffer(vertices, uvs, indices, 0, 1, vertexStride, indexStride,
		0, math32.Vec2(100, 0), clipRect, true)
	require.Equal(t, 1, n)

	assert.Equal(t, math32.Vec2(102, 0), GetVector2(vertices, 0))               // TL clipped then offset
	assert.Equal(t, math32.Vec2(110, 0), GetVector2(vertices, vertexStride))    // TR untouched
	assert.Equal(t, math32.Vec2(102, 10), GetVector2(vertices, 3*vertexStride)) // BL clipped
	assert.Equal(t, math32.Vec2(0.2, 0), GetVector2(uvs, 0))                    // u interpolated at the crossing
	assert.Equal(t, math32.Vec2(1, 0), GetVector2(uvs, vertexStride))

	// clip=false ignores the clip rect entirely
	n = s.FillBuffer(vertices, uvs, indices, 0, 1, vertexStride, indexStride,
		0, math32.Vector2{}, clipRect, false)
	require.Equal(t, 1, n)
	assert.Equal(t, math32.Vec2(0, 0), GetVector2(vertices, 0))
	assert.Equal(t, math32.Vec2(0, 0), GetVector2(uvs, 0))
}

func TestFillBufferInterleaved(t *testing.T) {
	s := makeQuadsSprite(1)

	// interleaved format: position at +0 and uv at +8 of a 16 byte vertex
	const stride = 2 * Vector2Size
	buf := make([]byte, QuadVertices*stride)
	indices := make([]byte, QuadIndices*IndexSize)

	n := s.FillBuffer(buf, buf[Vector2Size:], indices, 0, 1, stride, IndexSize,
		0, math32.Vector2{}, math32.Rect2{}, false)
	require.Equal(t, 1, n)

	for j := 0; j < QuadVertices; j++ {
		pos := GetVector2(buf, j*stride)
		uv := GetVector2(buf, j*stride+Vector2Size)
		assert.Equal(t, pos.X/10, uv.X, "vertex %d", j)
		assert.Equal(t, pos.Y/10, uv.Y, "vertex %d", j)
	}
}
