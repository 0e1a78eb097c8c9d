// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sprite generates quad mesh geometry for two dimensional
// GUI elements. A [Sprite] caches its geometry partitioned into
// render elements, one per distinct material (materials cannot share
// a draw call), and fills caller-allocated vertex, UV, and index
// buffers on demand, with optional axis-aligned clipping and
// anchor-based positioning.
package sprite

import (
	"github.com/sprightkit/spright/math32"
)

// QuadVertices is the number of vertices per quad.
const QuadVertices = 4

// QuadIndices is the number of indices per quad (two triangles).
const QuadIndices = 6

// quadIndexOrder is the triangulation of one quad over its vertices
// in TL, TR, BR, BL order: triangles (0, 1, 2) and (0, 2, 3),
// counter-clockwise in a Y-down coordinate system.
var quadIndexOrder = [QuadIndices]uint32{0, 1, 2, 0, 2, 3}

// RenderElement contains the geometry of a single sprite render
// element: one draw call's worth of quads sharing one material.
// The vertex, UV, and index slices are views over buffers owned by
// the producing sprite; only the first NumQuads quads are valid.
type RenderElement struct {
	// Vertices holds 4 vertex positions per quad,
	// ordered TL, TR, BR, BL.
	Vertices []math32.Vector2

	// UVs holds the texture coordinate of each vertex.
	UVs []math32.Vector2

	// Indices holds 6 indices per quad; see [Sprite.FillBuffer]
	// for the triangulation convention.
	Indices []uint32

	// NumQuads is the number of valid quads in the buffers.
	NumQuads int

	// Material is the material used to render this element.
	Material MaterialInfo
}

// Sprite holds cached, material-partitioned quad geometry for a two
// dimensional GUI element, along with lazily recomputed bounds.
// Concrete producers such as [ImageSprite] rebuild the cached render
// elements; Sprite itself only serves geometry queries. Sprites are
// intended for single-threaded (render loop) use.
type Sprite struct {
	// elements is the cached geometry, one element per material.
	elements []RenderElement

	// bounds is the union of all element vertex extents in local
	// space, valid only when boundsDirty is false.
	bounds math32.Rect2

	// boundsDirty is set by geometry writes and consumed by [Sprite.Bounds].
	boundsDirty bool
}

// NumRenderElements returns the number of separate render elements
// in the sprite. Normally this is 1, but a sprite may consist of
// multiple materials, in which case each requires its own mesh.
func (s *Sprite) NumRenderElements() int {
	return len(s.elements)
}

// MaterialInfo returns the material for the given render element
// index. The index must be less than [Sprite.NumRenderElements];
// an out-of-range index is a programmer error and panics.
func (s *Sprite) MaterialInfo(elementIdx int) *MaterialInfo {
	return &s.elements[elementIdx].Material
}

// NumQuads returns the number of quads in the given render element,
// needed to size buffers before calling [Sprite.FillBuffer]:
// the vertex and UV buffers need 4 entries per quad, and the index
// buffer needs 6. The index must be less than
// [Sprite.NumRenderElements]; an out-of-range index panics.
func (s *Sprite) NumQuads(elementIdx int) int {
	return s.elements[elementIdx].NumQuads
}

// RenderElements returns the cached render elements as a read-only view.
func (s *Sprite) RenderElements() []RenderElement {
	return s.elements
}

// SetRenderElements replaces the cached render elements with the
// given ones and marks the bounds for recomputation. This is the
// write path used by geometry producers.
func (s *Sprite) SetRenderElements(elems []RenderElement) {
	s.elements = elems
	s.boundsDirty = true
}

// Clear drops all cached render elements.
func (s *Sprite) Clear() {
	s.SetRenderElements(nil)
}

// Bounds returns the bounds of the sprite: the union of all render
// element vertex extents. If clipRect is not degenerate (see
// [math32.Rect2.IsZero]), the bounds are first clipped against it in
// local (pre-offset) space; the result is then translated by offset.
// Bounds are cached and recomputed only after a geometry write.
func (s *Sprite) Bounds(offset math32.Vector2, clipRect math32.Rect2) math32.Rect2 {
	if s.boundsDirty {
		s.updateBounds()
	}
	b := s.bounds
	if !clipRect.IsZero() {
		b = b.Clip(clipRect)
	}
	return b.Translate(offset)
}

// updateBounds recomputes the cached bounds from the vertices of all
// cached render elements.
func (s *Sprite) updateBounds() {
	min := math32.Vector2Scalar(math32.Infinity)
	max := math32.Vector2Scalar(-math32.Infinity)
	has := false
	for ei := range s.elements {
		elem := &s.elements[ei]
		nv := elem.NumQuads * QuadVertices
		for _, v := range elem.Vertices[:nv] {
			min.SetMin(v)
			max.SetMax(v)
			has = true
		}
	}
	if !has {
		s.bounds = math32.Rect2{}
	} else {
		s.bounds = math32.Rect2FromMinMax(min, max)
	}
	s.boundsDirty = false
}

// FillBuffer writes quads [startingQuad, startingQuad+n) of the given
// render element into the pre-allocated caller buffers, returning n,
// the number of quads written. n is the number of quads remaining in
// the element from startingQuad, clamped to maxNumQuads: regardless
// of how many quads the element holds, no more than maxNumQuads are
// ever written (the buffers must have been allocated for at least
// that many). FillBuffer never allocates.
//
// Vertex positions and UVs are written as two native-order float32
// each, at multiples of vertexStride bytes from the start of their
// buffers; indices are written as native-order uint32 at multiples of
// indexStride bytes, 6 per quad. Strides are in bytes so interleaved
// vertex formats can be filled in place. Indices are rebased so the
// first written quad's vertices are numbered from 0; each quad's two
// triangles are (0, 1, 2) and (0, 2, 3) over its vertices in TL, TR,
// BR, BL order, counter-clockwise with Y down.
//
// If clip is true and clipRect is not degenerate, each quad is
// clipped against clipRect in local space before offset is applied;
// see [ClipQuadToRect]. An out-of-range elementIdx panics.
func (s *Sprite) FillBuffer(vertices, uvs, indices []byte,
	startingQuad, maxNumQuads, vertexStride, indexStride int,
	elementIdx int, offset math32.Vector2, clipRect math32.Rect2, clip bool) int {
	elem := &s.elements[elementIdx]

	n := min(maxNumQuads, elem.NumQuads-startingQuad)
	if n <= 0 {
		return 0
	}
	doClip := clip && !clipRect.IsZero()

	var quadVerts, quadUVs [QuadVertices]math32.Vector2
	for i := 0; i < n; i++ {
		src := (startingQuad + i) * QuadVertices
		copy(quadVerts[:], elem.Vertices[src:src+QuadVertices])
		copy(quadUVs[:], elem.UVs[src:src+QuadVertices])

		if doClip {
			ClipQuadToRect(&quadVerts, &quadUVs, clipRect)
		}

		for j := 0; j < QuadVertices; j++ {
			vi := i*QuadVertices + j
			PutVector2(vertices, vi*vertexStride, quadVerts[j].Add(offset))
			PutVector2(uvs, vi*vertexStride, quadUVs[j])
		}

		base := uint32(i * QuadVertices)
		for k, ord := range quadIndexOrder {
			PutIndex(indices, (i*QuadIndices+k)*indexStride, base+ord)
		}
	}
	return n
}
