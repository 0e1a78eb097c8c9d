// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"github.com/sprightkit/spright/math32"
)

// Quad vertices are ordered TL, TR, BR, BL: an X clamp of a vertex
// interpolates UVs toward its row partner (the other vertex at the
// same Y), a Y clamp toward its column partner.
var (
	rowPartner = [QuadVertices]int{1, 0, 3, 2}
	colPartner = [QuadVertices]int{3, 2, 1, 0}
)

// ClipQuadToRect clips one axis-aligned quad, with vertices ordered
// TL, TR, BR, BL, to the given rectangle, in place. Vertex positions
// are clamped to the rectangle and the UVs are linearly interpolated
// at each boundary crossing, so the quad remains a quad: no polygon
// growth, at most 4 corners. A quad entirely inside is unchanged;
// a quad entirely outside collapses to a zero-area quad on the
// nearest edge, keeping its slot so downstream vertex and index
// counts stay stable.
func ClipQuadToRect(verts, uvs *[QuadVertices]math32.Vector2, clip math32.Rect2) {
	left, top := clip.X, clip.Y
	right, bottom := clip.X+clip.Width, clip.Y+clip.Height

	orig := *verts
	origUV := *uvs

	for i := 0; i < QuadVertices; i++ {
		nx := math32.Clamp(orig[i].X, left, right)
		if nx != orig[i].X {
			rp := rowPartner[i]
			if dx := orig[rp].X - orig[i].X; dx != 0 {
				t := (nx - orig[i].X) / dx
				uvs[i].X = origUV[i].X + t*(origUV[rp].X-origUV[i].X)
			}
			verts[i].X = nx
		}

		ny := math32.Clamp(orig[i].Y, top, bottom)
		if ny != orig[i].Y {
			cp := colPartner[i]
			if dy := orig[cp].Y - orig[i].Y; dy != 0 {
				t := (ny - orig[i].Y) / dy
				uvs[i].Y = origUV[i].Y + t*(origUV[cp].Y-origUV[i].Y)
			}
			verts[i].Y = ny
		}
	}
}

// ClipQuadsToRect clips numQuads quads stored consecutively in the
// given vertex and UV slices (4 entries per quad) to the given
// rectangle, in place.
func ClipQuadsToRect(verts, uvs []math32.Vector2, numQuads int, clip math32.Rect2) {
	var qv, quv [QuadVertices]math32.Vector2
	for q := 0; q < numQuads; q++ {
		off := q * QuadVertices
		copy(qv[:], verts[off:off+QuadVertices])
		copy(quv[:], uvs[off:off+QuadVertices])
		ClipQuadToRect(&qv, &quv, clip)
		copy(verts[off:off+QuadVertices], qv[:])
		copy(uvs[off:off+QuadVertices], quv[:])
	}
}
