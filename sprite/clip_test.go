// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"testing"

	"github.com/sprightkit/spright/math32"
	"github.com/stretchr/testify/assert"
)

// unitQuad returns a quad spanning the given rect with UVs (0,0)-(1,1),
// vertices ordered TL, TR, BR, BL.
func unitQuad(r math32.Rect2) (verts, uvs [QuadVertices]math32.Vector2) {
	verts = [QuadVertices]math32.Vector2{
		{X: r.X, Y: r.Y}, {X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height}, {X: r.X, Y: r.Y + r.Height},
	}
	uvs = [QuadVertices]math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	return
}

func quadArea(verts [QuadVertices]math32.Vector2) float32 {
	return (verts[1].X - verts[0].X) * (verts[3].Y - verts[0].Y)
}

func TestClipQuadInside(t *testing.T) {
	verts, uvs := unitQuad(math32.R2(2, 2, 4, 4))
	origVerts, origUVs := verts, uvs

	ClipQuadToRect(&verts, &uvs, math32.R2(0, 0, 10, 10))
	assert.Equal(t, origVerts, verts)
	assert.Equal(t, origUVs, uvs)
}

func TestClipQuadOutside(t *testing.T) {
	// fully outside: collapses to a zero-area quad, keeping its slot
	verts, uvs := unitQuad(math32.R2(20, 0, 10, 10))
	ClipQuadToRect(&verts, &uvs, math32.R2(0, 0, 10, 10))
	assert.Equal(t, float32(0), quadArea(verts))
	for _, v := range verts {
		assert.Equal(t, float32(10), v.X)
	}

	verts, uvs = unitQuad(math32.R2(0, -30, 10, 10))
	ClipQuadToRect(&verts, &uvs, math32.R2(0, 0, 10, 10))
	assert.Equal(t, float32(0), quadArea(verts))
}

func TestClipQuadStraddling(t *testing.T) {
	// straddling the right edge: still exactly 4 corners, with the
	// UVs linearly interpolated at the new boundary crossing
	verts, uvs := unitQuad(math32.R2(0, 0, 10, 10))
	ClipQuadToRect(&verts, &uvs, math32.R2(0, 0, 8, 10))

	assert.Equal(t, [QuadVertices]math32.Vector2{
		{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 10}, {X: 0, Y: 10},
	}, verts)
	assert.Equal(t, [QuadVertices]math32.Vector2{
		{X: 0, Y: 0}, {X: 0.8, Y: 0}, {X: 0.8, Y: 1}, {X: 0, Y: 1},
	}, uvs)

	// straddling two edges (bottom right corner region)
	verts, uvs = unitQuad(math32.R2(5, 5, 10, 10))
	ClipQuadToRect(&verts, &uvs, math32.R2(0, 0, 10, 10))
	assert.Equal(t, [QuadVertices]math32.Vector2{
		{X: 5, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 10}, {X: 5, Y: 10},
	}, verts)
	assert.Equal(t, [QuadVertices]math32.Vector2{
		{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 0.5},
	}, uvs)
}

func TestClipQuadsToRect(t *testing.T) {
	elem := makeQuadsElement(3, MaterialInfo{})
	clip := math32.R2(0, 0, 15, 10)
	ClipQuadsToRect(elem.Vertices, elem.UVs, elem.NumQuads, clip)

	// quad 0 inside, quad 1 straddles, quad 2 outside
	assert.Equal(t, math32.Vec2(10, 0), elem.Vertices[QuadVertices*1])
	assert.Equal(t, math32.Vec2(15, 0), elem.Vertices[QuadVertices*1+1])
	assert.Equal(t, math32.Vec2(0.5, 0), elem.UVs[QuadVertices*1+1])
	assert.Equal(t, math32.Vec2(15, 0), elem.Vertices[QuadVertices*2])
	assert.Equal(t, math32.Vec2(15, 0), elem.Vertices[QuadVertices*2+1])
}
