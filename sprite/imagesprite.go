// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"image/color"

	"github.com/sprightkit/spright/math32"
	"github.com/sprightkit/spright/resource"
)

// ImageDesc describes the image to be rendered by an [ImageSprite].
type ImageDesc struct {
	// Width and Height are the size of the sprite in pixels.
	Width  int
	Height int

	// Anchor determines where the sprite origin lies relative to
	// its content; see [AnchorOffset].
	Anchor Anchor

	// UVOffset is the offset into the texture at which the sprite
	// image starts, in normalized coordinates.
	UVOffset math32.Vector2

	// UVScale is the size of the sprite image within the texture,
	// in normalized coordinates. The zero value means the full
	// texture (a scale of (1, 1)).
	UVScale math32.Vector2

	// Texture is the handle of the texture to render.
	Texture resource.Handle

	// Tint is the color multiplied into the rendered image.
	Tint color.RGBA

	// Transparent selects the alpha-blended image material.
	Transparent bool

	// Border sizes in pixels. When any is nonzero the image is
	// rendered as nine quads (9-slice): the corners keep their
	// pixel size, the edges stretch along one axis, and the center
	// stretches along both, with UVs proportional to the source
	// regions.
	BorderLeft   int
	BorderRight  int
	BorderTop    int
	BorderBottom int
}

func (d *ImageDesc) hasBorder() bool {
	return d.BorderLeft != 0 || d.BorderRight != 0 || d.BorderTop != 0 || d.BorderBottom != 0
}

// ImageSprite is a [Sprite] that renders a single image, either as
// one quad or as nine (9-slice) when borders are set.
type ImageSprite struct {
	Sprite

	desc ImageDesc
}

// NewImageSprite returns a new [ImageSprite] with geometry built
// from the given description.
func NewImageSprite(desc ImageDesc) *ImageSprite {
	is := &ImageSprite{}
	is.Update(desc)
	return is
}

// Desc returns the description the current geometry was built from.
func (is *ImageSprite) Desc() ImageDesc {
	return is.desc
}

// Update rebuilds the cached render elements from the given
// description and marks the bounds for recomputation. The sprite has
// a single render element: the Image material, or ImageAlpha when
// the description is transparent. A degenerate (zero width or
// height) description still produces one zero-area quad, so element
// and buffer counts remain stable.
func (is *ImageSprite) Update(desc ImageDesc) {
	is.desc = desc

	w := float32(desc.Width)
	h := float32(desc.Height)

	uvScale := desc.UVScale
	if uvScale == (math32.Vector2{}) {
		uvScale = math32.Vec2(1, 1)
	}
	uvMin := desc.UVOffset
	uvMax := uvMin.Add(uvScale)

	mat := MaterialInfo{Type: Image, Texture: desc.Texture, Tint: desc.Tint}
	if desc.Transparent {
		mat.Type = ImageAlpha
	}

	xs := []float32{0, w}
	ys := []float32{0, h}
	us := []float32{uvMin.X, uvMax.X}
	vs := []float32{uvMin.Y, uvMax.Y}
	if desc.hasBorder() && w > 0 && h > 0 {
		xs = []float32{0, float32(desc.BorderLeft), w - float32(desc.BorderRight), w}
		ys = []float32{0, float32(desc.BorderTop), h - float32(desc.BorderBottom), h}
		us = make([]float32, 4)
		vs = make([]float32, 4)
		for i := range xs {
			us[i] = math32.Lerp(uvMin.X, uvMax.X, xs[i]/w)
			vs[i] = math32.Lerp(uvMin.Y, uvMax.Y, ys[i]/h)
		}
	}

	anchor := AnchorOffset(desc.Anchor, w, h)
	numQuads := (len(xs) - 1) * (len(ys) - 1)

	elem := RenderElement{
		Vertices: make([]math32.Vector2, 0, numQuads*QuadVertices),
		UVs:      make([]math32.Vector2, 0, numQuads*QuadVertices),
		Indices:  make([]uint32, 0, numQuads*QuadIndices),
		NumQuads: numQuads,
		Material: mat,
	}
	for row := 0; row < len(ys)-1; row++ {
		for col := 0; col < len(xs)-1; col++ {
			base := uint32(len(elem.Vertices))
			elem.Vertices = append(elem.Vertices,
				math32.Vec2(xs[col], ys[row]).Add(anchor),     // TL
				math32.Vec2(xs[col+1], ys[row]).Add(anchor),   // TR
				math32.Vec2(xs[col+1], ys[row+1]).Add(anchor), // BR
				math32.Vec2(xs[col], ys[row+1]).Add(anchor),   // BL
			)
			elem.UVs = append(elem.UVs,
				math32.Vec2(us[col], vs[row]),
				math32.Vec2(us[col+1], vs[row]),
				math32.Vec2(us[col+1], vs[row+1]),
				math32.Vec2(us[col], vs[row+1]),
			)
			for _, ord := range quadIndexOrder {
				elem.Indices = append(elem.Indices, base+ord)
			}
		}
	}
	is.SetRenderElements([]RenderElement{elem})
}
