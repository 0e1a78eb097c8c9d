// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"testing"

	"github.com/sprightkit/spright/math32"
	"github.com/stretchr/testify/assert"
)

// anchorPoint returns the position of the given anchor point of the
// given rectangle.
func anchorPoint(anchor Anchor, r math32.Rect2) math32.Vector2 {
	p := math32.Vector2{}
	switch anchor {
	case TopLeft, MiddleLeft, BottomLeft:
		p.X = r.X
	case TopCenter, MiddleCenter, BottomCenter:
		p.X = r.X + r.Width/2
	case TopRight, MiddleRight, BottomRight:
		p.X = r.X + r.Width
	}
	switch anchor {
	case TopLeft, TopCenter, TopRight:
		p.Y = r.Y
	case MiddleLeft, MiddleCenter, MiddleRight:
		p.Y = r.Y + r.Height/2
	case BottomLeft, BottomCenter, BottomRight:
		p.Y = r.Y + r.Height
	}
	return p
}

func TestAnchorOffset(t *testing.T) {
	assert.Equal(t, math32.Vec2(0, 0), AnchorOffset(TopLeft, 10, 20))
	assert.Equal(t, math32.Vec2(-5, -10), AnchorOffset(MiddleCenter, 10, 20))
	assert.Equal(t, math32.Vec2(-10, -20), AnchorOffset(BottomRight, 10, 20))
	assert.Equal(t, math32.Vec2(-5, 0), AnchorOffset(TopCenter, 10, 20))
	assert.Equal(t, math32.Vec2(0, -10), AnchorOffset(MiddleLeft, 10, 20))

	// applying the offset to content of the given size places the
	// anchor point at the origin, for all anchors
	const w, h = 30, 14
	for a := TopLeft; a < AnchorN; a++ {
		off := AnchorOffset(a, w, h)
		placed := math32.R2(0, 0, w, h).Translate(off)
		assert.Equal(t, math32.Vector2{}, anchorPoint(a, placed), a.String())
	}
}

func TestAnchorString(t *testing.T) {
	assert.Equal(t, "MiddleCenter", MiddleCenter.String())
	assert.Equal(t, "Anchor(17)", Anchor(17).String())

	var a Anchor
	assert.NoError(t, a.SetString("BottomLeft"))
	assert.Equal(t, BottomLeft, a)
	assert.Error(t, a.SetString("CenterBottom"))

	b, err := TopRight.MarshalText()
	assert.NoError(t, err)
	assert.NoError(t, a.UnmarshalText(b))
	assert.Equal(t, TopRight, a)
}
