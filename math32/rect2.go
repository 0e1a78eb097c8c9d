// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Rect2 is a 2D rectangle with an origin in the top left, represented
// by its origin point and its width and height. Unlike a min/max
// bounding box, a Rect2 can meaningfully have zero width or height
// (degenerate), which parts of the GUI layer use as a "no clipping"
// sentinel; see [Rect2.IsZero].
type Rect2 struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// R2 returns a new [Rect2] with the given origin and size.
func R2(x, y, width, height float32) Rect2 {
	return Rect2{x, y, width, height}
}

// Rect2FromMinMax returns a new [Rect2] spanning the given
// minimum and maximum points.
func Rect2FromMinMax(min, max Vector2) Rect2 {
	return Rect2{min.X, min.Y, max.X - min.X, max.Y - min.Y}
}

// Rect2FromRect returns a new [Rect2] from the given [image.Rectangle].
func Rect2FromRect(rect image.Rectangle) Rect2 {
	return Rect2FromMinMax(Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max))
}

// Min returns the top left corner of the rectangle.
func (r Rect2) Min() Vector2 {
	return Vector2{r.X, r.Y}
}

// Max returns the bottom right corner of the rectangle.
func (r Rect2) Max() Vector2 {
	return Vector2{r.X + r.Width, r.Y + r.Height}
}

// Size returns the width and height as a vector.
func (r Rect2) Size() Vector2 {
	return Vector2{r.Width, r.Height}
}

// Center returns the center point of the rectangle.
func (r Rect2) Center() Vector2 {
	return Vector2{r.X + r.Width/2, r.Y + r.Height/2}
}

// IsZero returns whether the rectangle is degenerate: zero width or
// zero height. A degenerate rectangle contains no area; callers that
// take a clip rectangle treat a degenerate one as "do not clip".
func (r Rect2) IsZero() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains returns whether the rectangle contains the given point.
// The rectangle is closed: points on any of the four edges are inside.
func (r Rect2) Contains(p Vector2) bool {
	if p.X < r.X || p.X > r.X+r.Width {
		return false
	}
	if p.Y < r.Y || p.Y > r.Y+r.Height {
		return false
	}
	return true
}

// Overlaps returns whether the rectangle has any overlap with the
// other given rectangle, including one fully containing the other
// with no intersecting edges. It is symmetric.
func (r Rect2) Overlaps(other Rect2) bool {
	if other.X+other.Width < r.X || other.X > r.X+r.Width {
		return false
	}
	if other.Y+other.Height < r.Y || other.Y > r.Y+r.Height {
		return false
	}
	return true
}

// Clip returns the intersection of this rectangle with the given clip
// rectangle. The result is contained within both. If the rectangles
// are disjoint, the result has zero width and height, positioned at
// the clamped origin.
func (r Rect2) Clip(clip Rect2) Rect2 {
	newLeft := Max(r.X, clip.X)
	newTop := Max(r.Y, clip.Y)
	newRight := Min(r.X+r.Width, clip.X+clip.Width)
	newBottom := Min(r.Y+r.Height, clip.Y+clip.Height)

	return Rect2{
		X:      newLeft,
		Y:      newTop,
		Width:  Max(0, newRight-newLeft),
		Height: Max(0, newBottom-newTop),
	}
}

// Encapsulate returns the smallest rectangle fully containing both
// this rectangle and the other given rectangle.
func (r Rect2) Encapsulate(other Rect2) Rect2 {
	min := r.Min().Min(other.Min())
	max := r.Max().Max(other.Max())
	return Rect2FromMinMax(min, max)
}

// ExpandByPoint returns the rectangle grown as needed to contain
// the given point.
func (r Rect2) ExpandByPoint(p Vector2) Rect2 {
	return Rect2FromMinMax(r.Min().Min(p), r.Max().Max(p))
}

// Translate returns the rectangle moved by the given offset.
func (r Rect2) Translate(offset Vector2) Rect2 {
	return Rect2{r.X + offset.X, r.Y + offset.Y, r.Width, r.Height}
}

// MulMatrix4 transforms the four corners of the rectangle by the
// given matrix and returns the axis-aligned rectangle encompassing
// the transformed points. Because the result remains axis-aligned,
// it is generally larger than a tight oriented fit.
func (r Rect2) MulMatrix4(m *Matrix4) Rect2 {
	cs := [4]Vector2{
		m.MulVector2AsPoint(Vec2(r.X, r.Y)),
		m.MulVector2AsPoint(Vec2(r.X+r.Width, r.Y)),
		m.MulVector2AsPoint(Vec2(r.X+r.Width, r.Y+r.Height)),
		m.MulVector2AsPoint(Vec2(r.X, r.Y+r.Height)),
	}
	min := cs[0]
	max := cs[0]
	for i := 1; i < 4; i++ {
		min.SetMin(cs[i])
		max.SetMax(cs[i])
	}
	return Rect2FromMinMax(min, max)
}

// ToRect returns an [image.Rectangle] version of this rectangle,
// using floor for the minimum and ceil for the maximum.
func (r Rect2) ToRect() image.Rectangle {
	return image.Rectangle{Min: r.Min().ToPointFloor(), Max: r.Max().ToPointCeil()}
}

// ToFixed returns a [fixed.Rectangle26_6] version of this rectangle.
func (r Rect2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: r.Min().ToFixed(), Max: r.Max().ToFixed()}
}

func (r Rect2) String() string {
	return fmt.Sprintf("(%v, %v) %v x %v", r.X, r.Y, r.Width, r.Height)
}
