// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetFromVector2i(Vector2i{8, 9})
	assert.Equal(t, Vector2{8, 9}, v)

	v.SetZero()
	assert.Equal(t, Vector2{}, v)
}

func TestVector2Math(t *testing.T) {
	v := Vec2(3, 4)

	assert.Equal(t, Vec2(4, 6), v.Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(5, 6), v.AddScalar(2))
	assert.Equal(t, Vec2(2, 2), v.Sub(Vec2(1, 2)))
	assert.Equal(t, Vec2(1, 2), v.SubScalar(2))
	assert.Equal(t, Vec2(6, 12), v.Mul(Vec2(2, 3)))
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 1), v.Div(Vec2(2, 4)))
	assert.Equal(t, Vec2(1.5, 2), v.DivScalar(2))
	assert.Equal(t, Vector2{}, v.DivScalar(0))

	assert.Equal(t, Vec2(3, 4), Vec2(-3, 4).Abs())
	assert.Equal(t, Vec2(-3, -4), v.Negate())

	assert.Equal(t, Vec2(1, 4), v.Min(Vec2(1, 7)))
	assert.Equal(t, Vec2(3, 7), v.Max(Vec2(1, 7)))

	mv := v
	mv.SetAdd(Vec2(1, 1))
	assert.Equal(t, Vec2(4, 5), mv)
	mv.SetSub(Vec2(1, 1))
	assert.Equal(t, v, mv)
	mv.SetMin(Vec2(0, 10))
	assert.Equal(t, Vec2(0, 4), mv)
	mv.SetMax(Vec2(2, 2))
	assert.Equal(t, Vec2(2, 4), mv)
	mv.Clamp(Vec2(0, 0), Vec2(1, 1))
	assert.Equal(t, Vec2(1, 1), mv)

	assert.Equal(t, float32(25), v.LengthSquared())
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(11), v.Dot(Vec2(1, 2)))
	assert.Equal(t, Vec2(0.6, 0.8), v.Normal())

	assert.Equal(t, Vec2(4, 6), Vec2(3, 4).Lerp(Vec2(5, 8), 0.5))
	assert.True(t, Vec2(1, 1).AlmostEqual(Vec2(1.000001, 0.9999999), 1e-5))
	assert.False(t, Vec2(1, 1).AlmostEqual(Vec2(1.1, 1), 1e-5))
}

func TestVector2Conversions(t *testing.T) {
	v := Vec2(3.7, -2.3)
	assert.Equal(t, image.Pt(3, -3), v.ToPointFloor())
	assert.Equal(t, image.Pt(4, -2), v.ToPointCeil())
	assert.Equal(t, image.Pt(4, -2), v.ToPointRound())
	assert.Equal(t, image.Pt(3, -2), v.ToPoint())
	assert.Equal(t, fixed.P(8, 3), Vec2(8, 3).ToFixed())
}

func TestVector2i(t *testing.T) {
	vi := Vec2i(3, 4)
	assert.Equal(t, Vector2i{6, 6}, Vector2iScalar(6))
	assert.Equal(t, Vector2i{15, -5}, Vector2iFromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vec2i(4, 6), vi.Add(Vec2i(1, 2)))
	assert.Equal(t, Vec2i(2, 2), vi.Sub(Vec2i(1, 2)))
	assert.Equal(t, Vec2i(6, 8), vi.MulScalar(2))
	assert.Equal(t, Vec2i(1, 4), vi.Min(Vec2i(1, 7)))
	assert.Equal(t, Vec2i(3, 7), vi.Max(Vec2i(1, 7)))
	assert.Equal(t, Vec2i(-3, -4), vi.Negate())
	assert.Equal(t, image.Pt(3, 4), vi.ToPoint())

	var v Vector2i
	v.SetFromVector2(Vec2(3.9, -4.9))
	assert.Equal(t, Vec2i(3, -4), v)
}
