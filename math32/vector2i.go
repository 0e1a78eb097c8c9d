// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Vector2i is a 2D vector/point with X and Y int32 components.
type Vector2i struct {
	X int32
	Y int32
}

// Vec2i returns a new [Vector2i] with the given x and y components.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Vector2iScalar returns a new [Vector2i] with all components set to the given scalar value.
func Vector2iScalar(scalar int32) Vector2i {
	return Vector2i{X: scalar, Y: scalar}
}

// Vector2iFromPoint returns a new [Vector2i] from the given [image.Point].
func Vector2iFromPoint(pt image.Point) Vector2i {
	return Vector2i{X: int32(pt.X), Y: int32(pt.Y)}
}

// Set sets this vector X and Y components.
func (v *Vector2i) Set(x, y int32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all components to the given scalar value.
func (v *Vector2i) SetScalar(scalar int32) {
	v.X = scalar
	v.Y = scalar
}

// SetFromVector2 sets from a [Vector2] (float32) vector, using truncation.
func (v *Vector2i) SetFromVector2(vf Vector2) {
	v.X = int32(vf.X)
	v.Y = int32(vf.Y)
}

// SetZero sets all components to zero.
func (v *Vector2i) SetZero() {
	v.SetScalar(0)
}

// ToPoint returns this vector as an [image.Point].
func (v Vector2i) ToPoint() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{v.X + other.X, v.Y + other.Y}
}

// SetAdd sets this to addition with the other given vector (i.e., += or plus-equals).
func (v *Vector2i) SetAdd(other Vector2i) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{v.X - other.X, v.Y - other.Y}
}

// SetSub sets this to subtraction with the other given vector (i.e., -= or minus-equals).
func (v *Vector2i) SetSub(other Vector2i) {
	v.X -= other.X
	v.Y -= other.Y
}

// Mul multiplies each component of this vector by the corresponding one of the
// other given vector and returns the result as a new vector.
func (v Vector2i) Mul(other Vector2i) Vector2i {
	return Vector2i{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result as a new vector.
func (v Vector2i) MulScalar(scalar int32) Vector2i {
	return Vector2i{v.X * scalar, v.Y * scalar}
}

// Min returns a new vector containing the minimum of the two vectors for each component.
func (v Vector2i) Min(other Vector2i) Vector2i {
	return Vector2i{min(v.X, other.X), min(v.Y, other.Y)}
}

// SetMin sets this vector components to the minimum value of itself and the other given vector.
func (v *Vector2i) SetMin(other Vector2i) {
	v.X = min(v.X, other.X)
	v.Y = min(v.Y, other.Y)
}

// Max returns a new vector containing the maximum of the two vectors for each component.
func (v Vector2i) Max(other Vector2i) Vector2i {
	return Vector2i{max(v.X, other.X), max(v.Y, other.Y)}
}

// SetMax sets this vector components to the maximum value of itself and the other given vector.
func (v *Vector2i) SetMax(other Vector2i) {
	v.X = max(v.X, other.X)
	v.Y = max(v.Y, other.Y)
}

// Negate returns the vector with each component negated.
func (v Vector2i) Negate() Vector2i {
	return Vector2i{-v.X, -v.Y}
}
