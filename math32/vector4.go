// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a vector/point in homogeneous coordinates with
// X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Vector4FromVector2 returns a new [Vector4] from the given [Vector2]
// point, with z = 0 and w = 1.
func Vector4FromVector2(v Vector2) Vector4 {
	return Vector4{v.X, v.Y, 0, 1}
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetZero sets all components to zero, with w = 1.
func (v *Vector4) SetZero() {
	v.X = 0
	v.Y = 0
	v.Z = 0
	v.W = 1
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result as a new vector.
func (v Vector4) MulScalar(scalar float32) Vector4 {
	return Vector4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// PerspDiv returns the 2D vector of this point divided by its W factor,
// which is used for converting points in homogeneous coordinates
// back to regular 2D space.
func (v Vector4) PerspDiv() Vector2 {
	if v.W == 0 {
		return Vector2{v.X, v.Y}
	}
	return Vector2{v.X / v.W, v.Y / v.W}
}

// Lerp returns a vector with each component as the linear interpolated value
// of alpha between itself and the corresponding other component.
func (v Vector4) Lerp(other Vector4, alpha float32) Vector4 {
	return Vector4{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha, v.Z + (other.Z-v.Z)*alpha,
		v.W + (other.W-v.W)*alpha}
}

// MulMatrix4 returns this vector multiplied by the given 4x4 matrix.
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	return Vector4{m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W}
}
