// Copyright 2025 The Spright Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix stored in column-major order:
// element [i][j] (row i, column j) is at index j*4 + i,
// so the translation components live at indices 12, 13, 14.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// NewMatrix4Translate returns a new [Matrix4] representing a
// translation by the given x, y, and z offsets.
func NewMatrix4Translate(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// NewMatrix4Scale returns a new [Matrix4] representing a scale
// by the given x, y, and z factors.
func NewMatrix4Scale(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// NewMatrix4RotateZ returns a new [Matrix4] representing a rotation
// around the Z axis by the given angle in radians.
func NewMatrix4RotateZ(angle float32) Matrix4 {
	m := Identity4()
	c := Cos(angle)
	s := Sin(angle)
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	return m
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetZero sets this matrix to all zeros.
func (m *Matrix4) SetZero() {
	*m = Matrix4{}
}

// Mul returns this matrix times the other given matrix (this * other),
// as a new matrix.
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	nm := Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix as the matrix multiplication of
// the two given matrices (a * b).
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[col*4+row] = a[row]*b[col*4] + a[4+row]*b[col*4+1] + a[8+row]*b[col*4+2] + a[12+row]*b[col*4+3]
		}
	}
}

// SetTranslation sets the translation components of this matrix,
// leaving the rest unchanged.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m[12] = x
	m[13] = y
	m[14] = z
}

// MulVector2AsPoint returns the given 2D point transformed by this
// matrix as a point with z = 0 and an implicit w = 1, including the
// perspective divide on the result.
func (m *Matrix4) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector4FromVector2(v).MulMatrix4(m).PerspDiv()
}
