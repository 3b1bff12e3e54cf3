// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 matrix of homogeneous 3D transforms.
// It is stored column-major: the element at row r, column c
// (both 0-based) is m[c*4+r], which is the layout OpenGL reads
// for a uniform uploaded without transposition.
type Matrix4 [16]float32

// Mat4 returns a new [Matrix4] from the given elements, listed row by row.
func Mat4(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) Matrix4 {
	return Matrix4{
		n11, n21, n31, n41,
		n12, n22, n32, n42,
		n13, n23, n33, n43,
		n14, n24, n34, n44,
	}
}

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromMatrix3 returns a [Matrix4] with the given 3x3 matrix as its
// upper-left block and the identity elsewhere.
func Matrix4FromMatrix3(m Matrix3) Matrix4 {
	return Mat4(
		m.At(0, 0), m.At(0, 1), m.At(0, 2), 0,
		m.At(1, 0), m.At(1, 1), m.At(1, 2), 0,
		m.At(2, 0), m.At(2, 1), m.At(2, 2), 0,
		0, 0, 0, 1,
	)
}

// At returns the element at the given 0-based row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// SetAt sets the element at the given 0-based row and column.
func (m *Matrix4) SetAt(row, col int, v float32) {
	m[col*4+row] = v
}

// Row returns the given 0-based row as a vector.
func (m Matrix4) Row(i int) Vector4 {
	return Vector4{m[i], m[4+i], m[8+i], m[12+i]}
}

// Col returns the given 0-based column as a vector.
func (m Matrix4) Col(i int) Vector4 {
	return Vector4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Identity4()
}

// FromSlice sets this matrix elements from a column-major slice, starting at offset.
func (m *Matrix4) FromSlice(array []float32, offset int) {
	copy(m[:], array[offset:offset+16])
}

// ToSlice copies this matrix elements to the given slice in column-major order,
// starting at offset.
func (m Matrix4) ToSlice(array []float32, offset int) {
	copy(array[offset:], m[:])
}

// Slice returns the column-major elements as a new slice,
// ready for a uniform upload.
func (m Matrix4) Slice() []float32 {
	s := make([]float32, 16)
	copy(s, m[:])
	return s
}

// Add returns the element-wise sum of this matrix and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns the element-wise difference of this matrix and other.
func (m Matrix4) Sub(other Matrix4) Matrix4 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns this matrix times other (m * other).
// The product is not commutative: applied to a vector,
// other acts first and m second.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[row]*other[c*4] +
				m[4+row]*other[c*4+1] +
				m[8+row]*other[c*4+2] +
				m[12+row]*other[c*4+3]
		}
	}
	return r
}

// SetMul sets this matrix to itself times other.
func (m *Matrix4) SetMul(other Matrix4) {
	*m = m.Mul(other)
}

// MulVector4 returns the product of this matrix with the given column vector.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulVector3AsVector multiplies the given direction by the upper-left
// 3x3 block only, ignoring translation and the homogeneous row.
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// MulVector3AsPoint multiplies the given point, taken with w = 1, so the
// translation column applies. The resulting w is dropped without division.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

// minor returns the 3x3 matrix left after removing the given row and column.
func (m Matrix4) minor(row, col int) Matrix3 {
	var mn Matrix3
	ri := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		ci := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			mn.SetAt(ri, ci, m.At(r, c))
			ci++
		}
		ri++
	}
	return mn
}

// Determinant calculates the determinant of the matrix
// by cofactor expansion along the first row.
// It is zero for singular matrices.
func (m Matrix4) Determinant() float32 {
	var det float32
	sign := float32(1)
	for c := 0; c < 4; c++ {
		det += sign * m.At(0, c) * m.minor(0, c).Determinant()
		sign = -sign
	}
	return det
}

// String returns one bracketed row per line.
func (m Matrix4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "[%f %f %f %f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	return b.String()
}

// Transform constructors:

// Scale3D returns a matrix scaling by x, y and z along the coordinate axes.
func Scale3D(x, y, z float32) Matrix4 {
	return Mat4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// Translate3D returns a matrix translating by x, y and z.
func Translate3D(x, y, z float32) Matrix4 {
	return Mat4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Transform3D returns a matrix that scales and then translates.
// It equals Translate3D(translate).Mul(Scale3D(scale)),
// built without the multiplication.
func Transform3D(scale, translate Vector3) Matrix4 {
	return Mat4(
		scale.X, 0, 0, translate.X,
		0, scale.Y, 0, translate.Y,
		0, 0, scale.Z, translate.Z,
		0, 0, 0, 1,
	)
}

// RotateX3D returns a rotation of angle radians about the X axis.
func RotateX3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Mat4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotateY3D returns a rotation of angle radians about the Y axis.
func RotateY3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Mat4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotateZ3D returns a rotation of angle radians about the Z axis.
func RotateZ3D(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Mat4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// RotateAxis3D returns a rotation of angle radians about the given axis,
// using Rodrigues' formula. The axis is normalized first; a zero axis
// leaves only the cosine on the diagonal.
func RotateAxis3D(angle float32, axis Vector3) Matrix4 {
	s, c := Sincos(angle)
	u := axis.Normal()
	t := 1 - c
	return Mat4(
		u.X*u.X*t+c, u.X*u.Y*t-u.Z*s, u.X*u.Z*t+u.Y*s, 0,
		u.Y*u.X*t+u.Z*s, u.Y*u.Y*t+c, u.Y*u.Z*t-u.X*s, 0,
		u.Z*u.X*t-u.Y*s, u.Z*u.Y*t+u.X*s, u.Z*u.Z*t+c, 0,
		0, 0, 0, 1,
	)
}

// Orthographic returns a projection mapping the given box onto the
// canonical clip cube. Equal bounds on any axis divide by zero.
func Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	w := right - left
	h := top - bottom
	d := far - near
	return Mat4(
		2/w, 0, 0, -(right+left)/w,
		0, 2/h, 0, -(top+bottom)/h,
		0, 0, -2/d, -(far+near)/d,
		0, 0, 0, 1,
	)
}

// Perspective returns a symmetric frustum projection from the vertical
// field of view fov in radians, the width/height aspect ratio and the
// near and far clip distances. fov must lie strictly within (0, Pi),
// and 0 < near < far.
func Perspective(fov, aspect, near, far float32) Matrix4 {
	f := Tan(fov / 2)
	d := far - near
	return Mat4(
		1/(aspect*f), 0, 0, 0,
		0, 1/f, 0, 0,
		0, 0, -(far+near)/d, -2*far*near/d,
		0, 0, -1, 0,
	)
}

// LookAt returns a view matrix for an eye at the given position looking
// at target, with up giving the rough upward direction. The eye maps to
// the origin of view space. An up vector parallel to the gaze yields a
// degenerate basis; there is no fallback.
func LookAt(eye, target, up Vector3) Matrix4 {
	dir := eye.Sub(target).Normal()
	right := up.Cross(dir).Normal()
	camUp := dir.Cross(right)
	look := Mat4(
		right.X, right.Y, right.Z, 0,
		camUp.X, camUp.Y, camUp.Z, 0,
		dir.X, dir.Y, dir.Z, 0,
		0, 0, 0, 1,
	)
	return look.Mul(Translate3D(-eye.X, -eye.Y, -eye.Z))
}
