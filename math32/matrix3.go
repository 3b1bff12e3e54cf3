// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix3 is a 3x3 matrix, stored column-major like [Matrix4]:
// the element at row r, column c is m[c*3+r].
type Matrix3 [9]float32

// Mat3 returns a new [Matrix3] from the given elements, listed row by row.
func Mat3(n11, n12, n13, n21, n22, n23, n31, n32, n33 float32) Matrix3 {
	return Matrix3{
		n11, n21, n31,
		n12, n22, n32,
		n13, n23, n33,
	}
}

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromMatrix4 returns the upper-left 3x3 block of the given matrix,
// which holds its rotation and scale.
func Matrix3FromMatrix4(m Matrix4) Matrix3 {
	return Mat3(
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	)
}

// At returns the element at the given 0-based row and column.
func (m Matrix3) At(row, col int) float32 {
	return m[col*3+row]
}

// SetAt sets the element at the given 0-based row and column.
func (m *Matrix3) SetAt(row, col int, v float32) {
	m[col*3+row] = v
}

// Row returns the given 0-based row as a vector.
func (m Matrix3) Row(i int) Vector3 {
	return Vector3{m[i], m[3+i], m[6+i]}
}

// Col returns the given 0-based column as a vector.
func (m Matrix3) Col(i int) Vector3 {
	return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Add returns the element-wise sum of this matrix and other.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns the element-wise difference of this matrix and other.
func (m Matrix3) Sub(other Matrix3) Matrix3 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns this matrix times other (m * other).
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for c := 0; c < 3; c++ {
		for row := 0; row < 3; row++ {
			r[c*3+row] = m[row]*other[c*3] +
				m[3+row]*other[c*3+1] +
				m[6+row]*other[c*3+2]
		}
	}
	return r
}

// MulVector3 returns the product of this matrix with the given column vector.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant calculates the determinant of the matrix.
func (m Matrix3) Determinant() float32 {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(1, 2)*m.At(2, 1)) -
		m.At(0, 1)*(m.At(1, 0)*m.At(2, 2)-m.At(1, 2)*m.At(2, 0)) +
		m.At(0, 2)*(m.At(1, 0)*m.At(2, 1)-m.At(1, 1)*m.At(2, 0))
}

// String returns one bracketed row per line.
func (m Matrix3) String() string {
	var b strings.Builder
	for r := 0; r < 3; r++ {
		fmt.Fprintf(&b, "[%f %f %f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2))
	}
	return b.String()
}
