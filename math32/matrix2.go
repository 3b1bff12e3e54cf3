// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix2 is a 2x2 matrix for linear 2D transforms, stored column-major:
// the element at row r, column c is m[c*2+r].
type Matrix2 [4]float32

// Mat2 returns a new [Matrix2] from the given elements, listed row by row.
func Mat2(n11, n12, n21, n22 float32) Matrix2 {
	return Matrix2{n11, n21, n12, n22}
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1}
}

// Scale2D returns a matrix scaling by x and y.
func Scale2D(x, y float32) Matrix2 {
	return Mat2(x, 0, 0, y)
}

// Rotate2D returns a counter-clockwise rotation of angle radians.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Mat2(c, -s, s, c)
}

// At returns the element at the given 0-based row and column.
func (m Matrix2) At(row, col int) float32 {
	return m[col*2+row]
}

// SetAt sets the element at the given 0-based row and column.
func (m *Matrix2) SetAt(row, col int, v float32) {
	m[col*2+row] = v
}

// Row returns the given 0-based row as a vector.
func (m Matrix2) Row(i int) Vector2 {
	return Vector2{m[i], m[2+i]}
}

// Col returns the given 0-based column as a vector.
func (m Matrix2) Col(i int) Vector2 {
	return Vector2{m[i*2], m[i*2+1]}
}

// Add returns the element-wise sum of this matrix and other.
func (m Matrix2) Add(other Matrix2) Matrix2 {
	return Matrix2{m[0] + other[0], m[1] + other[1], m[2] + other[2], m[3] + other[3]}
}

// Sub returns the element-wise difference of this matrix and other.
func (m Matrix2) Sub(other Matrix2) Matrix2 {
	return Matrix2{m[0] - other[0], m[1] - other[1], m[2] - other[2], m[3] - other[3]}
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix2) MulScalar(s float32) Matrix2 {
	return Matrix2{m[0] * s, m[1] * s, m[2] * s, m[3] * s}
}

// Mul returns this matrix times other (m * other).
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
	}
}

// MulVector2 returns the product of this matrix with the given column vector.
func (m Matrix2) MulVector2(v Vector2) Vector2 {
	return Vector2{m[0]*v.X + m[2]*v.Y, m[1]*v.X + m[3]*v.Y}
}

// Transpose returns the transpose of this matrix.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m[0], m[2], m[1], m[3]}
}

// Determinant calculates the determinant of the matrix.
func (m Matrix2) Determinant() float32 {
	return m[0]*m[3] - m[2]*m[1]
}

// String returns one bracketed row per line.
func (m Matrix2) String() string {
	return fmt.Sprintf("[%f %f]\n[%f %f]\n", m[0], m[2], m[1], m[3])
}
