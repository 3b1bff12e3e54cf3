// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "golang.org/x/image/math/f32"

// Conversions to and from the golang.org/x/image/math/f32 types.
// Those matrices are row-major, so the element order is transposed
// relative to ours.

// F32 returns the vector as an [f32.Vec2].
func (v Vector2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// F32 returns the vector as an [f32.Vec3].
func (v Vector3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// F32 returns the vector as an [f32.Vec4].
func (v Vector4) F32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// Vector2FromF32 returns a [Vector2] from an [f32.Vec2].
func Vector2FromF32(v f32.Vec2) Vector2 {
	return Vector2{v[0], v[1]}
}

// Vector3FromF32 returns a [Vector3] from an [f32.Vec3].
func Vector3FromF32(v f32.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// Vector4FromF32 returns a [Vector4] from an [f32.Vec4].
func Vector4FromF32(v f32.Vec4) Vector4 {
	return Vector4{v[0], v[1], v[2], v[3]}
}

// F32 returns the matrix as a row-major [f32.Mat3].
func (m Matrix3) F32() f32.Mat3 {
	var a f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a[3*r+c] = m.At(r, c)
		}
	}
	return a
}

// Matrix3FromF32 returns a [Matrix3] from a row-major [f32.Mat3].
func Matrix3FromF32(a f32.Mat3) Matrix3 {
	var m Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.SetAt(r, c, a[3*r+c])
		}
	}
	return m
}

// F32 returns the matrix as a row-major [f32.Mat4].
func (m Matrix4) F32() f32.Mat4 {
	var a f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			a[4*r+c] = m.At(r, c)
		}
	}
	return a
}

// Matrix4FromF32 returns a [Matrix4] from a row-major [f32.Mat4].
func Matrix4FromF32(a f32.Mat4) Matrix4 {
	var m Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.SetAt(r, c, a[4*r+c])
		}
	}
	return m
}
