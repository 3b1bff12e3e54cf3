// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/glsteps/glsteps/base/tolassert"
	"github.com/stretchr/testify/assert"
)

// sample is an arbitrary non-symmetric matrix.
var sample = Mat4(
	1, 2, 3, 4,
	5, 6, 7, 8,
	9, 10, 11, 12,
	13, 14, 15, 16,
)

func TestMatrix4Layout(t *testing.T) {
	m := Mat4(
		11, 12, 13, 14,
		21, 22, 23, 24,
		31, 32, 33, 34,
		41, 42, 43, 44,
	)
	// column-major, as uploaded to GL
	assert.Equal(t, Matrix4{11, 21, 31, 41, 12, 22, 32, 42, 13, 23, 33, 43, 14, 24, 34, 44}, m)
	assert.Equal(t, float32(23), m.At(1, 2))
	assert.Equal(t, Vec4(31, 32, 33, 34), m.Row(2))
	assert.Equal(t, Vec4(14, 24, 34, 44), m.Col(3))

	m.SetAt(3, 0, -1)
	assert.Equal(t, float32(-1), m[3])

	s := make([]float32, 20)
	m.ToSlice(s, 4)
	assert.Equal(t, m.Slice(), s[4:])
	var n Matrix4
	n.FromSlice(s, 4)
	assert.Equal(t, m, n)

	tr := Translate3D(1, 2, 3)
	assert.Equal(t, []float32{1, 2, 3, 1}, tr.Slice()[12:])
}

func TestMatrix4Identity(t *testing.T) {
	id := Identity4()
	assert.Equal(t, sample, id.Mul(sample))
	assert.Equal(t, sample, sample.Mul(id))
	assert.Equal(t, float32(1), id.Determinant())
	assert.Equal(t, id, Scale3D(1, 1, 1))
	assert.Equal(t, id, Translate3D(0, 0, 0))
	assert.Equal(t, id, Transform3D(Vec3(1, 1, 1), Vector3{}))
	assert.Equal(t, id, RotateAxis3D(0, Vec3(1, 2, 3)))

	var m Matrix4
	m.SetIdentity()
	assert.Equal(t, id, m)
}

func TestMatrix4Arithmetic(t *testing.T) {
	id := Identity4()
	assert.Equal(t, Mat4(
		2, 2, 3, 4,
		5, 7, 7, 8,
		9, 10, 12, 12,
		13, 14, 15, 17,
	), sample.Add(id))
	assert.Equal(t, sample, sample.Add(id).Sub(id))
	assert.Equal(t, Matrix4{}, sample.Sub(sample))
	assert.Equal(t, sample.Add(sample), sample.MulScalar(2))

	assert.Equal(t, Mat4(
		90, 100, 110, 120,
		202, 228, 254, 280,
		314, 356, 398, 440,
		426, 484, 542, 600,
	), sample.Mul(sample))

	m := Scale3D(2, 2, 2)
	m.SetMul(Translate3D(1, 0, 0))
	assert.Equal(t, Vec3(4, 2, 2), m.MulVector3AsPoint(Vec3(1, 1, 1)))
}

func TestMatrix4NonCommutative(t *testing.T) {
	a := RotateX3D(DegToRad(90))
	b := RotateY3D(DegToRad(90))
	ab := a.Mul(b)
	ba := b.Mul(a)
	assert.NotEqual(t, ab, ba)

	// the same point ends up in different places
	p := Vec3(1, 0, 0)
	tolAssertEqualVector3(t, Vec3(0, 1, 0), ab.MulVector3AsVector(p))
	tolAssertEqualVector3(t, Vec3(0, 0, -1), ba.MulVector3AsVector(p))

	// translate after scale versus scale after translate
	ts := Translate3D(1, 0, 0).Mul(Scale3D(2, 2, 2))
	st := Scale3D(2, 2, 2).Mul(Translate3D(1, 0, 0))
	assert.Equal(t, Vec3(1, 0, 0), ts.MulVector3AsPoint(Vector3{}))
	assert.Equal(t, Vec3(2, 0, 0), st.MulVector3AsPoint(Vector3{}))
}

func TestMatrix4Transpose(t *testing.T) {
	tr := sample.Transpose()
	assert.Equal(t, Mat4(
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	), tr)
	assert.Equal(t, sample, tr.Transpose())

	// rotations are orthogonal: the transpose is the inverse
	r := RotateAxis3D(DegToRad(37), Vec3(1, 0.3, 0.5))
	id := Identity4()
	rt := r.Mul(r.Transpose())
	tolassert.EqualTolSlice(t, id[:], rt[:], 1e-5)
}

func TestMatrix4Determinant(t *testing.T) {
	assert.Equal(t, float32(0), sample.Determinant())
	assert.Equal(t, float32(24), Scale3D(2, 3, 4).Determinant())
	assert.Equal(t, float32(1), Translate3D(5, -6, 7).Determinant())
	tolassert.EqualTol(t, 1, RotateAxis3D(DegToRad(200), Vec3(1, 0.3, 0.5)).Determinant(), 1e-5)
	assert.Equal(t, float32(-2), Mat4(
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	).Determinant())
	assert.Equal(t, float32(30), Mat4(
		2, 0, 0, 1,
		0, 3, 0, 0,
		0, 0, 5, 0,
		0, 0, 0, 1,
	).Determinant())
}

func TestMatrix4Vectors(t *testing.T) {
	m := Transform3D(Vec3(2, 3, 4), Vec3(10, 20, 30))
	assert.Equal(t, m, Translate3D(10, 20, 30).Mul(Scale3D(2, 3, 4)))

	assert.Equal(t, Vec3(12, 23, 34), m.MulVector3AsPoint(Vec3(1, 1, 1)))
	assert.Equal(t, Vec3(2, 3, 4), m.MulVector3AsVector(Vec3(1, 1, 1)))
	assert.Equal(t, Vec4(12, 23, 34, 1), m.MulVector4(Vec4(1, 1, 1, 1)))
	assert.Equal(t, Vec4(2, 3, 4, 0), m.MulVector4(Vec4(1, 1, 1, 0)))

	assert.Equal(t, Vec3(12, 23, 34), Vec3(1, 1, 1).MulMatrix4AsVector4(m, 1))
	assert.Equal(t, Vec3(2, 3, 4), Vec3(1, 1, 1).MulMatrix4AsVector4(m, 0))
}

func TestRotateAxis(t *testing.T) {
	for _, deg := range []float32{0, 15, 90, 135, 180, 270, -60} {
		a := DegToRad(deg)
		tolAssertEqualMatrix4(t, RotateX3D(a), RotateAxis3D(a, Vec3(1, 0, 0)), deg)
		tolAssertEqualMatrix4(t, RotateY3D(a), RotateAxis3D(a, Vec3(0, 1, 0)), deg)
		tolAssertEqualMatrix4(t, RotateZ3D(a), RotateAxis3D(a, Vec3(0, 0, 1)), deg)
		// the axis is normalized
		tolAssertEqualMatrix4(t, RotateZ3D(a), RotateAxis3D(a, Vec3(0, 0, 7)), deg)
	}

	tolAssertEqualVector3(t, Vec3(0, 0, 1), RotateAxis3D(Pi/2, Vec3(1, 0, 0)).MulVector3AsVector(Vec3(0, 1, 0)))
	tolAssertEqualVector3(t, Vec3(0, 0, 1), RotateX3D(Pi/2).MulVector3AsVector(Vec3(0, 1, 0)))

	// points on the axis do not move
	axis := Vec3(1, 0.3, 0.5)
	on := RotateAxis3D(1.234, axis).MulVector3AsVector(axis)
	tolassert.EqualTolSlice(t, []float32{axis.X, axis.Y, axis.Z}, []float32{on.X, on.Y, on.Z}, 1e-5)
}

func TestPerspective(t *testing.T) {
	p := Perspective(Pi/2, 1, 1, 100)
	clip := p.MulVector4(Vec4(0, 0, -1, 1))
	assert.Equal(t, float32(1), clip.W)
	tolassert.EqualTol(t, -1, clip.PerspDiv().Z, standardTol)

	// the far plane maps to +1
	far := p.MulVector4(Vec4(0, 0, -100, 1))
	tolassert.EqualTol(t, 1, far.PerspDiv().Z, 1e-5)

	// 90 degree fov: the frustum edge at the near plane lands on the clip edge
	edge := p.MulVector4(Vec4(1, 1, -1, 1)).PerspDiv()
	tolassert.EqualTol(t, 1, edge.X, standardTol)
	tolassert.EqualTol(t, 1, edge.Y, standardTol)

	// wider aspect squeezes x
	w := Perspective(Pi/2, 2, 1, 100)
	tolassert.EqualTol(t, 0.5, w.At(0, 0), standardTol)
	assert.Equal(t, float32(-1), w.At(3, 2))
	assert.Equal(t, float32(0), w.At(3, 3))
}

func TestOrthographic(t *testing.T) {
	o := Orthographic(0, 800, 0, 600, -1, 1)
	tolAssertEqualVector3(t, Vec3(-1, -1, 0), o.MulVector3AsPoint(Vec3(0, 0, 0)))
	tolAssertEqualVector3(t, Vec3(1, 1, 0), o.MulVector3AsPoint(Vec3(800, 600, 0)))
	tolAssertEqualVector3(t, Vec3(0, 0, -1), o.MulVector3AsPoint(Vec3(400, 300, 1)))

	// degenerate bounds are not guarded
	d := Orthographic(1, 1, 0, 1, 0, 1)
	assert.True(t, IsInf(d.At(0, 0), 1))
}

func TestLookAt(t *testing.T) {
	eye := Vec3(0, 0, 5)
	v := LookAt(eye, Vector3{}, Vec3(0, 1, 0))
	assert.Equal(t, Vector3{}, v.MulVector3AsPoint(eye))
	assert.Equal(t, Translate3D(0, 0, -5), v)

	// the target lies straight ahead, down -Z in view space
	tolAssertEqualVector3(t, Vec3(0, 0, -5), v.MulVector3AsPoint(Vector3{}))

	eye = Vec3(3, 4, -2)
	target := Vec3(-1, 0.5, 2)
	v = LookAt(eye, target, Vec3(0, 1, 0))
	tolAssertEqualVector3(t, Vector3{}, v.MulVector3AsPoint(eye))
	tgt := v.MulVector3AsPoint(target)
	tolassert.EqualTol(t, 0, tgt.X, 1e-5)
	tolassert.EqualTol(t, 0, tgt.Y, 1e-5)
	tolassert.EqualTol(t, -eye.DistanceTo(target), tgt.Z, 1e-5)

	// up parallel to the gaze saturates to a degenerate basis
	d := LookAt(Vec3(0, 5, 0), Vector3{}, Vec3(0, 1, 0))
	assert.Equal(t, Vec4(0, 0, 0, 0), d.Row(0))
	assert.Equal(t, Vec4(0, 0, 0, 0), d.Row(1))
	assert.Equal(t, float32(0), d.Determinant())
}

func TestMatrix3(t *testing.T) {
	m := Mat3(
		2, 0, 1,
		1, 3, 2,
		1, 1, 2,
	)
	assert.Equal(t, Matrix3{2, 1, 1, 0, 3, 1, 1, 2, 2}, m)
	assert.Equal(t, float32(6), m.Determinant())
	assert.Equal(t, float32(1), Identity3().Determinant())
	assert.Equal(t, m, Identity3().Mul(m))
	assert.Equal(t, m, m.Mul(Identity3()))
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, Vec3(2, 1, 1), m.Transpose().Row(0))
	assert.Equal(t, Vec3(1, 2, 2), m.Col(2))
	assert.Equal(t, Vec3(3, 6, 4), m.MulVector3(Vec3(1, 1, 1)))
	assert.Equal(t, m.MulScalar(2), m.Add(m))
	assert.Equal(t, Matrix3{}, m.Sub(m))

	r := RotateAxis3D(0.7, Vec3(1, 2, 3))
	r3 := Matrix3FromMatrix4(r)
	p := Vec3(0.5, -1, 2)
	assert.Equal(t, r.MulVector3AsVector(p), r3.MulVector3(p))
	assert.Equal(t, r.Mul(Identity4()), Matrix4FromMatrix3(r3))
	assert.Equal(t, "[2.000000 0.000000 1.000000]\n[1.000000 3.000000 2.000000]\n[1.000000 1.000000 2.000000]\n", m.String())
}

func TestMatrix2(t *testing.T) {
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2(vx))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2(vxy))

	rot := Rotate2D(DegToRad(90))
	r := rot.MulVector2(vx)
	tolassert.EqualTol(t, vy.X, r.X, standardTol)
	tolassert.EqualTol(t, vy.Y, r.Y, standardTol)
	tolassert.EqualTol(t, 1, rot.Determinant(), standardTol)
	assert.Equal(t, rot, rot.Transpose().Transpose())

	m := Mat2(1, 2, 3, 4)
	assert.Equal(t, Matrix2{1, 3, 2, 4}, m)
	assert.Equal(t, float32(-2), m.Determinant())
	assert.Equal(t, Mat2(7, 10, 15, 22), m.Mul(m))
	assert.Equal(t, m, Identity2().Mul(m))
	assert.Equal(t, Mat2(1, 3, 2, 4), m.Transpose())
	assert.Equal(t, Vec2(3, 4), m.Row(1))
	assert.Equal(t, Vec2(2, 4), m.Col(1))
	assert.Equal(t, m.MulScalar(2), m.Add(m))
	assert.Equal(t, Matrix2{}, m.Sub(m))
	assert.Equal(t, "[1.000000 2.000000]\n[3.000000 4.000000]\n", m.String())

	// non-commutative
	assert.NotEqual(t, m.Mul(rot), rot.Mul(m))
}

func TestMatrix4String(t *testing.T) {
	want := "[1.000000 0.000000 0.000000 2.000000]\n" +
		"[0.000000 1.000000 0.000000 3.000000]\n" +
		"[0.000000 0.000000 1.000000 4.000000]\n" +
		"[0.000000 0.000000 0.000000 1.000000]\n"
	assert.Equal(t, want, Translate3D(2, 3, 4).String())
}

func TestF32(t *testing.T) {
	m := Translate3D(1, 2, 3)
	f := m.F32()
	// row-major
	assert.Equal(t, float32(1), f[3])
	assert.Equal(t, float32(2), f[7])
	assert.Equal(t, float32(3), f[11])
	assert.Equal(t, m, Matrix4FromF32(f))

	m3 := Mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, float32(2), m3.F32()[1])
	assert.Equal(t, m3, Matrix3FromF32(m3.F32()))

	assert.Equal(t, Vec2(1, 2), Vector2FromF32(Vec2(1, 2).F32()))
	assert.Equal(t, Vec3(1, 2, 3), Vector3FromF32(Vec3(1, 2, 3).F32()))
	assert.Equal(t, Vec4(1, 2, 3, 4), Vector4FromF32(Vec4(1, 2, 3, 4).F32()))
}
