// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 represents a 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new [Box3] with empty minimum and maximum values.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min = Vec3(Min(b.Min.X, point.X), Min(b.Min.Y, point.Y), Min(b.Min.Z, point.Z))
	b.Max = Vec3(Max(b.Max.X, point.X), Max(b.Max.Y, point.Y), Max(b.Max.Z, point.Z))
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint reports whether p lies inside the box or on its faces.
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// MulMatrix4 returns the smallest box that holds the eight corners of b
// transformed by m. Each output coordinate is the translation plus, per
// input axis, the smaller (or larger) of the two scaled extents.
func (b Box3) MulMatrix4(m Matrix4) Box3 {
	var nb Box3
	for r := X; r <= Z; r++ {
		lo, hi := m.At(int(r), 3), m.At(int(r), 3)
		for c := X; c <= Z; c++ {
			e := m.At(int(r), int(c))
			a, z := e*b.Min.Dim(c), e*b.Max.Dim(c)
			lo += Min(a, z)
			hi += Max(a, z)
		}
		nb.Min.SetDim(r, lo)
		nb.Max.SetDim(r, hi)
	}
	return nb
}
