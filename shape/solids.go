// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/glsteps/glsteps/math32"
)

// NewCylinder returns an open cylinder of radius 1 around the Y axis,
// from y = -1 to y = 1, with segs segments around. It has 2(segs+1)
// vertices: a bottom and top vertex per seam angle, the last seam
// repeating the first with texture u = 1. Normals point radially out.
func NewCylinder(segs int) *Mesh {
	segs = max(segs, 3)
	ms := &Mesh{Name: "cylinder"}
	ms.Vertices = make([]Vertex, 0, 2*(segs+1))
	bottom := math32.Vec3(1, -1, 0)
	top := math32.Vec3(1, 1, 0)
	for i := 0; i <= segs; i++ {
		u := float32(i) / float32(segs)
		ang := u * 2 * math32.Pi
		b := bottom.RotateY(ang)
		t := top.RotateY(ang)
		norm := math32.Vec3(b.X, 0, b.Z).Normal()
		ms.Vertices = append(ms.Vertices,
			Vertex{Pos: b, Norm: norm, Tex: math32.Vec2(u, 1)},
			Vertex{Pos: t, Norm: norm, Tex: math32.Vec2(u, 0)})
	}

	// 0-2-4...
	// |/|/|/
	// 1-3-5...
	ms.Indices = make([]uint32, 0, 6*segs)
	for i := 0; i < segs; i++ {
		n := uint32(2 * i)
		ms.Indices = append(ms.Indices, n+1, n+2, n, n+1, n+3, n+2)
	}
	return ms
}

// Torus is a ring torus around the Y axis, swept by revolving a circle
// of radius Width whose center lies at distance Radius from the axis.
// A Width larger than Radius gives a self-intersecting spindle torus.
type Torus struct {
	// distance from the axis to the tube center
	Radius float32

	// radius of the tube
	Width float32

	// segments around the tube cross section
	TubeSegs int

	// segments around the axis
	RingSegs int
}

// NewTorus returns a new [Torus] with default settings.
func NewTorus() *Torus {
	tr := &Torus{}
	tr.Defaults()
	return tr
}

// Defaults sets a torus that just touches the axis: radius 0.6,
// width 0.4, with 32 tube and 64 ring segments.
func (tr *Torus) Defaults() {
	tr.Radius = 0.6
	tr.Width = 0.4
	tr.TubeSegs = 32
	tr.RingSegs = 64
}

// N returns the number of vertices and indices of the mesh.
func (tr *Torus) N() (nVtx, nIdx int) {
	return (tr.RingSegs + 1) * (tr.TubeSegs + 1), 6 * tr.RingSegs * tr.TubeSegs
}

// Mesh generates the torus. The cross section starts on the inner
// equator and runs over the top; ring r holds vertices
// r*(TubeSegs+1) through r*(TubeSegs+1)+TubeSegs, and the last ring
// and last tube vertex repeat the first at texture coordinate 1.
func (tr *Torus) Mesh() *Mesh {
	tube := max(tr.TubeSegs, 3)
	ring := max(tr.RingSegs, 3)
	ms := &Mesh{Name: "torus"}

	outline := make([]Vertex, tube+1)
	for j := range outline {
		v := float32(j) / float32(tube)
		s, c := math32.Sincos(v * 2 * math32.Pi)
		outline[j] = Vertex{
			Pos:  math32.Vec3(tr.Radius-tr.Width*c, tr.Width*s, 0),
			Norm: math32.Vec3(-c, s, 0),
			Tex:  math32.Vec2(0, v),
		}
	}

	ms.Vertices = make([]Vertex, 0, (ring+1)*(tube+1))
	for i := 0; i <= ring; i++ {
		u := float32(i) / float32(ring)
		ang := u * 2 * math32.Pi
		for _, o := range outline {
			ms.Vertices = append(ms.Vertices, Vertex{
				Pos:  o.Pos.RotateY(ang),
				Norm: o.Norm.RotateY(ang),
				Tex:  math32.Vec2(u, o.Tex.Y),
			})
		}
	}

	// j+1 - j+N+2
	//  |  \  |
	//  j  - j+N+1
	n := uint32(tube + 1)
	ms.Indices = make([]uint32, 0, 6*ring*tube)
	for i := 0; i < ring; i++ {
		b := uint32(i) * n
		for j := uint32(0); j < uint32(tube); j++ {
			ms.Indices = append(ms.Indices,
				b+j, b+j+n, b+j+1,
				b+j+1, b+j+n, b+j+n+1)
		}
	}
	return ms
}

// boxFaces lists each face normal with two in-plane axes u and v
// such that u x v is the normal, so corners taken in u, v order
// wind counter-clockwise seen from outside.
var boxFaces = [6][3]math32.Vector3{
	{{X: 1}, {Z: -1}, {Y: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {X: 1}, {Z: -1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {X: -1}, {Y: 1}},
}

// NewBox returns a box centered on the origin with the given size
// along each axis. Each face has its own four vertices so normals
// stay flat, giving 24 vertices and 36 indices.
func NewBox(size math32.Vector3) *Mesh {
	ms := &Mesh{Name: "box"}
	half := size.MulScalar(0.5)
	corners := [4]math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for f, face := range boxFaces {
		n, u, v := face[0], face[1], face[2]
		for _, c := range corners {
			p := n.Add(u.MulScalar(2*c.X - 1)).Add(v.MulScalar(2*c.Y - 1))
			ms.Vertices = append(ms.Vertices, Vertex{Pos: p.Mul(half), Norm: n, Tex: c})
		}
		b := uint32(4 * f)
		ms.Indices = append(ms.Indices, b, b+1, b+2, b, b+2, b+3)
	}
	return ms
}
