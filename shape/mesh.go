// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates triangle meshes for simple solids, ready to
// be uploaded to a vertex buffer or written out as source code.
package shape

import (
	"fmt"
	"slices"

	"github.com/glsteps/glsteps/math32"
)

// Vertex is one mesh vertex: position, unit normal and texture coordinates.
type Vertex struct {
	Pos  math32.Vector3
	Norm math32.Vector3
	Tex  math32.Vector2
}

// VertexFloats is the number of float32 values per interleaved vertex.
const VertexFloats = 8

// Mesh is an indexed triangle mesh. A mesh without Indices is drawn
// as consecutive vertex triples.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Triangles returns the number of triangles in the mesh.
func (ms *Mesh) Triangles() int {
	if ms.Indices == nil {
		return len(ms.Vertices) / 3
	}
	return len(ms.Indices) / 3
}

// Triangle returns the vertex numbers of the i-th triangle.
func (ms *Mesh) Triangle(i int) (a, b, c uint32) {
	if ms.Indices == nil {
		n := uint32(3 * i)
		return n, n + 1, n + 2
	}
	return ms.Indices[3*i], ms.Indices[3*i+1], ms.Indices[3*i+2]
}

// Validate returns an error if the indices do not form whole triangles
// or refer to vertices that do not exist.
func (ms *Mesh) Validate() error {
	if ms.Indices == nil {
		if len(ms.Vertices)%3 != 0 {
			return fmt.Errorf("shape: mesh %q: %d vertices is not a whole number of triangles", ms.Name, len(ms.Vertices))
		}
		return nil
	}
	if len(ms.Indices)%3 != 0 {
		return fmt.Errorf("shape: mesh %q: %d indices is not a whole number of triangles", ms.Name, len(ms.Indices))
	}
	for i, ix := range ms.Indices {
		if int(ix) >= len(ms.Vertices) {
			return fmt.Errorf("shape: mesh %q: index %d at %d is out of range of %d vertices", ms.Name, ix, i, len(ms.Vertices))
		}
	}
	return nil
}

// Bounds returns the bounding box of the vertex positions.
// It is empty for a mesh without vertices.
func (ms *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	for i := range ms.Vertices {
		bb.ExpandByPoint(ms.Vertices[i].Pos)
	}
	return bb
}

// Floats returns the vertices interleaved as position, normal and
// texture coordinates, [VertexFloats] values per vertex.
func (ms *Mesh) Floats() []float32 {
	f := make([]float32, 0, len(ms.Vertices)*VertexFloats)
	for _, v := range ms.Vertices {
		f = append(f, v.Pos.X, v.Pos.Y, v.Pos.Z, v.Norm.X, v.Norm.Y, v.Norm.Z, v.Tex.X, v.Tex.Y)
	}
	return f
}

// Transform returns a copy of the mesh with positions transformed by m
// and normals by its upper 3x3 block, renormalized. Normals are only
// correct for rotations and uniform scales.
func (ms *Mesh) Transform(m math32.Matrix4) *Mesh {
	nm := &Mesh{Name: ms.Name, Vertices: make([]Vertex, len(ms.Vertices)), Indices: slices.Clone(ms.Indices)}
	for i, v := range ms.Vertices {
		nm.Vertices[i] = Vertex{
			Pos:  m.MulVector3AsPoint(v.Pos),
			Norm: m.MulVector3AsVector(v.Norm).Normal(),
			Tex:  v.Tex,
		}
	}
	return nm
}
