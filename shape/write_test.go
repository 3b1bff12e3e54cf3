// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/glsteps/glsteps/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() *Mesh {
	n := math32.Vec3(0, 0, 1)
	return &Mesh{
		Name: "tri",
		Vertices: []Vertex{
			{Pos: math32.Vec3(0, 0, 0), Norm: n, Tex: math32.Vec2(0, 0)},
			{Pos: math32.Vec3(1, 0, 0), Norm: n, Tex: math32.Vec2(1, 0)},
			{Pos: math32.Vec3(0, 1, 0), Norm: n, Tex: math32.Vec2(0, 1)},
		},
		Indices: []uint32{0, 1, 2},
	}
}

func TestWriteC(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, triangle().WriteC(&b))
	want := `static vertex_t vertices[] = {
	{{+0.000000, +0.000000, +0.000000}, {+0.000000, +0.000000, +1.000000}, {0.000000, 0.000000}},
	{{+1.000000, +0.000000, +0.000000}, {+0.000000, +0.000000, +1.000000}, {1.000000, 0.000000}},
	{{+0.000000, +1.000000, +0.000000}, {+0.000000, +0.000000, +1.000000}, {0.000000, 1.000000}}
};

static GLuint indices[] = {
	0, 1, 2
};
`
	assert.Equal(t, want, b.String())

	b.Reset()
	tri := triangle()
	tri.Indices = nil
	require.NoError(t, tri.WriteC(&b))
	assert.NotContains(t, b.String(), "indices")

	b.Reset()
	require.NoError(t, NewCylinder(32).WriteC(&b))
	out := b.String()
	assert.Equal(t, 66+64+5, strings.Count(out, "\n"))
	assert.Contains(t, out, "\t{{+1.000000, -1.000000, +0.000000}, {+1.000000, +0.000000, +0.000000}, {0.000000, 1.000000}},\n")
	assert.Contains(t, out, "\t1, 2, 0,\n\t1, 3, 2,\n")
}

func TestWriteGo(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, triangle().WriteGo(&b, "meshes"))
	src := b.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by glsteps mesh; DO NOT EDIT.\n\npackage meshes\n"))
	assert.Contains(t, src, "var triVertices = []float32{\n\t0, 0, 0, 0, 0, 1, 0, 0,\n")
	assert.Contains(t, src, "var triIndices = []uint32{\n\t0, 1, 2,\n}\n")

	f, err := parser.ParseFile(token.NewFileSet(), "tri.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "meshes", f.Name.Name)
	assert.Len(t, f.Decls, 2)

	b.Reset()
	require.NoError(t, NewTorus().Mesh().WriteGo(&b, "meshes"))
	_, err = parser.ParseFile(token.NewFileSet(), "torus.go", b.Bytes(), 0)
	require.NoError(t, err)

	b.Reset()
	assert.Error(t, triangle().WriteGo(&b, "not a package"))
	assert.Zero(t, b.Len())
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"cylinder", "cylinder"},
		{"unit cylinder", "unitCylinder"},
		{"Big-TORUS_2", "bigTorus2"},
		{"3d box", "_3dBox"},
		{"", "mesh"},
		{"--", "mesh"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(tt.name))
		})
	}
}
