// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// WriteC writes the mesh as C source: a vertices array of
// {{position}, {normal}, {texture}} initializers for a vertex_t struct,
// and, for an indexed mesh, an indices array of GLuint triangles.
func (ms *Mesh) WriteC(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("static vertex_t vertices[] = {\n")
	for i, v := range ms.Vertices {
		fmt.Fprintf(bw, "\t{{%+f, %+f, %+f}, {%+f, %+f, %+f}, {%f, %f}}",
			v.Pos.X, v.Pos.Y, v.Pos.Z, v.Norm.X, v.Norm.Y, v.Norm.Z, v.Tex.X, v.Tex.Y)
		bw.WriteString(listSep(i, len(ms.Vertices)))
	}
	bw.WriteString("};\n")
	if ms.Indices != nil {
		bw.WriteString("\nstatic GLuint indices[] = {\n")
		n := ms.Triangles()
		for i := range n {
			a, b, c := ms.Triangle(i)
			fmt.Fprintf(bw, "\t%d, %d, %d", a, b, c)
			bw.WriteString(listSep(i, n))
		}
		bw.WriteString("};\n")
	}
	return bw.Flush()
}

func listSep(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return "\n"
}

// WriteGo writes the mesh as a formatted Go source file in package pkg,
// declaring <name>Vertices as interleaved float32 values and, for an
// indexed mesh, <name>Indices as uint32 triangles.
func (ms *Mesh) WriteGo(w io.Writer, pkg string) error {
	name := Identifier(ms.Name)
	var b bytes.Buffer
	b.WriteString("// Code generated by glsteps mesh; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "// %sVertices holds %d vertices of %d values each:\n", name, len(ms.Vertices), VertexFloats)
	b.WriteString("// position xyz, normal xyz, texture uv.\n")
	fmt.Fprintf(&b, "var %sVertices = []float32{\n", name)
	for _, v := range ms.Vertices {
		fmt.Fprintf(&b, "%v, %v, %v, %v, %v, %v, %v, %v,\n",
			v.Pos.X, v.Pos.Y, v.Pos.Z, v.Norm.X, v.Norm.Y, v.Norm.Z, v.Tex.X, v.Tex.Y)
	}
	b.WriteString("}\n")
	if ms.Indices != nil {
		fmt.Fprintf(&b, "\n// %sIndices holds %d triangles.\n", name, ms.Triangles())
		fmt.Fprintf(&b, "var %sIndices = []uint32{\n", name)
		for i := range ms.Triangles() {
			a, c, d := ms.Triangle(i)
			fmt.Fprintf(&b, "%d, %d, %d,\n", a, c, d)
		}
		b.WriteString("}\n")
	}
	src, err := imports.Process(name+".go", b.Bytes(), goFormat)
	if err != nil {
		return fmt.Errorf("shape: formatting Go source for mesh %q: %w", ms.Name, err)
	}
	_, err = w.Write(src)
	return err
}

// goFormat only formats generated sources; they import nothing.
var goFormat = &imports.Options{FormatOnly: true, Comments: true, TabIndent: true, TabWidth: 8}

// Identifier returns name as a lower camel case Go identifier:
// "unit cylinder" becomes "unitCylinder". Characters other than
// letters and digits separate words, and a leading digit gets an
// underscore. An empty name gives "mesh".
func Identifier(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	if len(words) == 0 {
		return "mesh"
	}
	title := cases.Title(language.Und)
	var b strings.Builder
	for i, wd := range words {
		if i == 0 {
			b.WriteString(cases.Lower(language.Und).String(wd))
		} else {
			b.WriteString(title.String(wd))
		}
	}
	id := b.String()
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}
