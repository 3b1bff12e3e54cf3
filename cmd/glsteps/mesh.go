// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/glsteps/glsteps/base/logx"
	"github.com/glsteps/glsteps/math32"
	"github.com/glsteps/glsteps/shape"
	"github.com/spf13/cobra"
)

var (
	meshKinds = []string{"box", "cylinder", "torus"}
	meshLangs = []string{"c", "go"}
)

type meshOptions struct {
	segs   int
	torus  shape.Torus
	size   []float32
	name   string
	lang   string
	pkg    string
	output string
}

func newMeshCmd() *cobra.Command {
	o := &meshOptions{}
	o.torus.Defaults()
	cmd := &cobra.Command{
		Use:       "mesh {box|cylinder|torus}",
		Short:     "Generate a mesh as C or Go source",
		Args:      cobra.ExactArgs(1),
		ValidArgs: meshKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.segs, "segs", 32, "cylinder segments around the axis")
	f.IntVar(&o.torus.RingSegs, "ring", o.torus.RingSegs, "torus segments around the axis")
	f.IntVar(&o.torus.TubeSegs, "tube", o.torus.TubeSegs, "torus segments around the tube")
	f.Float32Var(&o.torus.Radius, "radius", o.torus.Radius, "torus distance from the axis to the tube center")
	f.Float32Var(&o.torus.Width, "width", o.torus.Width, "torus tube radius")
	f.Float32SliceVar(&o.size, "size", []float32{1, 1, 1}, "box size along x,y,z")
	f.StringVar(&o.name, "name", "", "mesh name for the generated identifiers (default the kind)")
	f.StringVar(&o.lang, "lang", "c", "output language: c or go")
	f.StringVar(&o.pkg, "pkg", "meshes", "package of the generated Go file")
	f.StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (o *meshOptions) mesh(kind string) (*shape.Mesh, error) {
	if err := choose("mesh", kind, meshKinds); err != nil {
		return nil, err
	}
	var ms *shape.Mesh
	switch kind {
	case "box":
		if len(o.size) != 3 {
			return nil, fmt.Errorf("box size needs 3 values, got %d", len(o.size))
		}
		ms = shape.NewBox(math32.Vec3(o.size[0], o.size[1], o.size[2]))
	case "cylinder":
		ms = shape.NewCylinder(o.segs)
	case "torus":
		ms = o.torus.Mesh()
	}
	if o.name != "" {
		ms.Name = o.name
	}
	return ms, ms.Validate()
}

func (o *meshOptions) run(cmd *cobra.Command, kind string) error {
	if err := choose("language", o.lang, meshLangs); err != nil {
		return err
	}
	ms, err := o.mesh(kind)
	if err != nil {
		return err
	}
	slog.Debug("generated mesh", "name", ms.Name, "vertices", len(ms.Vertices), "triangles", ms.Triangles())
	bb := ms.Bounds()
	logx.Println(cmd.ErrOrStderr(), slog.LevelInfo, ms.Name, len(ms.Vertices), "vertices", ms.Triangles(), "triangles, bounds", bb.Min, bb.Max)

	var b bytes.Buffer
	if o.lang == "go" {
		err = ms.WriteGo(&b, o.pkg)
	} else {
		err = ms.WriteC(&b)
	}
	if err != nil {
		return err
	}
	if o.output != "" {
		slog.Info("writing", "file", o.output)
		return os.WriteFile(o.output, b.Bytes(), 0o644)
	}
	return writeSource(cmd.OutOrStdout(), b.String(), o.lang)
}
