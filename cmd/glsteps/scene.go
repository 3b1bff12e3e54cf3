// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/glsteps/glsteps/base/logx"
	"github.com/glsteps/glsteps/scene"
	"github.com/spf13/cobra"
)

type frameOptions struct {
	width, height int
}

func (o *frameOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&o.width, "width", 800, "viewport width in pixels")
	f.IntVar(&o.height, "height", 600, "viewport height in pixels")
}

func newSceneCmd() *cobra.Command {
	o := &frameOptions{}
	var elapsed float32
	var save string
	cmd := &cobra.Command{
		Use:   "scene [file]",
		Short: "Print the matrices and uniforms of one frame of a scene",
		Long: "Print the matrices and uniforms of one frame of a scene file.\n" +
			"Without a file the default scene is used; --save writes it out as a starting point.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scene.New()
			if len(args) == 1 {
				var err error
				if sc, err = scene.Open(args[0]); err != nil {
					return err
				}
			}
			if save != "" {
				slog.Info("saving scene", "file", save)
				return sc.Save(save)
			}
			return printFrame(cmd.OutOrStdout(), sc.Frame(o.width, o.height, elapsed), sc.Name)
		},
	}
	o.addFlags(cmd)
	cmd.Flags().Float32Var(&elapsed, "time", 0, "seconds since the scene started")
	cmd.Flags().StringVar(&save, "save", "", "write the scene to this TOML or YAML file instead of printing")
	return cmd
}

func printFrame(w io.Writer, fr *scene.Frame, name string) error {
	if i := fr.Inside(fr.ViewPos); i >= 0 {
		slog.Warn("camera is inside an object", "object", i, "position", fr.ViewPos)
	}
	heading := func(format string, a ...any) error {
		return logx.Heading(w, fmt.Sprintf(format, a...))
	}
	section := func(value any, format string, a ...any) error {
		if err := heading(format, a...); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, value)
		return err
	}
	if err := heading("scene %s at %gs, %dx%d", name, fr.Elapsed, fr.Width, fr.Height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "clear = %v\n\n", fr.Clear); err != nil {
		return err
	}
	if err := section(fr.Projection, "projection"); err != nil {
		return err
	}
	if err := section(fr.View, "view"); err != nil {
		return err
	}
	for i, m := range fr.Models {
		if err := section(m, "model %d", i); err != nil {
			return err
		}
	}
	for i, m := range fr.Lamps {
		if err := section(m, "lamp %d", i); err != nil {
			return err
		}
	}
	if err := heading("uniforms"); err != nil {
		return err
	}
	_, err := io.WriteString(w, fr.Uniforms.String())
	return err
}
