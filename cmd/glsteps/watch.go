// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/glsteps/glsteps/camera"
	"github.com/glsteps/glsteps/scene"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newWatchCmd() *cobra.Command {
	o := &frameOptions{}
	cmd := &cobra.Command{
		Use:   "watch file",
		Short: "Print a frame of a scene file each time it changes, until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch(ctx, cmd.OutOrStdout(), args[0], o)
		},
	}
	o.addFlags(cmd)
	return cmd
}

// watch prints a frame for every version of the scene file, timed
// from when watching started.
func watch(ctx context.Context, w io.Writer, file string, o *frameOptions) error {
	timer := camera.NewFrameTimer()
	scenes := make(chan *scene.Scene)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(scenes)
		return scene.Watch(ctx, file, func(sc *scene.Scene) {
			select {
			case scenes <- sc:
			case <-ctx.Done():
			}
		})
	})
	g.Go(func() error {
		for sc := range scenes {
			slog.Debug("scene changed", "after", timer.Tick())
			if err := printFrame(w, sc.Frame(o.width, o.height, timer.Elapsed()), sc.Name); err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}
