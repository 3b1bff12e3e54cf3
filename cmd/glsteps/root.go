// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/glsteps/glsteps/base/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var vv, v, q bool
	cmd := &cobra.Command{
		Use:          "glsteps",
		Short:        "Meshes and scenes for the OpenGL lighting examples",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "very verbose: show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "verbose: show info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "quiet: show only errors")

	cmd.AddCommand(newMeshCmd(), newSceneCmd(), newWatchCmd())
	cmd.SetErrPrefix("glsteps:")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\nsee '%s --help'", err, c.CommandPath())
	})
	return cmd
}

// choose returns an error for a value that is not one of choices,
// suggesting the closest one.
func choose(what, value string, choices []string) error {
	if slices.Contains(choices, value) {
		return nil
	}
	lev := metrics.NewLevenshtein()
	best, score := "", 0.0
	for _, c := range choices {
		if s := strutil.Similarity(value, c, lev); s > score {
			best, score = c, s
		}
	}
	if score >= 0.5 {
		return fmt.Errorf("unknown %s %q, did you mean %q?", what, value, best)
	}
	return fmt.Errorf("unknown %s %q, want one of %v", what, value, choices)
}

// isTerminal reports whether w is a terminal that shows color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// writeSource writes generated source to w, highlighted in the
// given chroma lexer when w is a color terminal.
func writeSource(w io.Writer, src, lexer string) error {
	if !isTerminal(w) {
		_, err := io.WriteString(w, src)
		return err
	}
	return quick.Highlight(w, src, lexer, "terminal256", "monokai")
}
