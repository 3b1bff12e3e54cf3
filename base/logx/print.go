// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// Heading writes s to w as a bold heading line, followed by a newline.
// Styling is dropped when w is not a terminal.
func Heading(w io.Writer, s string) error {
	out := termenv.NewOutput(w)
	_, err := fmt.Fprintln(out, out.String(s).Bold().Underline())
	return err
}

// Println writes the given values to w like [fmt.Fprintln] if level
// is at or above [UserLevel]. It reports whether anything was written.
func Println(w io.Writer, level slog.Level, a ...any) bool {
	if level < UserLevel {
		return false
	}
	fmt.Fprintln(w, a...)
	return true
}
