// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/glsteps/glsteps/base/errors"
	"github.com/mitchellh/go-homedir"
)

// Watch calls fn with the scene in the named file, and again with a
// freshly loaded scene each time the file content changes, until ctx
// is done. Files that fail to load are logged and skipped, so an
// editor can save a broken scene and then fix it. The directory is
// watched rather than the file so that atomic saves by rename are seen.
func Watch(ctx context.Context, filename string, fn func(sc *Scene)) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	filename, err = filepath.Abs(filename)
	if err != nil {
		return err
	}
	if _, err := FormatOf(filename); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}

	var sum uint64
	loaded := false
	load := func() {
		data, err := os.ReadFile(filename)
		if errors.Log(err) != nil {
			return
		}
		if len(data) == 0 {
			return
		}
		s := xxhash.Sum64(data)
		if loaded && s == sum {
			slog.Debug("scene unchanged", "file", filename)
			return
		}
		sc, err := decode(filename, data)
		if errors.Log(err) != nil {
			return
		}
		sum, loaded = s, true
		slog.Info("scene loaded", "file", filename, "name", sc.Name)
		fn(sc)
	}

	load()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filename || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			load()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
