// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAtomic replaces the file by renaming a fully written sibling
// over it, the way editors save.
func writeAtomic(t *testing.T, file, content string) {
	t.Helper()
	tmp := file + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
	require.NoError(t, os.Rename(tmp, file))
}

func nextScene(t *testing.T, scenes <-chan *Scene) *Scene {
	t.Helper()
	select {
	case sc := <-scenes:
		return sc
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for scene")
		return nil
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "watched.toml")
	writeAtomic(t, file, `name = "first"`)

	ctx, cancel := context.WithCancel(context.Background())
	scenes := make(chan *Scene, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, file, func(sc *Scene) { scenes <- sc })
	}()

	assert.Equal(t, "first", nextScene(t, scenes).Name)

	// broken and unchanged saves are skipped
	writeAtomic(t, file, `name = `)
	writeAtomic(t, file, `clear = "nope"`)
	writeAtomic(t, file, `name = "second"`)
	assert.Equal(t, "second", nextScene(t, scenes).Name)
	writeAtomic(t, file, `name = "second"`)

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte(`name = "other"`), 0o644))

	writeAtomic(t, file, "name = \"third\"\n[lamp]\norbit = true\n")
	sc := nextScene(t, scenes)
	assert.Equal(t, "third", sc.Name)
	assert.True(t, sc.Lamp.Orbit)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop")
	}
	assert.Empty(t, scenes)
}

func TestWatchErrors(t *testing.T) {
	ctx := context.Background()
	assert.Error(t, Watch(ctx, filepath.Join(t.TempDir(), "scene.json"), func(*Scene) {}))
	assert.Error(t, Watch(ctx, filepath.Join(t.TempDir(), "missing", "scene.toml"), func(*Scene) {}))
}
