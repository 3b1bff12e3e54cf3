// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glsteps/glsteps/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runStderr(t, args...)
	return out, err
}

// runStderr is like run but also returns what the command wrote to stderr.
func runStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	cmd := newRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errb.String(), err
}

func TestMeshC(t *testing.T) {
	out, err := run(t, "mesh", "cylinder", "--segs", "4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "static vertex_t vertices[] = {\n"))
	assert.Contains(t, out, "static GLuint indices[] = {\n\t1, 2, 0,\n")
	assert.Equal(t, 10+8+5, strings.Count(out, "\n"))
}

func TestMeshGo(t *testing.T) {
	out, err := run(t, "mesh", "torus", "--lang", "go", "--pkg", "shapes", "--name", "ring", "--ring", "8", "--tube", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "package shapes\n")
	assert.Contains(t, out, "var ringVertices = []float32{\n")
	assert.Contains(t, out, "// ringIndices holds 64 triangles.\n")
}

func TestMeshFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "box.c")
	out, err := run(t, "mesh", "box", "--size", "2,4,6", "-o", file)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "{{+1.000000, -2.000000, +3.000000}, {+0.000000, +0.000000, +1.000000}")
}

func TestMeshSummary(t *testing.T) {
	file := filepath.Join(t.TempDir(), "box.c")
	_, stderr, err := runStderr(t, "mesh", "box", "--size", "2,4,6", "-o", file, "-v")
	require.NoError(t, err)
	assert.Equal(t, "box 24 vertices 12 triangles, bounds (-1, -2, -3) (1, 2, 3)\n", stderr)

	_, stderr, err = runStderr(t, "mesh", "box", "-o", file)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

type failWriter struct {
	room int
}

func (fw *failWriter) Write(p []byte) (int, error) {
	if len(p) > fw.room {
		return 0, errors.New("disk full")
	}
	fw.room -= len(p)
	return len(p), nil
}

func TestPrintFrameError(t *testing.T) {
	fr := scene.New().Frame(800, 600, 0)
	var b bytes.Buffer
	require.NoError(t, printFrame(&b, fr, "lights"))
	for _, room := range []int{0, 60, b.Len() / 2, b.Len() - 1} {
		assert.EqualError(t, printFrame(&failWriter{room: room}, fr, "lights"), "disk full", "room %d", room)
	}
}

func TestMeshErrors(t *testing.T) {
	_, err := run(t, "mesh", "cylnder")
	assert.EqualError(t, err, `unknown mesh "cylnder", did you mean "cylinder"?`)

	_, err = run(t, "mesh", "box", "--lang", "rust")
	assert.EqualError(t, err, `unknown language "rust", want one of [c go]`)

	_, err = run(t, "mesh", "box", "--size", "1,2")
	assert.ErrorContains(t, err, "3 values")

	_, err = run(t, "mesh")
	assert.Error(t, err)

	_, err = run(t, "mesh", "torus", "--lang", "go", "--pkg", "no such")
	assert.ErrorContains(t, err, "formatting Go source")
}

func TestScene(t *testing.T) {
	out, err := run(t, "scene", "../../scene/testdata/orbit.toml", "--time", "1.5", "--width", "640", "--height", "480")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "scene orbit at 1.5s, 640x480\n"))
	assert.Contains(t, out, "\nmodel 1\n[")
	assert.Contains(t, out, "\nlamp 0\n[")
	assert.NotContains(t, out, "model 2")
	assert.Contains(t, out, "pointLights[0].linear = 0.14\n")
	assert.Contains(t, out, "material.shininess = 64\n")
	assert.Contains(t, out, "view =\n[")

	_, err = run(t, "scene", "../../scene/testdata/broken.yaml")
	assert.ErrorContains(t, err, "not supported")
}

func TestSceneSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lights.yaml")
	_, err := run(t, "scene", "--save", file)
	require.NoError(t, err)

	out, err := run(t, "scene", file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "scene lights at 0s, 800x600\n"))
	assert.Contains(t, out, "model 9\n")
	assert.Contains(t, out, "spotLight.outerCutOff = ")
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.b.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.b.String()
}

func TestWatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "watched.toml")
	require.NoError(t, os.WriteFile(file, []byte(`name = "watched"`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, &out, file, &frameOptions{width: 100, height: 100})
	}()
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "uniforms\n")
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, strings.HasPrefix(out.String(), "scene watched at "))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
