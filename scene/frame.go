// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/glsteps/glsteps/base/errors"
	"github.com/glsteps/glsteps/math32"
	"github.com/glsteps/glsteps/phong"
)

// Frame is everything needed to draw one frame of a [Scene].
type Frame struct {
	Width, Height int

	// seconds since the scene started
	Elapsed float32

	Clear      math32.Vector3
	Projection math32.Matrix4
	View       math32.Matrix4

	// eye position and gaze at the time of the frame
	ViewPos math32.Vector3
	Gaze    math32.Vector3

	// one model matrix per object
	Models []math32.Matrix4

	// world-space bounds of each object
	Bounds []math32.Box3

	// one model matrix per lamp, at each point light
	Lamps []math32.Matrix4

	// lights as placed for this frame
	Lights phong.Lights

	// shininess of the material
	Shininess float32

	// shared uniforms of the lighting shader; the per-object
	// "model" uniform is set from Models while drawing
	Uniforms *phong.Uniforms
}

// Frame computes the matrices and uniforms for a viewport of the given
// size in pixels, elapsed seconds after the scene started.
// An invalid clear color is logged and drawn black.
func (sc *Scene) Frame(width, height int, elapsed float32) *Frame {
	cm := sc.Camera
	fr := &Frame{Width: width, Height: height, Elapsed: elapsed, Shininess: sc.Material.Shininess}
	fr.Clear = errors.Log1(sc.ClearColor())
	fr.Projection = cm.Projection(width, height)
	fr.View = cm.View()
	fr.ViewPos = cm.Position()
	fr.Gaze = cm.Gaze()

	u := phong.NewUniforms()
	u.SetMatrix4("projection", fr.Projection)
	u.SetMatrix4("view", fr.View)
	u.SetVector3("viewPos", fr.ViewPos)
	sc.Material.SetUniforms(u, "material")

	dir := sc.DirLight
	dir.SetUniforms(u, "dirLight")
	fr.Lights.Dir = &dir

	orbit := math32.RotateX3D(elapsed)
	lampScale := math32.Vector3Scalar(sc.Lamp.Scale)
	fr.Lights.Points = make([]phong.PointLight, len(sc.PointLights))
	for i, l := range sc.PointLights {
		if sc.Lamp.Orbit {
			l.Position = orbit.MulVector3AsPoint(l.Position)
		}
		l.SetUniforms(u, fmt.Sprintf("pointLights[%d]", i))
		fr.Lights.Points[i] = l
		fr.Lamps = append(fr.Lamps, math32.Transform3D(lampScale, l.Position))
	}

	spot := sc.SpotLight
	if sc.FlashLight {
		spot.Position = fr.ViewPos
		spot.Direction = fr.Gaze
	}
	spot.SetUniforms(u, "spotLight")
	fr.Lights.Spot = &spot

	fr.Models = make([]math32.Matrix4, len(sc.Objects))
	fr.Bounds = make([]math32.Box3, len(sc.Objects))
	for i := range sc.Objects {
		fr.Models[i] = sc.Objects[i].Model()
		fr.Bounds[i] = cube.MulMatrix4(fr.Models[i])
	}
	fr.Uniforms = u
	return fr
}

// Shade returns the color the lighting shader computes for the fragment
// in this frame.
func (fr *Frame) Shade(f phong.Fragment) math32.Vector3 {
	return phong.Shade(fr.Lights, fr.Shininess, f, fr.ViewPos)
}

// MVP returns the full transform of object i, projection * view * model.
func (fr *Frame) MVP(i int) math32.Matrix4 {
	return fr.Projection.Mul(fr.View).Mul(fr.Models[i])
}

// Inside returns the index of the first object whose bounds contain p,
// or -1 if there is none.
func (fr *Frame) Inside(p math32.Vector3) int {
	for i, b := range fr.Bounds {
		if b.ContainsPoint(p) {
			return i
		}
	}
	return -1
}
