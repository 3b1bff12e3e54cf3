// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import "github.com/glsteps/glsteps/math32"

// Fragment is a surface point to be lit: its world position,
// unit normal and surface colors for each Phong term.
type Fragment struct {
	Pos      math32.Vector3
	Normal   math32.Vector3
	Ambient  math32.Vector3
	Diffuse  math32.Vector3
	Specular math32.Vector3
}

// Lights is the set of lights shining on a scene. Nil lights are off.
type Lights struct {
	Dir    *DirLight
	Points []PointLight
	Spot   *SpotLight
}

// Shade returns the color of the fragment seen from viewPos, summing
// the ambient, diffuse and specular terms of every light. It computes
// on the CPU what the lighting fragment shader computes on the GPU.
func Shade(lights Lights, shininess float32, f Fragment, viewPos math32.Vector3) math32.Vector3 {
	view := viewPos.Sub(f.Pos).Normal()
	var c math32.Vector3
	if lights.Dir != nil {
		c.SetAdd(lights.Dir.Shade(f, view, shininess))
	}
	for i := range lights.Points {
		c.SetAdd(lights.Points[i].Shade(f, view, shininess))
	}
	if lights.Spot != nil {
		c.SetAdd(lights.Spot.Shade(f, view, shininess))
	}
	return c
}

// phong returns the three terms for light arriving from the unit
// direction toLight, each still to be scaled.
func (c *Color) phong(f Fragment, toLight, view math32.Vector3, shininess float32) (ambient, diffuse, specular math32.Vector3) {
	diff := max(f.Normal.Dot(toLight), 0)
	refl := toLight.Negate().Reflect(f.Normal)
	spec := math32.Pow(max(view.Dot(refl), 0), shininess)
	ambient = c.Ambient.Mul(f.Ambient)
	diffuse = c.Diffuse.Mul(f.Diffuse).MulScalar(diff)
	specular = c.Specular.Mul(f.Specular).MulScalar(spec)
	return
}

// Shade returns the light reflected toward the unit view direction.
func (l *DirLight) Shade(f Fragment, view math32.Vector3, shininess float32) math32.Vector3 {
	a, d, s := l.phong(f, l.Direction.Negate().Normal(), view, shininess)
	return a.Add(d).Add(s)
}

// Shade returns the light reflected toward the unit view direction.
func (l *PointLight) Shade(f Fragment, view math32.Vector3, shininess float32) math32.Vector3 {
	toLight := l.Position.Sub(f.Pos)
	a, d, s := l.phong(f, toLight.Normal(), view, shininess)
	att := l.Factor(toLight.Length())
	return a.Add(d).Add(s).MulScalar(att)
}

// Shade returns the light reflected toward the unit view direction.
func (l *SpotLight) Shade(f Fragment, view math32.Vector3, shininess float32) math32.Vector3 {
	toLight := l.Position.Sub(f.Pos)
	dir := toLight.Normal()
	a, d, s := l.phong(f, dir, view, shininess)
	att := l.Factor(toLight.Length())
	in := l.Intensity(dir.Dot(l.Direction.Negate().Normal()))
	return a.Add(d).Add(s).MulScalar(att * in)
}
