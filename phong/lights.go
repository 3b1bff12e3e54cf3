// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import "github.com/glsteps/glsteps/math32"

// Color is the light contribution to each of the three Phong terms.
type Color struct {
	Ambient  math32.Vector3 `toml:"ambient" yaml:"ambient"`
	Diffuse  math32.Vector3 `toml:"diffuse" yaml:"diffuse"`
	Specular math32.Vector3 `toml:"specular" yaml:"specular"`
}

func (c *Color) set(ambient, diffuse, specular float32) {
	c.Ambient = math32.Vector3Scalar(ambient)
	c.Diffuse = math32.Vector3Scalar(diffuse)
	c.Specular = math32.Vector3Scalar(specular)
}

func (c *Color) setUniforms(u *Uniforms, name string) {
	u.SetVector3(name+".ambient", c.Ambient)
	u.SetVector3(name+".diffuse", c.Diffuse)
	u.SetVector3(name+".specular", c.Specular)
}

// Attenuation divides the light reaching a surface by a function
// of its distance d from the light: Constant + Linear*d + Quadratic*d*d.
// The quadratic term dominates at longer distances.
type Attenuation struct {
	Constant  float32 `toml:"constant" yaml:"constant"`
	Linear    float32 `toml:"linear" yaml:"linear"`
	Quadratic float32 `toml:"quadratic" yaml:"quadratic"`
}

// Defaults sets the attenuation for a range of about 50 units.
func (a *Attenuation) Defaults() {
	a.Constant = 1
	a.Linear = 0.09
	a.Quadratic = 0.032
}

// Factor returns the fraction of light remaining at distance d.
func (a Attenuation) Factor(d float32) float32 {
	return 1 / (a.Constant + a.Linear*d + a.Quadratic*d*d)
}

func (a *Attenuation) setUniforms(u *Uniforms, name string) {
	u.SetFloat(name+".constant", a.Constant)
	u.SetFloat(name+".linear", a.Linear)
	u.SetFloat(name+".quadratic", a.Quadratic)
}

// DirLight is a directional light with no position or attenuation,
// like the sun.
type DirLight struct {
	// direction the light travels in
	Direction math32.Vector3 `toml:"direction" yaml:"direction"`
	Color     `yaml:",inline"`
}

// Defaults sets a dim light shining down and away from the viewer.
func (l *DirLight) Defaults() {
	l.Direction = math32.Vec3(-0.2, -1, -0.3)
	l.set(0.05, 0.4, 0.5)
}

// SetUniforms writes the light under the given struct name.
func (l *DirLight) SetUniforms(u *Uniforms, name string) {
	u.SetVector3(name+".direction", l.Direction)
	l.setUniforms(u, name)
}

// PointLight is an omnidirectional light at a position.
type PointLight struct {
	Position    math32.Vector3 `toml:"position" yaml:"position"`
	Color       `yaml:",inline"`
	Attenuation `yaml:",inline"`
}

// Defaults sets a bright white light with the default attenuation.
// The position is left unchanged.
func (l *PointLight) Defaults() {
	l.set(0.05, 0.8, 1)
	l.Attenuation.Defaults()
}

// SetUniforms writes the light under the given struct name,
// for example "pointLights[0]".
func (l *PointLight) SetUniforms(u *Uniforms, name string) {
	u.SetVector3(name+".position", l.Position)
	l.Color.setUniforms(u, name)
	l.Attenuation.setUniforms(u, name)
}

// SpotLight is a point light limited to a cone. Inside the CutOff
// angle it has full intensity, fading to nothing at OuterCutOff.
type SpotLight struct {
	Position  math32.Vector3 `toml:"position" yaml:"position"`
	Direction math32.Vector3 `toml:"direction" yaml:"direction"`

	Color       `yaml:",inline"`
	Attenuation `yaml:",inline"`

	// inner and outer cone half-angles in degrees
	CutOff      float32 `toml:"cut_off" yaml:"cut_off"`
	OuterCutOff float32 `toml:"outer_cut_off" yaml:"outer_cut_off"`
}

// Defaults sets a white flashlight with a soft 12.5 to 15 degree edge.
// Position and direction are left unchanged.
func (l *SpotLight) Defaults() {
	l.set(0, 1, 1)
	l.Attenuation.Defaults()
	l.CutOff = 12.5
	l.OuterCutOff = 15
}

// Intensity returns the cone factor for a fragment whose direction from
// the light makes an angle with cosine theta to the spot direction:
// 1 inside CutOff, 0 outside OuterCutOff and a linear blend of the
// cosines in between.
func (l *SpotLight) Intensity(theta float32) float32 {
	inner := math32.Cos(math32.DegToRad(l.CutOff))
	outer := math32.Cos(math32.DegToRad(l.OuterCutOff))
	if inner == outer {
		if theta >= inner {
			return 1
		}
		return 0
	}
	return math32.Clamp((theta-outer)/(inner-outer), 0, 1)
}

// SetUniforms writes the light under the given struct name. The cone
// angles are written as cosines, ready for comparison with a dot product.
func (l *SpotLight) SetUniforms(u *Uniforms, name string) {
	u.SetVector3(name+".position", l.Position)
	u.SetVector3(name+".direction", l.Direction)
	l.Color.setUniforms(u, name)
	l.Attenuation.setUniforms(u, name)
	u.SetFloat(name+".cutOff", math32.Cos(math32.DegToRad(l.CutOff)))
	u.SetFloat(name+".outerCutOff", math32.Cos(math32.DegToRad(l.OuterCutOff)))
}
