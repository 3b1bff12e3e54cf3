// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import "github.com/glsteps/glsteps/math32"

// Material describes how a surface reflects light. A textured
// material samples its diffuse and specular colors from the texture
// units DiffuseMap and SpecularMap; otherwise the colors are used.
type Material struct {
	Ambient  math32.Vector3 `toml:"ambient" yaml:"ambient"`
	Diffuse  math32.Vector3 `toml:"diffuse" yaml:"diffuse"`
	Specular math32.Vector3 `toml:"specular" yaml:"specular"`

	// specular exponent; larger is a smaller, sharper highlight
	Shininess float32 `toml:"shininess" yaml:"shininess"`

	Textured    bool  `toml:"textured" yaml:"textured"`
	DiffuseMap  int32 `toml:"diffuse_map" yaml:"diffuse_map"`
	SpecularMap int32 `toml:"specular_map" yaml:"specular_map"`
}

// Defaults sets a coral colored material with a diffuse map on
// texture unit 0 and a specular map on unit 1.
func (m *Material) Defaults() {
	m.Ambient = math32.Vec3(1, 0.5, 0.31)
	m.Diffuse = math32.Vec3(1, 0.5, 0.31)
	m.Specular = math32.Vec3(0.5, 0.5, 0.5)
	m.Shininess = 32
	m.Textured = true
	m.DiffuseMap = 0
	m.SpecularMap = 1
}

// SetUniforms writes the material under the given struct name.
func (m *Material) SetUniforms(u *Uniforms, name string) {
	if m.Textured {
		u.SetInt(name+".diffuse", m.DiffuseMap)
		u.SetInt(name+".specular", m.SpecularMap)
	} else {
		u.SetVector3(name+".ambient", m.Ambient)
		u.SetVector3(name+".diffuse", m.Diffuse)
		u.SetVector3(name+".specular", m.Specular)
	}
	u.SetFloat(name+".shininess", m.Shininess)
}

// Fragment returns the untextured surface colors of the material at the given
// position with the given unit normal. Textured callers fill the colors
// from their samples instead.
func (m *Material) Fragment(pos, normal math32.Vector3) Fragment {
	return Fragment{Pos: pos, Normal: normal, Ambient: m.Ambient, Diffuse: m.Diffuse, Specular: m.Specular}
}
