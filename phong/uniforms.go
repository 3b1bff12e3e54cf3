// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phong

import (
	"fmt"
	"iter"
	"strings"

	"github.com/glsteps/glsteps/base/ordmap"
	"github.com/glsteps/glsteps/math32"
)

// Uniforms is an ordered set of shader uniform values keyed by their
// GLSL names, such as "material.shininess" or "pointLights[2].linear".
// Values are float32, int32, [math32.Vector3] or [math32.Matrix4],
// matching the glUniform1f, glUniform1i, glUniform3fv and
// glUniformMatrix4fv calls that upload them.
type Uniforms struct {
	vals ordmap.Map[string, any]
}

// NewUniforms returns a new empty [Uniforms] set.
func NewUniforms() *Uniforms {
	return &Uniforms{}
}

// SetFloat sets a float uniform.
func (u *Uniforms) SetFloat(name string, v float32) { u.vals.Set(name, v) }

// SetInt sets an int uniform, used for sampler texture units.
func (u *Uniforms) SetInt(name string, v int32) { u.vals.Set(name, v) }

// SetVector3 sets a vec3 uniform.
func (u *Uniforms) SetVector3(name string, v math32.Vector3) { u.vals.Set(name, v) }

// SetMatrix4 sets a mat4 uniform.
func (u *Uniforms) SetMatrix4(name string, v math32.Matrix4) { u.vals.Set(name, v) }

// Get returns the value of the named uniform and whether it is set.
func (u *Uniforms) Get(name string) (any, bool) {
	return u.vals.Get(name)
}

// Float returns the named float uniform, or 0 if it is unset or not a float.
func (u *Uniforms) Float(name string) float32 {
	v, _ := u.vals.Get(name)
	f, _ := v.(float32)
	return f
}

// Int returns the named int uniform, or 0 if it is unset or not an int.
func (u *Uniforms) Int(name string) int32 {
	v, _ := u.vals.Get(name)
	i, _ := v.(int32)
	return i
}

// Vector3 returns the named vec3 uniform, or zero if it is unset or not a vec3.
func (u *Uniforms) Vector3(name string) math32.Vector3 {
	v, _ := u.vals.Get(name)
	f, _ := v.(math32.Vector3)
	return f
}

// Matrix4 returns the named mat4 uniform, or zero if it is unset or not a mat4.
func (u *Uniforms) Matrix4(name string) math32.Matrix4 {
	v, _ := u.vals.Get(name)
	m, _ := v.(math32.Matrix4)
	return m
}

// Len returns the number of uniforms set.
func (u *Uniforms) Len() int { return u.vals.Len() }

// Names returns the uniform names in the order they were first set.
func (u *Uniforms) Names() []string { return u.vals.Keys() }

// Range iterates over the uniforms in the order they were first set.
func (u *Uniforms) Range() iter.Seq2[string, any] { return u.vals.All() }

// String lists one uniform per line as name = value,
// with matrices printed row by row.
func (u *Uniforms) String() string {
	var b strings.Builder
	for name, v := range u.vals.All() {
		switch v := v.(type) {
		case math32.Matrix4:
			fmt.Fprintf(&b, "%s =\n%v", name, v)
		default:
			fmt.Fprintf(&b, "%s = %v\n", name, v)
		}
	}
	return b.String()
}
