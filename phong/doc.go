// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package phong holds the material and light parameters of the Phong
lighting model: directional, point and spot lights, each with ambient,
diffuse and specular colors, and distance attenuation for the latter two.

Every type writes itself into a [Uniforms] set under the GLSL struct
names a lighting shader declares, for example:

	u := phong.NewUniforms()
	mat.SetUniforms(u, "material")
	for i := range points {
		points[i].SetUniforms(u, fmt.Sprintf("pointLights[%d]", i))
	}

[Shade] evaluates the same model on the CPU, for checking shader output
and for tools that have no GPU.
*/
package phong
