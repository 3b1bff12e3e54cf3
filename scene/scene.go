// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds everything one lighting example draws: the
// camera, material, lights and object placements, loaded from TOML
// or YAML files and turned into per-frame matrices and uniforms.
package scene

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/glsteps/glsteps/base/errors"
	"github.com/glsteps/glsteps/camera"
	"github.com/glsteps/glsteps/math32"
	"github.com/glsteps/glsteps/phong"
	"github.com/jinzhu/copier"
	"github.com/lucasb-eyer/go-colorful"
)

// Version is the scene file format version written by [Scene.Save].
// Files with the same major version can be read.
const Version = "1.0.0"

var versions = errors.Must1(semver.NewConstraint("^1"))

// Scene is a lit scene of cubes viewed through a fly camera.
type Scene struct {
	Name string `toml:"name" yaml:"name"`

	// file format version
	Version string `toml:"version" yaml:"version"`

	// background color as a hex string, like "#334d4d"
	Clear string `toml:"clear" yaml:"clear"`

	Camera   *camera.Camera `toml:"camera" yaml:"camera"`
	Material phong.Material `toml:"material" yaml:"material"`
	DirLight phong.DirLight `toml:"dir_light" yaml:"dir_light"`

	PointLights []phong.PointLight `toml:"point_lights" yaml:"point_lights"`

	SpotLight phong.SpotLight `toml:"spot_light" yaml:"spot_light"`

	// FlashLight makes the spot light follow the camera
	FlashLight bool `toml:"flash_light" yaml:"flash_light"`

	Objects []Object `toml:"objects" yaml:"objects"`

	Lamp Lamp `toml:"lamp" yaml:"lamp"`
}

// Object places one mesh in the world.
type Object struct {
	Pos math32.Vector3 `toml:"pos" yaml:"pos"`

	// zero components are treated as 1
	Scale math32.Vector3 `toml:"scale" yaml:"scale"`

	// rotation axis and angle in degrees
	Axis  math32.Vector3 `toml:"axis" yaml:"axis"`
	Angle float32        `toml:"angle" yaml:"angle"`
}

// Model returns the model matrix: scale, then rotate, then translate.
func (o *Object) Model() math32.Matrix4 {
	sc := o.Scale
	for _, d := range []math32.Dims{math32.X, math32.Y, math32.Z} {
		if sc.Dim(d) == 0 {
			sc.SetDim(d, 1)
		}
	}
	return math32.Translate3D(o.Pos.X, o.Pos.Y, o.Pos.Z).
		Mul(math32.RotateAxis3D(math32.DegToRad(o.Angle), o.Axis)).
		Mul(math32.Scale3D(sc.X, sc.Y, sc.Z))
}

// cube is the local extent of the unit cube every object is drawn with.
var cube = math32.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5)

// Bounds returns the world-space box around the object's cube.
func (o *Object) Bounds() math32.Box3 {
	return cube.MulMatrix4(o.Model())
}

// Lamp is the small cube drawn at each point light.
type Lamp struct {
	// uniform size of the lamp cube
	Scale float32 `toml:"scale" yaml:"scale"`

	// Orbit spins the point lights about the X axis at one radian per second
	Orbit bool `toml:"orbit" yaml:"orbit"`
}

var (
	cubePositions = []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(2, 5, -15),
		math32.Vec3(-1.5, -2.2, -2.5),
		math32.Vec3(-3.8, -2, -12.3),
		math32.Vec3(2.4, -0.4, -3.5),
		math32.Vec3(-1.7, 3, -7.5),
		math32.Vec3(1.3, -2, -2.5),
		math32.Vec3(1.5, 2, -2.5),
		math32.Vec3(1.5, 0.2, -1.5),
		math32.Vec3(-1.3, 1, -1.5),
	}

	pointLightPositions = []math32.Vector3{
		math32.Vec3(0.7, 0.2, 2),
		math32.Vec3(2.3, -3.3, -4),
		math32.Vec3(-4, 2, -12),
		math32.Vec3(0, 0, -3),
	}
)

// New returns a new [Scene] with default settings.
func New() *Scene {
	sc := &Scene{}
	sc.Defaults()
	return sc
}

// Defaults sets ten cubes lit by a sun, four lamps and a flashlight.
func (sc *Scene) Defaults() {
	sc.Name = "lights"
	sc.Version = Version
	sc.Clear = "#334d4d"
	sc.Camera = camera.New()
	sc.Material.Defaults()
	sc.DirLight.Defaults()
	sc.PointLights = make([]phong.PointLight, len(pointLightPositions))
	for i, p := range pointLightPositions {
		sc.PointLights[i].Position = p
		sc.PointLights[i].Defaults()
	}
	sc.SpotLight.Defaults()
	sc.FlashLight = true
	sc.Objects = make([]Object, len(cubePositions))
	for i, p := range cubePositions {
		sc.Objects[i] = Object{Pos: p, Axis: math32.Vec3(1, 0.3, 0.5), Angle: 20 * float32(i)}
	}
	sc.Lamp = Lamp{Scale: 0.2}
}

// fillDefaults completes a scene read from a file.
func (sc *Scene) fillDefaults() {
	df := New()
	if sc.Camera == nil {
		sc.Camera = df.Camera
	}
	sc.Camera.Turn(sc.Camera.Yaw, sc.Camera.Pitch)
	if sc.PointLights == nil {
		sc.PointLights = df.PointLights
	}
	for i := range sc.PointLights {
		if sc.PointLights[i].Constant == 0 {
			sc.PointLights[i].Attenuation.Defaults()
		}
	}
	if sc.SpotLight.Constant == 0 {
		sc.SpotLight.Attenuation.Defaults()
	}
	if sc.Objects == nil {
		sc.Objects = df.Objects
	}
}

// ClearColor returns the background color as RGB in [0, 1].
func (sc *Scene) ClearColor() (math32.Vector3, error) {
	c, err := colorful.Hex(sc.Clear)
	if err != nil {
		return math32.Vector3{}, fmt.Errorf("clear color %q: %w", sc.Clear, err)
	}
	return math32.Vec3(float32(c.R), float32(c.G), float32(c.B)), nil
}

// Validate returns all the problems found in the scene, joined.
func (sc *Scene) Validate() error {
	var errs []error
	if sc.Version != "" {
		v, err := semver.NewVersion(sc.Version)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("version %q: %w", sc.Version, err))
		case !versions.Check(v):
			errs = append(errs, fmt.Errorf("version %s is not supported, want %s", v, versions))
		}
	}
	if _, err := sc.ClearColor(); err != nil {
		errs = append(errs, err)
	}
	if cm := sc.Camera; cm == nil {
		errs = append(errs, errors.New("no camera"))
	} else {
		if cm.Near <= 0 || cm.Far <= cm.Near {
			errs = append(errs, fmt.Errorf("camera clip range [%g, %g] is empty", cm.Near, cm.Far))
		}
		if cm.FOVMin <= 0 || cm.FOVMax >= 180 || cm.FOV < cm.FOVMin || cm.FOV > cm.FOVMax {
			errs = append(errs, fmt.Errorf("camera fov %g is outside [%g, %g] or that range is outside (0, 180)", cm.FOV, cm.FOVMin, cm.FOVMax))
		}
	}
	for i, l := range sc.PointLights {
		if l.Constant <= 0 {
			errs = append(errs, fmt.Errorf("point light %d: attenuation constant %g must be positive", i, l.Constant))
		}
	}
	if sl := sc.SpotLight; sl.CutOff > sl.OuterCutOff || sl.OuterCutOff >= 90 {
		errs = append(errs, fmt.Errorf("spot light cones %g and %g must be ordered and below 90 degrees", sl.CutOff, sl.OuterCutOff))
	}
	if sc.Lamp.Scale < 0 {
		errs = append(errs, fmt.Errorf("lamp scale %g is negative", sc.Lamp.Scale))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("scene %q: %w", sc.Name, errors.Join(errs...))
}

// Clone returns a deep copy of the scene, with its own camera.
func (sc *Scene) Clone() *Scene {
	cp := &Scene{}
	errors.Log(copier.CopyWithOption(cp, sc, copier.Option{DeepCopy: true}))
	return cp
}
