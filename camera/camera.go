// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a first-person fly camera driven by
// keyboard, pointer motion and scroll input.
package camera

import (
	"sync"

	"github.com/glsteps/glsteps/math32"
)

// Direction is a keyboard movement direction, relative to where
// the camera is facing.
type Direction int32

const (
	// Forward moves along the gaze (W).
	Forward Direction = iota

	// Backward moves against the gaze (S).
	Backward

	// Left strafes left (A).
	Left

	// Right strafes right (D).
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Direction(?)"
}

// Camera is a fly camera. Yaw and Pitch are Euler angles in degrees
// that define the Front gaze direction; yaw -90 looks down negative Z.
// All methods are safe for concurrent use, so input and render
// callbacks may run on different goroutines.
type Camera struct {
	// position of the eye in world space
	Pos math32.Vector3 `toml:"pos" yaml:"pos"`

	// unit gaze direction, recomputed from Yaw and Pitch on pointer motion
	Front math32.Vector3 `toml:"front" yaml:"front"`

	// world up direction
	Up math32.Vector3 `toml:"up" yaml:"up"`

	// heading in degrees, about the Y axis
	Yaw float32 `toml:"yaw" yaml:"yaw"`

	// elevation in degrees, kept within [-89, 89]
	Pitch float32 `toml:"pitch" yaml:"pitch"`

	// vertical field of view in degrees
	FOV float32 `toml:"fov" yaml:"fov"`

	// FOVMin and FOVMax bound the zoom applied by [Camera.Scroll]
	FOVMin float32 `toml:"fov_min" yaml:"fov_min"`
	FOVMax float32 `toml:"fov_max" yaml:"fov_max"`

	// near and far clip distances
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`

	// movement speed in units per second
	Speed float32 `toml:"speed" yaml:"speed"`

	// degrees of rotation per pixel of pointer motion
	Sensitivity float32 `toml:"sensitivity" yaml:"sensitivity"`

	mu           sync.RWMutex
	lastX, lastY float32
	entered      bool
}

// MaxPitch is the largest elevation the camera can reach, in degrees.
// Staying short of 90 keeps the gaze from becoming parallel to Up.
const MaxPitch = 89

// New returns a new [Camera] with default settings.
func New() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// Defaults places the camera at (0, 0, 5) looking down negative Z,
// with a 45 degree field of view.
func (cm *Camera) Defaults() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.Pos = math32.Vec3(0, 0, 5)
	cm.Front = math32.Vec3(0, 0, -1)
	cm.Up = math32.Vec3(0, 1, 0)
	cm.Yaw = -90
	cm.Pitch = 0
	cm.FOV = 45
	cm.FOVMin = 1
	cm.FOVMax = 60
	cm.Near = 1
	cm.Far = 100
	cm.Speed = 2.5
	cm.Sensitivity = 0.05
	cm.entered = false
}

// Position returns the eye position.
func (cm *Camera) Position() math32.Vector3 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.Pos
}

// Gaze returns the unit gaze direction.
func (cm *Camera) Gaze() math32.Vector3 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.Front
}

// Zoom returns the current vertical field of view in degrees.
func (cm *Camera) Zoom() float32 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.FOV
}

// Move moves the camera in the given direction for delta seconds.
// Strafing follows Front x Up, so it stays horizontal when Up is
// the world up.
func (cm *Camera) Move(dir Direction, delta float32) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	step := cm.Speed * delta
	right := cm.Front.Cross(cm.Up).Normal()
	switch dir {
	case Forward:
		cm.Pos.SetAdd(cm.Front.MulScalar(step))
	case Backward:
		cm.Pos.SetSub(cm.Front.MulScalar(step))
	case Left:
		cm.Pos.SetSub(right.MulScalar(step))
	case Right:
		cm.Pos.SetAdd(right.MulScalar(step))
	}
}

// Enter records the pointer position when it enters the view,
// so the next [Camera.Motion] does not jump.
func (cm *Camera) Enter(x, y float32) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.lastX, cm.lastY = x, y
	cm.entered = true
}

// Motion turns the camera by the pointer movement since the last
// event. Moving right or down turns left or up, dragging the scene
// with the pointer. A first event with no prior [Camera.Enter]
// only records the position.
func (cm *Camera) Motion(x, y float32) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if !cm.entered {
		cm.lastX, cm.lastY = x, y
		cm.entered = true
		return
	}
	dx := -(x - cm.lastX) * cm.Sensitivity
	dy := -(cm.lastY - y) * cm.Sensitivity
	cm.lastX, cm.lastY = x, y

	cm.Yaw += dx
	cm.Pitch = math32.Clamp(cm.Pitch+dy, -MaxPitch, MaxPitch)
	cm.updateFront()
}

// Turn sets the yaw and pitch angles in degrees and recomputes
// the gaze. Pitch is clamped to [-MaxPitch, MaxPitch].
func (cm *Camera) Turn(yaw, pitch float32) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.Yaw = yaw
	cm.Pitch = math32.Clamp(pitch, -MaxPitch, MaxPitch)
	cm.updateFront()
}

// updateFront must be called with the lock held.
func (cm *Camera) updateFront() {
	sy, cy := math32.Sincos(math32.DegToRad(cm.Yaw))
	sp, cp := math32.Sincos(math32.DegToRad(cm.Pitch))
	cm.Front = math32.Vec3(cp*cy, sp, cp*sy).Normal()
}

// Scroll zooms by changing the field of view by -dy degrees,
// within [FOVMin, FOVMax].
func (cm *Camera) Scroll(dy float32) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.FOV = math32.Clamp(cm.FOV-dy, cm.FOVMin, cm.FOVMax)
}

// View returns the view matrix looking from Pos along Front.
func (cm *Camera) View() math32.Matrix4 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return math32.LookAt(cm.Pos, cm.Pos.Add(cm.Front), cm.Up)
}

// Projection returns the perspective projection for a viewport of
// the given size in pixels. A zero height is treated as one.
func (cm *Camera) Projection(width, height int) math32.Matrix4 {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	height = max(height, 1)
	return math32.Perspective(math32.DegToRad(cm.FOV), float32(width)/float32(height), cm.Near, cm.Far)
}
