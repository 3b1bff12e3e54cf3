// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"sync"
	"time"
)

// FrameTimer measures the time between rendered frames, so movement
// speed does not depend on the frame rate.
type FrameTimer struct {
	mu    sync.Mutex
	now   func() time.Time
	start time.Time
	last  float32
	delta float32
}

// NewFrameTimer returns a new [FrameTimer] starting now.
func NewFrameTimer() *FrameTimer {
	return newFrameTimer(time.Now)
}

func newFrameTimer(now func() time.Time) *FrameTimer {
	return &FrameTimer{now: now, start: now()}
}

// Elapsed returns the seconds since the timer started.
func (ft *FrameTimer) Elapsed() float32 {
	return float32(ft.now().Sub(ft.start).Seconds())
}

// Tick marks a new frame and returns the seconds since the previous one.
func (ft *FrameTimer) Tick() float32 {
	cur := ft.Elapsed()
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.delta = cur - ft.last
	ft.last = cur
	return ft.delta
}

// Delta returns the duration of the last frame, as returned by the last [FrameTimer.Tick].
func (ft *FrameTimer) Delta() float32 {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return ft.delta
}
