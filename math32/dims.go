// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W

	// DimsN is the number of dimensions.
	DimsN
)

var dimsNames = [DimsN]string{"X", "Y", "Z", "W"}

func (d Dims) String() string {
	if d < 0 || d >= DimsN {
		return "Dims(?)"
	}
	return dimsNames[d]
}
