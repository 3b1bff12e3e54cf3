// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Set("view", 1)
	om.Set("projection", 2)
	om.Set("model", 3)
	om.Set("view", 4)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"view", "projection", "model"}, om.Keys())
	v, ok := om.Get("view")
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	_, ok = om.Get("lightPos")
	assert.False(t, ok)

	assert.True(t, om.Delete("projection"))
	assert.False(t, om.Delete("projection"))
	assert.Equal(t, []string{"view", "model"}, om.Keys())
	v, _ = om.Get("model")
	assert.Equal(t, 3, v)

	var keys []string
	var sum int
	for k, v := range om.All() {
		keys = append(keys, k)
		sum += v
		break
	}
	assert.Equal(t, []string{"view"}, keys)
	assert.Equal(t, 4, sum)
}

func TestZeroMap(t *testing.T) {
	var om Map[int, string]
	assert.Equal(t, 0, om.Len())
	_, ok := om.Get(1)
	assert.False(t, ok)
	om.Set(1, "a")
	assert.Equal(t, []int{1}, om.Keys())

	var nilMap *Map[int, string]
	assert.Equal(t, 0, nilMap.Len())
}
