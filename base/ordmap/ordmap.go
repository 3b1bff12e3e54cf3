// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a map that remembers insertion order.
// Items live in a slice in the order they were first added, and a
// map from key to slice index gives fast lookup. Replacing the value
// of an existing key keeps its position.
package ordmap

import (
	"iter"
	"slices"
)

// KeyValue is one entry of a [Map].
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an insertion-ordered map. The zero value is ready to use.
type Map[K comparable, V any] struct {

	// Order holds the entries in the order their keys were first added.
	Order []KeyValue[K, V]

	index map[K]int
}

// New returns a new empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Set sets the value for key, appending the key if it is new.
func (om *Map[K, V]) Set(key K, val V) {
	if om.index == nil {
		om.index = make(map[K]int)
	}
	if i, ok := om.index[key]; ok {
		om.Order[i].Value = val
		return
	}
	om.index[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{key, val})
}

// Get returns the value for key and whether it is present.
func (om *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := om.index[key]; ok {
		return om.Order[i].Value, true
	}
	var zv V
	return zv, false
}

// Delete removes key, reporting whether it was present.
// Later entries shift down, keeping their order.
func (om *Map[K, V]) Delete(key K) bool {
	i, ok := om.index[key]
	if !ok {
		return false
	}
	delete(om.index, key)
	om.Order = slices.Delete(om.Order, i, i+1)
	for j := i; j < len(om.Order); j++ {
		om.index[om.Order[j].Key] = j
	}
	return true
}

// Len returns the number of entries.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}

// All iterates over the entries in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}
