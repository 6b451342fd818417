// Package orderedmap provides a map that remembers the order in which
// keys were first inserted. Keys can only be added once.
package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return NewWithCapacity[K, V](0)
}

func NewWithCapacity[K comparable, V any](n int) *Map[K, V] {
	return &Map[K, V]{
		keys:   make([]K, 0, n),
		values: make(map[K]V, n),
	}
}

// Set adds key with value. If key is already present the map is left
// unchanged and ErrDuplicateEntry is returned.
func (m *Map[K, V]) Set(key K, value V) error {
	if _, exists := m.values[key]; exists {
		return ErrDuplicateEntry
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Find returns the first entry, in insertion order, for which match
// returns true.
func (m *Map[K, V]) Find(match func(K) bool) (K, V, bool) {
	for _, k := range m.keys {
		if match(k) {
			return k, m.values[k], true
		}
	}
	var zk K
	var zv V
	return zk, zv, false
}

// Range iterates over the entries in insertion order.
func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
