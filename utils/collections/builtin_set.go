package collections

import (
	"iter"

	"golang.org/x/exp/maps"
)

type builtinSet[V comparable] struct {
	entries map[V]struct{}
}

// NewBuiltinSet returns a Set backed by a Go map.
func NewBuiltinSet[V comparable]() Set[V] {
	return &builtinSet[V]{
		entries: make(map[V]struct{}),
	}
}

func (s *builtinSet[V]) Contains(v V) bool {
	if _, ok := s.entries[v]; ok {
		return true
	}
	return false
}

func (s *builtinSet[V]) Insert(v V) bool {
	if s.Contains(v) {
		return false
	}
	s.entries[v] = struct{}{}
	return true
}

func (s *builtinSet[V]) Remove(v V) bool {
	if !s.Contains(v) {
		return false
	}
	delete(s.entries, v)
	return true
}

func (s *builtinSet[V]) Len() int {
	return len(s.entries)
}

func (s *builtinSet[V]) Clear() {
	maps.Clear(s.entries)
}

func (s *builtinSet[V]) Entries() []V {
	return maps.Keys(s.entries)
}

func (s *builtinSet[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range s.entries {
			if !yield(v) {
				return
			}
		}
	}
}
