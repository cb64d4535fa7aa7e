package collections

import "iter"

// Iterator walks a HashSet bucket by bucket. It can be used like this:
//
//	for it := s.Iterator(); it.Next(); {
//		v := it.Value()
//		// ...
//	}
//
// The set must not be mutated while an Iterator is in use.
type Iterator[T any] struct {
	buckets [][]T
	b, i    int
	valid   bool
}

func (s *HashSet[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{buckets: s.buckets}
}

// Next moves to the next element and reports whether there is one. It must
// be called before the first Value.
func (it *Iterator[T]) Next() bool {
	if it.valid {
		it.i++
	}
	for ; it.b < len(it.buckets); it.b++ {
		if it.i < len(it.buckets[it.b]) {
			it.valid = true
			return true
		}
		it.i = 0
	}
	it.valid = false
	return false
}

func (it *Iterator[T]) Value() (v T) {
	if !it.valid {
		return v
	}
	return it.buckets[it.b][it.i]
}

// All yields every element in the same order as Iterator.
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := s.Iterator(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
