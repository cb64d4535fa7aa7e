package collections

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tuannh982/hashset/utils/hashing"
	"github.com/tuannh982/hashset/utils/math"
	"golang.org/x/exp/slices"
)

const (
	initialCapacity = 16
	// grow once size would exceed loadNum/loadDen of capacity
	loadNum = 3
	loadDen = 4
)

// HashSet is an unordered set using separate chaining. It is not safe for
// concurrent use; callers must serialize mutations and reads.
type HashSet[T any] struct {
	buckets [][]T
	size    int
	hasher  Hasher[T]
}

func NewHashSet[T any](h Hasher[T]) *HashSet[T] {
	return &HashSet[T]{
		buckets: make([][]T, initialCapacity),
		size:    0,
		hasher:  h,
	}
}

// NewComparable returns an empty set of a comparable type, hashed with the
// runtime hasher.
func NewComparable[T comparable]() *HashSet[T] {
	return NewHashSet[T](hashing.Comparable[T]{})
}

func FromSlice[T any](h Hasher[T], values ...T) *HashSet[T] {
	s := NewHashSet(h)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func Collect[T any](h Hasher[T], seq iter.Seq[T]) *HashSet[T] {
	s := NewHashSet(h)
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// slot maps a hash to a bucket index. Capacity is a power of two, so the
// mask is hash mod capacity.
func (s *HashSet[T]) slot(hash uint64) int {
	return int(hash & uint64(len(s.buckets)-1))
}

func (s *HashSet[T]) find(bucket []T, v T) int {
	return slices.IndexFunc(bucket, func(e T) bool {
		return s.hasher.Equal(e, v)
	})
}

// Insert adds v and reports whether it was absent.
func (s *HashSet[T]) Insert(v T) bool {
	hash := s.hasher.Hash(v)
	if s.find(s.buckets[s.slot(hash)], v) >= 0 {
		return false
	}
	if math.ExceedsRatio(s.size+1, len(s.buckets), loadNum, loadDen) {
		s.resize()
	}
	i := s.slot(hash)
	s.buckets[i] = append(s.buckets[i], v)
	s.size++
	return true
}

func (s *HashSet[T]) Contains(v T) bool {
	return s.find(s.buckets[s.slot(s.hasher.Hash(v))], v) >= 0
}

// Remove deletes v and reports whether it was present. The remaining
// elements of the bucket keep their relative order.
func (s *HashSet[T]) Remove(v T) bool {
	i := s.slot(s.hasher.Hash(v))
	pos := s.find(s.buckets[i], v)
	if pos < 0 {
		return false
	}
	s.removeAt(i, pos)
	return true
}

func (s *HashSet[T]) removeAt(i, pos int) {
	bucket := s.buckets[i]
	last := len(bucket) - 1
	copy(bucket[pos:], bucket[pos+1:])
	var zero T
	bucket[last] = zero
	s.buckets[i] = bucket[:last]
	s.size--
}

func (s *HashSet[T]) Len() int {
	return s.size
}

func (s *HashSet[T]) IsEmpty() bool {
	return s.size == 0
}

func (s *HashSet[T]) Capacity() int {
	return len(s.buckets)
}

// Clear removes every element but keeps the capacity.
func (s *HashSet[T]) Clear() {
	for i, bucket := range s.buckets {
		clear(bucket)
		s.buckets[i] = bucket[:0]
	}
	s.size = 0
}

// resize doubles the bucket array. The old array is left untouched until the
// new one is complete.
func (s *HashSet[T]) resize() {
	capacity := len(s.buckets) * 2
	buckets := make([][]T, capacity)
	mask := uint64(capacity - 1)
	for _, bucket := range s.buckets {
		for _, v := range bucket {
			i := s.hasher.Hash(v) & mask
			buckets[i] = append(buckets[i], v)
		}
	}
	s.buckets = buckets
}

// Clone returns an independent copy. Elements are copied by assignment; use
// CloneFunc when they reference shared memory.
func (s *HashSet[T]) Clone() *HashSet[T] {
	return s.CloneFunc(nil)
}

func (s *HashSet[T]) CloneFunc(f func(T) T) *HashSet[T] {
	buckets := make([][]T, len(s.buckets))
	for i, bucket := range s.buckets {
		if len(bucket) == 0 {
			continue
		}
		buckets[i] = slices.Clone(bucket)
		if f != nil {
			for j, v := range buckets[i] {
				buckets[i][j] = f(v)
			}
		}
	}
	return &HashSet[T]{
		buckets: buckets,
		size:    s.size,
		hasher:  s.hasher,
	}
}

// Entries returns a copy of all elements in iteration order.
func (s *HashSet[T]) Entries() []T {
	arr := make([]T, 0, s.size)
	for _, bucket := range s.buckets {
		arr = append(arr, bucket...)
	}
	return arr
}

func (s *HashSet[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte('}')
	return sb.String()
}

func ContainsQuery[T, Q any](s *HashSet[T], q Q, qh QueryHasher[T, Q]) bool {
	return findQuery(s, s.slot(qh.HashQuery(q)), q, qh) >= 0
}

func RemoveQuery[T, Q any](s *HashSet[T], q Q, qh QueryHasher[T, Q]) bool {
	i := s.slot(qh.HashQuery(q))
	pos := findQuery(s, i, q, qh)
	if pos < 0 {
		return false
	}
	s.removeAt(i, pos)
	return true
}

func findQuery[T, Q any](s *HashSet[T], i int, q Q, qh QueryHasher[T, Q]) int {
	return slices.IndexFunc(s.buckets[i], func(e T) bool {
		return qh.MatchQuery(e, q)
	})
}
