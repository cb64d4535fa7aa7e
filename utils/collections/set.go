package collections

import "iter"

type Set[V any] interface {
	Contains(v V) bool
	Insert(v V) bool
	Remove(v V) bool
	Len() int
	Clear()
	Entries() []V
	All() iter.Seq[V]
}

// Hasher supplies the hash and equality relation of a set's elements.
// Elements that are Equal must have the same Hash.
type Hasher[T any] interface {
	Hash(v T) uint64
	Equal(a, b T) bool
}

// QueryHasher lets a set of T be searched with a value of another type Q.
// HashQuery(q) must equal Hash(v) of the set's Hasher whenever
// MatchQuery(v, q) holds.
type QueryHasher[T, Q any] interface {
	HashQuery(q Q) uint64
	MatchQuery(v T, q Q) bool
}
