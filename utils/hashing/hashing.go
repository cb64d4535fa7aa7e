// Package hashing contains hash/equality strategies for the hash set in
// utils/collections.
package hashing

import (
	"bytes"
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

var seed = maphash.MakeSeed()

type String struct{}

func (String) Hash(v string) uint64 {
	return xxhash.Sum64String(v)
}

func (String) Equal(a, b string) bool {
	return a == b
}

type Bytes struct{}

func (Bytes) Hash(v []byte) uint64 {
	return xxhash.Sum64(v)
}

func (Bytes) Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Integer hashes the 8-byte little-endian encoding of the value, so equal
// numeric values of the same type always land in the same bucket.
type Integer[T constraints.Integer] struct{}

func (Integer[T]) Hash(v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return xxhash.Sum64(buf[:])
}

func (Integer[T]) Equal(a, b T) bool {
	return a == b
}

// Comparable hashes any comparable value with the runtime hasher. The seed
// is chosen once per process, so hashes are stable for the process lifetime
// only.
type Comparable[T comparable] struct{}

func (Comparable[T]) Hash(v T) uint64 {
	return maphash.Comparable(seed, v)
}

func (Comparable[T]) Equal(a, b T) bool {
	return a == b
}

// Hashable is implemented by element types that carry their own hash and
// equality.
type Hashable[T any] interface {
	Hash() uint64
	Equal(other T) bool
}

type Self[T Hashable[T]] struct{}

func (Self[T]) Hash(v T) uint64 {
	return v.Hash()
}

func (Self[T]) Equal(a, b T) bool {
	return a.Equal(b)
}

type KeyedHasher[T any, K comparable] struct {
	key func(T) K
}

// Keyed identifies elements by a derived comparable key: two elements are
// equal iff their keys are.
func Keyed[T any, K comparable](key func(T) K) KeyedHasher[T, K] {
	return KeyedHasher[T, K]{key: key}
}

func (h KeyedHasher[T, K]) Hash(v T) uint64 {
	return maphash.Comparable(seed, h.key(v))
}

func (h KeyedHasher[T, K]) Equal(a, b T) bool {
	return h.key(a) == h.key(b)
}

// Func adapts a pair of functions. HashFunc must agree with EqualFunc.
type Func[T any] struct {
	HashFunc  func(T) uint64
	EqualFunc func(a, b T) bool
}

func (f Func[T]) Hash(v T) uint64 {
	return f.HashFunc(v)
}

func (f Func[T]) Equal(a, b T) bool {
	return f.EqualFunc(a, b)
}
