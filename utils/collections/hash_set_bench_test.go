package collections

import (
	"math/rand/v2"
	"testing"

	"github.com/tuannh982/hashset/utils/hashing"
)

func randomData(seed uint64, n int) []uint64 {
	r := rand.New(rand.NewPCG(seed, seed))
	data := make([]uint64, n)
	for i := range data {
		data[i] = r.Uint64()
	}
	return data
}

func BenchmarkInsert(b *testing.B) {
	data := randomData(123, 10000)
	b.Run("HashSet", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := NewHashSet[uint64](hashing.Integer[uint64]{})
			for _, x := range data {
				s.Insert(x)
			}
		}
	})
	b.Run("builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := NewBuiltinSet[uint64]()
			for _, x := range data {
				s.Insert(x)
			}
		}
	})
}

var sink bool

func BenchmarkContains(b *testing.B) {
	data := randomData(456, 10000)
	hs := NewHashSet[uint64](hashing.Integer[uint64]{})
	bs := NewBuiltinSet[uint64]()
	for _, x := range data {
		hs.Insert(x)
		bs.Insert(x)
	}
	b.Run("HashSet", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = hs.Contains(500)
		}
	})
	b.Run("builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = bs.Contains(500)
		}
	})
}
