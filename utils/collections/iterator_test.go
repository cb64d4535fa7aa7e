package collections

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tuannh982/hashset/utils/hashing"
	"golang.org/x/exp/slices"
)

func collectIterator[T any](s *HashSet[T]) []T {
	arr := make([]T, 0)
	for it := s.Iterator(); it.Next(); {
		arr = append(arr, it.Value())
	}
	return arr
}

func TestIterator(t *testing.T) {
	s := NewHashSet[int](hashing.Integer[int]{})
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	collected := collectIterator(s)
	slices.Sort(collected)
	require.Equal(t, []int{1, 2, 3}, collected)
}

func TestIteratorEmpty(t *testing.T) {
	s := NewComparable[string]()
	it := s.Iterator()
	require.False(t, it.Next())
	require.False(t, it.Next())
	require.Equal(t, "", it.Value())
}

func TestIteratorForLoop(t *testing.T) {
	s := NewHashSet[string](hashing.String{})
	s.Insert("hello")
	s.Insert("world")
	count := 0
	for item := range s.All() {
		count++
		require.True(t, item == "hello" || item == "world")
	}
	require.Equal(t, 2, count)
}

func TestIteratorBucketOrder(t *testing.T) {
	s := NewHashSet[int](hashing.Func[int]{
		HashFunc:  func(v int) uint64 { return uint64(v % 4) },
		EqualFunc: func(a, b int) bool { return a == b },
	})
	for _, v := range []int{6, 1, 2, 5, 0, 4, 9} {
		s.Insert(v)
	}
	// buckets 0, 1, 2 in array order, insertion order inside each
	require.Equal(t, []int{0, 4, 1, 5, 9, 6, 2}, collectIterator(s))
	require.Equal(t, "{0, 4, 1, 5, 9, 6, 2}", s.String())
}

func TestIteratorIndependentTraversals(t *testing.T) {
	s := FromSlice[int](hashing.Integer[int]{}, 1, 2, 3, 4)
	a, b := s.Iterator(), s.Iterator()
	require.True(t, a.Next())
	require.True(t, a.Next())
	require.True(t, b.Next())
	first := collectIterator(s)
	require.Equal(t, first[0], b.Value())
	require.Equal(t, first[1], a.Value())
}

func TestIterationCompleteness(t *testing.T) {
	s := NewHashSet[int](hashing.Integer[int]{})
	want := make([]int, 0)
	for i := 0; i < 200; i++ {
		s.Insert(i * 7)
	}
	for i := 0; i < 200; i += 3 {
		s.Remove(i * 7)
	}
	for i := 0; i < 200; i++ {
		if i%3 != 0 {
			want = append(want, i*7)
		}
	}
	fromIterator := collectIterator(s)
	fromAll := make([]int, 0)
	for v := range s.All() {
		fromAll = append(fromAll, v)
	}
	require.Equal(t, fromIterator, fromAll)
	require.Equal(t, fromIterator, s.Entries())
	slices.Sort(fromIterator)
	if diff := cmp.Diff(want, fromIterator); diff != "" {
		t.Errorf("iteration mismatch (-want +got):\n%s", diff)
	}
}

func TestAllStopsEarly(t *testing.T) {
	s := FromSlice[int](hashing.Integer[int]{}, 1, 2, 3, 4, 5)
	seen := 0
	for range s.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}
