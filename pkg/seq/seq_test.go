// pkg/seq/seq_test.go

package seq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyAndZeroValue(t *testing.T) {
	var zero Seq[int]
	require.True(t, zero.IsEmpty())
	require.Equal(t, 0, zero.Len())
	require.Nil(t, zero.Slice())

	empty := Empty[int]()
	require.True(t, Equal(zero, empty))
	require.Equal(t, "Seq()", empty.String())
}

func TestOfAndFromSlice(t *testing.T) {
	s := Of(1, 2, 3)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{1, 2, 3}, s.Slice())

	src := []string{"a", "b"}
	fs := FromSlice(src)
	src[0] = "mutated" // the sequence must not observe this
	require.Equal(t, []string{"a", "b"}, fs.Slice())

	require.True(t, FromSlice[int](nil).IsEmpty())
}

func TestGet(t *testing.T) {
	s := Of("x", "y")

	v, ok := s.Get(0)
	require.True(t, ok)
	require.Equal(t, "x", v)

	v, ok = s.Get(1)
	require.True(t, ok)
	require.Equal(t, "y", v)

	_, ok = s.Get(2)
	require.False(t, ok)
	_, ok = s.Get(-1)
	require.False(t, ok)
}

func TestAppendPrependAreImmutable(t *testing.T) {
	s := Of(1, 2)
	grown := s.Append(3).Prepend(0)

	require.Equal(t, []int{1, 2}, s.Slice())
	require.Equal(t, []int{0, 1, 2, 3}, grown.Slice())

	require.Equal(t, []int{7}, Empty[int]().Append(7).Slice())
	require.Equal(t, []int{7}, Empty[int]().Prepend(7).Slice())
}

func TestConcat(t *testing.T) {
	a := Of(1, 2)
	b := Of(3, 4)

	require.Equal(t, []int{1, 2, 3, 4}, a.Concat(b).Slice())
	require.True(t, Equal(a, a.Concat(Empty[int]())))
	require.True(t, Equal(b, Empty[int]().Concat(b)))
	// operands unchanged
	require.Equal(t, []int{1, 2}, a.Slice())
	require.Equal(t, []int{3, 4}, b.Slice())
}

func TestDropTake(t *testing.T) {
	s := Of(1, 2, 3, 4)

	require.Equal(t, []int{3, 4}, s.Drop(2).Slice())
	require.True(t, Equal(s, s.Drop(0)))
	require.True(t, s.Drop(4).IsEmpty())
	require.True(t, s.Drop(99).IsEmpty())

	require.Equal(t, []int{1, 2}, s.Take(2).Slice())
	require.True(t, Equal(s, s.Take(99)))
	require.True(t, s.Take(0).IsEmpty())
}

func TestAllStopsEarly(t *testing.T) {
	s := Of(1, 2, 3, 4)
	var seen []int
	for v := range s.All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, seen)
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(Of(1, 2, 3), Of(1, 2, 3)))
	require.False(t, Equal(Of(1, 2, 3), Of(1, 2)))
	require.False(t, Equal(Of(1, 2, 3), Of(3, 2, 1)))
	require.True(t, Equal(Empty[int](), Empty[int]()))

	eq := Of("a", "b").EqualFunc(Of("A", "B"), func(x, y string) bool {
		return len(x) == len(y)
	})
	require.True(t, eq)
}

func TestHashIsStructural(t *testing.T) {
	require.Equal(t, Hash(Of(1, 2, 3)), Hash(Of(1, 2, 3)))
	require.NotEqual(t, Hash(Of(1, 2, 3)), Hash(Of(3, 2, 1)))
	// rendering boundaries must not run together: [1,23] vs [12,3]
	require.NotEqual(t, Hash(Of(1, 23)), Hash(Of(12, 3)))
	// built differently, hashed identically
	require.Equal(t, Hash(Of(1, 2)), Hash(Empty[int]().Append(1).Append(2)))
}

func TestMapFilter(t *testing.T) {
	s := Of(1, 2, 3, 4)

	doubled := Map(s, func(n int) int { return n * 2 })
	require.Equal(t, []int{2, 4, 6, 8}, doubled.Slice())

	asStr := Map(s, func(n int) string { return string(rune('a' + n - 1)) })
	require.Equal(t, []string{"a", "b", "c", "d"}, asStr.Slice())

	even := Filter(s, func(n int) bool { return n%2 == 0 })
	require.Equal(t, []int{2, 4}, even.Slice())

	none := Filter(s, func(n int) bool { return n > 10 })
	require.True(t, none.IsEmpty())
}

func TestString(t *testing.T) {
	require.Equal(t, "Seq(1, 2, 3)", Of(1, 2, 3).String())
	require.Equal(t, "Seq(a)", Of("a").String())
}
