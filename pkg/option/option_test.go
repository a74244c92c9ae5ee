// pkg/option/option_test.go

package option

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSomeNone(t *testing.T) {
	s := Some(42)
	require.True(t, s.IsSome())
	require.False(t, s.IsNone())

	v, ok := s.Get()
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.Equal(t, 42, s.MustGet())
	require.Equal(t, 42, s.GetOrElse(0))

	n := None[int]()
	require.True(t, n.IsNone())
	_, ok = n.Get()
	require.False(t, ok)
	require.Equal(t, 7, n.GetOrElse(7))
	require.Panics(t, func() { n.MustGet() })
}

func TestZeroValueIsNone(t *testing.T) {
	var o Option[string]
	require.True(t, o.IsNone())
}

func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	require.Equal(t, Some(6), Map(Some(3), double))
	require.Equal(t, None[int](), Map(None[int](), double))

	asLen := Map(Some("hello"), func(s string) int { return len(s) })
	require.Equal(t, Some(5), asLen)
}

func TestString(t *testing.T) {
	require.Equal(t, "Some(3)", Some(3).String())
	require.Equal(t, "None", None[int]().String())
}
