// pkg/seq/seq.go

// Package seq provides an immutable, randomly indexable sequence.
//
// Seq is a thin value wrapper around a persistent list with structural
// sharing: every operation returns a new Seq and leaves the receiver
// unchanged, and most storage is shared between versions. The zero value
// is the empty sequence.
package seq

import (
	"fmt"
	"iter"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cespare/xxhash/v2"
)

// Seq is an immutable sequence of T.
type Seq[T any] struct {
	list *immutable.List[T]
}

// Empty returns the empty sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Of returns a sequence holding the given values in order.
func Of[T any](vs ...T) Seq[T] {
	return FromSlice(vs)
}

// FromSlice copies the slice into a sequence. The slice is not retained.
func FromSlice[T any](vs []T) Seq[T] {
	if len(vs) == 0 {
		return Seq[T]{}
	}
	b := immutable.NewListBuilder[T]()
	for _, v := range vs {
		b.Append(v)
	}
	return Seq[T]{list: b.List()}
}

// Len returns the number of elements.
func (s Seq[T]) Len() int {
	if s.list == nil {
		return 0
	}
	return s.list.Len()
}

// IsEmpty reports whether the sequence has no elements.
func (s Seq[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns the element at index i. It reports false when i is out of
// range.
func (s Seq[T]) Get(i int) (T, bool) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, false
	}
	return s.list.Get(i), true
}

// Append returns a sequence with v added at the end.
func (s Seq[T]) Append(v T) Seq[T] {
	if s.list == nil {
		return Of(v)
	}
	return Seq[T]{list: s.list.Append(v)}
}

// Prepend returns a sequence with v added at the front.
func (s Seq[T]) Prepend(v T) Seq[T] {
	if s.list == nil {
		return Of(v)
	}
	return Seq[T]{list: s.list.Prepend(v)}
}

// Concat returns the elements of s followed by the elements of other.
// Concatenating an empty operand returns the other operand unchanged.
func (s Seq[T]) Concat(other Seq[T]) Seq[T] {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	l := s.list
	itr := other.list.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		l = l.Append(v)
	}
	return Seq[T]{list: l}
}

// Drop returns the sequence without its first n elements. Dropping n >= Len
// yields the empty sequence; dropping n <= 0 returns s unchanged.
func (s Seq[T]) Drop(n int) Seq[T] {
	switch {
	case n <= 0:
		return s
	case n >= s.Len():
		return Seq[T]{}
	default:
		return Seq[T]{list: s.list.Slice(n, s.list.Len())}
	}
}

// Take returns the first n elements. Taking n >= Len returns s unchanged;
// taking n <= 0 yields the empty sequence.
func (s Seq[T]) Take(n int) Seq[T] {
	switch {
	case n <= 0:
		return Seq[T]{}
	case n >= s.Len():
		return s
	default:
		return Seq[T]{list: s.list.Slice(0, n)}
	}
}

// Slice copies the elements into a new slice. Returns nil for the empty
// sequence.
func (s Seq[T]) Slice() []T {
	if s.IsEmpty() {
		return nil
	}
	out := make([]T, 0, s.Len())
	itr := s.list.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		out = append(out, v)
	}
	return out
}

// All returns an iterator over the elements in order.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.list == nil {
			return
		}
		itr := s.list.Iterator()
		for !itr.Done() {
			_, v := itr.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// EqualFunc reports whether s and other hold equal elements in the same
// order, comparing elements with eq.
func (s Seq[T]) EqualFunc(other Seq[T], eq func(T, T) bool) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		a, _ := s.Get(i)
		b, _ := other.Get(i)
		if !eq(a, b) {
			return false
		}
	}
	return true
}

// String renders the sequence as "Seq(e1, e2, ...)".
func (s Seq[T]) String() string {
	var b strings.Builder
	b.WriteString("Seq(")
	first := true
	for v := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
		first = false
	}
	b.WriteString(")")
	return b.String()
}

// Equal reports elementwise equality for comparable element types.
func Equal[T comparable](a, b Seq[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// Hash returns a structural hash of the sequence. Two sequences with equal
// elements in the same order hash identically. Elements are folded in via
// their default formatting, length-prefixed so adjacent renderings cannot
// run together.
func Hash[T any](s Seq[T]) uint64 {
	d := xxhash.New()
	for v := range s.All() {
		r := fmt.Sprintf("%v", v)
		fmt.Fprintf(d, "%d:", len(r))
		d.WriteString(r)
	}
	return d.Sum64()
}

// Map applies f to every element, preserving order and length.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	if s.IsEmpty() {
		return Seq[U]{}
	}
	b := immutable.NewListBuilder[U]()
	for v := range s.All() {
		b.Append(f(v))
	}
	return Seq[U]{list: b.List()}
}

// Filter keeps the elements for which pred reports true, in order.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	if s.IsEmpty() {
		return s
	}
	b := immutable.NewListBuilder[T]()
	for v := range s.All() {
		if pred(v) {
			b.Append(v)
		}
	}
	if b.Len() == 0 {
		return Seq[T]{}
	}
	return Seq[T]{list: b.List()}
}
