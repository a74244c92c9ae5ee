// pkg/neseq/neseq.go

// Package neseq provides NonEmptySeq, an immutable sequence that is
// guaranteed to hold at least one element.
//
// The guarantee is established once, at construction, and never re-checked:
// the wrapped sequence is unexported, so outside this package every value
// flows through a constructor that proves non-emptiness. Operations that
// are partial on a general sequence (Head, Last, Reduce, Min, Max) are
// total here.
//
// Methods cover the type-preserving operations; transformations that change
// the element type are top-level generic functions, since Go methods cannot
// introduce type parameters.
//
// The zero value of NonEmptySeq is not valid. Always use a constructor.
package neseq

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/fpkit/neseq/pkg/option"
	"github.com/fpkit/neseq/pkg/seq"
	"github.com/fpkit/neseq/pkg/task"
)

// NonEmptySeq is an immutable sequence of T with at least one element.
type NonEmptySeq[T any] struct {
	elems seq.Seq[T]
}

// Numeric constrains the element types Sum accepts.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Indexed pairs an element with its position.
type Indexed[T any] struct {
	Index int
	Value T
}

// ------------------------------
// Constructors
// ------------------------------

// Of returns a NonEmptySeq holding head followed by rest.
func Of[T any](head T, rest ...T) NonEmptySeq[T] {
	return NonEmptySeq[T]{elems: seq.Of(head).Concat(seq.FromSlice(rest))}
}

// Single returns a NonEmptySeq holding exactly v.
func Single[T any](v T) NonEmptySeq[T] {
	return Of(v)
}

// FromSeq converts a general sequence, reporting None when s is empty.
// This is the only fallible entry point; absence is a normal outcome, not
// an error.
func FromSeq[T any](s seq.Seq[T]) option.Option[NonEmptySeq[T]] {
	if s.IsEmpty() {
		return option.None[NonEmptySeq[T]]()
	}
	return option.Some(NonEmptySeq[T]{elems: s})
}

// FromCons builds a NonEmptySeq from a head element and a tail sequence.
// The head already proves non-emptiness, so no validation runs.
func FromCons[T any](head T, tail seq.Seq[T]) NonEmptySeq[T] {
	return NonEmptySeq[T]{elems: seq.Of(head).Concat(tail)}
}

// ------------------------------
// Total accessors
// ------------------------------

// Head returns the first element. Total: the sequence is never empty.
func (ns NonEmptySeq[T]) Head() T {
	v, _ := ns.elems.Get(0)
	return v
}

// Last returns the final element. Total for the same reason as Head.
func (ns NonEmptySeq[T]) Last() T {
	v, _ := ns.elems.Get(ns.elems.Len() - 1)
	return v
}

// Len returns the number of elements, always >= 1.
func (ns NonEmptySeq[T]) Len() int {
	return ns.elems.Len()
}

// Get returns the element at index i. Random access beyond the head stays
// partial, mirroring the underlying sequence.
func (ns NonEmptySeq[T]) Get(i int) (T, bool) {
	return ns.elems.Get(i)
}

// ------------------------------
// Type-preserving transformations
// ------------------------------

// Append returns a NonEmptySeq with v added at the end.
func (ns NonEmptySeq[T]) Append(v T) NonEmptySeq[T] {
	return NonEmptySeq[T]{elems: ns.elems.Append(v)}
}

// Concat appends an arbitrary, possibly empty, general sequence. The result
// is non-empty because the receiver already is.
func (ns NonEmptySeq[T]) Concat(other seq.Seq[T]) NonEmptySeq[T] {
	return NonEmptySeq[T]{elems: ns.elems.Concat(other)}
}

// Prepend puts an arbitrary general sequence in front of the receiver.
func (ns NonEmptySeq[T]) Prepend(other seq.Seq[T]) NonEmptySeq[T] {
	return NonEmptySeq[T]{elems: other.Concat(ns.elems)}
}

// ------------------------------
// Widening and cons form
// ------------------------------

// ToSeq returns the underlying general sequence in O(1). This is the one
// explicit point where the non-emptiness fact is discarded.
func (ns NonEmptySeq[T]) ToSeq() seq.Seq[T] {
	return ns.elems
}

// Uncons splits the sequence into its head and the, possibly empty, tail.
// Inverse of FromCons.
func (ns NonEmptySeq[T]) Uncons() (T, seq.Seq[T]) {
	return ns.Head(), ns.elems.Drop(1)
}

// ------------------------------
// Equality, hashing, rendering
// ------------------------------

// EqualFunc reports whether ns and other hold equal elements in the same
// order, comparing elements with eq. Equality ignores everything except
// the elements: how either value was constructed does not matter.
func (ns NonEmptySeq[T]) EqualFunc(other NonEmptySeq[T], eq func(T, T) bool) bool {
	return ns.elems.EqualFunc(other.elems, eq)
}

// String renders the sequence as "NonEmptySeq(e1, e2, ...)".
func (ns NonEmptySeq[T]) String() string {
	var b strings.Builder
	b.WriteString("NonEmptySeq(")
	first := true
	for v := range ns.elems.All() {
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
func Equal[T comparable](a, b NonEmptySeq[T]) bool {
	return seq.Equal(a.elems, b.elems)
}

// Hash returns the structural hash of the underlying sequence.
func Hash[T any](ns NonEmptySeq[T]) uint64 {
	return seq.Hash(ns.elems)
}

// ------------------------------
// Generic transformations
// ------------------------------

// Map applies f to every element, preserving order and length. The element
// count is unchanged, so the result is non-empty.
func Map[T, U any](ns NonEmptySeq[T], f func(T) U) NonEmptySeq[U] {
	return NonEmptySeq[U]{elems: seq.Map(ns.elems, f)}
}

// FlatMap applies f to each element and concatenates the results in order.
// Every f(x) is itself non-empty, so the whole result is too.
func FlatMap[T, U any](ns NonEmptySeq[T], f func(T) NonEmptySeq[U]) NonEmptySeq[U] {
	out := f(ns.Head()).elems
	for v := range ns.elems.Drop(1).All() {
		out = out.Concat(f(v).elems)
	}
	return NonEmptySeq[U]{elems: out}
}

// Flatten concatenates a non-empty sequence of non-empty sequences.
func Flatten[T any](ns NonEmptySeq[NonEmptySeq[T]]) NonEmptySeq[T] {
	return FlatMap(ns, func(inner NonEmptySeq[T]) NonEmptySeq[T] {
		return inner
	})
}

// MapAccum maps f over the elements in a single left-to-right pass,
// threading an accumulator through every step. It returns the final
// accumulator and the mapped sequence, same length, order preserved.
func MapAccum[S, T, U any](ns NonEmptySeq[T], seed S, f func(S, T) (S, U)) (S, NonEmptySeq[U]) {
	state := seed
	out := make([]U, 0, ns.Len())
	for v := range ns.elems.All() {
		var u U
		state, u = f(state, v)
		out = append(out, u)
	}
	return state, NonEmptySeq[U]{elems: seq.FromSlice(out)}
}

// Fold reduces the elements left to right starting from seed.
func Fold[S, T any](ns NonEmptySeq[T], seed S, f func(S, T) S) S {
	acc := seed
	for v := range ns.elems.All() {
		acc = f(acc, v)
	}
	return acc
}

// Reduce combines the elements left to right with no seed, starting from
// the head. Total: reduction of a non-empty sequence needs no fallback.
func Reduce[T any](ns NonEmptySeq[T], f func(T, T) T) T {
	acc := ns.Head()
	for v := range ns.elems.Drop(1).All() {
		acc = f(acc, v)
	}
	return acc
}

// Min returns the smallest element. Total.
func Min[T constraints.Ordered](ns NonEmptySeq[T]) T {
	return Reduce(ns, func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// Max returns the largest element. Total.
func Max[T constraints.Ordered](ns NonEmptySeq[T]) T {
	return Reduce(ns, func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}

// Sum adds up the elements.
func Sum[T Numeric](ns NonEmptySeq[T]) T {
	return Reduce(ns, func(a, b T) T { return a + b })
}

// Reverse returns the elements in the opposite order.
func Reverse[T any](ns NonEmptySeq[T]) NonEmptySeq[T] {
	vs := ns.elems.Slice()
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
	return NonEmptySeq[T]{elems: seq.FromSlice(vs)}
}

// ------------------------------
// Zipping
// ------------------------------

// ZipWith combines the two sequences pairwise with f, up to the length of
// the shorter one.
//
// Both operands are non-empty, so the constructed value provably is too;
// the return nevertheless sticks to the general type. Callers that need
// the non-emptiness proof re-enter through FromSeq, or use ZipAllWith,
// the width-preserving variant.
func ZipWith[T, U, V any](a NonEmptySeq[T], b NonEmptySeq[U], f func(T, U) V) seq.Seq[V] {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	out := make([]V, 0, n)
	for i := 0; i < n; i++ {
		x, _ := a.elems.Get(i)
		y, _ := b.elems.Get(i)
		out = append(out, f(x, y))
	}
	return seq.FromSlice(out)
}

// ZipAllWith combines the receiver with an arbitrary general sequence,
// pairwise up to the length of the longer operand. Positions past the
// shorter operand use the fill function of the side that still has
// elements: left for leftover ns elements, right for leftover other
// elements. The result length is the max of the two, hence non-empty.
func ZipAllWith[T, U, V any](ns NonEmptySeq[T], other seq.Seq[U], left func(T) V, right func(U) V, both func(T, U) V) NonEmptySeq[V] {
	n, m := ns.Len(), other.Len()
	total := n
	if m > total {
		total = m
	}
	out := make([]V, 0, total)
	for i := 0; i < total; i++ {
		switch {
		case i < n && i < m:
			x, _ := ns.elems.Get(i)
			y, _ := other.Get(i)
			out = append(out, both(x, y))
		case i < n:
			x, _ := ns.elems.Get(i)
			out = append(out, left(x))
		default:
			y, _ := other.Get(i)
			out = append(out, right(y))
		}
	}
	return NonEmptySeq[V]{elems: seq.FromSlice(out)}
}

// ZipWithIndex pairs every element with its 0-based position.
func ZipWithIndex[T any](ns NonEmptySeq[T]) NonEmptySeq[Indexed[T]] {
	return ZipWithIndexFrom(ns, 0)
}

// ZipWithIndexFrom pairs every element with its position, counting from
// offset.
func ZipWithIndexFrom[T any](ns NonEmptySeq[T], offset int) NonEmptySeq[Indexed[T]] {
	i := offset
	return Map(ns, func(v T) Indexed[T] {
		idx := Indexed[T]{Index: i, Value: v}
		i++
		return idx
	})
}

// ------------------------------
// Effectful traversal
// ------------------------------

// MapTask runs one task per element, strictly in element order, one at a
// time. The first failure short-circuits the remaining work and becomes
// the overall error; no partial results are exposed. On success the
// results keep the original order.
func MapTask[T, U any](ctx context.Context, ns NonEmptySeq[T], f func(T) task.Task[U]) (NonEmptySeq[U], error) {
	out := make([]U, 0, ns.Len())
	for v := range ns.elems.All() {
		u, err := f(v).Run(ctx)
		if err != nil {
			return NonEmptySeq[U]{}, err
		}
		out = append(out, u)
	}
	return NonEmptySeq[U]{elems: seq.FromSlice(out)}, nil
}

// MapTaskParallel runs every task concurrently and waits for all of them.
// Successful results are reassembled in original element order regardless
// of completion order. The first error wins and cancels the context the
// remaining tasks observe.
func MapTaskParallel[T, U any](ctx context.Context, ns NonEmptySeq[T], f func(T) task.Task[U]) (NonEmptySeq[U], error) {
	results := make([]U, ns.Len())
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range ns.elems.Slice() {
		g.Go(func() error {
			u, err := f(v).Run(gctx)
			if err != nil {
				return err
			}
			results[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NonEmptySeq[U]{}, err
	}
	return NonEmptySeq[U]{elems: seq.FromSlice(results)}, nil
}
