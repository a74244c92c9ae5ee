// pkg/option/option.go

// Package option provides an optional value: every Option is either a Some
// holding a value or a None holding nothing.
package option

import "fmt"

// Option represents a value that may be absent. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the held value and panics on None.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("option: MustGet on None")
	}
	return o.value
}

// GetOrElse returns the held value, or fallback on None.
func (o Option[T]) GetOrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// String renders "Some(v)" or "None".
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies fn to the held value, propagating None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}
