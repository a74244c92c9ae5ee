// pkg/task/task.go

// Package task provides a minimal effect runtime: a Task[T] describes a
// possibly-failing computation that runs only when invoked with a context.
package task

import "context"

// Task[T] is a deferred computation producing a T or an error.
type Task[T any] func(ctx context.Context) (T, error)

// Of returns a Task that always succeeds with v.
func Of[T any](v T) Task[T] {
	return func(ctx context.Context) (T, error) {
		return v, nil
	}
}

// Fail returns a Task that always fails with err.
func Fail[T any](err error) Task[T] {
	return func(ctx context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// FromFunc wraps fn as a Task.
func FromFunc[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return Task[T](fn)
}

// Run executes the Task. A context already cancelled fails fast without
// invoking the computation.
func (t Task[T]) Run(ctx context.Context) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return t(ctx)
}

// Bind applies fn to the result of t and returns the new Task.
func Bind[T any, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		res, err := t.Run(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(res).Run(ctx)
	}
}

// Then is similar to Bind but for functions that don't fail.
func Then[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return Bind(t, func(res T) Task[U] {
		return Of(fn(res))
	})
}

// Pending[T] represents the result of a Task already running in the
// background.
type Pending[T any] struct {
	resultChan chan T
	errChan    chan error
}

// Async starts t on its own goroutine and returns a Pending[T].
func Async[T any](ctx context.Context, t Task[T]) Pending[T] {
	p := Pending[T]{
		resultChan: make(chan T, 1),
		errChan:    make(chan error, 1),
	}
	go func() {
		res, err := t.Run(ctx)
		if err != nil {
			p.errChan <- err
			return
		}
		p.resultChan <- res
	}()
	return p
}

// Await waits for and returns the result of the Pending computation.
func (p Pending[T]) Await() (T, error) {
	select {
	case res := <-p.resultChan:
		return res, nil
	case err := <-p.errChan:
		var zero T
		return zero, err
	}
}
