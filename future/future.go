// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package future

import (
	"context"

	"github.com/lilBunnyRabbit/optional/internal/try"
)

// Future is a one-shot completion holder for a value of type T. It settles
// exactly once, either resolved with a value or rejected with an error, and
// never changes state afterwards.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Resolved returns a Future already settled with v. Await returns
// immediately on it.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Rejected returns a Future already settled with err.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Go runs fn in a new goroutine and returns a Future which settles with its
// result. A panic inside fn is recovered and surfaces as a rejection
// carrying the panic value instead of crashing the process.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer try.Recover(&f.err)
		f.value, f.err = fn()
	}()
	return f
}

// Done returns a channel which is closed once the Future has settled. It is
// meant for use in select statements alongside other completion signals.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the Future settles or ctx ends, whichever happens
// first, and returns the settled value and error. When ctx ends first the
// zero value of T and ctx.Err() are returned; the Future itself is
// unaffected and can still be awaited again.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
