// Package future provides a single-resolution promise/future pair.
//
// A Promise is resolved exactly once, with either a value or an error.
// Any number of goroutines may wait on the Future; all of them observe the
// same outcome.
package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrAlreadyResolved is returned by the second attempt to resolve a Promise.
var ErrAlreadyResolved = errors.New("promise already resolved")

type state[T any] struct {
	resolving atomic.Bool
	done      chan struct{}
	value     T
	err       error
}

// Promise is the write side.
type Promise[T any] struct {
	s *state[T]
}

// Future is the read side.
type Future[T any] struct {
	s *state[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{s: &state[T]{done: make(chan struct{})}}
}

// Future returns the read side of p. It may be called any number of times.
func (p *Promise[T]) Future() *Future[T] {
	return &Future[T]{s: p.s}
}

func (p *Promise[T]) SetValue(v T) error {
	return p.resolve(v, nil)
}

func (p *Promise[T]) SetError(err error) error {
	var zero T
	return p.resolve(zero, err)
}

func (p *Promise[T]) resolve(v T, err error) error {
	if !p.s.resolving.CompareAndSwap(false, true) {
		return ErrAlreadyResolved
	}
	p.s.value = v
	p.s.err = err
	close(p.s.done)
	return nil
}

// Done is closed once the promise has been resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.s.done
}

// Ready reports whether the outcome is available.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.s.done:
		return true
	default:
		return false
	}
}

// TryGet returns the outcome if available; ok is false otherwise.
func (f *Future[T]) TryGet() (v T, err error, ok bool) {
	if !f.Ready() {
		return v, nil, false
	}
	return f.s.value, f.s.err, true
}

// Wait blocks until the promise is resolved or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.s.done:
		return f.s.value, f.s.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
