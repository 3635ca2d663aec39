// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Result represents a value that is either a Success or a Failure.
// Exactly one tag is active; a Result is immutable after construction and
// every transformation produces a new Result.
//
// Failures are data, not control flow: once an error is inside a Result it
// propagates by FlatMapResult short-circuiting, never by panicking.
type Result[A any] struct {
	ok    bool
	value A
	err   error
}

// Success creates a Result holding a success value.
func Success[A any](a A) Result[A] {
	return Result[A]{ok: true, value: a}
}

// Failure creates a Result holding an error.
func Failure[A any](err error) Result[A] {
	return Result[A]{err: err}
}

// IsSuccess returns true if this is a Success value.
func (r Result[A]) IsSuccess() bool {
	return r.ok
}

// IsFailure returns true if this is a Failure value.
func (r Result[A]) IsFailure() bool {
	return !r.ok
}

// Get returns the success value and true, or zero and false.
func (r Result[A]) Get() (A, bool) {
	if r.ok {
		return r.value, true
	}
	var zero A
	return zero, false
}

// Err returns the failure error and true, or nil and false.
func (r Result[A]) Err() (error, bool) {
	if !r.ok {
		return r.err, true
	}
	return nil, false
}

// GetOrElse returns the success value, or def on Failure.
func (r Result[A]) GetOrElse(def A) A {
	if r.ok {
		return r.value
	}
	return def
}

// OrElse returns r on Success, or alt on Failure.
func (r Result[A]) OrElse(alt Result[A]) Result[A] {
	if r.ok {
		return r
	}
	return alt
}

// Recover turns a Failure into a Success by applying f to the error.
// On Success, r is returned unchanged.
func (r Result[A]) Recover(f func(error) A) Result[A] {
	if r.ok {
		return r
	}
	return Success(f(r.err))
}

// TryRecover turns a Failure into a Success by applying f to the error;
// an error returned by f becomes a new Failure. On Success, r is returned
// unchanged.
func (r Result[A]) TryRecover(f func(error) (A, error)) Result[A] {
	if r.ok {
		return r
	}
	a, err := f(r.err)
	if err != nil {
		return Failure[A](err)
	}
	return Success(a)
}

// MapResult applies a pure function to the success value.
// A Failure passes through with the same error value, untouched.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.ok {
		return Failure[B](r.err)
	}
	return Success(f(r.value))
}

// TryMapResult applies a fallible function to the success value; an error
// returned by f becomes a Failure. A Failure passes through untouched.
func TryMapResult[A, B any](r Result[A], f func(A) (B, error)) Result[B] {
	if !r.ok {
		return Failure[B](r.err)
	}
	b, err := f(r.value)
	if err != nil {
		return Failure[B](err)
	}
	return Success(b)
}

// FlatMapResult sequences two Result computations (monadic bind).
// On Success it returns f's result directly, without rewrapping; on
// Failure it short-circuits and f is never called. Errors produced inside
// f are f's own to report through the Result it returns.
func FlatMapResult[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if !r.ok {
		return Failure[B](r.err)
	}
	return f(r.value)
}

// ThenResult sequences two Results, discarding the first success value.
func ThenResult[A, B any](r Result[A], next Result[B]) Result[B] {
	if !r.ok {
		return Failure[B](r.err)
	}
	return next
}

// MatchResult pattern matches on the Result, calling onFailure or onSuccess.
func MatchResult[A, T any](r Result[A], onFailure func(error) T, onSuccess func(A) T) T {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
