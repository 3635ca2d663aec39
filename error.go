// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "fmt"

// Error boundaries for deferred effects.
//
// A plain IO propagates its error out of Run unchanged. Attempt, Recover,
// and Retry are the opt-in boundaries that intercept it; nothing else in
// this package swallows an error.

// Attempt wraps the effect in an error boundary. Running the returned IO
// executes the closure and yields Success on normal completion or Failure
// carrying the error; the returned IO itself never fails.
func Attempt[A any](m IO[A]) IO[Result[A]] {
	return func() (Result[A], error) {
		a, err := m()
		if err != nil {
			return Failure[A](err), nil
		}
		return Success(a), nil
	}
}

// Recover runs the effect; on failure it calls handler with the error and
// yields that value instead. The returned IO never fails.
func Recover[A any](m IO[A], handler func(error) A) IO[A] {
	return func() (A, error) {
		a, err := m()
		if err != nil {
			return handler(err), nil
		}
		return a, nil
	}
}

// Retry runs the effect up to maxAttempts times, stopping at the first
// attempt that succeeds. If every attempt fails, the error of the last
// attempt surfaces. Attempts are sequential with no delay between them;
// all errors trigger a retry — there is no classification of retryable
// errors at this layer.
//
// Retry panics if maxAttempts < 1.
func Retry[A any](m IO[A], maxAttempts int) IO[A] {
	if maxAttempts < 1 {
		panic(fmt.Sprintf("eff: Retry: maxAttempts must be >= 1, got %d", maxAttempts))
	}
	return func() (A, error) {
		var a A
		var err error
		for attempt := 0; attempt < maxAttempts; attempt++ {
			a, err = m()
			if err == nil {
				return a, nil
			}
		}
		var zero A
		return zero, err
	}
}
