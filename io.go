// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// IO represents a deferred effect: a zero-argument unit of work whose
// side effects occur only when Run is called.
//
// The closure reports failure by returning a non-nil error. An error
// propagates out of Run unchanged unless the caller opts into an error
// boundary via [Attempt], [Recover], or [Retry].
//
// IO values are descriptions, not executions: constructing or composing
// them performs no observable side effects. Run re-invokes the closure on
// every call — there is no memoization, and two runs of the same IO may
// observe different results if the closure is impure. Use [Once] for
// explicit at-most-once execution.
type IO[A any] func() (A, error)

// Pure lifts a plain value into IO with no effect and no possibility of
// failure. Running the result yields the value as-is.
func Pure[A any](a A) IO[A] {
	return func() (A, error) {
		return a, nil
	}
}

// Suspend creates an IO from an effectful closure.
// This is the primitive constructor; nothing executes until Run.
func Suspend[A any](f func() (A, error)) IO[A] {
	return IO[A](f)
}

// Fail creates an IO that always fails with err.
func Fail[A any](err error) IO[A] {
	return func() (A, error) {
		var zero A
		return zero, err
	}
}

// Run invokes the closure and returns its outcome. This is the only
// operation that performs observable side effects. It blocks until the
// closure — and any effects sequenced into it through [Bind] — completes.
func (m IO[A]) Run() (A, error) {
	return m()
}
