// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Function combinators: pure glue for building pipeline stages.

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Compose composes two functions right to left: Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Pipe2 composes two functions left to right: Pipe2(f, g)(x) == g(f(x)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 composes three functions left to right.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Identity returns its argument.
func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always returns a.
func Const[A, B any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Flip swaps the argument order of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Tap runs a side-effecting function on the value and passes the value
// through unchanged. Useful for observation points inside pipelines.
func Tap[A any](f func(A)) func(A) A {
	return func(a A) A {
		f(a)
		return a
	}
}

// Curry2 converts a binary function into a chain of unary functions.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 converts a ternary function into a chain of unary functions.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}
