// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "errors"

// Terminal operations. These are the only Stream operations that traverse
// elements; each call restarts the cursor factory.

// ErrNoElement is returned by Find when no element satisfies the predicate.
var ErrNoElement = errors.New("eff: no element found")

// Collect fully materializes the stream into a slice.
// Never call Collect on an unbounded stream without bounding it first.
func (s Stream[A]) Collect() []A {
	var out []A
	for a := range s {
		out = append(out, a)
	}
	return out
}

// Count traverses the stream and returns the number of elements.
func (s Stream[A]) Count() int {
	n := 0
	for range s {
		n++
	}
	return n
}

// ForEach applies a side-effecting function to each element, in order.
func (s Stream[A]) ForEach(f func(A)) {
	for a := range s {
		f(a)
	}
}

// Find returns Success with the first element satisfying the predicate, or
// Failure(ErrNoElement) if the traversal ends without a match. The scan
// stops at the first match.
func (s Stream[A]) Find(predicate func(A) bool) Result[A] {
	for a := range s {
		if predicate(a) {
			return Success(a)
		}
	}
	return Failure[A](ErrNoElement)
}

// Exists reports whether any element satisfies the predicate,
// short-circuiting at the first match.
func (s Stream[A]) Exists(predicate func(A) bool) bool {
	for a := range s {
		if predicate(a) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies the predicate,
// short-circuiting at the first counterexample. All is true for the empty
// stream.
func (s Stream[A]) All(predicate func(A) bool) bool {
	for a := range s {
		if !predicate(a) {
			return false
		}
	}
	return true
}

// FoldStream left-folds the stream into a single value starting from seed.
func FoldStream[A, B any](s Stream[A], seed B, f func(B, A) B) B {
	acc := seed
	for a := range s {
		acc = f(acc, a)
	}
	return acc
}
