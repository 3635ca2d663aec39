// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"fmt"
	"iter"
)

// Stream transformations. Every transformation returns a new Stream
// wrapping a new cursor factory; none of them traverse eagerly.
//
// Transformations whose output element type differs from the input are
// package-level functions (Go methods cannot introduce type parameters);
// element-preserving transformations are methods on Stream.

// MapStream transforms each element with a pure function.
func MapStream[A, B any](s Stream[A], f func(A) B) Stream[B] {
	return func(yield func(B) bool) {
		for a := range s {
			if !yield(f(a)) {
				return
			}
		}
	}
}

// FlatMapStream lazily expands each element into a sub-stream and flattens
// the results in outer-then-inner order (monadic bind).
func FlatMapStream[A, B any](s Stream[A], f func(A) Stream[B]) Stream[B] {
	return func(yield func(B) bool) {
		for a := range s {
			for b := range f(a) {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// ThenStream sequences two streams, discarding each element of the first
// and substituting the second stream's elements (FlatMapStream with a
// constant function).
func ThenStream[A, B any](s Stream[A], next Stream[B]) Stream[B] {
	return FlatMapStream(s, func(A) Stream[B] { return next })
}

// FlattenStream flattens a stream of slices into a stream of their
// elements, in order.
func FlattenStream[A any](s Stream[[]A]) Stream[A] {
	return func(yield func(A) bool) {
		for group := range s {
			for _, a := range group {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// DistinctStream removes duplicate elements across the entire traversal,
// preserving first-occurrence order. Each traversal allocates a fresh seen
// set, so the deduplication restarts with the cursor.
func DistinctStream[A comparable](s Stream[A]) Stream[A] {
	return func(yield func(A) bool) {
		seen := make(map[A]struct{})
		for a := range s {
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			if !yield(a) {
				return
			}
		}
	}
}

// ZipStream pairs elements of two streams positionally, stopping at the
// shorter one.
func ZipStream[A, B any](s Stream[A], other Stream[B]) Stream[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(other.Seq())
		defer stop()
		for a := range s {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{Fst: a, Snd: b}) {
				return
			}
		}
	}
}

// Filter keeps only the elements for which predicate returns true.
func (s Stream[A]) Filter(predicate func(A) bool) Stream[A] {
	return func(yield func(A) bool) {
		for a := range s {
			if !predicate(a) {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Take bounds the stream to its first n elements. This is the usual way to
// bound an unbounded stream before a materializing terminal.
func (s Stream[A]) Take(n int) Stream[A] {
	return func(yield func(A) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for a := range s {
			if !yield(a) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// Skip drops the first n elements.
func (s Stream[A]) Skip(n int) Stream[A] {
	return func(yield func(A) bool) {
		skipped := 0
		for a := range s {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// TakeWhile yields elements while predicate holds, then stops.
func (s Stream[A]) TakeWhile(predicate func(A) bool) Stream[A] {
	return func(yield func(A) bool) {
		for a := range s {
			if !predicate(a) {
				return
			}
			if !yield(a) {
				return
			}
		}
	}
}

// DropWhile discards elements while predicate holds, then yields the rest.
func (s Stream[A]) DropWhile(predicate func(A) bool) Stream[A] {
	return func(yield func(A) bool) {
		dropping := true
		for a := range s {
			if dropping {
				if predicate(a) {
					continue
				}
				dropping = false
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Concat appends another stream after this one.
func (s Stream[A]) Concat(other Stream[A]) Stream[A] {
	return func(yield func(A) bool) {
		for a := range s {
			if !yield(a) {
				return
			}
		}
		for a := range other {
			if !yield(a) {
				return
			}
		}
	}
}

// ChunkStream groups consecutive elements into slices of the given size;
// the final chunk may be shorter. Each chunk is freshly allocated — callers
// may retain chunks without aliasing later ones.
//
// ChunkStream is a package-level function rather than a Stream method
// because a method returning Stream[[]A] would instantiate Stream
// recursively, which the compiler rejects as an instantiation cycle.
//
// ChunkStream panics if size < 1.
func ChunkStream[A any](s Stream[A], size int) Stream[[]A] {
	if size < 1 {
		panic(fmt.Sprintf("eff: Chunk: size must be >= 1, got %d", size))
	}
	return func(yield func([]A) bool) {
		group := make([]A, 0, size)
		for a := range s {
			group = append(group, a)
			if len(group) == size {
				if !yield(group) {
					return
				}
				group = make([]A, 0, size)
			}
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}
