// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "iter"

// Stream represents a lazily-evaluated sequence of values.
//
// A Stream is a cursor factory, not a materialized collection: every
// traversal — a range statement or a terminal operation — invokes the
// function again and walks a fresh cursor over the same logical sequence.
// Constructing or transforming a Stream never traverses elements; only
// terminal operations do.
//
// Streams may be unbounded ([RangeFrom], [Repeat]); bound them with Take,
// TakeWhile, or Find before a materializing terminal. Re-running a
// terminal on the same Stream yields the same logical sequence, unless the
// source wraps a single-use external resource — making such a source
// restartable is the caller's responsibility.
//
// Stream is assignable to iter.Seq, so transformed streams compose with
// any range-over-func consumer.
type Stream[A any] func(yield func(A) bool)

// PureStream lifts a single value into a one-element stream.
func PureStream[A any](a A) Stream[A] {
	return func(yield func(A) bool) {
		yield(a)
	}
}

// Of creates a stream over the given values.
func Of[A any](values ...A) Stream[A] {
	return FromSlice(values)
}

// FromSlice creates a stream that traverses the slice in order.
// The slice is not copied; mutating it between traversals changes the
// observed sequence.
func FromSlice[A any](values []A) Stream[A] {
	return func(yield func(A) bool) {
		for _, a := range values {
			if !yield(a) {
				return
			}
		}
	}
}

// FromSeq adapts an iterator sequence into a Stream. The sequence must be
// re-invocable for the stream to honor the restartability contract.
func FromSeq[A any](seq iter.Seq[A]) Stream[A] {
	return Stream[A](seq)
}

// Seq returns the stream as an iter.Seq for use with range-over-func
// consumers outside this package.
func (s Stream[A]) Seq() iter.Seq[A] {
	return iter.Seq[A](s)
}

// Range creates a stream of integers from start (inclusive) to stop
// (exclusive).
func Range(start, stop int) Stream[int] {
	return RangeStep(start, stop, 1)
}

// RangeStep creates a stream of integers from start to stop with the given
// step. A negative step counts down. RangeStep panics if step is zero.
func RangeStep(start, stop, step int) Stream[int] {
	if step == 0 {
		panic("eff: RangeStep: step must be non-zero")
	}
	return func(yield func(int) bool) {
		if step > 0 {
			for i := start; i < stop; i += step {
				if !yield(i) {
					return
				}
			}
			return
		}
		for i := start; i > stop; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// RangeFrom creates an unbounded stream of integers counting up from start.
func RangeFrom(start int) Stream[int] {
	return func(yield func(int) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat creates an unbounded stream repeating the same value.
func Repeat[A any](a A) Stream[A] {
	return func(yield func(A) bool) {
		for yield(a) {
		}
	}
}

// RepeatN creates a stream repeating the value n times.
func RepeatN[A any](a A, n int) Stream[A] {
	return func(yield func(A) bool) {
		for i := 0; i < n; i++ {
			if !yield(a) {
				return
			}
		}
	}
}
