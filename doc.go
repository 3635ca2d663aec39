// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff provides composable deferred effects, explicit
// success/failure results, and lazy sequences in Go.
//
// The three core types share one composition contract — pure, map, bind —
// and satisfy the monad laws (left identity, right identity,
// associativity). A caller describes a pipeline of computations, including
// side-effecting ones, without executing anything; execution happens
// exactly once, at a single terminal call site.
//
// # Design Philosophy
//
// eff provides:
//   - Descriptions, not executions: composing values never performs effects
//   - Failures as data once captured, ordinary Go errors until then
//   - Restartable lazy traversal compatible with range-over-func
//
// Go methods cannot introduce type parameters, so polymorphic operations
// are package-level generic functions. Operations on [IO] use the
// unsuffixed names (Bind, Map, Then); counterparts for the other types
// carry a type suffix (FlatMapResult, MapStream, ...).
//
// # Deferred Effects
//
// [IO] wraps a zero-argument unit of work that runs only when [IO.Run] is
// called, and re-runs on every call:
//
//   - [Pure]: lift a value, no effect, no failure
//   - [Suspend]: create an effect from a closure
//   - [Fail]: an effect that always fails
//   - [Bind], [Map], [TryMap], [Then]: composition
//   - [Attempt]: error boundary producing a [Result]
//   - [Recover]: substitute a value for a failure
//   - [Retry]: sequential re-execution, last error surfaces
//   - [Sequence], [Traverse]: ordered batch execution
//   - [Once]: explicit at-most-once execution
//   - [Bracket], [OnError]: failure-safe resource handling
//   - [ReadFile], [ReadLines], [WriteFile], [AppendFile], [PrintLine]:
//     storage and console collaborators as effects
//
// # Results
//
// [Result] is a disjoint success/failure container for typed error
// propagation:
//
//   - [Success], [Failure]: constructors
//   - [Result.IsSuccess], [Result.IsFailure], [Result.Get], [Result.Err]
//   - [Result.GetOrElse], [Result.OrElse], [Result.Recover], [Result.TryRecover]
//   - [MapResult], [TryMapResult], [FlatMapResult], [ThenResult], [MatchResult]
//
// # Lazy Sequences
//
// [Stream] is a restartable cursor factory: each traversal walks a fresh
// cursor over the same logical sequence, and nothing is computed before a
// terminal operation. Streams may be unbounded when paired with a bounding
// operation:
//
//   - Constructors: [PureStream], [Of], [FromSlice], [FromSeq], [Range],
//     [RangeStep], [RangeFrom], [Repeat], [RepeatN]
//   - Transformations: [MapStream], [FlatMapStream], [ThenStream],
//     [FlattenStream], [DistinctStream], [ZipStream], [Stream.Filter],
//     [Stream.Take], [Stream.Skip], [Stream.TakeWhile], [Stream.DropWhile],
//     [Stream.Concat], [ChunkStream]
//   - Terminals: [Stream.Collect], [Stream.Count], [Stream.ForEach],
//     [Stream.Find], [Stream.Exists], [Stream.All], [FoldStream]
//
// # Bounded Parallelism
//
// The default execution model is single-threaded and strictly sequential.
// [ParallelSequence] and [ParallelTraverse] are the explicit opt-in:
// effects dispatch to a fixed-size worker pool and results collect in
// completion order.
//
// # Memoization
//
// [Cache] is an explicit, caller-owned memoization cache (no implicit
// global state); [Memoize] and [MemoizeIO] wrap functions over it.
//
// # Example
//
//	greet := eff.Map(eff.Pure("world"), func(s string) string {
//		return "hello, " + s
//	})
//	squares := eff.MapStream(eff.RangeFrom(1), func(n int) int { return n * n }).
//		Take(3).
//		Collect()
//	// greet.Run() == "hello, world", nil; squares == []int{1, 4, 9}
package eff
