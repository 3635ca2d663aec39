// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Bounded-parallel execution of deferred effects.
//
// This is the only place the package introduces concurrency: the default
// execution model everywhere else is single-threaded and strictly
// sequential. Workers share nothing but the output channel, which has one
// slot per submitted effect, so no further locking discipline is needed.

// ParallelSequence combines a finite list of effects into a single effect
// that, when run, dispatches all of them to a pool of at most workers
// concurrent goroutines and collects the results.
//
// Results arrive in completion order, not submission order — callers that
// need submission order should tag results with their originating index
// before dispatch. A failing effect does not cancel or affect its
// siblings; every effect runs to completion. If any effect fails, the
// combined effect fails with the first observed error after all effects
// finish. Wrap each effect with [Attempt] to capture failures per item
// instead of failing the batch.
//
// ParallelSequence panics if workers < 1.
func ParallelSequence[A any](workers int, effects []IO[A]) IO[[]A] {
	if workers < 1 {
		panic(fmt.Sprintf("eff: ParallelSequence: workers must be >= 1, got %d", workers))
	}
	return func() ([]A, error) {
		results := make(chan A, len(effects))
		var g errgroup.Group
		g.SetLimit(workers)
		for _, m := range effects {
			g.Go(func() error {
				a, err := m()
				if err != nil {
					return err
				}
				results <- a
				return nil
			})
		}
		err := g.Wait()
		close(results)
		out := make([]A, 0, len(effects))
		for a := range results {
			out = append(out, a)
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// ParallelTraverse maps f over items to obtain effects, then runs them
// with ParallelSequence.
func ParallelTraverse[A, B any](workers int, items []A, f func(A) IO[B]) IO[[]B] {
	effects := make([]IO[B], len(items))
	for i, item := range items {
		effects[i] = f(item)
	}
	return ParallelSequence(workers, effects)
}
