// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "sync"

// Sequence combines a list of effects into a single effect that, when run,
// executes each input effect in list order and collects the results into a
// slice matching input order. The first failure aborts the remaining
// effects and surfaces its error.
func Sequence[A any](effects []IO[A]) IO[[]A] {
	return func() ([]A, error) {
		out := make([]A, 0, len(effects))
		for _, m := range effects {
			a, err := m()
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return out, nil
	}
}

// Traverse maps f over items to obtain effects, then sequences them.
// Effect construction is immediate; execution is deferred until Run.
func Traverse[A, B any](items []A, f func(A) IO[B]) IO[[]B] {
	effects := make([]IO[B], len(items))
	for i, item := range items {
		effects[i] = f(item)
	}
	return Sequence(effects)
}

// Once wraps the effect with at-most-once execution: the first Run invokes
// the closure and every later Run returns the cached outcome, error
// included. This is the explicit opt-in counterpart of Run's
// no-memoization default.
//
// Not suitable for effects whose repetition is the point (writes, retries).
func Once[A any](m IO[A]) IO[A] {
	run := sync.OnceValues(func() (A, error) {
		return m()
	})
	return IO[A](run)
}
