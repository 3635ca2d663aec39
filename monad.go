// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Monad operations for deferred effects.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as direct implementations to
// avoid intermediate closure allocations.
//
// Laws that every composable type in this package satisfies, verified in
// property_test.go:
//  1. Left identity:  Bind(Pure(a), f) ≡ f(a)
//  2. Right identity: Bind(m, Pure) ≡ m
//  3. Associativity:  Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))

// Bind sequences a dependent effect (monadic bind).
// It runs m, then passes the result to f to obtain the next effect and
// runs that one. m's side effects are fully complete before the effect
// produced by f starts. If m fails, f is never called and the error
// propagates unchanged.
func Bind[A, B any](m IO[A], f func(A) IO[B]) IO[B] {
	return func() (B, error) {
		a, err := m()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)()
	}
}

// Map applies a pure function to the eventual result of an effect.
//
// Allocation note: Map is equivalent to Bind(m, compose(Pure, f)) but
// avoids the intermediate Pure closure, making it the preferred choice
// when the transformation is pure (cannot fail, performs no effects).
func Map[A, B any](m IO[A], f func(A) B) IO[B] {
	return func() (B, error) {
		a, err := m()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// TryMap applies a fallible function to the eventual result of an effect.
// An error returned by f fails the resulting IO.
func TryMap[A, B any](m IO[A], f func(A) (B, error)) IO[B] {
	return func() (B, error) {
		a, err := m()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)
	}
}

// Then sequences two effects, discarding the first result and keeping only
// its effect ordering. This is more efficient than Bind when the second
// effect does not depend on the first result.
func Then[A, B any](m IO[A], n IO[B]) IO[B] {
	return func() (B, error) {
		if _, err := m(); err != nil {
			var zero B
			return zero, err
		}
		return n()
	}
}
