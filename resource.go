// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Resource safety primitives for failure-safe resource management.
// These provide the minimal interface for bracketed resource handling.

// Bracket provides failure-safe resource acquisition and release.
// This follows the bracket pattern: acquire → use → release, where release
// is guaranteed to run even if use fails.
//
// An acquisition failure propagates as the effect's error (there is
// nothing to release). A failure inside use is captured as a Failure
// Result. A release failure propagates as the effect's error and takes
// precedence over the use outcome.
func Bracket[R, A any](
	acquire IO[R],
	release func(R) IO[struct{}],
	use func(R) IO[A],
) IO[Result[A]] {
	return func() (Result[A], error) {
		resource, err := acquire()
		if err != nil {
			var zero Result[A]
			return zero, err
		}

		a, useErr := use(resource)()

		// Always release the resource.
		if _, relErr := release(resource)(); relErr != nil {
			var zero Result[A]
			return zero, relErr
		}
		if useErr != nil {
			return Failure[A](useErr), nil
		}
		return Success(a), nil
	}
}

// OnError runs cleanup only if the effect fails, then re-surfaces the
// original error. A failure inside cleanup replaces the original error.
func OnError[A any](m IO[A], cleanup func(error) IO[struct{}]) IO[A] {
	return func() (A, error) {
		a, err := m()
		if err == nil {
			return a, nil
		}
		var zero A
		if _, cleanupErr := cleanup(err)(); cleanupErr != nil {
			return zero, cleanupErr
		}
		return zero, err
	}
}
