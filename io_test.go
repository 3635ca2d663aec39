// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/eff"
)

var errBoom = errors.New("boom")

func TestPureRun(t *testing.T) {
	got, err := eff.Pure(42).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestSuspendIsLazy(t *testing.T) {
	runs := 0
	m := eff.Suspend(func() (int, error) {
		runs++
		return 7, nil
	})
	if runs != 0 {
		t.Fatalf("construction ran the closure %d times, want 0", runs)
	}
	got := mustRun(t, m)
	if got != 7 || runs != 1 {
		t.Fatalf("got %d after %d runs, want 7 after 1", got, runs)
	}
}

func TestRunTwiceRunsTwice(t *testing.T) {
	runs := 0
	m := eff.Suspend(func() (int, error) {
		runs++
		return runs, nil
	})
	first := mustRun(t, m)
	second := mustRun(t, m)
	if first != 1 || second != 2 {
		t.Fatalf("got %d then %d, want 1 then 2 (no memoization)", first, second)
	}
}

func TestFail(t *testing.T) {
	_, err := eff.Fail[int](errBoom).Run()
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}
}

func TestMapIsLazy(t *testing.T) {
	applied := 0
	m := eff.Map(eff.Pure(10), func(x int) int {
		applied++
		return x * 3
	})
	if applied != 0 {
		t.Fatal("Map applied the function before Run")
	}
	got := mustRun(t, m)
	if got != 30 || applied != 1 {
		t.Fatalf("got %d after %d applications, want 30 after 1", got, applied)
	}
}

func TestMapPropagatesError(t *testing.T) {
	applied := false
	m := eff.Map(eff.Fail[int](errBoom), func(x int) int {
		applied = true
		return x
	})
	_, err := m.Run()
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}
	if applied {
		t.Fatal("Map applied the function after a failure")
	}
}

func TestTryMapError(t *testing.T) {
	m := eff.TryMap(eff.Pure(10), func(x int) (int, error) {
		return 0, errBoom
	})
	_, err := m.Run()
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}
}

func TestBindOrdering(t *testing.T) {
	var order []string
	first := eff.Suspend(func() (int, error) {
		order = append(order, "first")
		return 1, nil
	})
	m := eff.Bind(first, func(x int) eff.IO[int] {
		order = append(order, "bind")
		return eff.Suspend(func() (int, error) {
			order = append(order, "second")
			return x + 1, nil
		})
	})
	if len(order) != 0 {
		t.Fatalf("composition executed effects: %v", order)
	}
	got := mustRun(t, m)
	if got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	want := []string{"first", "bind", "second"}
	for i, step := range want {
		if order[i] != step {
			t.Fatalf("order %v, want %v", order, want)
		}
	}
}

func TestBindShortCircuitsOnError(t *testing.T) {
	called := false
	m := eff.Bind(eff.Fail[int](errBoom), func(x int) eff.IO[int] {
		called = true
		return eff.Pure(x)
	})
	_, err := m.Run()
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}
	if called {
		t.Fatal("Bind called f after a failure")
	}
}

func TestThenDiscardsFirstValue(t *testing.T) {
	var order []string
	first := eff.Suspend(func() (string, error) {
		order = append(order, "first")
		return "ignored", nil
	})
	second := eff.Suspend(func() (int, error) {
		order = append(order, "second")
		return 99, nil
	})
	got := mustRun(t, eff.Then(first, second))
	if got != 99 {
		t.Fatalf("got %d, want 99", got)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("order %v, want [first second]", order)
	}
}

func TestThenPropagatesFirstError(t *testing.T) {
	ran := false
	second := eff.Suspend(func() (int, error) {
		ran = true
		return 1, nil
	})
	_, err := eff.Then(eff.Fail[string](errBoom), second).Run()
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}
	if ran {
		t.Fatal("Then ran the second effect after a failure")
	}
}
