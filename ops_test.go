// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/eff"
)

func TestCompose(t *testing.T) {
	double := func(x int) int { return x * 2 }
	str := strconv.Itoa
	// Compose(f, g)(x) = f(g(x)): double runs first.
	got := eff.Compose(str, double)(21)
	if got != "42" {
		t.Fatalf("got %q, want \"42\"", got)
	}
}

func TestPipe2(t *testing.T) {
	got := eff.Pipe2(func(x int) int { return x + 1 }, strconv.Itoa)(41)
	if got != "42" {
		t.Fatalf("got %q, want \"42\"", got)
	}
}

func TestPipe3(t *testing.T) {
	got := eff.Pipe3(
		func(x int) int { return x + 1 },
		func(x int) int { return x * 2 },
		strconv.Itoa,
	)(20)
	if got != "42" {
		t.Fatalf("got %q, want \"42\"", got)
	}
}

func TestIdentityAndConst(t *testing.T) {
	if eff.Identity(7) != 7 {
		t.Fatal("Identity changed its argument")
	}
	always := eff.Const[string, int]("fixed")
	if always(1) != "fixed" || always(99) != "fixed" {
		t.Fatal("Const depends on its argument")
	}
}

func TestFlip(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	if eff.Flip(concat)("world", "hello") != "helloworld" {
		t.Fatal("Flip did not swap the arguments")
	}
}

func TestTapPassesThrough(t *testing.T) {
	var observed int
	got := eff.Tap(func(x int) { observed = x })(5)
	if got != 5 || observed != 5 {
		t.Fatalf("got %d (observed %d), want 5 both", got, observed)
	}
}

func TestCurry2(t *testing.T) {
	add := func(a, b int) int { return a + b }
	if eff.Curry2(add)(1)(2) != 3 {
		t.Fatal("Curry2(add)(1)(2) != 3")
	}
}

func TestCurry3(t *testing.T) {
	join := func(a, b, c string) string { return a + b + c }
	if eff.Curry3(join)("a")("b")("c") != "abc" {
		t.Fatal("Curry3(join)(a)(b)(c) != abc")
	}
}
