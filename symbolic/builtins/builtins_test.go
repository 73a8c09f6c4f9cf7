package builtins

import (
	"math"
	"testing"
)

func TestNamesAreInjective(t *testing.T) {
	seen := make(map[string]Func)
	for fn, name := range names {
		if other, ok := seen[name]; ok {
			t.Errorf("%s: name shared by %d and %d", name, fn, other)
		}
		seen[name] = fn
		got, ok := Lookup(name)
		if !ok || got != fn {
			t.Errorf("%s: lookup mismatched! want %d, got %d", name, fn, got)
		}
		if fn.String() != name {
			t.Errorf("%d: name mismatched! want %s, got %s", fn, name, fn.String())
		}
	}
	if len(Names()) != len(names) {
		t.Errorf("names count mismatched! want %d, got %d", len(names), len(Names()))
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		Input string
		Want  Func
		Size  int
	}{
		{Input: "sinx", Want: Sin, Size: 3},
		{Input: "sinhx", Want: Sinh, Size: 4},
		{Input: "cosecx", Want: Cosec, Size: 5},
		{Input: "arcsecx", Want: Arcsec, Size: 6},
		{Input: "arccscx", Want: Arccsc, Size: 6},
		{Input: "logx", Want: Log, Size: 3},
	}
	for _, c := range tests {
		got, size, ok := Match(c.Input)
		if !ok {
			t.Errorf("%s: no function matched", c.Input)
			continue
		}
		if got != c.Want || size != c.Size {
			t.Errorf("%s: result mismatched! want %s/%d, got %s/%d", c.Input, c.Want, c.Size, got, size)
		}
	}
	for _, str := range []string{"x", "xsin", "arc", "pi"} {
		if fn, _, ok := Match(str); ok {
			t.Errorf("%s: unexpected match %s", str, fn)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		Func  Func
		Input float64
		Want  float64
	}{
		{Func: Sin, Input: 0, Want: 0},
		{Func: Cos, Input: 0, Want: 1},
		{Func: Sec, Input: 0, Want: 1},
		{Func: Log, Input: math.E, Want: 1},
		{Func: Exp, Input: 0, Want: 1},
		{Func: Sqrt, Input: 16, Want: 4},
		{Func: Abs, Input: -3, Want: 3},
		{Func: Arctan, Input: 1, Want: math.Pi / 4},
		{Func: Arccot, Input: 1, Want: math.Pi / 4},
		{Func: Arcsec, Input: 1, Want: 0},
		{Func: Arccsc, Input: 1, Want: math.Pi / 2},
		{Func: Tanh, Input: 0, Want: 0},
	}
	for _, c := range tests {
		got, err := c.Func.Apply(c.Input)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Func, err)
			continue
		}
		if math.Abs(got-c.Want) > 1e-12 {
			t.Errorf("%s(%f): result mismatched! want %f, got %f", c.Func, c.Input, c.Want, got)
		}
	}
	if _, err := Invalid.Apply(1); err == nil {
		t.Errorf("invalid function should not be applied")
	}
}
