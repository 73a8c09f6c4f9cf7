package constants

import (
	"math"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		Name  string
		Want  float64
		Found bool
	}{
		{Name: "pi", Want: math.Pi, Found: true},
		{Name: "π", Want: math.Pi, Found: true},
		{Name: "euler", Want: math.E, Found: true},
		{Name: "degree", Want: math.Pi / 180, Found: true},
		{Name: "infinity", Want: math.Inf(1), Found: true},
		{Name: "x", Found: false},
		{Name: "PI", Found: false},
	}
	for _, c := range tests {
		got, ok := Lookup(c.Name)
		if ok != c.Found {
			t.Errorf("%s: lookup mismatched! want %t, got %t", c.Name, c.Found, ok)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: value mismatched! want %f, got %f", c.Name, c.Want, got)
		}
		if IsConstant(c.Name) != c.Found {
			t.Errorf("%s: IsConstant disagrees with Lookup", c.Name)
		}
	}
	v, ok := Lookup("nan")
	if !ok || !math.IsNaN(v) {
		t.Errorf("nan: expected NaN, got %f", v)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		Value float64
		Want  string
	}{
		{Value: math.Pi, Want: "pi"},
		{Value: math.E, Want: "e"},
		{Value: math.Pi / 180, Want: "deg"},
		{Value: math.Inf(1), Want: "inf"},
		{Value: 3.14, Want: ""},
		{Value: math.Inf(-1), Want: ""},
		{Value: math.NaN(), Want: ""},
	}
	for _, c := range tests {
		got, _ := Name(c.Value)
		if got != c.Want {
			t.Errorf("%f: name mismatched! want %q, got %q", c.Value, c.Want, got)
		}
	}
}
