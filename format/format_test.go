package format

import (
	"errors"
	"math"
	"testing"
)

func TestFormatter(t *testing.T) {
	tests := []struct {
		Pattern string
		Input   float64
		Want    string
	}{
		{
			Pattern: "###.##",
			Input:   42,
			Want:    "42",
		},
		{
			Pattern: "###.##",
			Input:   3.14159,
			Want:    "3.14",
		},
		{
			Pattern: "###.00",
			Input:   2,
			Want:    "2.00",
		},
		{
			Pattern: "#000",
			Input:   7,
			Want:    "007",
		},
		{
			Pattern: "#,###",
			Input:   1234567,
			Want:    "1,234,567",
		},
		{
			Pattern: "#,##0.0#",
			Input:   -1234.5,
			Want:    "-1,234.5",
		},
		{
			Pattern: "0.0#",
			Input:   0.123,
			Want:    "0.12",
		},
		{
			Pattern: "+#.#",
			Input:   1.25,
			Want:    "+1.3",
		},
		{
			Pattern: "#.##",
			Input:   -1.5,
			Want:    "-1.5",
		},
		{
			Pattern: "#.##",
			Input:   -0.001,
			Want:    "0",
		},
		{
			Pattern: DefaultNumberPattern,
			Input:   math.Pi,
			Want:    "3.14",
		},
		{
			Pattern: "#.##",
			Input:   math.NaN(),
			Want:    "NaN",
		},
		{
			Pattern: "#.##",
			Input:   math.Inf(-1),
			Want:    "-Inf",
		},
		{
			Pattern: "",
			Input:   0.1,
			Want:    "0.1",
		},
		{
			Pattern: "3",
			Input:   2.0 / 3,
			Want:    "0.667",
		},
	}
	for _, c := range tests {
		f, err := Parse(c.Pattern)
		if err != nil {
			t.Errorf("%s: fail to parse pattern: %s", c.Pattern, err)
			continue
		}
		if got := f.Format(c.Input); got != c.Want {
			t.Errorf("%v: results mismatched! want %s - got %s", c.Input, c.Want, got)
		}
	}
}

func TestFormatPlain(t *testing.T) {
	tests := []struct {
		Input float64
		Want  string
	}{
		{Input: 2, Want: "2"},
		{Input: -2.5, Want: "-2.5"},
		{Input: 1e-7, Want: "0.0000001"},
		{Input: 1200, Want: "1200"},
		{Input: math.Copysign(0, -1), Want: "0"},
		{Input: math.Inf(1), Want: "Inf"},
	}
	f := FormatPlain()
	for _, c := range tests {
		if got := f.Format(c.Input); got != c.Want {
			t.Errorf("%v: results mismatched! want %s - got %s", c.Input, c.Want, got)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	f := FormatFixed(3)
	if got := f.Format(1.0 / 3); got != "0.333" {
		t.Errorf("results mismatched! want 0.333 - got %s", got)
	}
}

func TestInvalidPattern(t *testing.T) {
	for _, pattern := range []string{".", "+", "#x", "#.0a", ".00", "0#", "#.#0", ","} {
		_, err := Parse(pattern)
		if !errors.Is(err, ErrPattern) {
			t.Errorf("%s: expected %s, got %v", pattern, ErrPattern, err)
		}
	}
}
