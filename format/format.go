package format

import (
	"errors"
	"math"
	"strconv"
)

const DefaultNumberPattern = "#######.00"

var ErrPattern = errors.New("invalid pattern")

type Formatter interface {
	Format(float64) string
}

// Parse returns the formatter for pattern. An empty pattern prints values
// the way numbers are printed in expressions and a bare integer gives the
// number of decimals to print.
func Parse(pattern string) (Formatter, error) {
	if pattern == "" {
		return FormatPlain(), nil
	}
	if prec, err := strconv.Atoi(pattern); err == nil && prec >= 0 {
		return FormatFixed(prec), nil
	}
	return ParseNumberFormatter(pattern)
}

// FormatPlain prints values in their shortest form, the way numbers are
// written in expressions.
func FormatPlain() Formatter {
	return numberFormat{
		maxFrac: -1,
	}
}

// FormatFixed prints values with exactly prec decimals.
func FormatFixed(prec int) Formatter {
	prec = max(prec, 0)
	return numberFormat{
		minFrac: prec,
		maxFrac: prec,
	}
}

func special(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Inf", true
	case math.IsInf(v, -1):
		return "-Inf", true
	default:
		return "", false
	}
}
