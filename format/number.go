package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numberFormat prints float64 values. A negative maxFrac prints the
// shortest representation that reads back to the same value.
type numberFormat struct {
	sign    bool
	group   bool
	minInt  int
	minFrac int
	maxFrac int
}

// ParseNumberFormatter builds a Formatter from a pattern like "+#,##0.00#".
// A 0 is a mandatory digit, a # an optional one. A leading + always
// prints the sign and a comma in the integral part groups digits by three.
func ParseNumberFormatter(pattern string) (Formatter, error) {
	var (
		f   numberFormat
		str = pattern
	)
	str, f.sign = strings.CutPrefix(str, "+")
	whole, frac, _ := strings.Cut(str, ".")

	var digits int
	for _, c := range whole {
		switch {
		case c == ',':
			f.group = true
		case c == '0':
			f.minInt++
			digits++
		case c == '#' && f.minInt == 0:
			digits++
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %q in integral part", ErrPattern, pattern, c)
		}
	}
	if digits == 0 {
		return nil, fmt.Errorf("%w: %q: no digit in integral part", ErrPattern, pattern)
	}
	for _, c := range frac {
		switch {
		case c == '0' && f.minFrac == f.maxFrac:
			f.minFrac++
		case c == '#':
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %q in fractional part", ErrPattern, pattern, c)
		}
		f.maxFrac++
	}
	return f, nil
}

func (f numberFormat) Format(v float64) string {
	if str, ok := special(v); ok {
		return str
	}
	if f.maxFrac >= 0 {
		scale := math.Pow10(f.maxFrac)
		if r := math.Round(v*scale) / scale; !math.IsInf(r, 0) && !math.IsNaN(r) {
			v = r
		}
	}
	str := strconv.FormatFloat(math.Abs(v), 'f', f.maxFrac, 64)
	whole, frac, _ := strings.Cut(str, ".")
	for len(frac) > max(f.minFrac, 0) && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}
	if n := len(whole); n < f.minInt {
		whole = strings.Repeat("0", f.minInt-n) + whole
	}
	if f.group {
		whole = groupThousands(whole)
	}

	var b strings.Builder
	switch {
	case v < 0 && strings.Trim(whole+frac, "0,") != "":
		b.WriteByte('-')
	case f.sign:
		b.WriteByte('+')
	}
	b.WriteString(whole)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func groupThousands(digits string) string {
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
