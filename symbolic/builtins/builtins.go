// Package builtins defines the closed set of functions known to the
// tokenizer, the differentiator and the evaluator.
package builtins

import (
	"fmt"
	"math"

	"github.com/midbel/derive/internal/ds"
)

type Func int8

const (
	Invalid Func = iota
	Sin
	Cos
	Tan
	Cot
	Sec
	Cosec
	Log
	Exp
	Sqrt
	Abs
	Arcsin
	Arccos
	Arctan
	Arccot
	Arcsec
	Arccsc
	Sinh
	Cosh
	Tanh
)

var names = map[Func]string{
	Sin:    "sin",
	Cos:    "cos",
	Tan:    "tan",
	Cot:    "cot",
	Sec:    "sec",
	Cosec:  "cosec",
	Log:    "log",
	Exp:    "exp",
	Sqrt:   "sqrt",
	Abs:    "abs",
	Arcsin: "arcsin",
	Arccos: "arccos",
	Arctan: "arctan",
	Arccot: "arccot",
	Arcsec: "arcsec",
	Arccsc: "arccsc",
	Sinh:   "sinh",
	Cosh:   "cosh",
	Tanh:   "tanh",
}

var index = ds.NewTrie[Func]()

func init() {
	for fn, name := range names {
		index.Register(name, fn)
	}
}

func (f Func) String() string {
	name, ok := names[f]
	if !ok {
		return fmt.Sprintf("func(%d)", f)
	}
	return name
}

func (f Func) Valid() bool {
	_, ok := names[f]
	return ok
}

// Lookup returns the function registered under exactly the given name.
func Lookup(name string) (Func, bool) {
	return index.Get(name)
}

// Match returns the function whose name is the longest prefix of str and
// the number of bytes of str covered by that name.
func Match(str string) (Func, int, bool) {
	return index.LongestPrefix(str)
}

// Names returns the name of every known function in lexical order.
func Names() []string {
	var list []string
	index.Walk(func(name string, _ Func) {
		list = append(list, name)
	})
	return list
}

// Apply computes the value of f at x.
func (f Func) Apply(x float64) (float64, error) {
	switch f {
	case Sin:
		return math.Sin(x), nil
	case Cos:
		return math.Cos(x), nil
	case Tan:
		return math.Tan(x), nil
	case Cot:
		return 1 / math.Tan(x), nil
	case Sec:
		return 1 / math.Cos(x), nil
	case Cosec:
		return 1 / math.Sin(x), nil
	case Log:
		return math.Log(x), nil
	case Exp:
		return math.Exp(x), nil
	case Sqrt:
		return math.Sqrt(x), nil
	case Abs:
		return math.Abs(x), nil
	case Arcsin:
		return math.Asin(x), nil
	case Arccos:
		return math.Acos(x), nil
	case Arctan:
		return math.Atan(x), nil
	case Arccot:
		return math.Pi/2 - math.Atan(x), nil
	case Arcsec:
		return math.Acos(1 / x), nil
	case Arccsc:
		return math.Asin(1 / x), nil
	case Sinh:
		return math.Sinh(x), nil
	case Cosh:
		return math.Cosh(x), nil
	case Tanh:
		return math.Tanh(x), nil
	default:
		return 0, fmt.Errorf("%s: unsupported function", f)
	}
}
