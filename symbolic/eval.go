package symbolic

import (
	"fmt"
	"math"

	"github.com/midbel/derive/constants"
	"github.com/midbel/derive/symbolic/op"
)

// Eval computes the value of expr. Variables are resolved from env first
// then from the table of known constants.
func Eval(expr Expr, env map[string]float64) (float64, error) {
	switch e := expr.(type) {
	case number:
		return e.value, nil
	case variable:
		if v, ok := env[e.name]; ok {
			return v, nil
		}
		if v, ok := constants.Lookup(e.name); ok {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUndefinedVariable, e.name)
	case binary:
		left, err := Eval(e.left, env)
		if err != nil {
			return 0, err
		}
		right, err := Eval(e.right, env)
		if err != nil {
			return 0, err
		}
		return apply(e.op, left, right)
	case call:
		arg, err := Eval(e.arg, env)
		if err != nil {
			return 0, err
		}
		return e.fn.Apply(arg)
	default:
		return 0, fmt.Errorf("%T: unsupported expression", expr)
	}
}

func apply(oper op.Op, left, right float64) (float64, error) {
	switch oper {
	case op.Add:
		return left + right, nil
	case op.Sub:
		return left - right, nil
	case op.Mul:
		return left * right, nil
	case op.Div:
		return left / right, nil
	case op.Pow:
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("%s: unsupported operator", op.Symbol(oper))
	}
}
