package symbolic

import (
	"fmt"

	"github.com/midbel/derive/symbolic/builtins"
	"github.com/midbel/derive/symbolic/op"
)

// Derive returns the derivative of expr with respect to ident. The
// result is not simplified.
func Derive(expr Expr, ident string) (Expr, error) {
	switch e := expr.(type) {
	case number:
		return NewNumber(0), nil
	case variable:
		if e.name == ident {
			return NewNumber(1), nil
		}
		return NewNumber(0), nil
	case binary:
		return deriveBinary(e, ident)
	case call:
		return deriveCall(e, ident)
	default:
		return nil, fmt.Errorf("%T: unsupported expression", expr)
	}
}

func deriveBinary(b binary, ident string) (Expr, error) {
	switch b.op {
	case op.Add, op.Sub:
		left, err := Derive(b.left, ident)
		if err != nil {
			return nil, err
		}
		right, err := Derive(b.right, ident)
		if err != nil {
			return nil, err
		}
		return NewBinary(left, right, b.op), nil
	case op.Mul:
		return deriveProduct(b, ident)
	case op.Div:
		return deriveQuotient(b, ident)
	case op.Pow:
		return derivePower(b, ident)
	default:
		return nil, fmt.Errorf("%s: unsupported operator", op.Symbol(b.op))
	}
}

func deriveProduct(b binary, ident string) (Expr, error) {
	if _, ok := b.left.(number); ok {
		right, err := Derive(b.right, ident)
		if err != nil {
			return nil, err
		}
		return mul(b.left, right), nil
	}
	if _, ok := b.right.(number); ok {
		left, err := Derive(b.left, ident)
		if err != nil {
			return nil, err
		}
		return mul(b.right, left), nil
	}
	left, err := Derive(b.left, ident)
	if err != nil {
		return nil, err
	}
	right, err := Derive(b.right, ident)
	if err != nil {
		return nil, err
	}
	return add(mul(left, b.right), mul(b.left, right)), nil
}

func deriveQuotient(b binary, ident string) (Expr, error) {
	left, err := Derive(b.left, ident)
	if err != nil {
		return nil, err
	}
	right, err := Derive(b.right, ident)
	if err != nil {
		return nil, err
	}
	num := sub(mul(left, b.right), mul(b.left, right))
	return div(num, pow(b.right, NewNumber(2))), nil
}

func derivePower(b binary, ident string) (Expr, error) {
	if n, ok := b.right.(number); ok {
		if v, ok := b.left.(variable); ok && v.name == ident {
			return mul(n, pow(v, NewNumber(n.value-1))), nil
		}
		inner, err := Derive(b.left, ident)
		if err != nil {
			return nil, err
		}
		return mul(n, mul(pow(b.left, NewNumber(n.value-1)), inner)), nil
	}
	// d(f^g) = f^g * (g' * log f + g * (f' / f))
	df, err := Derive(b.left, ident)
	if err != nil {
		return nil, err
	}
	dg, err := Derive(b.right, ident)
	if err != nil {
		return nil, err
	}
	var (
		left  = mul(dg, NewCall(builtins.Log, b.left))
		right = mul(b.right, div(df, b.left))
	)
	return mul(b, add(left, right)), nil
}

func deriveCall(c call, ident string) (Expr, error) {
	outer, err := outerDerivative(c.fn, c.arg)
	if err != nil {
		return nil, err
	}
	inner, err := Derive(c.arg, ident)
	if err != nil {
		return nil, err
	}
	return mul(outer, inner), nil
}
