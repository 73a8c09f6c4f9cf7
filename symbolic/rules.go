package symbolic

import (
	"fmt"

	"github.com/midbel/derive/symbolic/builtins"
)

// outerDerivative gives the derivative of fn evaluated at arg. The caller
// multiplies it by the derivative of arg.
func outerDerivative(fn builtins.Func, arg Expr) (Expr, error) {
	var (
		one    = NewNumber(1)
		minus  = NewNumber(-1)
		square = pow(arg, NewNumber(2))
	)
	switch fn {
	case builtins.Sin:
		return NewCall(builtins.Cos, arg), nil
	case builtins.Cos:
		return mul(minus, NewCall(builtins.Sin, arg)), nil
	case builtins.Tan:
		return pow(NewCall(builtins.Sec, arg), NewNumber(2)), nil
	case builtins.Cot:
		return mul(minus, pow(NewCall(builtins.Cosec, arg), NewNumber(2))), nil
	case builtins.Sec:
		return mul(NewCall(builtins.Sec, arg), NewCall(builtins.Tan, arg)), nil
	case builtins.Cosec:
		return mul(minus, mul(NewCall(builtins.Cosec, arg), NewCall(builtins.Cot, arg))), nil
	case builtins.Log:
		return div(one, arg), nil
	case builtins.Exp:
		return NewCall(builtins.Exp, arg), nil
	case builtins.Sqrt:
		return div(one, mul(NewNumber(2), NewCall(builtins.Sqrt, arg))), nil
	case builtins.Abs:
		return div(arg, NewCall(builtins.Abs, arg)), nil
	case builtins.Arcsin:
		return div(one, NewCall(builtins.Sqrt, sub(one, square))), nil
	case builtins.Arccos:
		return div(minus, NewCall(builtins.Sqrt, sub(one, square))), nil
	case builtins.Arctan:
		return div(one, add(one, square)), nil
	case builtins.Arccot:
		return div(minus, add(one, square)), nil
	case builtins.Arcsec:
		return div(one, mul(NewCall(builtins.Abs, arg), NewCall(builtins.Sqrt, sub(square, one)))), nil
	case builtins.Arccsc:
		return div(minus, mul(NewCall(builtins.Abs, arg), NewCall(builtins.Sqrt, sub(square, one)))), nil
	case builtins.Sinh:
		return NewCall(builtins.Cosh, arg), nil
	case builtins.Cosh:
		return NewCall(builtins.Sinh, arg), nil
	case builtins.Tanh:
		return sub(one, pow(NewCall(builtins.Tanh, arg), NewNumber(2))), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, fn)
	}
}
