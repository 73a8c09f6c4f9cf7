package symbolic

import (
	"fmt"
	"math"

	"github.com/midbel/derive/format"
	"github.com/midbel/derive/repr"
	"github.com/midbel/derive/symbolic/builtins"
	"github.com/midbel/derive/symbolic/op"
)

// Expr is a node of an expression tree. Nodes are values: a tree is never
// modified once built, transformations always build a new tree.
type Expr interface {
	fmt.Stringer
	repr.InspectableExpr
}

type number struct {
	value float64
}

func NewNumber(v float64) Expr {
	return number{
		value: v,
	}
}

func (n number) String() string {
	return formatNumber(n.value)
}

func (n number) Kind() string {
	return "number"
}

func (n number) Params() map[string]string {
	return map[string]string{
		"value": n.String(),
	}
}

func (n number) Children() []repr.InspectableExpr {
	return nil
}

type variable struct {
	name string
}

func NewVariable(name string) Expr {
	return variable{
		name: name,
	}
}

func (v variable) String() string {
	return v.name
}

func (v variable) Kind() string {
	return "variable"
}

func (v variable) Params() map[string]string {
	return map[string]string{
		"name": v.name,
	}
}

func (v variable) Children() []repr.InspectableExpr {
	return nil
}

type binary struct {
	left  Expr
	right Expr
	op    op.Op
}

func NewBinary(left, right Expr, oper op.Op) Expr {
	return binary{
		left:  left,
		right: right,
		op:    oper,
	}
}

func (b binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.left, op.Symbol(b.op), b.right)
}

func (b binary) Kind() string {
	return "binary"
}

func (b binary) Params() map[string]string {
	return map[string]string{
		"op": op.Symbol(b.op),
	}
}

func (b binary) Children() []repr.InspectableExpr {
	return []repr.InspectableExpr{b.left, b.right}
}

type call struct {
	fn  builtins.Func
	arg Expr
}

func NewCall(fn builtins.Func, arg Expr) Expr {
	return call{
		fn:  fn,
		arg: arg,
	}
}

func (c call) String() string {
	return fmt.Sprintf("%s %s", c.fn, c.arg)
}

func (c call) Kind() string {
	return "call"
}

func (c call) Params() map[string]string {
	return map[string]string{
		"func": c.fn.String(),
	}
}

func (c call) Children() []repr.InspectableExpr {
	return []repr.InspectableExpr{c.arg}
}

// Equal compares two trees by shape and content. Number nodes holding NaN
// are equal to each other.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case number:
		y, ok := b.(number)
		if !ok {
			return false
		}
		if math.IsNaN(x.value) && math.IsNaN(y.value) {
			return true
		}
		return x.value == y.value
	case variable:
		y, ok := b.(variable)
		return ok && x.name == y.name
	case binary:
		y, ok := b.(binary)
		return ok && x.op == y.op && Equal(x.left, y.left) && Equal(x.right, y.right)
	case call:
		y, ok := b.(call)
		return ok && x.fn == y.fn && Equal(x.arg, y.arg)
	default:
		return false
	}
}

var plain = format.FormatPlain()

func formatNumber(v float64) string {
	return plain.Format(v)
}

func isNumber(e Expr, v float64) bool {
	n, ok := e.(number)
	return ok && n.value == v
}

func isBinary(e Expr, oper op.Op) bool {
	b, ok := e.(binary)
	return ok && b.op == oper
}

func add(left, right Expr) Expr {
	return NewBinary(left, right, op.Add)
}

func sub(left, right Expr) Expr {
	return NewBinary(left, right, op.Sub)
}

func mul(left, right Expr) Expr {
	return NewBinary(left, right, op.Mul)
}

func div(left, right Expr) Expr {
	return NewBinary(left, right, op.Div)
}

func pow(left, right Expr) Expr {
	return NewBinary(left, right, op.Pow)
}
