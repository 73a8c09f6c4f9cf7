package symbolic

import (
	"math"
	"slices"

	"github.com/midbel/derive/symbolic/op"
)

// Simplify collects like terms of sums and folds identities and literal
// operations. Simplify(Simplify(e)) is structurally equal to Simplify(e).
func Simplify(expr Expr) Expr {
	switch e := expr.(type) {
	case binary:
		if e.op == op.Add {
			return simplifySum(e)
		}
		return simplifyBinary(e)
	case call:
		return NewCall(e.fn, Simplify(e.arg))
	default:
		return expr
	}
}

func simplifyBinary(b binary) Expr {
	var (
		left  = Simplify(b.left)
		right = Simplify(b.right)
	)
	x, lok := left.(number)
	y, rok := right.(number)
	literal := lok && rok

	switch b.op {
	case op.Sub:
		if literal {
			return NewNumber(x.value - y.value)
		}
		if isNumber(right, 0) {
			return left
		}
	case op.Mul:
		if literal {
			return NewNumber(x.value * y.value)
		}
		if isNumber(left, 0) || isNumber(right, 0) {
			return NewNumber(0)
		}
		if isNumber(left, 1) {
			return right
		}
		if isNumber(right, 1) {
			return left
		}
	case op.Div:
		if literal {
			return NewNumber(x.value / y.value)
		}
		if isNumber(right, 1) {
			return left
		}
	case op.Pow:
		if literal {
			return NewNumber(math.Pow(x.value, y.value))
		}
		if isNumber(right, 0) {
			return NewNumber(1)
		}
		if isNumber(right, 1) {
			return left
		}
	}
	return NewBinary(left, right, b.op)
}

type term struct {
	coeff float64
	base  Expr
}

func (t term) expr() Expr {
	if isNumber(t.base, 1) {
		return NewNumber(t.coeff)
	}
	switch t.coeff {
	case 0:
		return NewNumber(0)
	case 1:
		return t.base
	default:
		return mul(NewNumber(t.coeff), t.base)
	}
}

// simplifySum groups the addends of b by like bases. A group whose
// coefficient cancels renders as 0 and joins the literal group.
func simplifySum(b binary) Expr {
	var groups []term
	for _, e := range addends(b, nil) {
		groups = collect(groups, decompose(e))
	}
	var terms []term
	for _, t := range groups {
		if t.coeff == 0 {
			t.base = NewNumber(1)
		}
		terms = collect(terms, t)
	}
	var res Expr
	for _, t := range terms {
		if res == nil {
			res = t.expr()
		} else {
			res = add(res, t.expr())
		}
	}
	if res == nil {
		return NewNumber(0)
	}
	return res
}

func collect(terms []term, t term) []term {
	i := slices.IndexFunc(terms, func(other term) bool {
		return alike(other.base, t.base)
	})
	if i < 0 {
		return append(terms, t)
	}
	terms[i].coeff += t.coeff
	return terms
}

// addends flattens nested sums in order. Each addend is simplified and
// flattened again when its simplified form is itself a sum.
func addends(expr Expr, list []Expr) []Expr {
	if isBinary(expr, op.Add) {
		b := expr.(binary)
		list = addends(b.left, list)
		return addends(b.right, list)
	}
	e := Simplify(expr)
	if isBinary(e, op.Add) {
		return flattenSum(e, list)
	}
	return append(list, e)
}

func flattenSum(expr Expr, list []Expr) []Expr {
	if b, ok := expr.(binary); ok && b.op == op.Add {
		list = flattenSum(b.left, list)
		return flattenSum(b.right, list)
	}
	return append(list, expr)
}

// decompose splits expr into a numeric coefficient and a base. A bare
// number has the base 1.
func decompose(expr Expr) term {
	switch e := expr.(type) {
	case number:
		return term{coeff: e.value, base: NewNumber(1)}
	case binary:
		if e.op != op.Mul {
			break
		}
		var (
			left  = decompose(e.left)
			right = decompose(e.right)
		)
		return term{
			coeff: left.coeff * right.coeff,
			base:  combine(left.base, right.base),
		}
	}
	return term{coeff: 1, base: expr}
}

func combine(left, right Expr) Expr {
	if isNumber(left, 1) {
		return right
	}
	if isNumber(right, 1) {
		return left
	}
	return mul(left, right)
}

// alike reports whether two bases can be merged. Products and quotients
// are never merged.
func alike(a, b Expr) bool {
	switch x := a.(type) {
	case number:
		y, ok := b.(number)
		return ok && x.value == y.value
	case variable:
		y, ok := b.(variable)
		return ok && x.name == y.name
	case binary:
		y, ok := b.(binary)
		return ok && x.op == op.Pow && y.op == op.Pow && Equal(x.left, y.left) && Equal(x.right, y.right)
	case call:
		y, ok := b.(call)
		return ok && x.fn == y.fn && Equal(x.arg, y.arg)
	default:
		return false
	}
}
