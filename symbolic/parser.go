package symbolic

import (
	"fmt"
	"math"

	"github.com/midbel/derive/symbolic/op"
)

// unitEpsilon is the distance to 1 under which the exponent of a powered
// function is dropped.
const unitEpsilon = 1e-9

// Parser builds an expression tree from a token list by recursive descent:
//
//	expr    := term (('+' | '-') term)*
//	term    := factor (('*' | '/') factor)*
//	factor  := unary (operand | '^' exponent)*
//	unary   := '-' unary | primary
//	primary := number | identifier | '(' expr ')' | function
//
// Two tokens are juxtaposed when the second starts where the first ends.
// Implicit tokens are zero width and placed at the start of the operand
// they precede.
type Parser struct {
	tokens []Token
	pos    int

	prev Token
	curr Token
	peek Token
}

func NewParser(tokens []Token) *Parser {
	p := Parser{
		tokens: tokens,
	}
	p.next()
	p.next()
	return &p
}

// ParseString tokenizes then parses str.
func ParseString(str string) (Expr, error) {
	tokens, err := Tokenize(str)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func Parse(tokens []Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

func (p *Parser) Parse() (Expr, error) {
	if p.done() {
		return nil, fmt.Errorf("(%d) %w: empty expression", p.curr.Position, ErrUnexpectedToken)
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("(%d) %w: %s", p.curr.Position, ErrTrailingTokens, p.curr)
	}
	return expr, nil
}

func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.is(op.Add) || p.is(op.Sub) {
		oper := p.curr.Type
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = NewBinary(left, right, oper)
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.is(op.Mul) || p.is(op.Div) {
		oper := p.curr.Type
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = NewBinary(left, right, oper)
	}
	return left, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.is(op.Pow):
			implicit := p.curr.Implicit
			p.next()
			var (
				exp Expr
				err error
			)
			if implicit {
				exp, err = p.parseUnary()
			} else {
				exp, err = p.parseExponent(false)
			}
			if err != nil {
				return nil, err
			}
			left = pow(left, exp)
		case p.operand():
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = mul(left, right)
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseUnary() (Expr, error) {
	if !p.is(op.Sub) {
		return p.parsePrimary()
	}
	p.next()
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if n, ok := expr.(number); ok {
		return NewNumber(-n.value), nil
	}
	return mul(NewNumber(-1), expr), nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	switch p.curr.Type {
	case op.Number:
		defer p.next()
		return NewNumber(p.curr.Value), nil
	case op.Ident:
		defer p.next()
		return NewVariable(p.curr.Literal), nil
	case op.BegGrp:
		return p.parseGroup()
	case op.Func:
		return p.parseCall()
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseGroup() (Expr, error) {
	offset := p.curr.Position
	p.next()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.is(op.EndGrp) {
		return nil, fmt.Errorf("(%d) %w: missing ')' for '(' at %d", p.curr.Position, ErrUnmatchedParen, offset)
	}
	p.next()
	return expr, nil
}

// parseCall parses a function name, an optional exponent then the
// argument: sin x, sin(x+1), sin^2 x, sin^(2x) x.
func (p *Parser) parseCall() (Expr, error) {
	fn := p.curr.Func
	p.next()

	var (
		power Expr
		err   error
	)
	if p.is(op.Pow) {
		p.next()
		if power, err = p.parseExponent(true); err != nil {
			return nil, err
		}
		if p.is(op.Mul) && p.curr.Implicit {
			p.next()
		}
	}
	arg, err := p.parseArgument(fn.String())
	if err != nil {
		return nil, err
	}
	expr := NewCall(fn, arg)
	if power == nil || isUnit(power) {
		return expr, nil
	}
	return pow(expr, power), nil
}

func (p *Parser) parseArgument(name string) (Expr, error) {
	switch p.curr.Type {
	case op.BegGrp:
		return p.parseGroup()
	case op.Number, op.Ident, op.Func:
		return p.parsePrimary()
	default:
		return nil, fmt.Errorf("(%d) %w: %s expects an argument, got %s", p.curr.Position, ErrMissingFunctionArgument, name, p.curr)
	}
}

// parseExponent parses what follows '^'. A number is a constant exponent
// unless an operand is juxtaposed to it, in which case the whole run of
// juxtaposed operands is the exponent (2^2x is 2^(2*x)). The same happens
// when the exponent starts with an identifier, a function or a group.
//
// The exponent of a function stops before a group since that group is the
// argument of the function (sin^2(x) is (sin x)^2).
func (p *Parser) parseExponent(function bool) (Expr, error) {
	switch {
	case p.is(op.Number) && p.chained(function):
		return p.parseChain(function)
	case p.is(op.Number) || p.is(op.Sub):
		base, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if !p.is(op.Pow) {
			return base, nil
		}
		p.next()
		exp, err := p.parseExponent(function)
		if err != nil {
			return nil, err
		}
		return pow(base, exp), nil
	case p.is(op.Ident) || p.is(op.Func) || p.is(op.BegGrp):
		return p.parseChain(function)
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseChain(function bool) (Expr, error) {
	expr, err := p.parseLink()
	if err != nil {
		return nil, err
	}
	for p.juxtaposed(function) {
		if p.is(op.Mul) {
			p.next()
		}
		right, err := p.parseLink()
		if err != nil {
			return nil, err
		}
		expr = mul(expr, right)
	}
	return expr, nil
}

// parseLink parses one operand of an exponent chain. An implicit power
// stays attached to its identifier: 2^x2 is 2^(x^2).
func (p *Parser) parseLink() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.is(op.Pow) && p.curr.Implicit {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = pow(expr, exp)
	}
	return expr, nil
}

// chained reports whether the current number starts an exponent chain.
func (p *Parser) chained(function bool) bool {
	if p.peek.Position != p.curr.End {
		return false
	}
	return p.continues(p.peek, p.peekNext(), function)
}

// juxtaposed reports whether the current token extends the exponent chain
// whose last operand was just parsed.
func (p *Parser) juxtaposed(function bool) bool {
	if p.curr.Position != p.prev.End {
		return false
	}
	return p.continues(p.curr, p.peek, function)
}

func (p *Parser) continues(tok, after Token, function bool) bool {
	if tok.Type == op.Mul && tok.Implicit {
		return !function || after.Type != op.BegGrp
	}
	switch tok.Type {
	case op.Number, op.Ident, op.Func:
		return true
	case op.BegGrp:
		return !function
	default:
		return false
	}
}

func (p *Parser) operand() bool {
	switch p.curr.Type {
	case op.Number, op.Ident, op.Func, op.BegGrp:
		return true
	default:
		return false
	}
}

func (p *Parser) unexpected() error {
	if p.done() {
		return fmt.Errorf("(%d) %w: unexpected end of expression", p.curr.Position, ErrUnexpectedToken)
	}
	return fmt.Errorf("(%d) %w: %s", p.curr.Position, ErrUnexpectedToken, p.curr)
}

func (p *Parser) next() {
	p.prev = p.curr
	p.curr = p.peek
	p.peek = p.read()
}

func (p *Parser) read() Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// peekNext returns the token following peek without consuming anything.
func (p *Parser) peekNext() Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos]
}

func (p *Parser) eof() Token {
	var offset int
	if n := len(p.tokens); n > 0 {
		offset = p.tokens[n-1].End
	}
	return Token{
		Type:     op.EOF,
		Position: offset,
		End:      offset,
	}
}

func (p *Parser) done() bool {
	return p.is(op.EOF)
}

func (p *Parser) is(kind op.Op) bool {
	return p.curr.Type == kind
}

func isUnit(e Expr) bool {
	n, ok := e.(number)
	return ok && math.Abs(n.value-1) < unitEpsilon
}
