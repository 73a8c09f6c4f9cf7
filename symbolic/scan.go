package symbolic

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/midbel/derive/symbolic/builtins"
	"github.com/midbel/derive/symbolic/op"
)

type Token struct {
	Literal  string
	Type     op.Op
	Value    float64
	Func     builtins.Func
	Position int
	End      int
	Implicit bool
}

func (t Token) String() string {
	var str string
	switch t.Type {
	case op.Invalid:
		return "<invalid>"
	case op.EOF:
		return "<eof>"
	case op.Number:
		str = "number"
	case op.Ident:
		str = "identifier"
	case op.Func:
		str = "function"
	case op.Add:
		return "<add>"
	case op.Sub:
		return "<subtract>"
	case op.Mul:
		return "<multiply>"
	case op.Div:
		return "<divide>"
	case op.Pow:
		return "<power>"
	case op.BegGrp:
		return "<beg-group>"
	case op.EndGrp:
		return "<end-group>"
	}
	return fmt.Sprintf("%s(%s)", str, t.Literal)
}

// operand reports whether the token ends an operand.
func (t Token) operand() bool {
	return t.Type == op.Number || t.Type == op.Ident || t.Type == op.EndGrp
}

type Scanner struct {
	input []byte
	pos   int
	next  int
	char  rune

	buf    bytes.Buffer
	tokens []Token
}

// Tokenize splits str into tokens. Multiplications and powers written by
// juxtaposition (2x, x2, (x)(y)) are made explicit with tokens marked as
// Implicit.
func Tokenize(str string) ([]Token, error) {
	scan := Scanner{
		input: []byte(str),
	}
	scan.read()
	for {
		scan.skipBlanks()
		if scan.done() {
			break
		}
		if err := scan.scan(); err != nil {
			return nil, err
		}
	}
	return insertPowers(scan.tokens), nil
}

func (s *Scanner) scan() error {
	defer s.reset()
	switch {
	case isDigit(s.char) || s.char == dot:
		return s.scanNumber()
	case unicode.IsLetter(s.char):
		s.scanLetters()
	case isOperator(s.char):
		s.scanOperator()
	case isDelimiter(s.char):
		s.scanDelimiter()
	default:
		return fmt.Errorf("(%d) %w: %q", s.pos, ErrUnknownCharacter, s.char)
	}
	return nil
}

func (s *Scanner) scanNumber() error {
	offset := s.pos
	for !s.done() && (isDigit(s.char) || s.char == dot) {
		s.write()
		s.read()
	}
	tok := Token{
		Type:     op.Number,
		Literal:  s.literal(),
		Position: offset,
		End:      s.pos,
	}
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return fmt.Errorf("(%d) %w: %s", offset, ErrInvalidNumber, tok.Literal)
	}
	tok.Value = val
	s.emit(tok)
	return nil
}

// scanLetters reads a run of letters and splits it into function names
// and identifiers. At each offset the longest function name wins; letters
// that start no function name are grouped in one identifier.
func (s *Scanner) scanLetters() {
	offset := s.pos
	for !s.done() && unicode.IsLetter(s.char) {
		s.write()
		s.read()
	}
	run := s.literal()
	for i := 0; i < len(run); {
		if fn, size, ok := builtins.Match(run[i:]); ok {
			s.emit(Token{
				Type:     op.Func,
				Literal:  run[i : i+size],
				Func:     fn,
				Position: offset + i,
				End:      offset + i + size,
			})
			i += size
			continue
		}
		j := i
		for j < len(run) {
			_, size := utf8.DecodeRuneInString(run[j:])
			j += size
			if _, _, ok := builtins.Match(run[j:]); ok {
				break
			}
		}
		s.emit(Token{
			Type:     op.Ident,
			Literal:  run[i:j],
			Position: offset + i,
			End:      offset + j,
		})
		i = j
	}
}

func (s *Scanner) scanOperator() {
	tok := Token{
		Literal:  string(s.char),
		Position: s.pos,
		End:      s.next,
	}
	switch s.char {
	case plus:
		tok.Type = op.Add
	case minus:
		tok.Type = op.Sub
	case star:
		tok.Type = op.Mul
	case slash:
		tok.Type = op.Div
	case caret:
		tok.Type = op.Pow
	}
	s.read()
	s.emit(tok)
}

func (s *Scanner) scanDelimiter() {
	tok := Token{
		Literal:  string(s.char),
		Position: s.pos,
		End:      s.next,
	}
	switch s.char {
	case lparen:
		tok.Type = op.BegGrp
	case rparen:
		tok.Type = op.EndGrp
	}
	s.read()
	s.emit(tok)
}

func (s *Scanner) emit(tok Token) {
	if s.multiply(tok) {
		mul := Token{
			Type:     op.Mul,
			Position: tok.Position,
			End:      tok.Position,
			Implicit: true,
		}
		s.tokens = append(s.tokens, mul)
	}
	s.tokens = append(s.tokens, tok)
}

// multiply reports whether an implicit multiplication separates tok from
// the previous token. Nothing is inserted around function names.
func (s *Scanner) multiply(tok Token) bool {
	n := len(s.tokens)
	if n == 0 {
		return false
	}
	prev := s.tokens[n-1]
	switch tok.Type {
	case op.Number, op.Ident, op.BegGrp:
		return prev.operand()
	default:
		return false
	}
}

// insertPowers turns the implicit multiplication between an identifier and
// the number written right after it into a power, unless an explicit power
// follows the number: x2 is x^2 but x2^3 is x*2^3 and x 2 is x*2.
func insertPowers(tokens []Token) []Token {
	for i := 1; i+1 < len(tokens); i++ {
		var (
			prev = tokens[i-1]
			curr = tokens[i]
			next = tokens[i+1]
		)
		if curr.Type != op.Mul || !curr.Implicit {
			continue
		}
		if prev.Type != op.Ident || next.Type != op.Number || prev.End != next.Position {
			continue
		}
		if i+2 < len(tokens) && tokens[i+2].Type == op.Pow {
			continue
		}
		tokens[i].Type = op.Pow
	}
	return tokens
}

func (s *Scanner) literal() string {
	return s.buf.String()
}

func (s *Scanner) write() {
	s.buf.WriteRune(s.char)
}

func (s *Scanner) reset() {
	s.buf.Reset()
}

func (s *Scanner) read() {
	if s.next >= len(s.input) {
		s.char = 0
		s.pos = len(s.input)
		return
	}
	r, n := utf8.DecodeRune(s.input[s.next:])
	s.char, s.pos, s.next = r, s.next, s.next+n
}

func (s *Scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *Scanner) skipBlanks() {
	for !s.done() && isBlank(s.char) {
		s.read()
	}
}

const (
	lparen = '('
	rparen = ')'
	space  = ' '
	tab    = '\t'
	nl     = '\n'
	cr     = '\r'
	plus   = '+'
	minus  = '-'
	star   = '*'
	slash  = '/'
	caret  = '^'
	dot    = '.'
)

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isBlank(c rune) bool {
	return c == space || c == tab || c == nl || c == cr
}

func isDelimiter(c rune) bool {
	return c == lparen || c == rparen
}

func isOperator(c rune) bool {
	return c == plus || c == minus || c == slash || c == star || c == caret
}
