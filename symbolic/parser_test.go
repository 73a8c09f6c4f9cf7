package symbolic

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		Expr string
		Want string
	}{
		{
			Expr: "42",
			Want: "number(42)",
		},
		{
			Expr: "-2",
			Want: "number(-2)",
		},
		{
			Expr: "-x",
			Want: "binary(number(-1), variable(x), *)",
		},
		{
			Expr: "1+2*3",
			Want: "binary(number(1), binary(number(2), number(3), *), +)",
		},
		{
			Expr: "1-2-3",
			Want: "binary(binary(number(1), number(2), -), number(3), -)",
		},
		{
			Expr: "8/4/2",
			Want: "binary(binary(number(8), number(4), /), number(2), /)",
		},
		{
			Expr: "2^3^4",
			Want: "binary(number(2), binary(number(3), number(4), ^), ^)",
		},
		{
			Expr: "2x",
			Want: "binary(number(2), variable(x), *)",
		},
		{
			Expr: "x2",
			Want: "binary(variable(x), number(2), ^)",
		},
		{
			Expr: "x2^3",
			Want: "binary(variable(x), binary(number(2), number(3), ^), *)",
		},
		{
			Expr: "x 2",
			Want: "binary(variable(x), number(2), *)",
		},
		{
			Expr: "2x^2",
			Want: "binary(number(2), binary(variable(x), number(2), ^), *)",
		},
		{
			Expr: "x^-1",
			Want: "binary(variable(x), number(-1), ^)",
		},
		{
			Expr: "2^2x",
			Want: "binary(number(2), binary(number(2), variable(x), *), ^)",
		},
		{
			Expr: "2^2 x",
			Want: "binary(binary(number(2), number(2), ^), variable(x), *)",
		},
		{
			Expr: "2^x2",
			Want: "binary(number(2), binary(variable(x), number(2), ^), ^)",
		},
		{
			Expr: "e^(2x)",
			Want: "binary(variable(e), binary(number(2), variable(x), *), ^)",
		},
		{
			Expr: "(x+1)(x-1)",
			Want: "binary(binary(variable(x), number(1), +), binary(variable(x), number(1), -), *)",
		},
		{
			Expr: "sin x",
			Want: "call(sin, variable(x))",
		},
		{
			Expr: "sin(x+1)",
			Want: "call(sin, binary(variable(x), number(1), +))",
		},
		{
			Expr: "sin x y",
			Want: "binary(call(sin, variable(x)), variable(y), *)",
		},
		{
			Expr: "x sin x",
			Want: "binary(variable(x), call(sin, variable(x)), *)",
		},
		{
			Expr: "sin cos x",
			Want: "call(sin, call(cos, variable(x)))",
		},
		{
			Expr: "sin^2 x",
			Want: "binary(call(sin, variable(x)), number(2), ^)",
		},
		{
			Expr: "sin^2(x+1)",
			Want: "binary(call(sin, binary(variable(x), number(1), +)), number(2), ^)",
		},
		{
			Expr: "sin^1 x",
			Want: "call(sin, variable(x))",
		},
		{
			Expr: "log(x)^2",
			Want: "binary(call(log, variable(x)), number(2), ^)",
		},
	}
	for _, c := range tests {
		expr, err := ParseString(c.Expr)
		if err != nil {
			t.Errorf("%s: fail to parse expression: %s", c.Expr, err)
			continue
		}
		if got := DumpExpr(expr); got != c.Want {
			t.Errorf("%s: result mismatched! want %s, got %s", c.Expr, c.Want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		Expr string
		Want error
	}{
		{
			Expr: "(x+1",
			Want: ErrUnmatchedParen,
		},
		{
			Expr: "((x)",
			Want: ErrUnmatchedParen,
		},
		{
			Expr: "x+",
			Want: ErrUnexpectedToken,
		},
		{
			Expr: "*x",
			Want: ErrUnexpectedToken,
		},
		{
			Expr: "x^*2",
			Want: ErrUnexpectedToken,
		},
		{
			Expr: "x)",
			Want: ErrTrailingTokens,
		},
		{
			Expr: "sin",
			Want: ErrMissingFunctionArgument,
		},
		{
			Expr: "sin+x",
			Want: ErrMissingFunctionArgument,
		},
		{
			Expr: "sin^2x",
			Want: ErrMissingFunctionArgument,
		},
		{
			Expr: "",
			Want: ErrUnexpectedToken,
		},
	}
	for _, c := range tests {
		_, err := ParseString(c.Expr)
		if !errors.Is(err, c.Want) {
			t.Errorf("%s: error mismatched! want %s, got %v", c.Expr, c.Want, err)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		"x^3",
		"3x^2 + 2x + 1",
		"sin(x) * cos(x)",
		"(x+1)/(x-1)",
		"e^(2x)",
		"sqrt(x^2 + 1)",
		"-x + 4 - 2",
	}
	for _, str := range tests {
		expr, err := ParseString(str)
		if err != nil {
			t.Errorf("%s: fail to parse expression: %s", str, err)
			continue
		}
		want := Simplify(expr)
		got, err := ParseString(want.String())
		if err != nil {
			t.Errorf("%s: fail to parse rendered expression %s: %s", str, want, err)
			continue
		}
		assertEqualExpr(t, want, Simplify(got))
	}
}

func assertEqualExpr(t *testing.T, want, got Expr) {
	t.Helper()
	if !Equal(want, got) {
		t.Errorf("expressions mismatched! want %s, got %s", DumpExpr(want), DumpExpr(got))
	}
}
