package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/derive/constants"
	"github.com/midbel/derive/format"
	"github.com/midbel/derive/repr"
	"github.com/midbel/derive/symbolic"
)

const defaultVariable = "x"

type DiffCommand struct {
	Variable string
	Count    int
}

func (c DiffCommand) Run(args []string) error {
	set := cli.NewFlagSet("diff")
	set.StringVar(&c.Variable, "v", defaultVariable, "differentiate with respect to variable")
	set.IntVar(&c.Count, "n", 1, "number of times to differentiate")
	if err := set.Parse(args); err != nil {
		return err
	}
	if c.Count <= 1 {
		res, err := symbolic.Differentiate(strings.Join(set.Args(), " "), c.Variable)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, res)
		return nil
	}
	expr, err := symbolic.Prepare(strings.Join(set.Args(), " "), c.Variable)
	if err != nil {
		return err
	}
	expr, err = deriveN(expr, c.Variable, c.Count)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, expr)
	return nil
}

// deriveN derives expr count times, simplifying after each step.
func deriveN(expr symbolic.Expr, variable string, count int) (symbolic.Expr, error) {
	for i := 0; i < count; i++ {
		res, err := symbolic.Derive(expr, variable)
		if err != nil {
			return nil, &symbolic.Error{
				Stage: symbolic.StageDifferentiation,
				Err:   err,
			}
		}
		expr = symbolic.Simplify(res)
	}
	return expr, nil
}

type SimplifyCommand struct{}

func (c SimplifyCommand) Run(args []string) error {
	set := cli.NewFlagSet("simplify")
	if err := set.Parse(args); err != nil {
		return err
	}
	expr, err := symbolic.ParseString(strings.Join(set.Args(), " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, symbolic.Simplify(expr))
	return nil
}

type TokensCommand struct {
	Position bool
}

func (c TokensCommand) Run(args []string) error {
	set := cli.NewFlagSet("tokens")
	set.BoolVar(&c.Position, "p", false, "print position of tokens")
	if err := set.Parse(args); err != nil {
		return err
	}
	tokens, err := symbolic.Tokenize(strings.Join(set.Args(), " "))
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		if c.Position {
			fmt.Fprintf(os.Stdout, "%3d:%-3d ", tok.Position, tok.End)
		}
		fmt.Fprint(os.Stdout, tok)
		if tok.Implicit {
			fmt.Fprint(os.Stdout, " (implicit)")
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

type AstCommand struct {
	Tree bool
}

func (c AstCommand) Run(args []string) error {
	set := cli.NewFlagSet("ast")
	set.BoolVar(&c.Tree, "t", false, "print expression as an indented tree")
	if err := set.Parse(args); err != nil {
		return err
	}
	expr, err := symbolic.ParseString(strings.Join(set.Args(), " "))
	if err != nil {
		return err
	}
	if c.Tree {
		return repr.Print(os.Stdout, expr)
	}
	fmt.Fprintln(os.Stdout, symbolic.DumpExpr(expr))
	return nil
}

type EvalCommand struct {
	Variable string
	Derive   bool
	Pattern  string
	Env      map[string]float64
}

func (c EvalCommand) Run(args []string) error {
	c.Env = make(map[string]float64)

	set := cli.NewFlagSet("eval")
	set.StringVar(&c.Variable, "v", defaultVariable, "differentiate with respect to variable")
	set.BoolVar(&c.Derive, "d", false, "evaluate the derivative of the expression")
	set.StringVar(&c.Pattern, "p", "", "number pattern used to print the result")
	set.Func("s", "set a variable (name=value)", func(str string) error {
		name, value, err := parseBinding(str)
		if err == nil {
			c.Env[name] = value
		}
		return err
	})
	if err := set.Parse(args); err != nil {
		return err
	}
	formatter, err := format.Parse(c.Pattern)
	if err != nil {
		return err
	}
	var expr symbolic.Expr
	if c.Derive {
		expr, err = symbolic.Prepare(strings.Join(set.Args(), " "), c.Variable)
		if err == nil {
			expr, err = deriveN(expr, c.Variable, 1)
		}
	} else {
		expr, err = symbolic.ParseString(strings.Join(set.Args(), " "))
	}
	if err != nil {
		return err
	}
	res, err := symbolic.Eval(expr, c.Env)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, formatter.Format(res))
	if name, ok := constants.Name(res); ok {
		fmt.Fprintf(os.Stdout, " (%s)", name)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}

func parseBinding(str string) (string, float64, error) {
	name, value, ok := strings.Cut(str, "=")
	if !ok {
		return "", 0, fmt.Errorf("%s: missing value (expected name=value)", str)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, fmt.Errorf("%s: missing name", str)
	}
	if v, ok := constants.Lookup(strings.TrimSpace(value)); ok {
		return name, v, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%s: invalid value", value)
	}
	return name, v, nil
}
