package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/derive/constants"
	"github.com/midbel/derive/symbolic/builtins"
)

var errFail = errors.New("fail")

var (
	summary = "derive computes the symbolic derivative of mathematical expressions"
	help    = `derive parses an expression written in a loose mathematical notation
(2x, x2, sin x, sin^2(x), e^(2x)) and prints its derivative, simplified.

Supported functions: %s.

Supported constants (eval only): %s.`
)

func main() {
	var (
		set  = cli.NewFlagSet("derive")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(fmt.Sprintf(help, strings.Join(builtins.Names(), ", "), strings.Join(constants.Names(), ", ")))
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"diff"}, &diffCmd)
	root.Register([]string{"simplify"}, &simplifyCmd)
	root.Register([]string{"tokens"}, &tokensCmd)
	root.Register([]string{"ast"}, &astCmd)
	root.Register([]string{"eval"}, &evalCmd)
	root.Register([]string{"batch"}, &batchCmd)
	root.Register([]string{"repl"}, &replCmd)

	return root
}

var diffCmd = cli.Command{
	Name:    "diff",
	Alias:   []string{"derive", "d"},
	Summary: "print the derivative of an expression",
	Usage:   "diff [-v variable] [-n count] <expr>",
	Handler: &DiffCommand{},
}

var simplifyCmd = cli.Command{
	Name:    "simplify",
	Summary: "print an expression after simplification",
	Usage:   "simplify <expr>",
	Handler: &SimplifyCommand{},
}

var tokensCmd = cli.Command{
	Name:    "tokens",
	Alias:   []string{"scan"},
	Summary: "print the tokens of an expression",
	Usage:   "tokens <expr>",
	Handler: &TokensCommand{},
}

var astCmd = cli.Command{
	Name:    "ast",
	Alias:   []string{"tree", "dump"},
	Summary: "print the tree of an expression",
	Usage:   "ast [-t] <expr>",
	Handler: &AstCommand{},
}

var evalCmd = cli.Command{
	Name:    "eval",
	Alias:   []string{"calc"},
	Summary: "evaluate an expression or its derivative",
	Usage:   "eval [-v variable] [-d] [-p pattern] [-s name=value...] <expr>",
	Handler: &EvalCommand{},
}

var batchCmd = cli.Command{
	Name:    "batch",
	Summary: "derive every expression of an xml file",
	Usage:   "batch [-v variable] [-o file] <file.xml>",
	Handler: &BatchCommand{},
}

var replCmd = cli.Command{
	Name:    "repl",
	Alias:   []string{"shell"},
	Summary: "derive expressions interactively",
	Usage:   "repl [-v variable]",
	Handler: &ReplCommand{},
}
