package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/cli"
	sax "github.com/midbel/codecs/xml"
	"github.com/midbel/derive/symbolic"
)

// batchItem is one expression read from a batch file:
//
//	<derive var="x">
//	  <expr>x^2 + 3x</expr>
//	  <expr var="t">sin(t)^2</expr>
//	</derive>
type batchItem struct {
	Source   string
	Variable string
}

type batchReader struct {
	reader   *sax.Reader
	variable string
	items    []batchItem
}

func readBatch(r io.Reader, variable string) ([]batchItem, error) {
	br := batchReader{
		reader:   sax.NewReader(r),
		variable: variable,
	}
	br.reader.Element(sax.LocalName("derive"), br.onRoot)
	br.reader.Element(sax.LocalName("expr"), br.onExpr)
	if err := br.reader.Start(); err != nil {
		return nil, err
	}
	return br.items, nil
}

func (r *batchReader) onRoot(_ *sax.Reader, el sax.E) error {
	if v := el.GetAttributeValue("var"); v != "" {
		r.variable = v
	}
	return nil
}

func (r *batchReader) onExpr(rs *sax.Reader, el sax.E) error {
	item := batchItem{
		Variable: el.GetAttributeValue("var"),
	}
	if item.Variable == "" {
		item.Variable = r.variable
	}
	r.items = append(r.items, item)
	if el.SelfClosed {
		return nil
	}
	ix := len(r.items) - 1
	rs.OnText(func(_ *sax.Reader, str string) error {
		r.items[ix].Source += str
		return nil
	})
	return nil
}

type BatchCommand struct {
	Variable string
	OutFile  string
}

func (c BatchCommand) Run(args []string) error {
	set := cli.NewFlagSet("batch")
	set.StringVar(&c.Variable, "v", defaultVariable, "default variable")
	set.StringVar(&c.OutFile, "o", "", "write results to output file")
	if err := set.Parse(args); err != nil {
		return err
	}
	r, err := os.Open(set.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()

	items, err := readBatch(r, c.Variable)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if c.OutFile != "" {
		f, err := os.Create(c.OutFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	var failed int
	for _, i := range items {
		if !writeResult(w, i) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d expression(s) failed\n", failed, len(items))
		return errFail
	}
	return nil
}

func writeResult(w io.Writer, item batchItem) bool {
	source := strings.TrimSpace(item.Source)
	res, err := symbolic.Differentiate(source, item.Variable)
	if err != nil {
		fmt.Fprintf(w, "d/d%s %s: %s\n", item.Variable, source, err)
		return false
	}
	fmt.Fprintf(w, "d/d%s %s = %s\n", item.Variable, source, res)
	return true
}
