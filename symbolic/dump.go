package symbolic

import (
	"bytes"
	"fmt"
	"io"

	"github.com/midbel/derive/symbolic/op"
)

func DumpExpr(expr Expr) string {
	var buf bytes.Buffer
	dumpExpr(&buf, expr)
	return buf.String()
}

func dumpExpr(w io.Writer, expr Expr) {
	switch e := expr.(type) {
	case number:
		io.WriteString(w, "number(")
		io.WriteString(w, formatNumber(e.value))
		io.WriteString(w, ")")
	case variable:
		io.WriteString(w, "variable(")
		io.WriteString(w, e.name)
		io.WriteString(w, ")")
	case binary:
		io.WriteString(w, "binary(")
		dumpExpr(w, e.left)
		io.WriteString(w, ", ")
		dumpExpr(w, e.right)
		io.WriteString(w, ", ")
		io.WriteString(w, op.Symbol(e.op))
		io.WriteString(w, ")")
	case call:
		io.WriteString(w, "call(")
		io.WriteString(w, e.fn.String())
		io.WriteString(w, ", ")
		dumpExpr(w, e.arg)
		io.WriteString(w, ")")
	default:
		io.WriteString(w, fmt.Sprintf("unknown(%T)", e))
	}
}
