// Package repr prints expression trees, one node per line, indented by
// depth.
package repr

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

type InspectableExpr interface {
	Kind() string
	Params() map[string]string
	Children() []InspectableExpr
}

type Visitor interface {
	Visit(InspectableExpr, int)
}

type VisitorFunc func(InspectableExpr, int)

func (f VisitorFunc) Visit(expr InspectableExpr, depth int) {
	f(expr, depth)
}

// Walk calls v for expr then for each of its children, depth first.
func Walk(expr InspectableExpr, v Visitor) {
	walk(expr, v, 0)
}

func walk(expr InspectableExpr, v Visitor, depth int) {
	v.Visit(expr, depth)
	for _, c := range expr.Children() {
		walk(c, v, depth+1)
	}
}

func Print(w io.Writer, expr InspectableExpr) error {
	var err error
	Walk(expr, VisitorFunc(func(e InspectableExpr, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), Describe(e))
	}))
	return err
}

// Describe gives the kind of expr followed by its parameters sorted by
// name, like binary[op=+].
func Describe(expr InspectableExpr) string {
	params := expr.Params()
	if len(params) == 0 {
		return expr.Kind()
	}
	var list []string
	for _, k := range slices.Sorted(maps.Keys(params)) {
		list = append(list, fmt.Sprintf("%s=%s", k, params[k]))
	}
	return fmt.Sprintf("%s[%s]", expr.Kind(), strings.Join(list, ", "))
}
