// Package constants holds the named values an expression can refer to.
package constants

import (
	"math"
)

const epsilon = 1e-12

type constant struct {
	Name  string
	Value float64
}

// list is ordered so that the canonical name of a value comes before its
// aliases.
var list = []constant{
	{Name: "pi", Value: math.Pi},
	{Name: "π", Value: math.Pi},
	{Name: "e", Value: math.E},
	{Name: "euler", Value: math.E},
	{Name: "deg", Value: math.Pi / 180},
	{Name: "degree", Value: math.Pi / 180},
	{Name: "inf", Value: math.Inf(1)},
	{Name: "infinity", Value: math.Inf(1)},
	{Name: "nan", Value: math.NaN()},
}

var values = make(map[string]float64)

func init() {
	for _, c := range list {
		values[c.Name] = c.Value
	}
}

func Lookup(name string) (float64, bool) {
	v, ok := values[name]
	return v, ok
}

func IsConstant(name string) bool {
	_, ok := values[name]
	return ok
}

// Name gives the first constant whose value is value. NaN never matches.
func Name(value float64) (string, bool) {
	for _, c := range list {
		if math.IsInf(c.Value, 0) || math.IsInf(value, 0) {
			if c.Value == value {
				return c.Name, true
			}
			continue
		}
		if math.Abs(value-c.Value) < epsilon {
			return c.Name, true
		}
	}
	return "", false
}

// Names returns the names of all constants.
func Names() []string {
	var names []string
	for _, c := range list {
		names = append(names, c.Name)
	}
	return names
}
