// Package symbolic parses mathematical expressions, differentiates them and
// simplifies the result.
package symbolic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Differentiate derives source with respect to variable and renders the
// simplified result. Any failure is an *Error naming the stage that failed.
func Differentiate(source, variable string) (string, error) {
	expr, err := Prepare(source, variable)
	if err != nil {
		return "", err
	}
	res, err := Derive(expr, variable)
	if err != nil {
		return "", stageError(StageDifferentiation, err)
	}
	return Simplify(res).String(), nil
}

// Prepare checks the inputs of Differentiate then tokenizes and parses
// source.
func Prepare(source, variable string) (Expr, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, stageError("", ErrEmptyInput)
	}
	if err := CheckVariable(variable); err != nil {
		return nil, err
	}
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, stageError(StageTokenizer, err)
	}
	expr, err := Parse(tokens)
	if err != nil {
		return nil, stageError(StageParser, err)
	}
	return expr, nil
}

// CheckVariable reports an error when variable is not a single letter.
func CheckVariable(variable string) error {
	if !validVariable(variable) {
		return stageError("", ErrInvalidVariable)
	}
	return nil
}

func validVariable(str string) bool {
	if utf8.RuneCountInString(str) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(str)
	return unicode.IsLetter(r)
}
