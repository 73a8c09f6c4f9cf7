package symbolic

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrInvalidNumber    = errors.New("invalid number")
)

var (
	ErrUnexpectedToken         = errors.New("unexpected token")
	ErrUnmatchedParen          = errors.New("unmatched parenthesis")
	ErrMissingFunctionArgument = errors.New("missing function argument")
	ErrTrailingTokens          = errors.New("trailing tokens")
)

var (
	ErrUnknownFunction   = errors.New("unknown function")
	ErrUndefinedVariable = errors.New("undefined variable")
)

var (
	ErrEmptyInput      = errors.New("Input expression is empty")
	ErrInvalidVariable = errors.New("Variable must be a single alphabetic character")
)

const (
	StageTokenizer       = "Tokenizer"
	StageParser          = "Parser"
	StageDifferentiation = "Differentiation"
)

// Error is returned by Differentiate. It records the stage of the pipeline
// that failed and wraps the error reported by that stage.
type Error struct {
	Stage string
	Err   error
}

func stageError(stage string, err error) error {
	return &Error{
		Stage: stage,
		Err:   err,
	}
}

func (e *Error) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error: %s", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
