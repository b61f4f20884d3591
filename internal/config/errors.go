package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidConfig indicates a setting with an unsupported value.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError reports TOML that could not be decoded into a Config.
type ParseError struct {
	// Source names the input: a file path, or "<reader>" for LoadReader.
	Source string
	// Line and Column locate the error when the decoder reports a position.
	Line, Column int
	// Message is the decoder's description of the problem.
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	var pos string
	switch {
	case e.Line > 0 && e.Column > 0:
		pos = fmt.Sprintf(":%d:%d", e.Line, e.Column)
	case e.Line > 0:
		pos = fmt.Sprintf(":%d", e.Line)
	}
	return fmt.Sprintf("txed config %s%s: %s", e.Source, pos, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
