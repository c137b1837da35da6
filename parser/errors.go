package parser

import (
	"errors"
	"fmt"

	"github.com/NduatiK/modsheet/annotation"
)

// Sentinel errors
var (
	ErrMalformedString       = errors.New("malformed string literal")
	ErrInvalidNumber         = errors.New("invalid number literal")
	ErrExpectedArgument      = errors.New("expected argument")
	ErrExpectedCommaOrParen  = errors.New("expected ',' or ')'")
	ErrExpectedMemberName    = errors.New("expected member name after '.'")
	ErrExpectedArgumentList  = errors.New("expected '(' to open argument list")
	ErrUnclosedInterpolation = errors.New("unterminated interpolation")
	ErrExpectedModifierName  = errors.New("expected modifier name in metadata block")
	ErrUnclosedMetadata      = errors.New("unterminated metadata block")
	ErrUnexpectedMetadataKey = errors.New("expected metadata key")
	ErrInvalidArity          = errors.New("wrong number of arguments")
	ErrInvalidArgument       = errors.New("invalid argument")
)

// UnknownModifierError is reported when no registered sub-parser matched
// the extracted modifier name.
type UnknownModifierError struct {
	Name string
	Meta annotation.Metadata
}

func (e *UnknownModifierError) Error() string {
	if e.Meta.File != "" {
		return fmt.Sprintf("unknown modifier %s (%s:%d)", e.Name, e.Meta.File, e.Meta.Line)
	}

	return fmt.Sprintf("unknown modifier %s", e.Name)
}

// ArgumentError is the structural failure of a sub-parser that matched
// the modifier name but could not parse its arguments. It always takes
// precedence over UnknownModifierError from sibling attempts.
type ArgumentError struct {
	Name  string
	Meta  annotation.Metadata
	Cause error
}

func (e *ArgumentError) Error() string {
	if e.Meta.File != "" {
		return fmt.Sprintf("invalid arguments for modifier %s (%s:%d): %v", e.Name, e.Meta.File, e.Meta.Line, e.Cause)
	}

	return fmt.Sprintf("invalid arguments for modifier %s: %v", e.Name, e.Cause)
}

func (e *ArgumentError) Unwrap() error {
	return e.Cause
}
