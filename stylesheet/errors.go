package stylesheet

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrExpectedSelector      = errors.New("expected selector string")
	ErrExpectedBinding       = errors.New("expected binding name after '<>'")
	ErrExpectedDo            = errors.New("expected 'do' after selector")
	ErrExpectedEnd           = errors.New("expected modifier or 'end' in clause body")
	ErrDuplicateSelector     = errors.New("duplicate literal selector")
	ErrNoMatchingSelector    = errors.New("no selector matches class name")
	ErrUnboundVariable       = errors.New("interpolation references unbound variable")
	ErrUnsupportedInterpType = errors.New("unsupported interpolation result type")
)

// ClauseError attributes a clause body failure to its selector pattern.
// One failing clause aborts the whole-stylesheet compile.
type ClauseError struct {
	Selector SelectorPattern
	Cause    error
}

func (e *ClauseError) Error() string {
	return fmt.Sprintf("clause %s: %v", e.Selector, e.Cause)
}

func (e *ClauseError) Unwrap() error {
	return e.Cause
}
