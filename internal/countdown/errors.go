package countdown

import (
	"errors"
	"fmt"
)

// ErrInvalidTarget reports a target moment that cannot be parsed as a date/time.
var ErrInvalidTarget = errors.New("invalid target moment")

type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", ErrInvalidTarget, e.Input, e.Err)
	}
	return fmt.Sprintf("%v %q", ErrInvalidTarget, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrInvalidTarget }
