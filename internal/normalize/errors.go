package normalize

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a Create input that is neither absent nor a string.
type ArgumentError struct {
	Value any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: expected string, got %T", ErrInvalidArgument, e.Value)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
