package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrInitialization matches every *InitializationError.
	ErrInitialization = errors.New("initialization failed")
	// ErrUnsupported matches every *UnsupportedOperationError.
	ErrUnsupported = errors.New("operation not supported")
	// ErrInvalidBounds is returned by RandomizeWithin for unusable size bounds.
	ErrInvalidBounds = errors.New("invalid randomization bounds")
)

// InitializationError reports a surface, window or shape that could not be
// constructed.
type InitializationError struct {
	What string
	Err  error
}

func (e *InitializationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("could not instantiate %s", e.What)
	}
	return fmt.Sprintf("could not instantiate %s: %v", e.What, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

func (e *InitializationError) Is(target error) bool { return target == ErrInitialization }

// UnsupportedOperationError reports a setter that has no meaning for a kind
// of shape, such as the width of a triangle.
type UnsupportedOperationError struct {
	Kind      Kind
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not defined for %s objects", e.Operation, e.Kind)
}

func (e *UnsupportedOperationError) Is(target error) bool { return target == ErrUnsupported }
