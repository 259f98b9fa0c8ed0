package eggorm

// errors.go has the errors returned by the package, which can be tested using errors.Is or the IsXxx helpers

import (
	"errors"
	"fmt"

	"github.com/andrewwphillips/eggorm/internal/typemap"
)

var (
	// ErrInvalidInput is matched (using errors.Is) by any InvalidInputError
	ErrInvalidInput = errors.New("invalid input")

	// ErrTypeMapping is matched by any TypeMappingError
	ErrTypeMapping = typemap.ErrTypeMapping

	// ErrMalformedTypeDescriptor is matched by any MalformedTypeDescriptorError
	ErrMalformedTypeDescriptor = typemap.ErrMalformedTypeDescriptor
)

type (
	// TypeMappingError is returned when an attribute's data type has no GraphQL equivalent.
	// Its message names the data type.
	TypeMappingError = typemap.TypeMappingError

	// MalformedTypeDescriptorError is returned for an ARRAY, ENUM or VIRTUAL data type that
	// is missing its inner type, values or return type.
	MalformedTypeDescriptorError = typemap.MalformedTypeDescriptorError
)

// InvalidInputError is returned when a value passed to a function is not of a usable type,
// such as a non-string given to Base64 or a non-numeric limit given to ArgsToFindOptions.
type InvalidInputError struct {
	op     string // the function or argument that was given the value
	value  any
	reason string
}

// Error returns the error string
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s (got %T %v)", e.op, e.reason, e.value, e.value)
}

// Is allows errors.Is(err, ErrInvalidInput) to match
func (e *InvalidInputError) Is(err error) bool {
	return err == ErrInvalidInput
}

// Op returns the name of the operation (or argument) that had the invalid input
func (e *InvalidInputError) Op() string {
	return e.op
}

// Value returns the value that was rejected
func (e *InvalidInputError) Value() any {
	return e.value
}

// NewInvalidInputError returns an InvalidInputError
func NewInvalidInputError(op string, value any, reason string) *InvalidInputError {
	return &InvalidInputError{op: op, value: value, reason: reason}
}

// IsInvalidInput returns true if the error is an InvalidInputError
func IsInvalidInput(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidInputError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidInput)
}

// IsTypeMapping returns true if the error is a TypeMappingError
func IsTypeMapping(err error) bool {
	if err == nil {
		return false
	}
	var e *TypeMappingError
	return errors.As(err, &e) || errors.Is(err, ErrTypeMapping)
}

// IsMalformedTypeDescriptor returns true if the error is a MalformedTypeDescriptorError
func IsMalformedTypeDescriptor(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedTypeDescriptorError
	return errors.As(err, &e) || errors.Is(err, ErrMalformedTypeDescriptor)
}
