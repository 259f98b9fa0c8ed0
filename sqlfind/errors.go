package sqlfind

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperator is matched (using errors.Is) by any UnsupportedOperatorError
var ErrUnsupportedOperator = errors.New("unsupported operator")

// UnsupportedOperatorError is returned for a where operator that has no SQL translation, eg "$overlap"
type UnsupportedOperatorError struct {
	Op string
}

// Error returns the error string
func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("operator %q cannot be converted to SQL", e.Op)
}

// Is allows errors.Is(err, ErrUnsupportedOperator) to match
func (e *UnsupportedOperatorError) Is(err error) bool {
	return err == ErrUnsupportedOperator
}

// NewUnsupportedOperatorError returns an UnsupportedOperatorError
func NewUnsupportedOperatorError(op string) *UnsupportedOperatorError {
	return &UnsupportedOperatorError{Op: op}
}

// IsUnsupportedOperator returns true if the error is an UnsupportedOperatorError
func IsUnsupportedOperator(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedOperatorError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedOperator)
}
