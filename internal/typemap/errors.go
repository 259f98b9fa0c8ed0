package typemap

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMapping is matched (using errors.Is) by any TypeMappingError
	ErrTypeMapping = errors.New("no GraphQL mapping for data type")

	// ErrMalformedTypeDescriptor is matched by any MalformedTypeDescriptorError
	ErrMalformedTypeDescriptor = errors.New("malformed data type descriptor")
)

// TypeMappingError is returned when an ORM data type has no GraphQL equivalent
type TypeMappingError struct {
	tag string
}

// Error returns the error string which names the data type
func (e *TypeMappingError) Error() string {
	tag := e.tag
	if tag == "" {
		tag = "unknown"
	}
	return fmt.Sprintf("unable to convert %s to a GraphQL type", tag)
}

// Is allows errors.Is(err, ErrTypeMapping) to match
func (e *TypeMappingError) Is(err error) bool {
	return err == ErrTypeMapping
}

// Tag returns the ORM tag of the data type that could not be mapped
func (e *TypeMappingError) Tag() string {
	return e.tag
}

// NewTypeMappingError returns a TypeMappingError for the ORM type tag
func NewTypeMappingError(tag string) *TypeMappingError {
	return &TypeMappingError{tag: tag}
}

// MalformedTypeDescriptorError is returned when an ARRAY, ENUM or VIRTUAL data type is
// missing the inner type, values or return type it needs
type MalformedTypeDescriptorError struct {
	tag    string
	reason string
}

// Error returns the error string
func (e *MalformedTypeDescriptorError) Error() string {
	return fmt.Sprintf("%s type %s", e.tag, e.reason)
}

// Is allows errors.Is(err, ErrMalformedTypeDescriptor) to match
func (e *MalformedTypeDescriptorError) Is(err error) bool {
	return err == ErrMalformedTypeDescriptor
}

// Tag returns the ORM tag of the malformed data type
func (e *MalformedTypeDescriptorError) Tag() string {
	return e.tag
}

// NewMalformedTypeDescriptorError returns a MalformedTypeDescriptorError
func NewMalformedTypeDescriptorError(tag, reason string) *MalformedTypeDescriptorError {
	return &MalformedTypeDescriptorError{tag: tag, reason: reason}
}
