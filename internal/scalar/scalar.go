// Package scalar has the custom GraphQL scalars (Date and JSON) used for ORM attribute types
// that have no standard GraphQL equivalent.
package scalar

// scalar.go has the Scalar type describing a custom scalar and the lookup by name

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Scalar is a custom GraphQL scalar type: its (schema) definition plus the conversions
// between Go values and GraphQL result values, variables and literals.
type Scalar struct {
	Definition *ast.Definition

	// Serialize converts a Go value to a value for the response
	Serialize func(any) any
	// ParseValue converts a variable value (decoded from the request JSON)
	ParseValue func(any) (any, error)
	// ParseLiteral converts a literal in the query
	ParseLiteral func(*ast.Value) (any, error)
}

// Name is the GraphQL name of the scalar
func (s *Scalar) Name() string {
	return s.Definition.Name
}

// Lookup returns the custom scalar with the given GraphQL name (or nil)
func Lookup(name string) *Scalar {
	switch name {
	case Date.Name():
		return Date
	case JSON.Name():
		return JSON
	}
	return nil
}
