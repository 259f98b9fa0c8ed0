package typemap

// type.go has Type, the GraphQL (output) type that an ORM data type maps to

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Type is a GraphQL type: a named type (scalar or enum) or a list.
// Def is only set for named types that need their own definition in a schema, ie
// enums and custom scalars (not built-in scalars like Int).
type Type struct {
	Name   string            // named type, empty for a list
	Elem   *Type             // element type of a list
	Def    *ast.Definition   // enum or custom scalar definition
	Values map[string]string // enum value names to the ORM value each stands for
}

// Named returns a (built-in) named type such as "Int"
func Named(name string) *Type {
	return &Type{Name: name}
}

// List returns the type for a list of elem
func List(elem *Type) *Type {
	return &Type{Elem: elem}
}

// IsList reports whether t is a list type
func (t *Type) IsList() bool {
	return t.Elem != nil
}

// IsEnum reports whether t is an enum type (not a list of enums)
func (t *Type) IsEnum() bool {
	return t.Def != nil && t.Def.Kind == ast.Enum
}

// Base returns the named type at the bottom of any list(s)
func (t *Type) Base() *Type {
	for t.Elem != nil {
		t = t.Elem
	}
	return t
}

// AST returns a (nullable) reference to the type for use in a field or argument definition
func (t *Type) AST() *ast.Type {
	if t.Elem != nil {
		return ast.ListType(t.Elem.AST(), nil)
	}
	return ast.NamedType(t.Name, nil)
}

// NonNull returns a non-null reference to the type
func (t *Type) NonNull() *ast.Type {
	r := t.AST()
	r.NonNull = true
	return r
}

// String returns the type as it appears in a schema, eg "[Int]"
func (t *Type) String() string {
	return t.AST().String()
}
