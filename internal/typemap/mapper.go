// Package typemap maps ORM data types to GraphQL types
package typemap

// mapper.go has the Mapper which applies the mapping rules, after any custom mapping

import (
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/andrewwphillips/eggorm/datatype"
	"github.com/andrewwphillips/eggorm/internal/scalar"
)

// CustomFunc is a custom mapping used in place of the built-in rules. It returns nil for
// types it does not handle.
type CustomFunc func(*datatype.DataType) *Type

// Mapper converts ORM data types to GraphQL types. The zero value (or nil) uses just the
// built-in rules. A Mapper is not modified after creation so can be shared.
type Mapper struct {
	custom CustomFunc
	logger *zap.Logger
}

// Option configures a Mapper
type Option func(*Mapper)

// WithCustom sets a custom mapping that is tried before the built-in rules
func WithCustom(fn CustomFunc) Option {
	return func(m *Mapper) {
		m.custom = fn
	}
}

// WithLogger sets the logger (the default discards everything)
func WithLogger(logger *zap.Logger) Option {
	return func(m *Mapper) {
		m.logger = logger
	}
}

// New creates a Mapper
func New(options ...Option) *Mapper {
	m := &Mapper{}
	for _, option := range options {
		option(m)
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	return m
}

// Default is a Mapper with no custom mapping
var Default = New()

// names of the built-in scalars
const (
	graphQLBoolean = "Boolean"
	graphQLFloat   = "Float"
	graphQLString  = "String"
	graphQLInt     = "Int"
)

// ToGraphQL returns the GraphQL type for an ORM data type.
// The custom mapping (if any) is used if it returns a type, otherwise the first matching
// rule is used:
//
//	BOOLEAN => Boolean
//	FLOAT, REAL, DOUBLE => Float
//	DATE => Date (custom scalar)
//	CHAR, STRING, TEXT, UUID, UUIDV4, DATEONLY, TIME, BIGINT, DECIMAL, CITEXT, INET => String
//	INTEGER => Int
//	ARRAY(t) => list of the mapping of t
//	ENUM(values) => a new enum called TempEnumName
//	VIRTUAL(t) => the mapping of t (String if no return type)
//	JSON, JSONB => JSON (custom scalar)
//
// Any other type returns a TypeMappingError.
func (m *Mapper) ToGraphQL(t *datatype.DataType) (*Type, error) {
	if m == nil {
		m = Default
	}
	if t == nil {
		return nil, NewTypeMappingError("")
	}
	if m.custom != nil {
		if r := m.custom(t); r != nil {
			if m.logger != nil {
				m.logger.Debug("custom type mapping", zap.String("type", t.String()), zap.String("graphql", r.String()))
			}
			return r, nil
		}
	}

	switch t.Kind {
	case datatype.KindBoolean:
		return Named(graphQLBoolean), nil
	case datatype.KindFloat, datatype.KindReal, datatype.KindDouble:
		return Named(graphQLFloat), nil
	case datatype.KindDate:
		return scalarType(scalar.Date), nil
	case datatype.KindChar, datatype.KindString, datatype.KindText, datatype.KindUUID, datatype.KindUUIDV4,
		datatype.KindDateOnly, datatype.KindTime, datatype.KindBigInt, datatype.KindDecimal,
		datatype.KindCIText, datatype.KindINet:
		return Named(graphQLString), nil
	case datatype.KindInteger:
		return Named(graphQLInt), nil
	case datatype.KindArray:
		if t.Elem == nil {
			return nil, NewMalformedTypeDescriptorError(t.Key(), "does not have an inner type")
		}
		elem, err := m.ToGraphQL(t.Elem)
		if err != nil {
			return nil, err
		}
		return List(elem), nil
	case datatype.KindEnum:
		if t.Values == nil {
			return nil, NewMalformedTypeDescriptorError(t.Key(), "does not have values")
		}
		return newEnum(t.Values), nil
	case datatype.KindVirtual:
		if t.ReturnType == nil {
			return Named(graphQLString), nil
		}
		if t.ReturnType.Key() == "" {
			return nil, NewMalformedTypeDescriptorError(t.Key(), "returnType is not a valid data type")
		}
		return m.ToGraphQL(t.ReturnType)
	case datatype.KindJSON, datatype.KindJSONB:
		return scalarType(scalar.JSON), nil
	}
	return nil, NewTypeMappingError(t.Key())
}

// scalarType is the type for a custom scalar
func scalarType(s *scalar.Scalar) *Type {
	return &Type{Name: s.Name(), Def: s.Definition}
}

// IsCustomScalar reports whether the definition is one of the custom scalars
func IsCustomScalar(def *ast.Definition) bool {
	return def != nil && def.Kind == ast.Scalar && scalar.Lookup(def.Name) != nil
}
