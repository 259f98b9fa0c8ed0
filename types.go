package eggorm

// types.go has the GraphQL types used by the generated fields, including the custom scalars "Date" and "JSON"

import (
	"github.com/andrewwphillips/eggorm/datatype"
	"github.com/andrewwphillips/eggorm/internal/scalar"
	"github.com/andrewwphillips/eggorm/internal/typemap"
)

type (
	// GraphQLType is the GraphQL type an ORM data type maps to: a named type or a list.
	// Enums and the custom scalars also carry the definition to be added to the schema.
	GraphQLType = typemap.Type

	// CustomMapping is used with WithCustomTypes to override the mapping of data types
	CustomMapping = typemap.CustomFunc

	// Scalar describes a custom scalar type including functions to serialize and parse values
	Scalar = scalar.Scalar

	// Date is a date/time that is encoded (by gqlgen) as an ISO-8601 string in UTC with milliseconds
	Date = scalar.DateTime

	// JSON holds any value that is encoded (by gqlgen) as raw JSON
	JSON = scalar.JSONValue
)

var (
	// DateScalar is the custom scalar that DATE attributes map to
	DateScalar = scalar.Date

	// JSONScalar is the custom scalar that JSON and JSONB attributes map to, and the type of "where" arguments
	JSONScalar = scalar.JSON
)

// NamedType returns a GraphQLType for a built-in scalar (or another named type), eg NamedType("ID")
func NamedType(name string) *GraphQLType {
	return typemap.Named(name)
}

// ListType returns a GraphQLType that is a list of elem
func ListType(elem *GraphQLType) *GraphQLType {
	return typemap.List(elem)
}

// ToGraphQL returns the GraphQL type for an ORM data type, using any custom mapping
// provided with the WithCustomTypes option. An enum has the name "tempEnumName".
func ToGraphQL(t *datatype.DataType, options ...func(*options)) (*GraphQLType, error) {
	return getOptions(options).mapper.ToGraphQL(t)
}

// SanitizeEnumValue converts an ORM enum value to a valid GraphQL enum value name, eg "value with spaces" => "valueWithSpaces"
func SanitizeEnumValue(s string) string {
	return typemap.SanitizeEnumValue(s)
}
