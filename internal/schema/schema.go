// Package schema can be used to generate a GraphQL schema (as a string) for ORM models.
// Each model becomes an object type (with fields generated from its attributes) plus two
// query entry points: one to find a single object and one to find a list of them.
package schema

// schema.go contains the exported functions - Build and MustBuild

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

const (
	openString  = " {\n"
	closeString = "}\n"

	gqlObjectType = "type"
	gqlEnumType   = "enum"
	gqlScalarType = "scalar"

	queryName = "Query"
)

// Object is a GraphQL object type generated from a model, with the arguments for the queries that find it
type Object struct {
	Name        string
	Description string
	Fields      ast.FieldList
	Types       []*ast.Definition          // enums and custom scalars used by the fields
	Args        ast.ArgumentDefinitionList // arguments of the query that finds one object
	ListArgs    ast.ArgumentDefinitionList // arguments of the query that finds a list
}

// MustBuild is the same as Build but panics on error
func MustBuild(objects ...*Object) string {
	s, err := Build(objects...)
	if err != nil {
		panic(err)
	}
	return s
}

// Build generates a string containing a GraphQL schema from the objects.
// For each object there are 2 query fields: the object name with the first letter lower-cased
// (eg "user") and its plural ("users") which returns a list. Enums and custom scalars shared
// by different objects must be identical. The generated schema is checked using gqlparser.
func Build(objects ...*Object) (string, error) {
	if len(objects) == 0 {
		return "", errors.New("no objects provided for schema")
	}
	schemaTypes := newSchemaTypes() // all generated GraphQL types

	var query ast.FieldList
	for _, obj := range objects {
		if obj == nil {
			continue // skip it
		}
		if !validGraphQLName(obj.Name) || obj.Name == queryName {
			return "", fmt.Errorf("%q is not a valid object name", obj.Name)
		}
		for _, def := range obj.Types {
			if err := schemaTypes.addDefinition(def); err != nil {
				return "", fmt.Errorf("%w adding types of %s", err, obj.Name)
			}
		}
		if err := schemaTypes.addObject(obj.Name, obj.Description, obj.Fields); err != nil {
			return "", fmt.Errorf("%w building schema for %s", err, obj.Name)
		}

		one, many := QueryNames(obj.Name)
		query = append(query,
			&ast.FieldDefinition{Name: one, Arguments: obj.Args, Type: ast.NamedType(obj.Name, nil)},
			&ast.FieldDefinition{Name: many, Arguments: obj.ListArgs, Type: ast.ListType(ast.NamedType(obj.Name, nil), nil)},
		)
	}
	if err := schemaTypes.addObject(queryName, "", query); err != nil {
		return "", fmt.Errorf("%w building schema for %s", err, queryName)
	}

	builder := &strings.Builder{}
	builder.Grow(256) // Even simple schemas are at least this big
	builder.WriteString("schema")
	builder.WriteString(openString)
	builder.WriteString(" query: ")
	builder.WriteString(queryName)
	builder.WriteRune('\n')
	builder.WriteString(closeString)

	// Add the GraphQL types to the schema
	names := make([]string, 0, len(schemaTypes.declaration))
	for k := range schemaTypes.declaration {
		names = append(names, k)
	}
	sort.Strings(names) // we need to always output the types in the same order (eg for consistency in tests)
	for _, name := range names {
		builder.WriteString(schemaTypes.declaration[name])
	}

	s := builder.String()
	if _, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: s}); err != nil {
		return "", fmt.Errorf("%w validating generated schema", err)
	}
	return s, nil
}

// QueryNames returns the names of the queries for an object: its name with the first letter
// lower-cased, singular and plural, eg "BlogPost" => "blogPost", "blogPosts".
// If the singular and plural are the same the plural has "List" appended.
func QueryNames(name string) (one, many string) {
	one = lowerFirst(inflect.Singularize(name))
	many = lowerFirst(inflect.Pluralize(name))
	if one == many {
		many += "List"
	}
	return
}

func lowerFirst(s string) string {
	first, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(first)) + s[n:]
}
