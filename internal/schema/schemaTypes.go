package schema

// schemaTypes.go contains the schema type which accumulates all the GraphQL types to be added to the schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// schema stores the text declaration of all the types of the schema accumulated so far (keyed by type name)
type schema struct {
	declaration map[string]string
}

// newSchemaTypes initialises an instance of the schemaTypes (by making the map)
func newSchemaTypes() schema {
	return schema{declaration: make(map[string]string)}
}

// store adds a declaration avoiding adding the same type twice.
// Returns an error if a different declaration has already been added with the same name.
func (s schema) store(name, decl string) error {
	if existing, ok := s.declaration[name]; ok && existing != decl {
		// Somehow we have different types with the same name
		return fmt.Errorf("same name (%s) used for multiple types", name)
	}
	s.declaration[name] = decl
	return nil
}

// addObject creates a GraphQL object declaration with the fields written in name order
func (s schema) addObject(name, description string, fields ast.FieldList) error {
	if len(fields) == 0 {
		return fmt.Errorf("type %s has no fields", name)
	}
	sorted := make(ast.FieldList, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	builder := &strings.Builder{}
	writeDescription(builder, "", description, "\n")
	builder.WriteString(gqlObjectType)
	builder.WriteRune(' ')
	builder.WriteString(name)
	builder.WriteString(openString)
	for i, f := range sorted {
		if !validGraphQLName(f.Name) {
			return fmt.Errorf("%q is not a valid field name", f.Name)
		}
		if i > 0 && sorted[i-1].Name == f.Name {
			return fmt.Errorf("field %q is repeated", f.Name)
		}
		writeDescription(builder, "  ", f.Description, "\n")
		builder.WriteString("  ")
		builder.WriteString(f.Name)
		if err := writeArguments(builder, f.Arguments); err != nil {
			return fmt.Errorf("%w for field %q", err, f.Name)
		}
		builder.WriteString(": ")
		builder.WriteString(f.Type.String())
		builder.WriteRune('\n')
	}
	builder.WriteString(closeString)

	return s.store(name, builder.String())
}

// addDefinition creates the declaration of an enum or custom scalar
func (s schema) addDefinition(def *ast.Definition) error {
	if def == nil {
		return nil
	}
	builder := &strings.Builder{}
	writeDescription(builder, "", def.Description, "\n")
	switch def.Kind {
	case ast.Enum:
		if err := validateEnum(def); err != nil {
			return err
		}
		builder.WriteString(gqlEnumType)
		builder.WriteRune(' ')
		builder.WriteString(def.Name)
		builder.WriteString(openString)
		for _, v := range def.EnumValues {
			writeDescription(builder, "  ", v.Description, "\n")
			builder.WriteString("  ")
			builder.WriteString(v.Name)
			builder.WriteRune('\n')
		}
		builder.WriteString(closeString)
	case ast.Scalar:
		if !validGraphQLName(def.Name) {
			return fmt.Errorf("%q is not a valid scalar name", def.Name)
		}
		builder.WriteString(gqlScalarType)
		builder.WriteRune(' ')
		builder.WriteString(def.Name)
		builder.WriteRune('\n')
	default:
		return fmt.Errorf("type %s of kind %s cannot be added to the schema", def.Name, def.Kind)
	}
	return s.store(def.Name, builder.String())
}

// writeArguments adds an argument list (if any) in brackets
func writeArguments(builder *strings.Builder, args ast.ArgumentDefinitionList) error {
	if len(args) == 0 {
		return nil
	}
	builder.WriteRune('(')
	for i, arg := range args {
		if !validGraphQLName(arg.Name) {
			return fmt.Errorf("%q is not a valid argument name", arg.Name)
		}
		if i > 0 {
			builder.WriteString(", ")
		}
		writeDescription(builder, "", arg.Description, " ")
		builder.WriteString(arg.Name)
		builder.WriteString(": ")
		builder.WriteString(arg.Type.String())
	}
	builder.WriteRune(')')
	return nil
}

// writeDescription adds a description (if not empty) as a block string followed by sep
func writeDescription(builder *strings.Builder, indent, description, sep string) {
	if description == "" {
		return
	}
	builder.WriteString(indent)
	builder.WriteString(`"""`)
	builder.WriteString(strings.ReplaceAll(description, `"""`, `\"""`))
	builder.WriteString(`"""`)
	builder.WriteString(sep)
}
