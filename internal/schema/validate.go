package schema

// validate.go has functions to help check that schema values are valid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

var nameRegex = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// validGraphQLName checks that a string contains a valid GraphQL identifier like a field,
// argument, or type name or an enum value.
func validGraphQLName(s string) bool {
	if strings.HasPrefix(s, "__") {
		return false // reserved names
	}
	return nameRegex.MatchString(s)
}

// validateEnum checks that the enum name and values are OK
func validateEnum(def *ast.Definition) error {
	if !validGraphQLName(def.Name) {
		return fmt.Errorf("enum %q is not a valid name", def.Name)
	}
	if len(def.EnumValues) == 0 {
		return fmt.Errorf("enum %q has no values", def.Name)
	}

	inUse := make(map[string]struct{}, len(def.EnumValues)) // for repeated value check
	for _, v := range def.EnumValues {
		if v.Name == "true" || v.Name == "false" || v.Name == "null" { // reserved names
			return fmt.Errorf("%q is not an allowed enum value (enum %s)", v.Name, def.Name)
		}
		if !validGraphQLName(v.Name) {
			return fmt.Errorf("%q is not a valid enum value (enum %s)", v.Name, def.Name)
		}
		if _, ok := inUse[v.Name]; ok {
			// We can't allow an enum to have multiple values with the same name
			return fmt.Errorf("%q is a repeated enum value (enum %s)", v.Name, def.Name)
		}
		inUse[v.Name] = struct{}{}
	}
	return nil
}
