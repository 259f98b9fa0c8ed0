package typemap

// enum.go converts ORM enum values into valid GraphQL enum value names

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"github.com/vektah/gqlparser/v2/ast"
)

// specialChars are replacements for characters not allowed in GraphQL names. Any other
// invalid character is replaced by a space (which separates words).
var specialChars = map[rune]string{
	'¼': "frac14",
	'½': "frac12",
	'¾': "frac34",
}

// TempEnumName is the name of an enum type created by the mapper. It needs to be renamed
// (eg by AttributeFields) before use since every ORM enum would otherwise have the same name.
const TempEnumName = "tempEnumName"

// SanitizeEnumValue makes a GraphQL enum value name from an ORM enum value.
// Invalid characters are replaced and the resulting words are joined in camel case
// (the first word is left as is) and a leading digit is prefixed with an underscore.
// Eg "value with spaces" => "valueWithSpaces", "123number" => "_123number"
func SanitizeEnumValue(s string) string {
	var b strings.Builder
	for _, c := range strings.TrimSpace(s) {
		if c == '_' || c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) {
			b.WriteRune(c)
			continue
		}
		if repl, ok := specialChars[c]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(' ')
	}

	words := strings.Split(b.String(), " ")
	for i := 1; i < len(words); i++ {
		if words[i] != "" {
			words[i] = inflect.Capitalize(words[i])
		}
	}
	r := strings.Join(words, "")

	if r != "" && r[0] >= '0' && r[0] <= '9' {
		r = "_" + r
	}
	return r
}

// newEnum creates the (temporarily named) enum type for the ORM enum values
func newEnum(values []string) *Type {
	def := &ast.Definition{Kind: ast.Enum, Name: TempEnumName}
	lookup := make(map[string]string, len(values))
	for _, v := range values {
		name := SanitizeEnumValue(v)
		if _, ok := lookup[name]; !ok {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{Name: name})
		}
		lookup[name] = v // eg for "a b" then "a-b" the name "aB" stands for "a-b"
	}
	return &Type{Name: TempEnumName, Def: def, Values: lookup}
}

// Rename returns a copy of the enum type t (or a list of it) with the enum renamed.
// The definition is copied too so that the original is unchanged.
func Rename(t *Type, name string) *Type {
	if t.Elem != nil {
		return List(Rename(t.Elem, name))
	}
	if !t.IsEnum() {
		return t
	}
	def := *t.Def
	def.Name = name
	return &Type{Name: name, Def: &def, Values: t.Values}
}
