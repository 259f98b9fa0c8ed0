package scalar

// json.go implements the GraphQL "JSON" scalar for any JSON value (object, list, string, etc)

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/eggorm/internal/simplify"
)

// JSON is the scalar for JSON attributes and "where" arguments
var JSON = &Scalar{
	Definition: &ast.Definition{
		Kind:        ast.Scalar,
		Name:        "JSON",
		Description: "The `JSON` scalar type represents raw JSON as values.",
	},
	Serialize:    func(v any) any { return v },
	ParseValue:   parseJSONValue,
	ParseLiteral: parseJSONLiteral,
}

// parseJSONValue decodes a string as JSON, other values are used as is
func parseJSONValue(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	var r any
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return nil, fmt.Errorf("%w decoding JSON scalar", err)
	}
	return r, nil
}

// parseJSONLiteral converts a query literal to the equivalent JSON value.
// A variable becomes a simplify.Variable since its value is only known later.
func parseJSONLiteral(v *ast.Value) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch v.Kind {
	case ast.IntValue:
		i, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w in JSON literal %s", err, v.Raw)
		}
		return i, nil
	case ast.FloatValue:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w in JSON literal %s", err, v.Raw)
		}
		return f, nil
	case ast.BooleanValue:
		return v.Raw == "true", nil
	case ast.StringValue, ast.BlockValue, ast.EnumValue:
		return v.Raw, nil
	case ast.ListValue:
		list := make([]any, 0, len(v.Children))
		for _, child := range v.Children {
			elt, err := parseJSONLiteral(child.Value)
			if err != nil {
				return nil, err
			}
			list = append(list, elt)
		}
		return list, nil
	case ast.ObjectValue:
		obj := make(map[string]any, len(v.Children))
		for _, child := range v.Children {
			elt, err := parseJSONLiteral(child.Value)
			if err != nil {
				return nil, err
			}
			obj[child.Name] = elt
		}
		return obj, nil
	case ast.Variable:
		return simplify.Variable{Name: v.Raw}, nil
	}
	return nil, nil // a null literal (ast.NullValue) is the JSON null, not an error
}

// JSONValue holds any JSON value, for use as a gqlgen model field of the JSON scalar
type JSONValue struct {
	Value any
}

// MarshalGQL writes the value as JSON
func (j JSONValue) MarshalGQL(w io.Writer) {
	graphql.MarshalAny(JSON.Serialize(j.Value)).MarshalGQL(w)
}

// UnmarshalGQL stores the value, decoding it if it is a string containing JSON
func (j *JSONValue) UnmarshalGQL(v any) error {
	value, err := JSON.ParseValue(v)
	if err != nil {
		return err
	}
	j.Value = value
	return nil
}
