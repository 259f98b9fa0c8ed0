package simplify

// value.go reduces argument value ASTs to plain Go values

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Variable is what a variable reference reduces to when no variable values were available.
// The value can be obtained later using the Value method.
type Variable struct {
	Name string `json:"variable"`
}

// Value returns the value bound to the variable (nil if unbound)
func (v Variable) Value(vars map[string]any) any {
	return vars[v.Name]
}

// Value reduces an argument value AST to a plain value:
//   - scalar literals (Int, Float, String, Enum) are returned as their literal text
//   - Boolean literals are returned as a bool
//   - lists become []any and objects become map[string]any (of reduced values)
//   - variables are looked up in vars, or if vars is nil returned as a Variable
//   - null (and anything unrecognised) is nil
func Value(v *ast.Value, vars map[string]any) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ast.ListValue:
		list := make([]any, 0, len(v.Children))
		for _, child := range v.Children {
			list = append(list, Value(child.Value, vars))
		}
		return list
	case ast.ObjectValue:
		obj := make(map[string]any, len(v.Children))
		for _, child := range v.Children {
			obj[child.Name] = Value(child.Value, vars)
		}
		return obj
	case ast.IntValue, ast.FloatValue, ast.StringValue, ast.BlockValue, ast.EnumValue:
		return v.Raw
	case ast.BooleanValue:
		return v.Raw == "true"
	case ast.Variable:
		if vars == nil {
			return Variable{Name: v.Raw}
		}
		return vars[v.Raw]
	}
	return nil // includes ast.NullValue
}

// Resolve replaces any Variable in a reduced value (at any depth) with its value from vars.
// Lists and objects containing variables are copied rather than modified.
func Resolve(value any, vars map[string]any) any {
	switch value := value.(type) {
	case Variable:
		return value.Value(vars)
	case []any:
		list := make([]any, len(value))
		for i, elt := range value {
			list[i] = Resolve(elt, vars)
		}
		return list
	case map[string]any:
		obj := make(map[string]any, len(value))
		for k, elt := range value {
			obj[k] = Resolve(elt, vars)
		}
		return obj
	}
	return value
}
