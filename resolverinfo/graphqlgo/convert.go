package graphqlgo

// convert.go translates graphql-go AST nodes into the equivalent gqlparser AST nodes

import (
	"strconv"

	"github.com/graphql-go/graphql/language/ast"
	gql "github.com/vektah/gqlparser/v2/ast"
)

// Convert translates a graphql-go selection (*ast.Field, *ast.FragmentSpread, *ast.InlineFragment),
// fragment or operation definition, or selection set. It returns nil for anything else.
func Convert(node any) any {
	switch n := node.(type) {
	case *ast.Field:
		if n == nil {
			return nil
		}
		return ConvertField(n)
	case *ast.FragmentSpread:
		if n == nil {
			return nil
		}
		return &gql.FragmentSpread{Name: name(n.Name)}
	case *ast.InlineFragment:
		if n == nil {
			return nil
		}
		f := &gql.InlineFragment{SelectionSet: ConvertSelectionSet(n.SelectionSet)}
		if n.TypeCondition != nil {
			f.TypeCondition = name(n.TypeCondition.Name)
		}
		return f
	case *ast.FragmentDefinition:
		if n == nil {
			return nil
		}
		return ConvertFragment(n)
	case *ast.OperationDefinition:
		if n == nil {
			return nil
		}
		return &gql.OperationDefinition{
			Operation:    gql.Operation(n.Operation),
			Name:         name(n.Name),
			SelectionSet: ConvertSelectionSet(n.SelectionSet),
		}
	case *ast.SelectionSet:
		if n == nil {
			return nil
		}
		return ConvertSelectionSet(n)
	}
	return nil
}

// ConvertField translates a field, including its arguments and selection set
func ConvertField(f *ast.Field) *gql.Field {
	if f == nil {
		return nil
	}
	r := &gql.Field{
		Alias:        name(f.Alias),
		Name:         name(f.Name),
		SelectionSet: ConvertSelectionSet(f.SelectionSet),
	}
	for _, arg := range f.Arguments {
		if arg == nil {
			continue
		}
		r.Arguments = append(r.Arguments, &gql.Argument{Name: name(arg.Name), Value: ConvertValue(arg.Value)})
	}
	return r
}

// ConvertFragment translates a fragment definition
func ConvertFragment(def *ast.FragmentDefinition) *gql.FragmentDefinition {
	if def == nil {
		return nil
	}
	r := &gql.FragmentDefinition{
		Name:         name(def.Name),
		SelectionSet: ConvertSelectionSet(def.SelectionSet),
	}
	if def.TypeCondition != nil {
		r.TypeCondition = name(def.TypeCondition.Name)
	}
	return r
}

// ConvertSelectionSet translates each of the selections of a set
func ConvertSelectionSet(set *ast.SelectionSet) gql.SelectionSet {
	if set == nil {
		return nil
	}
	r := make(gql.SelectionSet, 0, len(set.Selections))
	for _, sel := range set.Selections {
		if s, ok := Convert(sel).(gql.Selection); ok {
			r = append(r, s)
		}
	}
	return r
}

// ConvertValue translates an argument value. Anything unrecognised becomes a null value.
func ConvertValue(v ast.Value) *gql.Value {
	switch v := v.(type) {
	case *ast.Variable:
		return &gql.Value{Kind: gql.Variable, Raw: name(v.Name)}
	case *ast.IntValue:
		return &gql.Value{Kind: gql.IntValue, Raw: v.Value}
	case *ast.FloatValue:
		return &gql.Value{Kind: gql.FloatValue, Raw: v.Value}
	case *ast.StringValue:
		return &gql.Value{Kind: gql.StringValue, Raw: v.Value}
	case *ast.BooleanValue:
		return &gql.Value{Kind: gql.BooleanValue, Raw: strconv.FormatBool(v.Value)}
	case *ast.EnumValue:
		return &gql.Value{Kind: gql.EnumValue, Raw: v.Value}
	case *ast.ListValue:
		r := &gql.Value{Kind: gql.ListValue}
		for _, child := range v.Values {
			r.Children = append(r.Children, &gql.ChildValue{Value: ConvertValue(child)})
		}
		return r
	case *ast.ObjectValue:
		r := &gql.Value{Kind: gql.ObjectValue}
		for _, f := range v.Fields {
			if f == nil {
				continue
			}
			r.Children = append(r.Children, &gql.ChildValue{Name: name(f.Name), Value: ConvertValue(f.Value)})
		}
		return r
	}
	return &gql.Value{Kind: gql.NullValue, Raw: "null"}
}

func name(n *ast.Name) string {
	if n == nil {
		return ""
	}
	return n.Value
}
