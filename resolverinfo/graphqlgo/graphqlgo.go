// Package graphqlgo gets the selection of the field being resolved from the ResolveInfo of a
// graphql-go resolver, converted to gqlparser ASTs so that it can be simplified. For example:
//
//	Resolve: func(p graphql.ResolveParams) (any, error) {
//		node := graphqlgo.Simplify(p.Info)
//		opts, err := eggorm.ArgsToFindOptions(node.Args, nil)
//		...
package graphqlgo

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	gql "github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/eggorm"
)

// Info returns the fragments and variable values of the operation, and the (converted) ASTs of
// the field being resolved. There is more than one field AST if the same field was selected more than once.
func Info(p graphql.ResolveInfo) (*eggorm.Info, []*gql.Field) {
	info := &eggorm.Info{
		Fragments:      make(map[string]*gql.FragmentDefinition, len(p.Fragments)),
		VariableValues: p.VariableValues,
	}
	if info.VariableValues == nil {
		info.VariableValues = map[string]any{}
	}
	for k, def := range p.Fragments {
		if f, ok := def.(*ast.FragmentDefinition); ok {
			info.Fragments[k] = ConvertFragment(f)
		}
	}

	fields := make([]*gql.Field, 0, len(p.FieldASTs))
	for _, f := range p.FieldASTs {
		if f != nil {
			fields = append(fields, ConvertField(f))
		}
	}
	return info, fields
}

// Simplify returns the simplified selection of the field being resolved, with the field's
// arguments (as they appear in the query, with variables substituted) in Args.
// It returns nil if there are no field ASTs.
func Simplify(p graphql.ResolveInfo) *eggorm.Node {
	info, fields := Info(p)
	if len(fields) == 0 {
		return nil
	}
	set := make(gql.SelectionSet, len(fields))
	for i, f := range fields {
		set[i] = f
	}
	key := fields[0].Alias
	if key == "" {
		key = fields[0].Name
	}
	return eggorm.Simplify(set, info).Fields[key]
}
