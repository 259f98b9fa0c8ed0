// Package gqlgen gets the selection of the field being resolved from the context of a gqlgen
// resolver, so that it can be simplified (see eggorm.Simplify). For example:
//
//	func (r *queryResolver) Users(ctx context.Context, limit *int, where map[string]any) ([]*model.User, error) {
//		node := gqlgen.Simplify(ctx)
//		cols := sqlfind.Columns(node, userModel)
//		...
package gqlgen

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/eggorm"
)

// Info returns the fragments and variable values of the operation, and the AST of the field
// being resolved. The field is nil if ctx is not the context of a field resolver.
// If ctx has no operation context both are nil.
func Info(ctx context.Context) (*eggorm.Info, *ast.Field) {
	if !graphql.HasOperationContext(ctx) {
		return nil, nil
	}
	oc := graphql.GetOperationContext(ctx)
	info := &eggorm.Info{VariableValues: oc.Variables}
	if info.VariableValues == nil {
		info.VariableValues = map[string]any{} // resolve variables (to nil) rather than leaving them
	}
	if oc.Doc != nil {
		info.Fragments = eggorm.Fragments(oc.Doc.Fragments)
	}

	fc := graphql.GetFieldContext(ctx)
	if fc == nil {
		return info, nil
	}
	return info, fc.Field.Field
}

// Simplify returns the simplified selection of the field being resolved, with the field's
// arguments (as they appear in the query, with variables substituted) in Args.
// It returns nil if ctx is not the context of a field resolver.
func Simplify(ctx context.Context) *eggorm.Node {
	info, field := Info(ctx)
	if field == nil {
		return nil
	}
	key := field.Alias
	if key == "" {
		key = field.Name
	}
	return eggorm.Simplify(ast.SelectionSet{field}, info).Fields[key]
}
