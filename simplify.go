package eggorm

// simplify.go provides access to the simplification of GraphQL selection ASTs (see internal/simplify)

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/andrewwphillips/eggorm/internal/simplify"
)

type (
	// Node is a level of a simplified selection: the fields requested (keyed by response key, ie
	// alias if given) and the arguments supplied. Key is the field name if an alias was used.
	// Parent returns the enclosing node and Lookup finds a descendant.
	Node = simplify.Node

	// Info has the fragments and variable values of the operation being resolved
	Info = simplify.Info

	// Variable is what a variable in an argument is simplified to if no variable values are supplied.
	// Its Value method gets the value from the variables, or use the WithVariables option of ArgsToFindOptions.
	Variable = simplify.Variable
)

// Simplify reduces a GraphQL AST to a tree of the requested fields and their arguments.
// The node can be an operation, field, fragment (spread or inline), fragment definition or selection set,
// or a list of these such as a query document (all operations are merged) or a []*ast.Field.
// Fields requested more than once (eg in different fragments) are merged.
// If info is nil there are no fragments and variables are left as Variable values.
func Simplify(node any, info *Info) *Node {
	return simplify.Simplify(node, info)
}

// SimplifyQuery parses a GraphQL query document and simplifies all of its operations.
// The query is not validated (against a schema) but must be syntactically correct.
// If vars is nil variables are left as Variable values.
func SimplifyQuery(query string, vars map[string]any) (*Node, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "query", Input: query})
	if err != nil {
		return nil, fmt.Errorf("%w parsing query", err)
	}
	return Simplify(doc, &Info{Fragments: simplify.Fragments(doc.Fragments), VariableValues: vars}), nil
}

// Fragments converts a document's list of fragment definitions into a map for use in Info
func Fragments(list ast.FragmentDefinitionList) map[string]*ast.FragmentDefinition {
	return simplify.Fragments(list)
}
