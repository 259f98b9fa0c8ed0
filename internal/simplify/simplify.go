package simplify

// simplify.go walks a selection AST building the simplified tree of fields and args

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// walker holds what stays the same for the whole of one Simplify call
type walker struct {
	info *Info
	tree *tree
}

// Simplify reduces node to a tree of the fields it selects.
// The node can be an operation, a fragment definition, a field, a fragment spread, an inline
// fragment, or a selection set. It can also be a list (of fields or operations, or a []any of
// any of the above), or a whole query document, in which case each element is simplified
// separately and the results merged.
// Fragment spreads and inline fragments are flattened into the level where they appear.
// The fragments referenced must not be cyclic (which a validated query guarantees).
func Simplify(node any, info *Info) *Node {
	if info == nil {
		info = &Info{}
	}
	w := walker{info: info, tree: newTree()}
	return w.simplify(node, nil)
}

func (w walker) simplify(node any, parent *Node) *Node {
	switch n := node.(type) {
	case []any:
		return w.list(len(n), func(i int) any { return n[i] })
	case []*ast.Field:
		return w.list(len(n), func(i int) any { return n[i] })
	case ast.OperationList:
		return w.list(len(n), func(i int) any { return n[i] })
	case *ast.QueryDocument:
		if n == nil {
			return w.tree.node()
		}
		return w.list(len(n.Operations), func(i int) any { return n.Operations[i] })
	}

	if def, ok := Fragment(w.info, node); ok {
		return w.simplify(def, nil) // fragment contents have no parent
	}

	set := selections(node)
	result := w.tree.node()
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.FragmentSpread, *ast.InlineFragment:
			Merge(result, w.simplify(sel, nil))
		case *ast.Field:
			key := sel.Alias
			if key == "" {
				key = sel.Name
			}
			entry, ok := result.Fields[key]
			if !ok {
				entry = w.tree.node()
				result.Fields[key] = entry
			}
			Merge(entry, w.simplify(sel, entry))
			if sel.Alias != "" && sel.Alias != sel.Name {
				entry.Key = sel.Name
			}
			entry.Args = w.args(sel.Arguments) // the last selection's args replace any earlier ones
			if parent != nil {
				w.tree.parents[entry] = parent
			}
		}
	}
	return result
}

// list simplifies each of n nodes and merges the results
func (w walker) list(n int, at func(int) any) *Node {
	result := w.tree.node()
	for i := 0; i < n; i++ {
		Merge(result, w.simplify(at(i), nil))
	}
	return result
}

// args reduces a field's arguments
func (w walker) args(list ast.ArgumentList) map[string]any {
	r := make(map[string]any, len(list))
	for _, arg := range list {
		r[arg.Name] = Value(arg.Value, w.info.VariableValues)
	}
	return r
}

// selections returns the selection set of an AST node (nil if it does not have one)
func selections(node any) ast.SelectionSet {
	switch n := node.(type) {
	case ast.SelectionSet:
		return n
	case *ast.Field:
		if n != nil {
			return n.SelectionSet
		}
	case *ast.InlineFragment:
		if n != nil {
			return n.SelectionSet
		}
	case *ast.FragmentDefinition:
		if n != nil {
			return n.SelectionSet
		}
	case *ast.OperationDefinition:
		if n != nil {
			return n.SelectionSet
		}
	}
	return nil
}
