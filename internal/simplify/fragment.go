package simplify

// fragment.go finds the definition of a named fragment that is referenced by a spread

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Fragment checks if node is a reference to one of the fragments of info and, if so,
// returns the fragment's definition. A fragment definition is never a reference to itself.
func Fragment(info *Info, node any) (*ast.FragmentDefinition, bool) {
	if info == nil || len(info.Fragments) == 0 {
		return nil, false
	}
	spread, ok := node.(*ast.FragmentSpread)
	if !ok || spread == nil {
		return nil, false
	}
	def, ok := info.Fragments[spread.Name]
	return def, ok && def != nil
}

// Fragments makes the lookup table for a document's fragments
func Fragments(list ast.FragmentDefinitionList) map[string]*ast.FragmentDefinition {
	r := make(map[string]*ast.FragmentDefinition, len(list))
	for _, def := range list {
		r[def.Name] = def
	}
	return r
}
