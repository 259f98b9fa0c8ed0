// Package simplify reduces the AST of a GraphQL selection (as seen by a resolver) into a
// tree of requested fields and the arguments supplied for each of them.
package simplify

// node.go has the Node type of the simplified tree and the table used to find a node's parent

import (
	"encoding/json"
	"sort"

	"github.com/dolmen-go/jsonmap"
	"github.com/vektah/gqlparser/v2/ast"
)

// Info is the part of a resolver's context needed to simplify a selection
type Info struct {
	Fragments      map[string]*ast.FragmentDefinition // named fragments of the operation
	VariableValues map[string]any                     // if nil variable references are left as Variable
}

// Node is one level of a simplified selection.
// Fields and Args are never nil. Key is only set for an aliased field and holds the
// field name (the map key in the parent's Fields being the alias).
type Node struct {
	Fields map[string]*Node
	Args   map[string]any
	Key    string

	tree *tree // shared by all nodes created in the same Simplify call
}

// tree records the enclosing node of every field node, keyed by the child.
// A node does not point to its parent so the tree never contains a cycle.
type tree struct {
	parents map[*Node]*Node
}

func newTree() *tree {
	return &tree{parents: make(map[*Node]*Node)}
}

// node creates an empty node belonging to the tree
func (t *tree) node() *Node {
	return &Node{
		Fields: make(map[string]*Node),
		Args:   make(map[string]any),
		tree:   t,
	}
}

// Parent returns the node that was being built when n was created, or nil for a root node.
// It is recorded once, when the field is first simplified, and is not changed by later merges.
func (n *Node) Parent() *Node {
	if n == nil || n.tree == nil {
		return nil
	}
	return n.tree.parents[n]
}

// Lookup follows a path of response keys down from n, returning nil if any is missing
func (n *Node) Lookup(path ...string) *Node {
	for _, key := range path {
		if n == nil {
			return nil
		}
		n = n.Fields[key]
	}
	return n
}

// MarshalJSON encodes the node with its keys (and those of its fields and args) sorted,
// so that the output is stable. The parent is not part of the encoding.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonmap.Ordered{Data: make(map[string]interface{}, 3)}
	if n.Key != "" {
		out.Order = append(out.Order, "key")
		out.Data["key"] = n.Key
	}

	args := jsonmap.Ordered{Data: make(map[string]interface{}, len(n.Args)), Order: sortedKeys(n.Args)}
	for k, v := range n.Args {
		args.Data[k] = v
	}
	fields := jsonmap.Ordered{Data: make(map[string]interface{}, len(n.Fields)), Order: sortedKeys(n.Fields)}
	for k, v := range n.Fields {
		fields.Data[k] = v
	}
	out.Order = append(out.Order, "args", "fields")
	out.Data["args"] = args
	out.Data["fields"] = fields

	return json.Marshal(out)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
