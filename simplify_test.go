package eggorm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/andrewwphillips/eggorm"
)

func TestSimplifyQuery(t *testing.T) {
	query := `
		query ($id: ID) {
			u: user(id: $id, where: {age: {gt: 21}}) {
				...Names
				... on User { email }
				projects(first: 1) { nodes { name } }
			}
		}
		fragment Names on User { name nick: name }`

	got, err := eggorm.SimplifyQuery(query, map[string]any{"id": "42"})
	require.NoError(t, err)
	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"args":{},"fields":{"u":{"key":"user",
		"args":{"id":"42","where":{"age":{"gt":"21"}}},
		"fields":{
			"email":{"args":{},"fields":{}},
			"name":{"args":{},"fields":{}},
			"nick":{"key":"name","args":{},"fields":{}},
			"projects":{"args":{"first":"1"},"fields":{"nodes":{"args":{},"fields":{"name":{"args":{},"fields":{}}}}}}
		}}}}`, string(out))

	nodes := got.Lookup("u", "projects", "nodes")
	require.NotNil(t, nodes)
	assert.Same(t, got.Lookup("u", "projects"), nodes.Parent())
	assert.Equal(t, map[string]any{"first": "1"}, nodes.Parent().Args)
}

func TestSimplifyQueryVariables(t *testing.T) {
	got, err := eggorm.SimplifyQuery(`{ users(limit: $n, name: $name) { name } }`, nil)
	require.NoError(t, err)
	users := got.Lookup("users")
	require.NotNil(t, users)
	assert.Equal(t, eggorm.Variable{Name: "n"}, users.Args["limit"])

	// the variables can be supplied later
	opts, err := eggorm.ArgsToFindOptions(users.Args, []string{"name"},
		eggorm.WithVariables(map[string]any{"n": 5, "name": "Al"}))
	require.NoError(t, err)
	assert.Equal(t, 5, *opts.Limit)
	assert.Equal(t, map[string]any{"name": "Al"}, opts.Where)
}

func TestSimplifyQueryErrors(t *testing.T) {
	_, err := eggorm.SimplifyQuery(`{ user(id: 1) { name }`, nil)
	assert.Error(t, err)
}

func TestSimplify(t *testing.T) {
	doc, err := parser.ParseQuery(&ast.Source{Input: `{ a { x } } fragment F on A { y }`})
	require.NoError(t, err)

	got := eggorm.Simplify(doc.Operations[0].SelectionSet, nil)
	assert.NotNil(t, got.Lookup("a", "x"))

	spread := &ast.FragmentSpread{Name: "F"}
	got = eggorm.Simplify(spread, &eggorm.Info{Fragments: eggorm.Fragments(doc.Fragments)})
	assert.NotNil(t, got.Lookup("y"))
	assert.Nil(t, got.Lookup("x"))
}
