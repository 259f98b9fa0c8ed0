package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/eggorm/internal/simplify"
)

func TestValue(t *testing.T) {
	vars := map[string]any{"v": 42, "s": "str"}
	tests := map[string]struct {
		in   *ast.Value
		vars map[string]any
		exp  any
	}{
		"Nil":      {nil, nil, nil},
		"Int":      {&ast.Value{Kind: ast.IntValue, Raw: "1"}, nil, "1"},
		"Float":    {&ast.Value{Kind: ast.FloatValue, Raw: "3.14"}, nil, "3.14"},
		"String":   {&ast.Value{Kind: ast.StringValue, Raw: "abc"}, nil, "abc"},
		"Block":    {&ast.Value{Kind: ast.BlockValue, Raw: "a\nb"}, nil, "a\nb"},
		"Enum":     {&ast.Value{Kind: ast.EnumValue, Raw: "RED"}, nil, "RED"},
		"True":     {&ast.Value{Kind: ast.BooleanValue, Raw: "true"}, nil, true},
		"False":    {&ast.Value{Kind: ast.BooleanValue, Raw: "false"}, nil, false},
		"Null":     {&ast.Value{Kind: ast.NullValue, Raw: "null"}, nil, nil},
		"Unknown":  {&ast.Value{Kind: ast.ValueKind(99), Raw: "?"}, nil, nil},
		"Var":      {&ast.Value{Kind: ast.Variable, Raw: "v"}, vars, 42},
		"VarUnset": {&ast.Value{Kind: ast.Variable, Raw: "x"}, vars, nil},
		"VarLater": {&ast.Value{Kind: ast.Variable, Raw: "v"}, nil, simplify.Variable{Name: "v"}},
		"List": {
			&ast.Value{Kind: ast.ListValue, Children: ast.ChildValueList{
				{Value: &ast.Value{Kind: ast.IntValue, Raw: "1"}},
				{Value: &ast.Value{Kind: ast.ListValue, Children: ast.ChildValueList{
					{Value: &ast.Value{Kind: ast.Variable, Raw: "s"}},
				}}},
			}},
			vars,
			[]any{"1", []any{"str"}},
		},
		"EmptyList": {&ast.Value{Kind: ast.ListValue}, nil, []any{}},
		"Object": {
			&ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
				{Name: "a", Value: &ast.Value{Kind: ast.IntValue, Raw: "2"}},
				{Name: "b", Value: &ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
					{Name: "c", Value: &ast.Value{Kind: ast.BooleanValue, Raw: "true"}},
				}}},
			}},
			nil,
			map[string]any{"a": "2", "b": map[string]any{"c": true}},
		},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, data.exp, simplify.Value(data.in, data.vars))
		})
	}
}

func TestVariable(t *testing.T) {
	v := simplify.Variable{Name: "id"}
	assert.Equal(t, "7", v.Value(map[string]any{"id": "7"}))
	assert.Nil(t, v.Value(nil))
}

func TestResolve(t *testing.T) {
	in := map[string]any{
		"a": simplify.Variable{Name: "x"},
		"b": []any{"1", simplify.Variable{Name: "y"}},
		"c": "plain",
	}
	got := simplify.Resolve(in, map[string]any{"x": 1, "y": 2})
	assert.Equal(t, map[string]any{"a": 1, "b": []any{"1", 2}, "c": "plain"}, got)
	assert.Equal(t, simplify.Variable{Name: "x"}, in["a"], "input not modified")
}

func TestMerge(t *testing.T) {
	child1, child2, child3 := &simplify.Node{}, &simplify.Node{}, &simplify.Node{}
	a := &simplify.Node{
		Fields: map[string]*simplify.Node{"x": child1, "y": child2},
		Args:   map[string]any{"keep": true},
	}
	b := &simplify.Node{
		Fields: map[string]*simplify.Node{"y": child3},
		Args:   map[string]any{"other": true},
		Key:    "orig",
	}

	got := simplify.Merge(a, b)
	assert.Same(t, a, got)
	assert.Same(t, child1, got.Fields["x"])
	assert.Same(t, child3, got.Fields["y"], "b wins on a key collision")
	assert.Equal(t, map[string]any{"keep": true}, got.Args, "args are not merged")
	assert.Equal(t, "orig", got.Key)

	// fields only on one side
	empty := &simplify.Node{}
	simplify.Merge(empty, b)
	assert.Equal(t, b.Fields, empty.Fields)
	simplify.Merge(b, &simplify.Node{})
	assert.Len(t, b.Fields, 1)
	assert.Same(t, a, simplify.Merge(a, nil))
}
