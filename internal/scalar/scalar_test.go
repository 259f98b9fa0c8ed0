package scalar_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/eggorm/internal/scalar"
	"github.com/andrewwphillips/eggorm/internal/simplify"
)

var newYear = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDateSerialize(t *testing.T) {
	local := time.Date(2025, 1, 1, 10, 30, 0, 5e6, time.FixedZone("AEST", 10*3600))
	dt := scalar.DateTime(newYear)
	tests := map[string]struct {
		in  any
		exp any
	}{
		"Time":     {newYear, "2025-01-01T00:00:00.000Z"},
		"Pointer":  {&newYear, "2025-01-01T00:00:00.000Z"},
		"Zone":     {local, "2025-01-01T00:30:00.005Z"},
		"DateTime": {dt, "2025-01-01T00:00:00.000Z"},
		"DTPtr":    {&dt, "2025-01-01T00:00:00.000Z"},
		"Zero":     {time.Time{}, nil},
		"NilPtr":   {(*time.Time)(nil), nil},
		"String":   {"2025-01-01", nil},
		"Nil":      {nil, nil},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, data.exp, scalar.Date.Serialize(data.in))
		})
	}
}

func TestDateParse(t *testing.T) {
	tests := map[string]struct {
		in  any
		exp any
	}{
		"ISO":      {"2025-01-01T00:00:00.000Z", newYear},
		"DateOnly": {"2025-01-01", newYear},
		"Invalid":  {"not a date", nil},
		"Number":   {12345, nil},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := scalar.Date.ParseValue(data.in)
			require.NoError(t, err)
			if data.exp == nil {
				assert.Nil(t, got)
				return
			}
			require.IsType(t, time.Time{}, got)
			assert.True(t, data.exp.(time.Time).Equal(got.(time.Time)))
		})
	}

	got, err := scalar.Date.ParseLiteral(&ast.Value{Kind: ast.StringValue, Raw: "2025-01-01T00:00:00Z"})
	require.NoError(t, err)
	assert.True(t, newYear.Equal(got.(time.Time)))

	got, err = scalar.Date.ParseLiteral(&ast.Value{Kind: ast.IntValue, Raw: "20250101"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDateTimeGQL(t *testing.T) {
	var buf bytes.Buffer
	scalar.DateTime(newYear).MarshalGQL(&buf)
	assert.Equal(t, `"2025-01-01T00:00:00.000Z"`, buf.String())

	buf.Reset()
	scalar.DateTime{}.MarshalGQL(&buf)
	assert.Equal(t, `null`, buf.String())

	var d scalar.DateTime
	require.NoError(t, d.UnmarshalGQL("2025-01-01T00:00:00Z"))
	assert.True(t, newYear.Equal(time.Time(d)))
	assert.Error(t, d.UnmarshalGQL("yesterday"))
	assert.Error(t, d.UnmarshalGQL(42))
}

func TestJSONParseValue(t *testing.T) {
	got, err := scalar.JSON.ParseValue(`{"foo":"bar","n":[1,2]}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"foo": "bar", "n": []any{1.0, 2.0}}, got)

	got, err = scalar.JSON.ParseValue(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, got)

	_, err = scalar.JSON.ParseValue(`{bad`)
	assert.Error(t, err)

	assert.Equal(t, map[string]any{"foo": "bar"}, scalar.JSON.Serialize(map[string]any{"foo": "bar"}))
}

func TestJSONParseLiteral(t *testing.T) {
	tests := map[string]struct {
		in  *ast.Value
		exp any
	}{
		"Int":     {&ast.Value{Kind: ast.IntValue, Raw: "42"}, int64(42)},
		"Float":   {&ast.Value{Kind: ast.FloatValue, Raw: "4.5"}, 4.5},
		"Boolean": {&ast.Value{Kind: ast.BooleanValue, Raw: "true"}, true},
		"String":  {&ast.Value{Kind: ast.StringValue, Raw: "abc"}, "abc"},
		"Enum":    {&ast.Value{Kind: ast.EnumValue, Raw: "RED"}, "RED"},
		"Null":    {&ast.Value{Kind: ast.NullValue, Raw: "null"}, nil},
		"Var":     {&ast.Value{Kind: ast.Variable, Raw: "x"}, simplify.Variable{Name: "x"}},
		"List": {
			&ast.Value{Kind: ast.ListValue, Children: ast.ChildValueList{
				{Value: &ast.Value{Kind: ast.IntValue, Raw: "1"}},
				{Value: &ast.Value{Kind: ast.StringValue, Raw: "two"}},
			}},
			[]any{int64(1), "two"},
		},
		"Object": {
			&ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
				{Name: "gt", Value: &ast.Value{Kind: ast.IntValue, Raw: "3"}},
			}},
			map[string]any{"gt": int64(3)},
		},
		"ObjectNull": {
			&ast.Value{Kind: ast.ObjectValue, Children: ast.ChildValueList{
				{Name: "deleted", Value: &ast.Value{Kind: ast.NullValue, Raw: "null"}},
			}},
			map[string]any{"deleted": nil},
		},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := scalar.JSON.ParseLiteral(data.in)
			require.NoError(t, err)
			assert.Equal(t, data.exp, got)
		})
	}

	_, err := scalar.JSON.ParseLiteral(&ast.Value{Kind: ast.IntValue, Raw: "99999999999999999999"})
	assert.Error(t, err)
}

func TestJSONValueGQL(t *testing.T) {
	var buf bytes.Buffer
	scalar.JSONValue{Value: map[string]any{"a": 1}}.MarshalGQL(&buf)
	assert.JSONEq(t, `{"a":1}`, buf.String())

	var j scalar.JSONValue
	require.NoError(t, j.UnmarshalGQL(`[1,"x"]`))
	assert.Equal(t, []any{1.0, "x"}, j.Value)
}

func TestLookup(t *testing.T) {
	assert.Same(t, scalar.Date, scalar.Lookup("Date"))
	assert.Same(t, scalar.JSON, scalar.Lookup("JSON"))
	assert.Nil(t, scalar.Lookup("Time"))
}
