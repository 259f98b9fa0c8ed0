package eggorm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewwphillips/eggorm"
)

func intPtr(i int) *int { return &i }

func TestArgsToFindOptions(t *testing.T) {
	tests := map[string]struct {
		args     map[string]any
		targets  []string
		expected eggorm.FindOptions
	}{
		"Empty":         {nil, nil, eggorm.FindOptions{}},
		"LimitOffset":   {map[string]any{"limit": "10", "offset": "5"}, nil, eggorm.FindOptions{Limit: intPtr(10), Offset: intPtr(5)}},
		"Numbers":       {map[string]any{"limit": 10, "offset": int64(5)}, nil, eggorm.FindOptions{Limit: intPtr(10), Offset: intPtr(5)}},
		"Float":         {map[string]any{"limit": 10.0, "offset": json.Number("2")}, nil, eggorm.FindOptions{Limit: intPtr(10), Offset: intPtr(2)}},
		"Uint":          {map[string]any{"limit": uint8(3)}, nil, eggorm.FindOptions{Limit: intPtr(3)}},
		"OrderReverse":  {map[string]any{"order": "reverse:name"}, nil, eggorm.FindOptions{Order: [][2]string{{"name", "DESC"}}}},
		"Order":         {map[string]any{"order": "name"}, nil, eggorm.FindOptions{Order: [][2]string{{"name", "ASC"}}}},
		"OrderNotText":  {map[string]any{"order": 42}, nil, eggorm.FindOptions{}},
		"NilSkipped":    {map[string]any{"limit": nil, "name": nil}, []string{"name"}, eggorm.FindOptions{}},
		"Target":        {map[string]any{"name": "test"}, []string{"name"}, eggorm.FindOptions{Where: map[string]any{"name": "test"}}},
		"NotTarget":     {map[string]any{"randomKey": "value"}, []string{"name"}, eggorm.FindOptions{}},
		"Where":         {map[string]any{"where": map[string]any{"id": 1}}, nil, eggorm.FindOptions{Where: map[string]any{"id": 1}}},
		"WhereOperator": {map[string]any{"where": map[string]any{"id": map[string]any{"gt": "1"}}}, nil, eggorm.FindOptions{Where: map[string]any{"id": map[string]any{"$gt": "1"}}}},
		"WhereAndTarget": {
			map[string]any{"name": "x", "where": map[string]any{"or": []any{map[string]any{"a": 1}}}},
			[]string{"name"},
			eggorm.FindOptions{Where: map[string]any{"name": "x", "$or": []any{map[string]any{"a": 1}}}},
		},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := eggorm.ArgsToFindOptions(data.args, data.targets)
			require.NoError(t, err)
			assert.Equal(t, data.expected, *got)
		})
	}
}

func TestArgsToFindOptionsErrors(t *testing.T) {
	tests := map[string]map[string]any{
		"LimitText":     {"limit": "ten"},
		"OffsetText":    {"offset": "five"},
		"LimitFraction": {"limit": "1.5"},
		"LimitBool":     {"limit": true},
		"WhereText":     {"where": "id=1"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := eggorm.ArgsToFindOptions(args, nil)
			require.Error(t, err)
			assert.True(t, eggorm.IsInvalidInput(err))
			assert.ErrorIs(t, err, eggorm.ErrInvalidInput)
		})
	}
}

func TestArgsToFindOptionsVariables(t *testing.T) {
	args := map[string]any{
		"limit": eggorm.Variable{Name: "n"},
		"where": map[string]any{"age": map[string]any{"gte": eggorm.Variable{Name: "min"}}},
		"name":  eggorm.Variable{Name: "missing"},
	}
	vars := map[string]any{"n": "20", "min": 18}

	got, err := eggorm.ArgsToFindOptions(args, []string{"name"}, eggorm.WithVariables(vars))
	require.NoError(t, err)
	assert.Equal(t, eggorm.FindOptions{
		Limit: intPtr(20),
		Where: map[string]any{"age": map[string]any{"$gte": 18}},
	}, *got)

	// Without the variables the limit can't be converted
	_, err = eggorm.ArgsToFindOptions(args, nil)
	assert.True(t, eggorm.IsInvalidInput(err))
}

func TestReplaceWhereOperators(t *testing.T) {
	in := map[string]any{
		"and": []any{
			map[string]any{"age": map[string]any{"between": []any{"1", "9"}}},
			map[string]any{"name": map[string]any{"notIn": []any{"a", "b"}}},
			"literal",
		},
		"or":    map[string]any{"a": map[string]any{"ne": nil}},
		"plain": "value",
	}
	expected := map[string]any{
		"$and": []any{
			map[string]any{"age": map[string]any{"$between": []any{"1", "9"}}},
			map[string]any{"name": map[string]any{"$notIn": []any{"a", "b"}}},
			"literal",
		},
		"$or":   map[string]any{"a": map[string]any{"$ne": nil}},
		"plain": "value",
	}
	before, err := json.Marshal(in)
	require.NoError(t, err)

	assert.Equal(t, expected, eggorm.ReplaceWhereOperators(in))

	after, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after)) // input not modified
	assert.Nil(t, eggorm.ReplaceWhereOperators(nil))
}
