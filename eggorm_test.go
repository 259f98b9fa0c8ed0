package eggorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/eggorm"
	"github.com/andrewwphillips/eggorm/datatype"
)

// loadSchema parses the generated schema so that its types can be checked
func loadSchema(t *testing.T, s string) *ast.Schema {
	t.Helper()
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "test", Input: s})
	require.NoError(t, err)
	return schema
}

// fieldTypes returns the type (as a string) of each field of an object keyed by field name
func fieldTypes(def *ast.Definition) map[string]string {
	r := make(map[string]string, len(def.Fields))
	for _, f := range def.Fields {
		if len(f.Name) > 2 && f.Name[:2] == "__" {
			continue // introspection
		}
		r[f.Name] = f.Type.String()
	}
	return r
}

func TestGetSchema(t *testing.T) {
	h := eggorm.New(testModel)
	h.AddModel(postModel)
	h.SetOptions(eggorm.CommentToDescription(true))
	s, err := h.GetSchema()
	require.NoError(t, err)
	schema := loadSchema(t, s)

	require.NotNil(t, schema.Query)
	assert.Equal(t, map[string]string{
		"testModel":  "TestModel",
		"testModels": "[TestModel]",
		"post":       "Post",
		"posts":      "[Post]",
	}, fieldTypes(schema.Query))

	post := schema.Types["Post"]
	require.NotNil(t, post)
	assert.Equal(t, map[string]string{
		"id":      "String!",
		"status":  "PoststatusEnumType!",
		"tags":    "[PosttagsEnumType]",
		"created": "Date",
		"meta":    "JSON",
	}, fieldTypes(post))
	assert.Equal(t, "Extra info", post.Fields.ForName("meta").Description)
	assert.Equal(t, "ID Field", schema.Types["TestModel"].Fields.ForName("id").Description)

	status := schema.Types["PoststatusEnumType"]
	require.NotNil(t, status)
	assert.Equal(t, ast.Enum, status.Kind)
	assert.Len(t, status.EnumValues, 3)
	assert.NotNil(t, status.EnumValues.ForName("onHold"))
	assert.Equal(t, ast.Scalar, schema.Types["Date"].Kind)
	assert.Equal(t, ast.Scalar, schema.Types["JSON"].Kind)

	one := schema.Query.Fields.ForName("post")
	assert.Equal(t, "String", one.Arguments.ForName("id").Type.String())
	assert.Equal(t, "JSON", one.Arguments.ForName("where").Type.String())
	many := schema.Query.Fields.ForName("posts")
	var argNames []string
	for _, a := range many.Arguments {
		argNames = append(argNames, a.Name)
	}
	assert.Equal(t, []string{"limit", "order", "where", "offset"}, argNames)
}

func TestGetSchemaErrors(t *testing.T) {
	tests := map[string][]eggorm.Model{
		"NoModels":  nil,
		"Unmapped":  {eggorm.NewModel("Shape", eggorm.Attribute{Name: "area", Type: datatype.Other("GEOMETRY")})},
		"NoFields":  {eggorm.NewModel("Empty")},
		"BadName":   {eggorm.NewModel("my-model", eggorm.Attribute{Name: "id", Type: datatype.Integer()})},
		"Duplicate": {testModel, testModel},
	}
	for name, models := range tests {
		t.Run(name, func(t *testing.T) {
			h := eggorm.New(models...)
			_, err := h.GetSchema()
			assert.Error(t, err)
		})
	}
}

func TestSchemaSDL(t *testing.T) {
	cache := eggorm.NewEnumCache()
	s, err := eggorm.SchemaSDL(postModel, cache, eggorm.Exclude("tags"))
	require.NoError(t, err)
	schema := loadSchema(t, s)
	assert.NotNil(t, schema.Types["PoststatusEnumType"])
	assert.Nil(t, schema.Types["PosttagsEnumType"])
	assert.Equal(t, 1, cache.Len())

	_, err = eggorm.SchemaSDL(postModel, nil)
	assert.True(t, eggorm.IsInvalidInput(err))
}

func TestMustSchema(t *testing.T) {
	s := eggorm.MustSchema(Project{}, eggorm.Exclude("started"), eggorm.GlobalID(true))
	schema := loadSchema(t, s)
	assert.Equal(t, map[string]string{
		"id":     "ID!",
		"title":  "String!",
		"stars":  "Int!",
		"budget": "Float",
		"state":  "ProjectstateEnumType!",
	}, fieldTypes(schema.Types["Project"]))
	assert.NotNil(t, schema.Query.Fields.ForName("projects"))

	assert.Panics(t, func() { eggorm.MustSchema(42) })
	assert.Panics(t, func() { eggorm.MustSchema() })
}
