package eggorm

// eggorm.go provides the gql type for generating a GraphQL schema for a set of models

import (
	"fmt"

	"github.com/andrewwphillips/eggorm/internal/schema"
)

type (
	gql struct {
		models  []Model
		options []func(*options)
	}
)

// New creates a new instance with zero or more models (though these may also be added
// later using the AddModel method).
func New(models ...Model) gql {
	return gql{models: models}
}

// AddModel adds a model to those used in generating the schema
func (h *gql) AddModel(m Model) {
	h.models = append(h.models, m)
}

// SetOptions replaces the options used in generating the fields and arguments of every model
func (h *gql) SetOptions(options ...func(*options)) {
	h.options = options
}

// GetSchema builds and returns the GraphQL schema. It has an object type for each model,
// with a field for each attribute, and 2 queries to find one object or a list of them.
// Each call uses a new EnumCache.
func (h *gql) GetSchema() (string, error) {
	cache := NewEnumCache()
	objects := make([]*schema.Object, 0, len(h.models))
	for _, m := range h.models {
		obj, err := objectOf(m, cache, h.options)
		if err != nil {
			return "", err
		}
		objects = append(objects, obj)
	}
	return schema.Build(objects...)
}

// SchemaSDL returns a GraphQL schema for a single model (see GetSchema)
func SchemaSDL(m Model, cache *EnumCache, options ...func(*options)) (string, error) {
	obj, err := objectOf(m, cache, options)
	if err != nil {
		return "", err
	}
	return schema.Build(obj)
}

// objectOf generates the GraphQL object type and query arguments for a model
func objectOf(m Model, cache *EnumCache, options []func(*options)) (*schema.Object, error) {
	fields, err := AttributeFields(m, cache, options...)
	if err != nil {
		return nil, err
	}
	args, err := DefaultArgs(m, options...)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("model %s has no fields", m.Name())
	}
	return &schema.Object{
		Name:     m.Name(),
		Fields:   fields.AST(),
		Types:    append(fields.Definitions(), JSONScalar.Definition),
		Args:     args,
		ListArgs: DefaultListArgs(),
	}, nil
}
