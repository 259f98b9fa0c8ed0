package eggorm

// fields.go generates GraphQL field definitions from the attributes of a model

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"

	"github.com/andrewwphillips/eggorm/internal/typemap"
)

const (
	globalIDField       = "id"
	globalIDDescription = "The ID of an object"
)

// Field is a GraphQL field generated from a model attribute (or the global ID field)
type Field struct {
	*ast.FieldDefinition // name, type (incl. non-null) and description

	Attribute   Attribute    // the attribute the field was generated from (empty Name for the global ID)
	GraphQLType *GraphQLType // the type without any non-null wrapper
}

// Definition returns the enum or custom scalar definition that the field's type needs in the
// schema, or nil for a built-in type (Int, String, etc)
func (f *Field) Definition() *ast.Definition {
	if f.GraphQLType == nil {
		return nil
	}
	return f.GraphQLType.Base().Def
}

// EnumValues returns the map from GraphQL enum value name to the ORM value it stands for,
// or nil if the field is not an enum (or list of enum)
func (f *Field) EnumValues() map[string]string {
	if f.GraphQLType == nil {
		return nil
	}
	return f.GraphQLType.Base().Values
}

// Fields are the fields generated for a model in attribute declaration order
type Fields []*Field

// Get returns the field with the given (GraphQL) name or nil if there is none
func (fs Fields) Get(name string) *Field {
	f, _ := lo.Find(fs, func(f *Field) bool { return f.Name == name })
	return f
}

// AST returns the field definitions for adding to an object type
func (fs Fields) AST() ast.FieldList {
	return lo.Map(fs, func(f *Field, _ int) *ast.FieldDefinition { return f.FieldDefinition })
}

// Definitions returns the enum and custom scalar definitions the fields use (each just once)
func (fs Fields) Definitions() []*ast.Definition {
	defs := lo.FilterMap(fs, func(f *Field, _ int) (*ast.Definition, bool) {
		def := f.Definition()
		return def, def != nil
	})
	return lo.UniqBy(defs, func(def *ast.Definition) string { return def.Name })
}

// EnumCache holds the enum types generated for models so that each enum type is only created
// once, even if fields are generated for the same model more than once. Use one cache for all
// the models of a schema. It is not safe for concurrent use.
type EnumCache struct {
	types map[string]*typemap.Type
}

// NewEnumCache returns an empty cache
func NewEnumCache() *EnumCache {
	return &EnumCache{types: make(map[string]*typemap.Type)}
}

// Get returns the definition of the named enum type or nil if it has not been generated
func (c *EnumCache) Get(name string) *ast.Definition {
	if t, ok := c.types[name]; ok {
		return t.Def
	}
	return nil
}

// Len returns the number of enum types in the cache
func (c *EnumCache) Len() int {
	return len(c.types)
}

// Definitions returns all the enum definitions in the cache, sorted by name
func (c *EnumCache) Definitions() []*ast.Definition {
	r := lo.MapToSlice(c.types, func(_ string, t *typemap.Type) *ast.Definition { return t.Def })
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}

// enumTypeName is the name of the enum type for an attribute
func enumTypeName(m Model, attr string) string {
	return m.Name() + attr + "EnumType"
}

// AttributeFields generates a GraphQL field for each attribute of the model.
// The field type is the mapping of the attribute's data type (see ToGraphQL) and is non-null
// if the attribute does not allow null or is a primary key, unless the AllowNull option is on.
// An enum type (or list of enum) is renamed <ModelName><attribute>EnumType and stored in the
// cache, and the cached type is used if the same enum is needed again.
// The fields generated can be controlled with the Exclude, Only, Rename, CommentToDescription
// and GlobalID options. The cache is required.
func AttributeFields(m Model, cache *EnumCache, options ...func(*options)) (Fields, error) {
	if cache == nil {
		return nil, NewInvalidInputError("AttributeFields", cache, "an EnumCache is required")
	}
	opt := getOptions(options)

	r := make(Fields, 0, len(m.Attributes())+1)
	for _, attr := range m.Attributes() {
		key := attr.Name
		if opt.exclude != nil && opt.exclude(key) {
			continue
		}
		if opt.only != nil && !opt.only(key) {
			continue
		}
		name := key
		if opt.rename != nil {
			if s := opt.rename(key); s != "" {
				name = s
			}
		}

		t, err := opt.mapper.ToGraphQL(attr.Type)
		if err != nil {
			return nil, fmt.Errorf("%w for attribute %q of model %s", err, key, m.Name())
		}
		if t.Base().IsEnum() {
			t = cache.resolve(enumTypeName(m, key), t, opt.logger)
		}

		def := &ast.FieldDefinition{Name: name, Type: t.AST()}
		if !opt.allowNull && (!attr.AllowNull || attr.PrimaryKey) {
			def.Type = t.NonNull()
		}
		if opt.commentToDescription && attr.Comment != "" {
			def.Description = attr.Comment
		}
		r = append(r, &Field{FieldDefinition: def, Attribute: attr, GraphQLType: t})
	}

	if opt.gid {
		id := &Field{
			FieldDefinition: &ast.FieldDefinition{
				Name:        globalIDField,
				Description: globalIDDescription,
				Type:        ast.NonNullNamedType("ID", nil),
			},
			GraphQLType: typemap.Named("ID"),
		}
		if _, i, found := lo.FindIndexOf(r, func(f *Field) bool { return f.Name == globalIDField }); found {
			r[i] = id
		} else {
			r = append(r, id)
		}
	}
	return r, nil
}

// resolve returns the type t (an enum or list of enum) using the cached enum of that name, or
// adds the enum to the cache (renamed) if it is not there
func (c *EnumCache) resolve(name string, t *typemap.Type, logger *zap.Logger) *typemap.Type {
	if cached, ok := c.types[name]; ok {
		logger.Debug("enum cache hit", zap.String("enum", name))
		return wrapAs(t, cached)
	}
	logger.Debug("enum cache miss", zap.String("enum", name))
	t = typemap.Rename(t, name)
	c.types[name] = t.Base()
	return t
}

// wrapAs returns base wrapped in the same list(s) as t
func wrapAs(t, base *typemap.Type) *typemap.Type {
	if t.IsList() {
		return typemap.List(wrapAs(t.Elem, base))
	}
	return base
}
