package eggorm

// args.go generates the default GraphQL arguments for queries that find one or a list of objects

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

const (
	whereArg         = "where"
	whereDescription = "A JSON object conforming to the shape specified in http://docs.sequelizejs.com/en/latest/docs/querying/"
)

// whereArgument is the argument taking (JSON) conditions that found objects must satisfy
func whereArgument() *ast.ArgumentDefinition {
	return &ast.ArgumentDefinition{
		Name:        whereArg,
		Description: whereDescription,
		Type:        ast.NamedType(JSONScalar.Name(), nil),
	}
}

// DefaultArgs returns the arguments for a query to find a single object of the model: one
// argument for each primary key attribute (with the mapped GraphQL type) plus "where" of type JSON.
// Primary keys that are not attributes of the model are ignored.
func DefaultArgs(m Model, options ...func(*options)) (ast.ArgumentDefinitionList, error) {
	opt := getOptions(options)

	var r ast.ArgumentDefinitionList
	for _, key := range m.PrimaryKeys() {
		attr, ok := attribute(m, key)
		if !ok || attr.Type == nil {
			continue
		}
		t, err := opt.mapper.ToGraphQL(attr.Type)
		if err != nil {
			return nil, fmt.Errorf("%w for primary key %q of model %s", err, key, m.Name())
		}
		r = append(r, &ast.ArgumentDefinition{Name: key, Type: t.AST()})
	}
	return append(r, whereArgument()), nil
}

// DefaultListArgs returns the arguments for a query to find a list of objects:
// "limit" (Int), "order" (String), "where" (JSON) and "offset" (Int)
func DefaultListArgs() ast.ArgumentDefinitionList {
	return ast.ArgumentDefinitionList{
		{Name: limitArg, Type: ast.NamedType("Int", nil)},
		{Name: orderArg, Type: ast.NamedType("String", nil)},
		whereArgument(),
		{Name: offsetArg, Type: ast.NamedType("Int", nil)},
	}
}
