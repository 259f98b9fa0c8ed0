// Package sqlfind builds SQL queries from the find options that eggorm generates from GraphQL
// arguments, selecting only the columns for the fields that a query requested.
//
// For example, in a resolver for a "users" query:
//
//	opts, err := eggorm.ArgsToFindOptions(args, nil)
//	...
//	cols := sqlfind.Columns(eggorm.Simplify(fields, info), userModel)
//	query, params, err := sqlfind.MustBuild("users", opts, cols...).PlaceholderFormat(sq.Dollar).ToSql()
package sqlfind

import (
	"regexp"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"

	"github.com/andrewwphillips/eggorm"
)

// identifier matches a (possibly table-qualified) column name or a table name
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

func validIdentifier(s string) bool {
	return identifier.MatchString(s)
}

// Build creates a SELECT of the columns (all columns if none are given) from the table,
// using the where, order, limit and offset of opts (which may be nil).
// Table, column and order names must be plain SQL identifiers (optionally qualified with a table name).
func Build(table string, opts *eggorm.FindOptions, columns ...string) (sq.SelectBuilder, error) {
	if !validIdentifier(table) {
		return sq.SelectBuilder{}, eggorm.NewInvalidInputError("table", table, "not a valid table name")
	}
	if bad, found := lo.Find(columns, func(c string) bool { return !validIdentifier(c) }); found {
		return sq.SelectBuilder{}, eggorm.NewInvalidInputError("columns", bad, "not a valid column name")
	}
	if len(columns) == 0 {
		columns = []string{"*"}
	}
	b := sq.Select(columns...).From(table)
	if opts == nil {
		return b, nil
	}

	cond, err := Where(opts.Where)
	if err != nil {
		return sq.SelectBuilder{}, err
	}
	if cond != nil {
		b = b.Where(cond)
	}
	for _, order := range opts.Order {
		if !validIdentifier(order[0]) {
			return sq.SelectBuilder{}, eggorm.NewInvalidInputError("order", order[0], "not a valid column name")
		}
		if order[1] != eggorm.Ascending && order[1] != eggorm.Descending {
			return sq.SelectBuilder{}, eggorm.NewInvalidInputError("order", order[1], "direction must be ASC or DESC")
		}
		b = b.OrderBy(order[0] + " " + order[1])
	}
	if opts.Limit != nil {
		if *opts.Limit < 0 {
			return sq.SelectBuilder{}, eggorm.NewInvalidInputError("limit", *opts.Limit, "must not be negative")
		}
		b = b.Limit(uint64(*opts.Limit))
	}
	if opts.Offset != nil {
		if *opts.Offset < 0 {
			return sq.SelectBuilder{}, eggorm.NewInvalidInputError("offset", *opts.Offset, "must not be negative")
		}
		b = b.Offset(uint64(*opts.Offset))
	}
	return b, nil
}

// MustBuild is the same as Build but panics on error
func MustBuild(table string, opts *eggorm.FindOptions, columns ...string) sq.SelectBuilder {
	b, err := Build(table, opts, columns...)
	if err != nil {
		panic(err)
	}
	return b
}

// Columns returns the attributes of the model that are requested in the simplified selection,
// in attribute order. A field is matched by its name (not its alias). The primary keys are always included.
// If node is nil, or has no fields, all the attributes are returned.
func Columns(node *eggorm.Node, m eggorm.Model) []string {
	attrs := m.Attributes()
	if node == nil || len(node.Fields) == 0 {
		return lo.Map(attrs, func(a eggorm.Attribute, _ int) string { return a.Name })
	}

	requested := make(map[string]bool, len(node.Fields))
	for key, child := range node.Fields {
		if child != nil && child.Key != "" {
			key = child.Key
		}
		requested[key] = true
	}
	pks := m.PrimaryKeys()
	return lo.FilterMap(attrs, func(a eggorm.Attribute, _ int) (string, bool) {
		return a.Name, requested[a.Name] || lo.Contains(pks, a.Name)
	})
}
