package sqlfind

// where.go converts find options "where" conditions (keyed by column names and ORM operators) to SQL

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"

	"github.com/andrewwphillips/eggorm"
	"github.com/andrewwphillips/eggorm/internal/where"
)

// Where converts the conditions (as returned in FindOptions.Where) to a SQL condition.
// Keys are column names or one of the operators $and, $or and $not, whose value is an object
// or a list of objects. The value of a column is compared for equality (a list becomes IN)
// unless it is an object of operators, eg {"age": {"$gte": 18, "$lt": 65}}.
// Conditions are joined with AND in key order. If there are no conditions nil is returned.
func Where(w map[string]any) (sq.Sqlizer, error) {
	conds, err := conditions(w)
	if err != nil {
		return nil, err
	}
	return join(conds, false), nil
}

// conditions converts each key of a where object
func conditions(w map[string]any) ([]sq.Sqlizer, error) {
	var r []sq.Sqlizer
	for _, key := range sortedKeys(w) {
		value := w[key]
		switch op := where.Op(key); op {
		case where.And, where.Or:
			cond, err := group(key, value, conditions, op == where.Or)
			if err != nil {
				return nil, err
			}
			if cond != nil {
				r = append(r, cond)
			}
		case where.Not:
			cond, err := group(key, value, conditions, false)
			if err != nil {
				return nil, err
			}
			if cond != nil {
				r = append(r, not(cond))
			}
		default:
			if where.IsOp(key) {
				return nil, NewUnsupportedOperatorError(key)
			}
			if !validIdentifier(key) {
				return nil, eggorm.NewInvalidInputError("where", key, "not a valid column name")
			}
			conds, err := columnConditions(key, value)
			if err != nil {
				return nil, fmt.Errorf("%w for column %q", err, key)
			}
			r = append(r, conds...)
		}
	}
	return r, nil
}

// group converts the value of a logical operator, which is an object or a list of objects,
// each of which is converted using fn. The results are joined with OR if or is true.
func group(op string, value any, fn func(map[string]any) ([]sq.Sqlizer, error), or bool) (sq.Sqlizer, error) {
	var items []map[string]any
	switch v := value.(type) {
	case map[string]any:
		items = []map[string]any{v}
	case []any:
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, eggorm.NewInvalidInputError(op, item, "list items must be objects")
			}
			items = append(items, m)
		}
	default:
		return nil, eggorm.NewInvalidInputError(op, value, "must be an object or list of objects")
	}

	var parts []sq.Sqlizer
	for _, item := range items {
		conds, err := fn(item)
		if err != nil {
			return nil, err
		}
		if cond := join(conds, false); cond != nil {
			parts = append(parts, cond)
		}
	}
	if len(items) == 1 {
		return join(parts, false), nil // the keys of a single object are always ANDed
	}
	return join(parts, or), nil
}

// columnConditions converts the value given for a column
func columnConditions(col string, value any) ([]sq.Sqlizer, error) {
	ops, ok := value.(map[string]any)
	if !ok {
		if err := checkResolved(value); err != nil {
			return nil, err
		}
		return []sq.Sqlizer{sq.Eq{col: value}}, nil // list values become IN
	}
	var r []sq.Sqlizer
	for _, key := range sortedKeys(ops) {
		if !where.IsOp(key) {
			return nil, eggorm.NewInvalidInputError("where", key, "expected an operator")
		}
		cond, err := opCondition(col, where.Op(key), ops[key])
		if err != nil {
			return nil, err
		}
		r = append(r, cond)
	}
	return r, nil
}

// opCondition converts one operator applied to a column
func opCondition(col string, op where.Op, value any) (sq.Sqlizer, error) {
	if err := checkResolved(value); err != nil {
		return nil, err
	}
	switch op {
	case where.Eq, where.Is:
		return sq.Eq{col: value}, nil
	case where.Ne, where.Not:
		return sq.NotEq{col: value}, nil
	case where.Gt:
		return sq.Gt{col: value}, nil
	case where.Gte:
		return sq.GtOrEq{col: value}, nil
	case where.Lt:
		return sq.Lt{col: value}, nil
	case where.Lte:
		return sq.LtOrEq{col: value}, nil
	case where.In, where.NotIn:
		list, ok := value.([]any)
		if !ok {
			return nil, eggorm.NewInvalidInputError(op.Name(), value, "requires a list")
		}
		if op == where.In {
			return sq.Eq{col: list}, nil
		}
		return sq.NotEq{col: list}, nil
	case where.Like:
		return sq.Like{col: value}, nil
	case where.NotLike:
		return sq.NotLike{col: value}, nil
	case where.ILike:
		return sq.ILike{col: value}, nil
	case where.NotILike:
		return sq.NotILike{col: value}, nil
	case where.StartsWith, where.EndsWith, where.Substring:
		s, ok := value.(string)
		if !ok {
			return nil, eggorm.NewInvalidInputError(op.Name(), value, "requires a string")
		}
		s = escapeLike(s)
		switch op {
		case where.StartsWith:
			s += "%"
		case where.EndsWith:
			s = "%" + s
		default:
			s = "%" + s + "%"
		}
		return sq.Like{col: s}, nil
	case where.Between, where.NotBetween:
		list, ok := value.([]any)
		if !ok || len(list) != 2 {
			return nil, eggorm.NewInvalidInputError(op.Name(), value, "requires a list of 2 values")
		}
		if op == where.Between {
			return sq.Expr(col+" BETWEEN ? AND ?", list[0], list[1]), nil
		}
		return sq.Expr(col+" NOT BETWEEN ? AND ?", list[0], list[1]), nil
	case where.And, where.Or:
		return group(string(op), value, func(m map[string]any) ([]sq.Sqlizer, error) {
			return columnConditions(col, m)
		}, op == where.Or)
	}
	return nil, NewUnsupportedOperatorError(string(op))
}

// checkResolved returns an error if a value (or an element of a list value) is a variable
// that was never given a value, as it cannot be passed to the database
func checkResolved(value any) error {
	switch v := value.(type) {
	case eggorm.Variable:
		return eggorm.NewInvalidInputError("where", "$"+v.Name, "unresolved variable")
	case []any:
		for _, elt := range v {
			if err := checkResolved(elt); err != nil {
				return err
			}
		}
	}
	return nil
}

// join combines conditions with AND (or OR), returning nil if there are none
func join(conds []sq.Sqlizer, or bool) sq.Sqlizer {
	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	}
	if or {
		return sq.Or(conds)
	}
	return sq.And(conds)
}

// not negates a condition
func not(cond sq.Sqlizer) sq.Sqlizer {
	return notSqlizer{cond}
}

type notSqlizer struct {
	cond sq.Sqlizer
}

func (n notSqlizer) ToSql() (string, []any, error) {
	s, args, err := n.cond.ToSql()
	if err != nil {
		return "", nil, err
	}
	return "NOT (" + s + ")", args, nil
}

// escapeLike escapes the characters that are special in a LIKE pattern
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
