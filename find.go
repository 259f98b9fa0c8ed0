package eggorm

// find.go converts the arguments of a GraphQL query into options for finding objects with the ORM

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/andrewwphillips/eggorm/internal/simplify"
	"github.com/andrewwphillips/eggorm/internal/where"
)

const (
	limitArg  = "limit"
	offsetArg = "offset"
	orderArg  = "order"

	reversePrefix = "reverse:" // an order argument with this prefix sorts in descending order

	Ascending  = "ASC"
	Descending = "DESC"
)

// FindOptions are the options for an ORM find, generated from GraphQL query arguments.
// Limit and Offset are nil if not given. Each element of Order is a column name and direction (ASC or DESC).
// Where is keyed by column names and operators (see ReplaceWhereOperators).
type FindOptions struct {
	Limit  *int
	Offset *int
	Order  [][2]string
	Where  map[string]any
}

// ArgsToFindOptions converts query arguments (see DefaultListArgs and DefaultArgs) to find options:
//   - limit and offset (strings or numbers) are converted to integers
//   - order is the column name to sort by, in descending order if prefixed with "reverse:"
//   - the operator names in where are replaced with the ORM operators
//   - any other argument that is one of targetAttributes is added to Where as an equality condition
//
// Arguments with nil values and any others not listed above are ignored.
// An InvalidInputError is returned if limit or offset is not a whole number, or where is not an object.
// Variables in the arguments (see Variable) are resolved if the WithVariables option is used.
func ArgsToFindOptions(args map[string]any, targetAttributes []string, options ...func(*options)) (*FindOptions, error) {
	opt := getOptions(options)
	r := &FindOptions{}

	// Handle arguments in name order, with where first so that attributes are added to it
	keys := lo.Keys(args)
	sort.Slice(keys, func(i, j int) bool {
		if (keys[i] == whereArg) != (keys[j] == whereArg) {
			return keys[i] == whereArg
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		value := args[key]
		if opt.vars != nil {
			value = simplify.Resolve(value, opt.vars)
		}
		if value == nil {
			continue
		}
		switch key {
		case limitArg, offsetArg:
			n, err := toInt(key, value)
			if err != nil {
				return nil, err
			}
			if key == limitArg {
				r.Limit = &n
			} else {
				r.Offset = &n
			}
		case orderArg:
			if s, ok := value.(string); ok {
				if col, found := strings.CutPrefix(s, reversePrefix); found {
					r.Order = [][2]string{{col, Descending}}
				} else {
					r.Order = [][2]string{{s, Ascending}}
				}
			}
		case whereArg:
			w, ok := value.(map[string]any)
			if !ok {
				return nil, NewInvalidInputError(whereArg, value, "must be an object")
			}
			r.Where = ReplaceWhereOperators(w)
		default:
			if !lo.Contains(targetAttributes, key) {
				opt.logger.Debug("argument ignored", zap.String("arg", key))
				continue
			}
			if r.Where == nil {
				r.Where = make(map[string]any)
			}
			r.Where[key] = value
		}
	}
	return r, nil
}

// toInt converts the value of a numeric argument to an int
func toInt(arg string, value any) (int, error) {
	var f float64
	switch v := value.(type) {
	case int:
		return v, nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		rv := reflect.ValueOf(v)
		if rv.CanInt() {
			return int(rv.Int()), nil
		}
		return int(rv.Uint()), nil
	case float32:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		var err error
		if f, err = v.Float64(); err != nil {
			return 0, NewInvalidInputError(arg, value, "must be a number")
		}
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		var err error
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, NewInvalidInputError(arg, value, "must be a number")
		}
	default:
		return 0, NewInvalidInputError(arg, value, "must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, NewInvalidInputError(arg, value, "must be a whole number")
	}
	return int(f), nil
}

// ReplaceWhereOperators returns a copy of a "where" condition with the GraphQL-safe operator
// names (such as "gt", "and" or "notIn") used as keys replaced by the ORM operators ("$gt", "$and", "$notIn").
// Keys are replaced at all levels, including in objects in lists. The condition passed is not modified.
func ReplaceWhereOperators(w map[string]any) map[string]any {
	return where.Replace(w, where.Ops())
}
