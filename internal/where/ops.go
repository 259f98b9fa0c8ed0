// Package where translates GraphQL "where" arguments, which can only use names as
// keys, into conditions keyed by the ORM's own operator identifiers.
package where

// ops.go has the operator identifiers and the table of their GraphQL-safe names

import (
	"strings"
)

// Op is an operator identifier as used in a find options "where" condition.
// Ops are distinguished from column names by a leading dollar sign.
type Op string

const (
	Eq            Op = "$eq"
	Ne            Op = "$ne"
	Gte           Op = "$gte"
	Gt            Op = "$gt"
	Lte           Op = "$lte"
	Lt            Op = "$lt"
	Not           Op = "$not"
	Is            Op = "$is"
	In            Op = "$in"
	NotIn         Op = "$notIn"
	Like          Op = "$like"
	NotLike       Op = "$notLike"
	ILike         Op = "$iLike"
	NotILike      Op = "$notILike"
	StartsWith    Op = "$startsWith"
	EndsWith      Op = "$endsWith"
	Substring     Op = "$substring"
	Regexp        Op = "$regexp"
	NotRegexp     Op = "$notRegexp"
	IRegexp       Op = "$iRegexp"
	NotIRegexp    Op = "$notIRegexp"
	Between       Op = "$between"
	NotBetween    Op = "$notBetween"
	Overlap       Op = "$overlap"
	Contains      Op = "$contains"
	Contained     Op = "$contained"
	Adjacent      Op = "$adjacent"
	StrictLeft    Op = "$strictLeft"
	StrictRight   Op = "$strictRight"
	NoExtendRight Op = "$noExtendRight"
	NoExtendLeft  Op = "$noExtendLeft"
	And           Op = "$and"
	Or            Op = "$or"
	Any           Op = "$any"
	All           Op = "$all"
	Values        Op = "$values"
	Col           Op = "$col"
	Placeholder   Op = "$placeholder"
	Match         Op = "$match"
)

// all is every operator, used to build the default table
var all = []Op{
	Eq, Ne, Gte, Gt, Lte, Lt, Not, Is, In, NotIn, Like, NotLike, ILike, NotILike,
	StartsWith, EndsWith, Substring, Regexp, NotRegexp, IRegexp, NotIRegexp,
	Between, NotBetween, Overlap, Contains, Contained, Adjacent,
	StrictLeft, StrictRight, NoExtendRight, NoExtendLeft,
	And, Or, Any, All, Values, Col, Placeholder, Match,
}

// Name is the GraphQL-safe name of the operator, eg "notIn"
func (op Op) Name() string {
	return strings.TrimPrefix(string(op), "$")
}

// IsOp reports whether a "where" key is an operator rather than a column name
func IsOp(key string) bool {
	return strings.HasPrefix(key, "$")
}

// Table maps GraphQL-safe names to the operators they stand for
type Table map[string]Op

// Ops returns a new table of all the operators keyed by name, eg "gt" => Gt
func Ops() Table {
	t := make(Table, len(all))
	for _, op := range all {
		t[op.Name()] = op
	}
	return t
}
