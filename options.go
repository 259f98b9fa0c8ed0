package eggorm

// options.go handles options that control how fields and arguments are generated from a
// model and how query arguments are converted to find options.
// Each option is a function (closure) that sets a value in the options struct, which means
// new options can be added without changing the signature of the exported functions.

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/andrewwphillips/eggorm/internal/typemap"
)

// Option is an option for AttributeFields, DefaultArgs or ArgsToFindOptions
type Option = func(*options)

type options struct {
	exclude, only                        func(string) bool
	rename                               func(string) string
	allowNull, commentToDescription, gid bool
	custom                               typemap.CustomFunc
	mapper                               *typemap.Mapper
	logger                               *zap.Logger
	vars                                 map[string]any
}

// getOptions applies the options to the defaults
func getOptions(opts []func(*options)) *options {
	r := &options{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	r.mapper = typemap.New(typemap.WithCustom(r.custom), typemap.WithLogger(r.logger))
	return r
}

// Exclude omits the named attributes from the generated fields
func Exclude(names ...string) func(*options) {
	return ExcludeFunc(func(name string) bool {
		return lo.Contains(names, name)
	})
}

// ExcludeFunc omits attributes for which the function returns true
func ExcludeFunc(fn func(name string) bool) func(*options) {
	return func(opt *options) {
		opt.exclude = fn
	}
}

// Only generates fields for just the named attributes
func Only(names ...string) func(*options) {
	return OnlyFunc(func(name string) bool {
		return lo.Contains(names, name)
	})
}

// OnlyFunc generates fields for just the attributes for which the function returns true
func OnlyFunc(fn func(name string) bool) func(*options) {
	return func(opt *options) {
		opt.only = fn
	}
}

// Rename changes the field name of the attributes in the map (from attribute name to field name)
func Rename(names map[string]string) func(*options) {
	return RenameFunc(func(name string) string {
		return names[name]
	})
}

// RenameFunc changes field names. The function is passed the attribute name and returns the
// field name, or an empty string to use the attribute name.
func RenameFunc(fn func(name string) string) func(*options) {
	return func(opt *options) {
		opt.rename = fn
	}
}

// AllowNull (if on) means that all generated fields are nullable, even primary keys and
// attributes that do not allow null
func AllowNull(on bool) func(*options) {
	return func(opt *options) {
		opt.allowNull = on
	}
}

// CommentToDescription (if on) uses attribute comments as the field descriptions
func CommentToDescription(on bool) func(*options) {
	return func(opt *options) {
		opt.commentToDescription = on
	}
}

// GlobalID (if on) adds an "id" field of type ID! which resolves to the (base 64) global ID of the object
func GlobalID(on bool) func(*options) {
	return func(opt *options) {
		opt.gid = on
	}
}

// WithCustomTypes sets a custom type mapping which is tried before the built-in mapping
// of ORM data types to GraphQL types. The function should return nil for types it does not handle.
func WithCustomTypes(fn CustomMapping) func(*options) {
	return func(opt *options) {
		opt.custom = fn
	}
}

// WithLogger sets the (zap) logger used for debug messages. By default nothing is logged.
func WithLogger(logger *zap.Logger) func(*options) {
	return func(opt *options) {
		opt.logger = logger
	}
}

// WithVariables provides the query variables used to resolve any deferred variable
// values (see Variable) in arguments passed to ArgsToFindOptions
func WithVariables(vars map[string]any) func(*options) {
	return func(opt *options) {
		opt.vars = vars
	}
}
