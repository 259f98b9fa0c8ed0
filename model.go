package eggorm

// model.go has the Model interface which describes the ORM model that GraphQL fields and
// arguments are generated from, plus ways to create a Model

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"

	"github.com/andrewwphillips/eggorm/datatype"
	"github.com/andrewwphillips/eggorm/internal/field"
)

// Model is the part of an ORM model that is needed to generate GraphQL fields and arguments
type Model interface {
	Name() string
	Attributes() []Attribute // in declaration order
	PrimaryKeys() []string
}

// Attribute describes a column (or virtual field) of a Model
type Attribute struct {
	Name       string
	Type       *datatype.DataType
	AllowNull  bool
	PrimaryKey bool
	Comment    string
}

// staticModel is a Model with a fixed list of attributes
type staticModel struct {
	name  string
	attrs []Attribute
}

func (m *staticModel) Name() string            { return m.name }
func (m *staticModel) Attributes() []Attribute { return m.attrs }

func (m *staticModel) PrimaryKeys() []string {
	return lo.FilterMap(m.attrs, func(a Attribute, _ int) (string, bool) {
		return a.Name, a.PrimaryKey
	})
}

// NewModel creates a Model from a name and a list of attributes
func NewModel(name string, attrs ...Attribute) Model {
	return &staticModel{name: name, attrs: attrs}
}

// ModelOf creates a Model from a Go struct (or pointer to struct) using the struct's name
// and its exported fields as attributes. The attribute name, data type and options can be
// given in an "orm" tag, otherwise the name is the field name (first letter lower-cased) and
// the data type is derived from the Go type. Pointer fields allow null.
// Note that int, int64, uint and uint64 fields are BIGINT, which is a String in GraphQL
// (as it may not fit in an Int), so use a tag such as `orm:"count:INTEGER"` to get an Int.
// For example:
//
//	type User struct {
//		ID     uuid.UUID `orm:"id,pk#The ID of the user"`
//		Age    int       `orm:"age:INTEGER"`
//		Name   string
//		Status string `orm:"status:ENUM(active,retired)"`
//		Bio    *string
//		Secret string `orm:"-"`
//	}
func ModelOf(v any) (Model, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, NewInvalidInputError("ModelOf", v, "model must be a struct")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	infos, err := field.Attributes(t)
	if err != nil {
		return nil, fmt.Errorf("%w creating model from %v", err, t)
	}
	attrs := lo.Map(infos, func(info *field.Info, _ int) Attribute {
		return Attribute{
			Name:       info.Name,
			Type:       info.Type,
			AllowNull:  info.AllowNull,
			PrimaryKey: info.PrimaryKey,
			Comment:    info.Comment,
		}
	})
	return NewModel(t.Name(), attrs...), nil
}

// MustModelOf is the same as ModelOf but panics on error
func MustModelOf(v any) Model {
	m, err := ModelOf(v)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseDataType converts the textual form of a data type, as used in "orm" tags, to a DataType.
// Eg "INTEGER", "STRING(64)", "ARRAY(ENUM(a,b))", "VIRTUAL(BOOLEAN)"
func ParseDataType(s string) (*datatype.DataType, error) {
	return field.ParseType(s)
}

// attribute finds an attribute of a model by name
func attribute(m Model, name string) (Attribute, bool) {
	return lo.Find(m.Attributes(), func(a Attribute) bool {
		return a.Name == name
	})
}
