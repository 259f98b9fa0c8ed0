// Package field is for analysing Go struct fields for use as ORM model attributes
package field

// field.go generates model attribute info from a Go struct field

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/andrewwphillips/eggorm/datatype"
)

// Info is returned by Get() with info extracted from a struct field to be used as a model attribute.
// The info is obtained from the field's name, type and "orm" (metadata) tag.
type Info struct {
	Name       string             // attribute name - from the tag or Go struct field name (with 1st letter lower-cased)
	Type       *datatype.DataType // from the tag or derived from the Go type
	AllowNull  bool               // pointer fields or those with the "null" option can be null
	PrimaryKey bool               // the "pk" option was given
	Comment    string             // text after any # character (outside brackets) in the tag

	Embedded bool // embedded (anonymous) struct whose fields are promoted
	nullSet  bool // the tag had "null" or "notnull" (so ignore pointer-ness)
}

// Get checks if a field in a Go struct is exported and, if so, returns the attribute info, incl. the
// name, derived from the Go field name (with 1st char lower-cased) or taken from the tag (metadata).
// An error may be returned e.g. for malformed metadata, or a Go type with no corresponding data type.
// If the field is not exported or the tag is a dash (-) then nil is returned, but no error.
func Get(f *reflect.StructField) (fieldInfo *Info, err error) {
	if f.PkgPath != "" && !f.Anonymous {
		return // unexported field
	}

	if fieldInfo, err = GetInfoFromTag(f.Tag.Get(TagKey)); err != nil {
		return nil, fmt.Errorf("%w getting tag info from field %q", err, f.Name)
	}
	if fieldInfo == nil {
		return // explicitly omitted field
	}

	// Get base type if it's a pointer
	t := f.Type
	for t.Kind() == reflect.Ptr {
		if !fieldInfo.nullSet {
			fieldInfo.AllowNull = true // Pointer types can be null
		}
		t = t.Elem() // follow indirection
	}

	if f.Anonymous && t.Kind() == reflect.Struct && t != timeType && fieldInfo.Type == nil {
		fieldInfo.Embedded = true
		return
	}
	if f.PkgPath != "" {
		return nil, nil // unexported embedded non-struct
	}

	// if no name was provided in the tag generate one from the field name
	if fieldInfo.Name == "" {
		first, n := utf8.DecodeRuneInString(f.Name)
		fieldInfo.Name = string(unicode.ToLower(first)) + f.Name[n:]
	}

	if fieldInfo.Type == nil {
		if fieldInfo.Type, err = typeOf(t); err != nil {
			return nil, fmt.Errorf("%w for field %q (add the data type to the tag)", err, f.Name)
		}
	}
	return
}

// Attributes returns the info for all the (exported, not omitted) fields of a struct type,
// in the order they are declared. The fields of embedded structs are included where the
// embedded struct appears. Attribute names must be unique.
func Attributes(t reflect.Type) ([]*Info, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct not %v", t.Kind())
	}
	var r []*Info
	inUse := make(map[string]struct{})
	if err := addAttributes(t, &r, inUse); err != nil {
		return nil, err
	}
	return r, nil
}

func addAttributes(t reflect.Type, r *[]*Info, inUse map[string]struct{}) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fieldInfo, err := Get(&f)
		if err != nil {
			return fmt.Errorf("%w in struct %s", err, t.Name())
		}
		if fieldInfo == nil {
			continue
		}
		if fieldInfo.Embedded {
			embedded := f.Type
			for embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}
			if err := addAttributes(embedded, r, inUse); err != nil {
				return err
			}
			continue
		}
		if _, ok := inUse[fieldInfo.Name]; ok {
			return fmt.Errorf("attribute %q is repeated in struct %s", fieldInfo.Name, t.Name())
		}
		inUse[fieldInfo.Name] = struct{}{}
		*r = append(*r, fieldInfo)
	}
	return nil
}
