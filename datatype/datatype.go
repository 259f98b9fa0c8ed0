// Package datatype describes the column types an ORM model can declare for its attributes.
// These are the ORM-side inputs to the GraphQL type mapper.
package datatype

// datatype.go has the Kind enumeration and the DataType descriptor with its constructors

import (
	"strings"
)

// Kind identifies the ORM type tag of a DataType
type Kind uint8

const (
	KindOther Kind = iota // a type with no built-in GraphQL mapping (uses Tag)
	KindBoolean
	KindFloat
	KindReal
	KindDouble
	KindDate
	KindChar
	KindString
	KindText
	KindUUID
	KindUUIDV4
	KindDateOnly
	KindTime
	KindBigInt
	KindDecimal
	KindCIText
	KindINet
	KindInteger
	KindArray
	KindEnum
	KindVirtual
	KindJSON
	KindJSONB
)

// tags are the ORM names of the kinds, indexed by Kind
var tags = [...]string{
	KindOther:    "",
	KindBoolean:  "BOOLEAN",
	KindFloat:    "FLOAT",
	KindReal:     "REAL",
	KindDouble:   "DOUBLE",
	KindDate:     "DATE",
	KindChar:     "CHAR",
	KindString:   "STRING",
	KindText:     "TEXT",
	KindUUID:     "UUID",
	KindUUIDV4:   "UUIDV4",
	KindDateOnly: "DATEONLY",
	KindTime:     "TIME",
	KindBigInt:   "BIGINT",
	KindDecimal:  "DECIMAL",
	KindCIText:   "CITEXT",
	KindINet:     "INET",
	KindInteger:  "INTEGER",
	KindArray:    "ARRAY",
	KindEnum:     "ENUM",
	KindVirtual:  "VIRTUAL",
	KindJSON:     "JSON",
	KindJSONB:    "JSONB",
}

// String returns the ORM tag of the kind, eg "INTEGER"
func (k Kind) String() string {
	if int(k) < len(tags) {
		return tags[k]
	}
	return ""
}

// DataType is the ORM description of an attribute's column type.
// Composite kinds carry their inner metadata: Elem for ARRAY, Values for ENUM and
// ReturnType (optional) for VIRTUAL.
type DataType struct {
	Kind       Kind
	Tag        string    // only used for KindOther, eg "GEOMETRY"
	Elem       *DataType // element type of an ARRAY
	Values     []string  // allowed values of an ENUM
	ReturnType *DataType // type a VIRTUAL attribute evaluates to (nil means String)
}

// Key returns the tag of the data type, which for KindOther is the tag it was declared with
func (t *DataType) Key() string {
	if t == nil {
		return ""
	}
	if t.Kind == KindOther {
		return t.Tag
	}
	return t.Kind.String()
}

// String returns the type in the textual form used in struct tags, eg "ARRAY(ENUM(a,b))"
func (t *DataType) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindArray:
		if t.Elem == nil {
			return "ARRAY"
		}
		return "ARRAY(" + t.Elem.String() + ")"
	case KindEnum:
		if len(t.Values) == 0 {
			return "ENUM"
		}
		quoted := make([]string, len(t.Values))
		for i, v := range t.Values {
			quoted[i] = quoteValue(v)
		}
		return "ENUM(" + strings.Join(quoted, ",") + ")"
	case KindVirtual:
		if t.ReturnType == nil {
			return "VIRTUAL"
		}
		return "VIRTUAL(" + t.ReturnType.String() + ")"
	}
	return t.Key()
}

// quoteValue adds quotes to an enum value that would otherwise be split or trimmed when parsed
func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, `,()[]{}"# `) {
		return `"` + strings.ReplaceAll(v, `"`, `'`) + `"`
	}
	return v
}

func of(k Kind) *DataType { return &DataType{Kind: k} }

func Boolean() *DataType  { return of(KindBoolean) }
func Float() *DataType    { return of(KindFloat) }
func Real() *DataType     { return of(KindReal) }
func Double() *DataType   { return of(KindDouble) }
func Date() *DataType     { return of(KindDate) }
func Char() *DataType     { return of(KindChar) }
func String() *DataType   { return of(KindString) }
func Text() *DataType     { return of(KindText) }
func UUID() *DataType     { return of(KindUUID) }
func UUIDV4() *DataType   { return of(KindUUIDV4) }
func DateOnly() *DataType { return of(KindDateOnly) }
func Time() *DataType     { return of(KindTime) }
func BigInt() *DataType   { return of(KindBigInt) }
func Decimal() *DataType  { return of(KindDecimal) }
func CIText() *DataType   { return of(KindCIText) }
func INet() *DataType     { return of(KindINet) }
func Integer() *DataType  { return of(KindInteger) }
func JSON() *DataType     { return of(KindJSON) }
func JSONB() *DataType    { return of(KindJSONB) }

// Array is a list column holding elements of type elem
func Array(elem *DataType) *DataType {
	return &DataType{Kind: KindArray, Elem: elem}
}

// Enum is a column restricted to the given string values
func Enum(values ...string) *DataType {
	return &DataType{Kind: KindEnum, Values: values}
}

// Virtual is a computed attribute, not stored in a column. The returnType may be nil.
func Virtual(returnType *DataType) *DataType {
	return &DataType{Kind: KindVirtual, ReturnType: returnType}
}

// Other is any other ORM type, identified only by its tag (eg "GEOMETRY", "BLOB")
func Other(tag string) *DataType {
	return &DataType{Kind: KindOther, Tag: tag}
}
