package field

// type.go gets the ORM data type of a field, from its tag or from its Go type

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andrewwphillips/eggorm/datatype"
)

// kinds looks up the tag keyword of the simple (non-composite) data types
var kinds = map[string]datatype.Kind{
	"BOOLEAN":  datatype.KindBoolean,
	"FLOAT":    datatype.KindFloat,
	"REAL":     datatype.KindReal,
	"DOUBLE":   datatype.KindDouble,
	"DATE":     datatype.KindDate,
	"CHAR":     datatype.KindChar,
	"STRING":   datatype.KindString,
	"TEXT":     datatype.KindText,
	"UUID":     datatype.KindUUID,
	"UUIDV4":   datatype.KindUUIDV4,
	"DATEONLY": datatype.KindDateOnly,
	"TIME":     datatype.KindTime,
	"BIGINT":   datatype.KindBigInt,
	"DECIMAL":  datatype.KindDecimal,
	"CITEXT":   datatype.KindCIText,
	"INET":     datatype.KindINet,
	"INTEGER":  datatype.KindInteger,
	"JSON":     datatype.KindJSON,
	"JSONB":    datatype.KindJSONB,
}

// ParseType converts the textual form of a data type, such as "STRING(255)", "ARRAY(INTEGER)",
// "ENUM(a, b, "c d")" or "VIRTUAL(BOOLEAN)", to a DataType. Keywords are not case-sensitive.
// Arguments of simple types (like the length of a STRING) are accepted but not used.
// Unknown keywords give a type of KindOther so that they are reported when mapped to GraphQL.
func ParseType(s string) (*datatype.DataType, error) {
	s = strings.TrimSpace(s)
	keyword := s
	if i := strings.IndexByte(s, '('); i > -1 {
		keyword = s[:i]
		s = strings.ToUpper(keyword) + s[i:]
	}
	keyword = strings.ToUpper(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil, fmt.Errorf("missing data type name in %q", s)
	}
	if strings.ContainsAny(keyword, " \t,") {
		return nil, fmt.Errorf("unexpected text after data type name in %q", s)
	}

	list, err := getBracketedList(s, keyword)
	if err != nil {
		return nil, fmt.Errorf("%w in data type %q", err, s)
	}
	if list == nil && len(s) > len(keyword) {
		return nil, fmt.Errorf("unexpected text after %s in data type %q", keyword, s)
	}

	switch keyword {
	case "ARRAY", "VIRTUAL":
		var inner *datatype.DataType
		if len(list) > 1 {
			return nil, fmt.Errorf("%s can only have one inner type (%q)", keyword, s)
		}
		if len(list) == 1 {
			if inner, err = ParseType(list[0]); err != nil {
				return nil, err
			}
		}
		if keyword == "ARRAY" {
			return datatype.Array(inner), nil
		}
		return datatype.Virtual(inner), nil
	case "ENUM":
		if list == nil {
			return &datatype.DataType{Kind: datatype.KindEnum}, nil
		}
		values := make([]string, len(list))
		for i, v := range list {
			if len(v) > 1 && v[0] == '"' && v[len(v)-1] == '"' {
				if v, err = strconv.Unquote(v); err != nil {
					return nil, fmt.Errorf("%w in ENUM value %s", err, list[i])
				}
			}
			values[i] = v
		}
		return datatype.Enum(values...), nil
	}
	if kind, ok := kinds[keyword]; ok {
		return &datatype.DataType{Kind: kind}, nil
	}
	return datatype.Other(keyword), nil
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
	rawJSONType = reflect.TypeOf(json.RawMessage{})
)

// typeOf derives the data type from a Go type (which should not be a pointer)
func typeOf(t reflect.Type) (*datatype.DataType, error) {
	switch t {
	case timeType:
		return datatype.Date(), nil
	case uuidType:
		return datatype.UUID(), nil
	case rawJSONType:
		return datatype.JSON(), nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return datatype.Boolean(), nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return datatype.Integer(), nil
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return datatype.BigInt(), nil
	case reflect.Float32:
		return datatype.Float(), nil
	case reflect.Float64:
		return datatype.Double(), nil
	case reflect.String:
		return datatype.String(), nil
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return datatype.JSON(), nil
		}
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return datatype.Other("BLOB"), nil
		}
		elem := t.Elem()
		for elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		inner, err := typeOf(elem)
		if err != nil {
			return nil, err
		}
		return datatype.Array(inner), nil
	}
	return nil, fmt.Errorf("cannot derive a data type from Go type %v", t)
}
