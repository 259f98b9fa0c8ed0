package scalar

// date.go implements the GraphQL "Date" scalar, encoded as an ISO-8601 string

import (
	"fmt"
	"io"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
)

// dateFormat is how a Date is encoded (always UTC with milliseconds)
const dateFormat = "2006-01-02T15:04:05.000Z"

// dateLayouts are the layouts accepted when decoding, tried in order
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Date is the scalar for date/time attributes
var Date = &Scalar{
	Definition: &ast.Definition{
		Kind: ast.Scalar,
		Name: "Date",
		Description: "A custom Scalar type for Dates, converting date/time values to ISO 8601 strings " +
			"and parsing ISO 8601 strings back to date/time values.",
	},
	Serialize:    serializeDate,
	ParseValue:   parseDateValue,
	ParseLiteral: parseDateLiteral,
}

// serializeDate returns the encoded string or nil if v is not a valid (non-zero) time
func serializeDate(v any) any {
	var t time.Time
	switch v := v.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return nil
		}
		t = *v
	case DateTime:
		t = time.Time(v)
	case *DateTime:
		if v == nil {
			return nil
		}
		t = time.Time(*v)
	default:
		return nil
	}
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(dateFormat)
}

// parseDate decodes a string in any of the accepted layouts
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDateValue returns a time.Time for a valid date string, otherwise nil (not an error)
func parseDateValue(v any) (any, error) {
	if s, ok := v.(string); ok {
		if t, ok := parseDate(s); ok {
			return t, nil
		}
	}
	return nil, nil
}

// parseDateLiteral only accepts string literals, returning nil for anything else
func parseDateLiteral(v *ast.Value) (any, error) {
	if v == nil || v.Kind != ast.StringValue {
		return nil, nil
	}
	return parseDateValue(v.Raw)
}

// DateTime is a time.Time that can be used as a gqlgen model field for the Date scalar
type DateTime time.Time

// MarshalGQL writes the encoded date (or null for a zero time)
func (d DateTime) MarshalGQL(w io.Writer) {
	s, ok := serializeDate(d).(string)
	if !ok {
		graphql.Null.MarshalGQL(w)
		return
	}
	graphql.MarshalString(s).MarshalGQL(w)
}

// UnmarshalGQL decodes a date string
func (d *DateTime) UnmarshalGQL(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("Date must be a string not %T", v)
	}
	t, ok := parseDate(s)
	if !ok {
		return fmt.Errorf("%q is not a valid Date", s)
	}
	*d = DateTime(t)
	return nil
}
