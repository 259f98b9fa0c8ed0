package field

// tag.go handles extracting info from the "orm:" tag string (from struct field metadata)

import (
	"errors"
	"fmt"
	"strings"
)

// TagKey is the struct field tag key used for model attributes
const TagKey = "orm"

// GetInfoFromTag extracts the attribute name, type and options from the field's tag (if any).
// The tag is a comma-separated list, where the first element is the attribute name optionally followed by
// a colon and the data type, eg `orm:"status:ENUM(active,retired),null#Current status"`.
// If the tag just contains a dash (-) then nil is returned (no error).  If the tag string is empty
// (e.g. if no tag was supplied) then the returned Info is not nil but the Name field is empty.
func GetInfoFromTag(tag string) (*Info, error) {
	if tag == "-" {
		return nil, nil // this field is to be ignored
	}
	parts, description, err := SplitWithDesc(tag)
	if err != nil {
		return nil, fmt.Errorf("%w splitting tag %q", err, tag)
	}

	var fieldInfo *Info
	for i, part := range parts {
		if i == 0 { // first string is the name
			fieldInfo, err = getMain(part)
			if err != nil {
				return nil, fmt.Errorf("%w attribute %q of tag %q", err, part, tag)
			}
			continue
		}
		if part == "" {
			continue // ignore empty sections
		}
		switch part {
		case "pk", "primaryKey", "primary_key":
			fieldInfo.PrimaryKey = true
		case "null", "nullable":
			fieldInfo.AllowNull = true
			fieldInfo.nullSet = true
		case "notnull", "not_null":
			fieldInfo.AllowNull = false
			fieldInfo.nullSet = true
		default:
			if strings.HasPrefix(part, "type") {
				return nil, errors.New(`type option is not supported - add the type after the attribute name and a colon`)
			}
			return nil, fmt.Errorf("unknown option %q in %q", part, tag)
		}
	}
	fieldInfo.Comment = strings.TrimSpace(description)

	return fieldInfo, nil
}

// getMain handles the first part of the tag which may just be the attribute name (or even empty),
// but can also include a data type after a colon (:), such as "tags:ARRAY(STRING)".
// If there is no data type it is later derived from the Go field type.
func getMain(s string) (*Info, error) {
	r := &Info{}
	colon := strings.IndexByte(s, ':')
	if colon == -1 {
		r.Name = s
		return r, nil
	}
	r.Name = strings.TrimSpace(s[:colon])
	typeName := strings.TrimSpace(s[colon+1:])
	if typeName == "" {
		return nil, errors.New("missing data type after colon")
	}
	dt, err := ParseType(typeName)
	if err != nil {
		return nil, err
	}
	r.Type = dt
	return r, nil
}

// getBracketedList gets a list of values from a string enclosed in brackets and preceded by a keyword
// Eg for getBracketedList("ENUM(a,b)", "ENUM") it will return the list of strings {"a", "b"}.
// It may return an error for badly formatted metadata.
// If the keyword does not match (or there are no brackets) it returns nil (and no error).
func getBracketedList(s, keyword string) ([]string, error) {
	if !strings.HasPrefix(s, keyword+"(") {
		return nil, nil // keyword does not match
	}
	s = strings.TrimPrefix(s, keyword)

	// Get the bracket-enclosed string and split using commas
	last := len(s) - 1
	if last < 1 || s[0] != '(' || s[last] != ')' {
		return nil, errors.New("value(s) not in brackets for tag keyword " + keyword)
	}
	s = strings.Trim(s[1:last], " ")
	if s == "" {
		// Avoid behaviour of strings.Split on boundary condition (empty string)
		return []string{}, nil // empty parameter list
	}
	return SplitArgs(s)
}
