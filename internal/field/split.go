package field

// split.go has functions to split tag strings at a comma separator but allowing for brackets, quotes, etc

import (
	"fmt"
	"strings"
)

// scanner tracks nesting while stepping through a tag string
type scanner struct {
	round, square, brace int
	inString             bool
}

// nested reports whether the scanner is inside brackets
func (sc *scanner) nested() bool {
	return sc.round > 0 || sc.square > 0 || sc.brace > 0
}

// step updates the nesting for the character c, returning an error for an unmatched closing bracket
func (sc *scanner) step(c rune, s string) error {
	if sc.inString {
		if c == '"' {
			sc.inString = false
		}
		return nil
	}
	switch c {
	case '"':
		sc.inString = true
	case '(':
		sc.round++
	case '[':
		sc.square++
	case '{':
		sc.brace++
	case ')':
		sc.round--
		if sc.round < 0 {
			return fmt.Errorf("unmatched right bracket ')' in %q", s)
		}
	case ']':
		sc.square--
		if sc.square < 0 {
			return fmt.Errorf("unmatched right square bracket ']' in %q", s)
		}
	case '}':
		sc.brace--
		if sc.brace < 0 {
			return fmt.Errorf("unmatched right brace '}' in %q", s)
		}
	}
	return nil
}

// finish checks that everything opened has been closed
func (sc *scanner) finish(s string) error {
	switch {
	case sc.inString:
		return fmt.Errorf("unmatched quote (unterminated string) in %q", s)
	case sc.round > 0:
		return fmt.Errorf("unmatched left bracket '(' in %q", s)
	case sc.square > 0:
		return fmt.Errorf("unmatched left square bracket '[' in %q", s)
	case sc.brace > 0:
		return fmt.Errorf("unmatched left brace '{' in %q", s)
	}
	return nil
}

// split does the work of SplitArgs and SplitWithDesc. If withDesc is true then a hash (#)
// that's not in brackets or quotes ends the list and the rest of s is returned as the description.
func split(s string, withDesc bool) ([]string, string, error) {
	var sc scanner
	var parts []string
	desc := ""
	start := 0
	for i, c := range s {
		wasString := sc.inString
		if err := sc.step(c, s); err != nil {
			return nil, "", err
		}
		if wasString || sc.nested() {
			continue
		}
		if c == ',' {
			parts = append(parts, strings.Trim(s[start:i], " "))
			start = i + 1
		} else if c == '#' && withDesc {
			desc = s[i+1:]
			s = s[:i]
			break
		}
	}
	if err := sc.finish(s); err != nil {
		return nil, "", err
	}
	return append(parts, strings.Trim(s[start:], " ")), desc, nil
}

// SplitArgs splits a string on commas and returns the resulting slice of strings.
// It ignores commas within strings, round brackets, square brackets or braces, which
// allows for "nested" structures. For example "a,b(c,d),e"  => []string{ "a", "b(c,d)", "e" }
// An error is returned if there is a problem with the input string such as unmatched brackets.
func SplitArgs(s string) ([]string, error) {
	parts, _, err := split(s, false)
	return parts, err
}

// SplitWithDesc is like SplitArgs but also allows a trailing "description" (anything after the first #).
// On success, it returns a list of strings, the description (if any) and a nil error.
func SplitWithDesc(s string) ([]string, string, error) {
	return split(s, true)
}
