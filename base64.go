package eggorm

// base64.go has base 64 encoding and decoding of strings, as used for opaque IDs and cursors

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64 encodes a string using standard (padded) base 64 encoding.
// An InvalidInputError is returned if the input is not a string.
func Base64(input any) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", NewInvalidInputError("Base64", input, "input must be a string")
	}
	return base64.StdEncoding.EncodeToString([]byte(s)), nil
}

// Unbase64 decodes a base 64 encoded string, with or without padding.
// An InvalidInputError is returned if the input is not a string or is not valid base 64.
func Unbase64(input any) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", NewInvalidInputError("Unbase64", input, "input must be a string")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		if b, err = base64.RawStdEncoding.DecodeString(s); err != nil {
			return "", NewInvalidInputError("Unbase64", input, "input is not valid base 64")
		}
	}
	return string(b), nil
}

// GlobalID returns the (Relay style) global ID for an object: the base 64 encoding of the type
// name and the object's ID separated by a colon
func GlobalID(typeName string, id any) string {
	s, _ := Base64(typeName + ":" + fmt.Sprint(id))
	return s
}

// FromGlobalID splits a global ID into the type name and the object's ID.
// An InvalidInputError is returned if the global ID is not of the form made by GlobalID.
func FromGlobalID(gid string) (typeName, id string, err error) {
	s, err := Unbase64(gid)
	if err != nil {
		return "", "", err
	}
	typeName, id, found := strings.Cut(s, ":")
	if !found || typeName == "" {
		return "", "", NewInvalidInputError("FromGlobalID", gid, "not a global ID")
	}
	return typeName, id, nil
}

// GlobalIDOf returns the global ID of an object of the model given the value of its primary key
func GlobalIDOf(m Model, pk any) string {
	return GlobalID(m.Name(), pk)
}
