package datatype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewwphillips/eggorm/datatype"
)

func TestString(t *testing.T) {
	tests := map[string]struct {
		dt       *datatype.DataType
		key, str string
	}{
		"Nil":         {nil, "", ""},
		"Integer":     {datatype.Integer(), "INTEGER", "INTEGER"},
		"Other":       {datatype.Other("GEOMETRY"), "GEOMETRY", "GEOMETRY"},
		"Array":       {datatype.Array(datatype.String()), "ARRAY", "ARRAY(STRING)"},
		"ArrayNoElem": {datatype.Array(nil), "ARRAY", "ARRAY"},
		"Enum":        {datatype.Enum("a", "b"), "ENUM", "ENUM(a,b)"},
		"EnumQuoted":  {datatype.Enum("on hold", "", `say "hi"`), "ENUM", `ENUM("on hold","","say 'hi'")`},
		"EnumEmpty":   {datatype.Enum(), "ENUM", "ENUM"},
		"Virtual":     {datatype.Virtual(datatype.BigInt()), "VIRTUAL", "VIRTUAL(BIGINT)"},
		"VirtualNone": {datatype.Virtual(nil), "VIRTUAL", "VIRTUAL"},
		"Nested":      {datatype.Array(datatype.Enum("x,y")), "ARRAY", `ARRAY(ENUM("x,y"))`},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, data.key, data.dt.Key())
			assert.Equal(t, data.str, data.dt.String())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "JSONB", datatype.KindJSONB.String())
	assert.Equal(t, "", datatype.KindOther.String())
	assert.Equal(t, "", datatype.Kind(200).String())
}
