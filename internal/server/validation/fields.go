package validation

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
)

// JSON type tags, named the way JavaScript's typeof names decoded JSON.
// Arrays and null are "object".
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
)

// JSONType returns the type tag of a raw JSON value.
func JSONType(raw []byte) string {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			return TypeString
		case 't', 'f':
			return TypeBoolean
		case '{', '[', 'n':
			return TypeObject
		default:
			return TypeNumber
		}
	}
	return ""
}

// FieldSpec pairs a body field with the JSON type it must have.
type FieldSpec struct {
	Field string
	Type  string
}

// Fields builds one FieldSpec per field, all of type typ.
func Fields(typ string, fields ...string) []FieldSpec {
	specs := make([]FieldSpec, len(fields))
	for i, f := range fields {
		specs[i] = FieldSpec{Field: f, Type: typ}
	}
	return specs
}

// RequiredFields rejects the request with a 400 listing every absent field.
func RequiredFields(fields ...string) Validator {
	return func(_ context.Context, r *Request) error {
		var missing []string
		for _, f := range fields {
			if !r.Body.Has(f) {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			return common.BadRequest("The request is missing the following field(s): " + common.QuoteList(missing))
		}
		return nil
	}
}

// FieldTypes rejects the request with a 422 listing every present field whose
// JSON type differs from its spec. Absent fields are not checked.
func FieldTypes(specs ...FieldSpec) Validator {
	return func(_ context.Context, r *Request) error {
		var wrong []string
		for _, s := range specs {
			raw, ok := r.Body[s.Field]
			if ok && JSONType(raw) != s.Type {
				wrong = append(wrong, s.Field)
			}
		}
		if len(wrong) > 0 {
			return common.Unprocessable("Incorrect field types for the following fields: " + common.QuoteList(wrong))
		}
		return nil
	}
}

// NoSurroundingWhitespace rejects the request with a 422 listing every
// present string field with leading or trailing whitespace.
// Non-string values are skipped.
func NoSurroundingWhitespace(fields ...string) Validator {
	return func(_ context.Context, r *Request) error {
		var padded []string
		for _, f := range fields {
			s, ok := r.Body.String(f)
			if ok && strings.TrimSpace(s) != s {
				padded = append(padded, f)
			}
		}
		if len(padded) > 0 {
			return common.Unprocessable("The following begin or end with whitespace: " + common.QuoteList(padded))
		}
		return nil
	}
}
