// Package validation holds the request validators, ownership guards and the
// update-document builder that run in front of every write handler.
//
// A route declares an ordered list of Validators and runs them with Chain.
// Validators inspect the raw JSON body (a Body), so type mistakes can be
// reported by field name before anything is decoded into a typed model.
package validation

import (
	"context"
	"errors"
	"maps"
	"reflect"
	"slices"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
	"github.com/goccy/go-json"
)

// Body is a decoded JSON object whose values are kept undecoded.
type Body map[string]json.RawMessage

// Has reports whether field is present, even with a null value.
func (b Body) Has(field string) bool {
	_, ok := b[field]
	return ok
}

// String returns the field value when it is a JSON string.
func (b Body) String(field string) (string, bool) {
	raw, ok := b[field]
	if !ok || JSONType(raw) != TypeString {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

var errMalformed = common.BadRequest("Malformed request body")

// DecodeBody parses data as a JSON object. Anything else, including an empty
// body or a top-level array, yields a 400 StatusError.
func DecodeBody(data []byte) (Body, error) {
	var b Body
	if err := json.Unmarshal(data, &b); err != nil || b == nil {
		return nil, errMalformed
	}
	return b, nil
}

// Decode fills v (a pointer to a struct) from the body. Fields whose value
// cannot be decoded into the target type are reported as a 422, in key order.
func (b Body) Decode(v any) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}

	var bad []string
	typ := reflect.TypeOf(v).Elem()
	for _, k := range slices.Sorted(maps.Keys(b)) {
		one, err := json.Marshal(Body{k: b[k]})
		if err != nil {
			return err
		}
		if err := json.Unmarshal(one, reflect.New(typ).Interface()); err != nil {
			bad = append(bad, k)
		}
	}
	if len(bad) == 0 {
		return errors.New("decode body: inconsistent field errors")
	}
	return common.Unprocessable("Incorrect field types for the following fields: " + common.QuoteList(bad))
}

// Request is what validators see: the raw body, the {id} path parameter (if
// the route has one) and the authenticated user (if any).
type Request struct {
	Body   Body
	PathID string
	UserID string
}

// Validator inspects a request and returns a *common.StatusError to reject
// it, or any other error for an internal failure.
type Validator func(ctx context.Context, r *Request) error

// Chain runs validators left to right and stops at the first failure.
func Chain(validators ...Validator) Validator {
	return func(ctx context.Context, r *Request) error {
		for _, v := range validators {
			if err := v(ctx, r); err != nil {
				return err
			}
		}
		return nil
	}
}
