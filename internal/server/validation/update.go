package validation

// UpdateDocument returns the part of body an update may write: the
// whitelisted fields that are present, and nothing else.
func UpdateDocument(body Body, fields ...string) Body {
	doc := make(Body, len(fields))
	for _, f := range fields {
		if raw, ok := body[f]; ok {
			doc[f] = raw
		}
	}
	return doc
}
