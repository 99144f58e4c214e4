package validation

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
)

// ExistsFunc reports whether a record with the given field value exists.
type ExistsFunc func(ctx context.Context, value string) (bool, error)

// OwnedFunc reports whether the record id belongs to userID.
type OwnedFunc func(ctx context.Context, userID, id string) (bool, error)

// DoesNotExist rejects the request with a 422 "<field> already exists" when a
// record already carries the body's value for field. Lookup errors are
// returned unchanged. The check races with concurrent inserts; stores that
// need a hard guarantee enforce it with a unique index.
func DoesNotExist(field string, exists ExistsFunc) Validator {
	return func(ctx context.Context, r *Request) error {
		value, ok := r.Body.String(field)
		if !ok {
			return nil
		}
		found, err := exists(ctx, value)
		if err != nil {
			return fmt.Errorf("check %s: %w", field, err)
		}
		if found {
			return common.Unprocessable(field + " already exists")
		}
		return nil
	}
}

// MatchingIDs requires the path id and the body "id" to be present and equal.
func MatchingIDs() Validator {
	return func(_ context.Context, r *Request) error {
		id, ok := r.Body.String("id")
		if r.PathID == "" || !ok || id != r.PathID {
			return common.BadRequest("Please ensure the correctness of the ids")
		}
		return nil
	}
}

// OwnedReference requires a present string field to hold the id of a record
// owned by the requesting user.
func OwnedReference(field string, owned OwnedFunc) Validator {
	return func(ctx context.Context, r *Request) error {
		id, ok := r.Body.String(field)
		if !ok {
			return nil
		}
		mine, err := owned(ctx, r.UserID, id)
		if err != nil {
			return fmt.Errorf("check %s: %w", field, err)
		}
		if !mine {
			return common.Unprocessable(field + " must reference one of your records")
		}
		return nil
	}
}
