// Package mongoutil holds document helpers shared by the MongoDB repositories.
package mongoutil

import (
	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
)

// SetDocument turns patch columns into a $set update. ok is false when there
// is nothing to set.
func SetDocument(cols []models.Column) (update bson.D, ok bool) {
	if len(cols) == 0 {
		return nil, false
	}
	set := make(bson.D, 0, len(cols))
	for _, c := range cols {
		set = append(set, bson.E{Key: c.Name, Value: c.Value})
	}
	return bson.D{{Key: "$set", Value: set}}, true
}

// OwnedFilter matches the document with the given id and owner.
func OwnedFilter(userID, id string) bson.M {
	return bson.M{"_id": id, "user_id": userID}
}

// ByCreation sorts documents oldest first with _id as tie-breaker.
func ByCreation() bson.D {
	return bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
}
