package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/mongoutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection holding journal entries.
const CollectionName = "journal"

type entryDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Date      time.Time `bson:"date"`
	Scope     string    `bson:"scope"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"created_at"`
}

func toDocument(e *models.JournalEntry, createdAt time.Time) entryDocument {
	return entryDocument{
		ID:        e.ID,
		UserID:    e.UserID,
		Date:      e.Date,
		Scope:     e.Scope,
		Text:      e.Text,
		CreatedAt: createdAt,
	}
}

func (d *entryDocument) model() *models.JournalEntry {
	return &models.JournalEntry{ID: d.ID, UserID: d.UserID, Date: d.Date, Scope: d.Scope, Text: d.Text}
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(CollectionName)}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, e *models.JournalEntry) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(e, time.Now().UTC())); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) ListByUser(ctx context.Context, userID string) ([]*models.JournalEntry, error) {
	return r.find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(mongoutil.ByCreation()))
}

func (r *MongoRepository) Find(ctx context.Context, userID, id string) ([]*models.JournalEntry, error) {
	return r.find(ctx, mongoutil.OwnedFilter(userID, id))
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*models.JournalEntry, error) {
	cur, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []entryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := make([]*models.JournalEntry, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].model())
	}
	return result, nil
}

func (r *MongoRepository) Update(ctx context.Context, userID, id string, patch *models.JournalPatch) (bool, error) {
	update, ok := mongoutil.SetDocument(patch.Columns())
	if !ok {
		return false, nil
	}
	res, err := r.collection.UpdateOne(ctx, mongoutil.OwnedFilter(userID, id), update)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, mongoutil.OwnedFilter(userID, id))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return res.DeletedCount > 0, nil
}
