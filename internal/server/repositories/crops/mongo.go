package crops

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

// CollectionName is the MongoDB collection holding crops.
const CollectionName = "crops"

type cropDocument struct {
	ID              string    `bson:"_id"`
	UserID          string    `bson:"user_id"`
	Name            string    `bson:"name"`
	Variety         string    `bson:"variety"`
	PlantDate       time.Time `bson:"plant_date"`
	GerminationDays int       `bson:"germination_days"`
	HarvestDays     int       `bson:"harvest_days"`
	PlantingDepth   *float64  `bson:"planting_depth"`
	RowSpacing      *float64  `bson:"row_spacing"`
	SeedSpacing     *float64  `bson:"seed_spacing"`
	CreatedAt       time.Time `bson:"created_at"`
}

func toDocument(c *models.Crop, createdAt time.Time) cropDocument {
	return cropDocument{
		ID:              c.ID,
		UserID:          c.UserID,
		Name:            c.Name,
		Variety:         c.Variety,
		PlantDate:       c.PlantDate,
		GerminationDays: c.GerminationDays,
		HarvestDays:     c.HarvestDays,
		PlantingDepth:   c.PlantingDepth,
		RowSpacing:      c.RowSpacing,
		SeedSpacing:     c.SeedSpacing,
		CreatedAt:       createdAt,
	}
}

func (d *cropDocument) model() *models.Crop {
	return &models.Crop{
		ID:              d.ID,
		UserID:          d.UserID,
		Name:            d.Name,
		Variety:         d.Variety,
		PlantDate:       d.PlantDate,
		GerminationDays: d.GerminationDays,
		HarvestDays:     d.HarvestDays,
		PlantingDepth:   d.PlantingDepth,
		RowSpacing:      d.RowSpacing,
		SeedSpacing:     d.SeedSpacing,
	}
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes creates the owner index used by every query.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, c *models.Crop) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(c, time.Now().UTC())); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) ListByUser(ctx context.Context, userID string) ([]*models.Crop, error) {
	opts := options.Find().SetSort(mongoutil.ByCreation())
	return r.find(ctx, bson.M{"user_id": userID}, opts)
}

func (r *MongoRepository) Find(ctx context.Context, userID, id string) ([]*models.Crop, error) {
	return r.find(ctx, mongoutil.OwnedFilter(userID, id))
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*models.Crop, error) {
	cur, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []cropDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := make([]*models.Crop, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].model())
	}
	return result, nil
}

func (r *MongoRepository) Update(ctx context.Context, userID, id string, patch *models.CropPatch) (bool, error) {
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
