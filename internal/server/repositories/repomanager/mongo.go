package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/crops"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/journal"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepositoryManager vends MongoDB-backed repositories for one database.
type MongoRepositoryManager struct {
	client *mongo.Client
	db     *mongo.Database

	users   *users.MongoRepository
	crops   *crops.MongoRepository
	journal *journal.MongoRepository
}

func NewMongoRepositoryManager(client *mongo.Client, dbName string) *MongoRepositoryManager {
	db := client.Database(dbName)
	return &MongoRepositoryManager{
		client:  client,
		db:      db,
		users:   users.NewMongoRepository(db),
		crops:   crops.NewMongoRepository(db),
		journal: journal.NewMongoRepository(db),
	}
}

// OpenMongo connects to uri and checks the primary is reachable.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return NewMongoRepositoryManager(client, dbName), nil
}

func (m *MongoRepositoryManager) Users() users.Repository     { return m.users }
func (m *MongoRepositoryManager) Crops() crops.Repository     { return m.crops }
func (m *MongoRepositoryManager) Journal() journal.Repository { return m.journal }

// ReadOnly runs fn directly: snapshot sessions need a replica set, which a
// standalone deployment does not have.
func (m *MongoRepositoryManager) ReadOnly(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return fn(ctx, m)
}

// RunMigrations creates the collection indexes, including the unique index
// on users.username.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	for _, r := range []interface {
		EnsureIndexes(context.Context) error
	}{m.users, m.crops, m.journal} {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
