// Package repomanager wires the repositories of one storage backend together
// and owns the backend's connection lifecycle.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/crops"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/journal"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/users"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// RepositoryManager vends the repositories of a single backend.
type RepositoryManager interface {
	Users() users.Repository
	Crops() crops.Repository
	Journal() journal.Repository

	// ReadOnly runs fn with a manager whose repositories read one
	// consistent state of the store, where the backend supports it.
	ReadOnly(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error

	// RunMigrations prepares the schema (tables, indexes).
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects to the backend named by driver.
// dsn is ignored by the memory driver; dbName is only used by mongo.
func Open(ctx context.Context, driver, dsn, dbName string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	case DriverMongo:
		return OpenMongo(ctx, dsn, dbName)
	case DriverMemory:
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
