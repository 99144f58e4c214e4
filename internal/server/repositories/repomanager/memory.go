package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/crops"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/journal"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Data does not
// survive a restart; it backs the "memory" driver and the HTTP tests.
type MemoryRepositoryManager struct {
	users   *users.MemoryRepository
	crops   *crops.MemoryRepository
	journal *journal.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:   users.NewMemoryRepository(),
		crops:   crops.NewMemoryRepository(),
		journal: journal.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository     { return m.users }
func (m *MemoryRepositoryManager) Crops() crops.Repository     { return m.crops }
func (m *MemoryRepositoryManager) Journal() journal.Repository { return m.journal }

func (m *MemoryRepositoryManager) ReadOnly(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return fn(ctx, m)
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Ping(context.Context) error          { return nil }
func (m *MemoryRepositoryManager) Close(context.Context) error         { return nil }
