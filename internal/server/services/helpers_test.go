package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/crops"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/journal"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/users"
)

var errDB = errors.New("db down")

// brokenManager wraps a working manager and lets a test break single repositories.
type brokenManager struct {
	*repomanager.MemoryRepositoryManager
	users   users.Repository
	crops   crops.Repository
	journal journal.Repository
}

func newBrokenManager() *brokenManager {
	return &brokenManager{MemoryRepositoryManager: repomanager.NewMemoryRepositoryManager()}
}

func (m *brokenManager) Users() users.Repository {
	if m.users != nil {
		return m.users
	}
	return m.MemoryRepositoryManager.Users()
}

func (m *brokenManager) Crops() crops.Repository {
	if m.crops != nil {
		return m.crops
	}
	return m.MemoryRepositoryManager.Crops()
}

func (m *brokenManager) Journal() journal.Repository {
	if m.journal != nil {
		return m.journal
	}
	return m.MemoryRepositoryManager.Journal()
}

func (m *brokenManager) ReadOnly(ctx context.Context, fn func(ctx context.Context, m repomanager.RepositoryManager) error) error {
	return fn(ctx, m)
}

type failingUsers struct{ err error }

func (f failingUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, f.err }
func (f failingUsers) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, f.err
}
func (f failingUsers) GetByID(context.Context, string) (*models.User, error) { return nil, f.err }
func (f failingUsers) ExistsByUsername(context.Context, string) (bool, error) {
	return false, f.err
}

type failingCrops struct{ err error }

func (f failingCrops) Create(context.Context, *models.Crop) error { return f.err }
func (f failingCrops) ListByUser(context.Context, string) ([]*models.Crop, error) {
	return nil, f.err
}
func (f failingCrops) Find(context.Context, string, string) ([]*models.Crop, error) {
	return nil, f.err
}
func (f failingCrops) Update(context.Context, string, string, *models.CropPatch) (bool, error) {
	return false, f.err
}
func (f failingCrops) Delete(context.Context, string, string) (bool, error) { return false, f.err }

type failingJournal struct{ err error }

func (f failingJournal) Create(context.Context, *models.JournalEntry) error { return f.err }
func (f failingJournal) ListByUser(context.Context, string) ([]*models.JournalEntry, error) {
	return nil, f.err
}
func (f failingJournal) Find(context.Context, string, string) ([]*models.JournalEntry, error) {
	return nil, f.err
}
func (f failingJournal) Update(context.Context, string, string, *models.JournalPatch) (bool, error) {
	return false, f.err
}
func (f failingJournal) Delete(context.Context, string, string) (bool, error) { return false, f.err }

func ptr[T any](v T) *T { return &v }
