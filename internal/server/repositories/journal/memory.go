package journal

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
)

// MemoryRepository keeps journal entries in process memory, in insertion order.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []models.JournalEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, e *models.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *e)
	return nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]*models.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.JournalEntry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			result = append(result, &e)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Find(_ context.Context, userID, id string) ([]*models.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.JournalEntry, 0, 1)
	if i := r.index(userID, id); i >= 0 {
		e := r.entries[i]
		result = append(result, &e)
	}
	return result, nil
}

func (r *MemoryRepository) Update(_ context.Context, userID, id string, patch *models.JournalPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(userID, id)
	if i < 0 {
		return false, nil
	}
	patch.Apply(&r.entries[i])
	return true, nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(userID, id)
	if i < 0 {
		return false, nil
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	return true, nil
}

// index must be called with mu held.
func (r *MemoryRepository) index(userID, id string) int {
	return slices.IndexFunc(r.entries, func(e models.JournalEntry) bool {
		return e.ID == id && e.UserID == userID
	})
}
