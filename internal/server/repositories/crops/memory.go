package crops

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
)

// MemoryRepository keeps crops in process memory, in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Crop
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]models.Crop)}
}

func (r *MemoryRepository) Create(_ context.Context, c *models.Crop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[c.ID] = *c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]*models.Crop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Crop, 0)
	for _, id := range r.order {
		if c, ok := r.byID[id]; ok && c.UserID == userID {
			result = append(result, &c)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Find(_ context.Context, userID, id string) ([]*models.Crop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Crop, 0, 1)
	if c, ok := r.byID[id]; ok && c.UserID == userID {
		result = append(result, &c)
	}
	return result, nil
}

func (r *MemoryRepository) Update(_ context.Context, userID, id string, patch *models.CropPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	patch.Apply(&c)
	r.byID[id] = c
	return true, nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
