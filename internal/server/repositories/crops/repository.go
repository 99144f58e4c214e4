// Package crops stores crops. Every operation is scoped to an owner.
package crops

import (
	"context"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
)

// Repository persists crops. Find, Update and Delete match on id AND owner,
// so another user's id behaves exactly like an unknown one.
type Repository interface {
	Create(ctx context.Context, crop *models.Crop) error
	ListByUser(ctx context.Context, userID string) ([]*models.Crop, error)
	// Find returns zero or one crops.
	Find(ctx context.Context, userID, id string) ([]*models.Crop, error)
	// Update applies patch and reports whether a crop matched.
	Update(ctx context.Context, userID, id string, patch *models.CropPatch) (bool, error)
	// Delete reports whether a crop matched.
	Delete(ctx context.Context, userID, id string) (bool, error)
}
