// Package journal stores journal entries. Every operation is scoped to an owner.
package journal

import (
	"context"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
)

// Repository persists journal entries with the same owner-matching rules as
// crops.Repository.
type Repository interface {
	Create(ctx context.Context, entry *models.JournalEntry) error
	ListByUser(ctx context.Context, userID string) ([]*models.JournalEntry, error)
	Find(ctx context.Context, userID, id string) ([]*models.JournalEntry, error)
	Update(ctx context.Context, userID, id string, patch *models.JournalPatch) (bool, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}
