// Package users stores user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
)

// Repository persists users. Lookups that match nothing return
// common.ErrorNotFound; inserting a taken username returns
// common.ErrorAlreadyExists where the backend can detect it.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
