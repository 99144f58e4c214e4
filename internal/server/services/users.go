// Package services implements the application logic behind the HTTP handlers:
// signup and profile, login and token refresh, and owner-scoped crop and
// journal management.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type UserService struct {
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
}

func NewUserService(m repomanager.RepositoryManager, hasher *auth.PasswordHasher) *UserService {
	return &UserService{repomanager: m, hasher: hasher}
}

// Register creates a user. The email is trimmed and the password is stored
// only as a bcrypt hash. A taken username yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
	}

	user, err = s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// UsernameExists backs the signup uniqueness check.
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.repomanager.Users().ExistsByUsername(ctx, username)
}

// Profile returns the user with all of their crops and journal entries, read
// from one consistent view. A user that no longer exists is
// common.ErrorUnauthorized: the token outlived its account.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile

	err := s.repomanager.ReadOnly(ctx, func(ctx context.Context, m repomanager.RepositoryManager) error {
		user, err := m.Users().GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error loading user: %w", err)
		}

		crops, err := m.Crops().ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("error loading crops: %w", err)
		}

		entries, err := m.Journal().ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("error loading journal: %w", err)
		}

		profile = models.NewProfile(user, crops, entries)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
