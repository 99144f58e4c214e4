package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/repomanager"
)

// AuthService exchanges credentials for tokens.
type AuthService struct {
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	issuer      *auth.TokenIssuer
}

func NewAuthService(m repomanager.RepositoryManager, hasher *auth.PasswordHasher, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{repomanager: m, hasher: hasher, issuer: issuer}
}

// Login checks the credentials and returns a fresh token. Unknown users and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repomanager.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	return s.issue(user.Serialize())
}

// Refresh re-issues a token for an already authenticated identity.
func (s *AuthService) Refresh(_ context.Context, user models.UserView) (string, error) {
	return s.issue(user)
}

// Authenticate resolves a bearer token to the identity it was issued to.
func (s *AuthService) Authenticate(token string) (models.UserView, error) {
	return s.issuer.Parse(token)
}

func (s *AuthService) issue(user models.UserView) (string, error) {
	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
