// Package users implements the user store and the authentication service:
// registration, credential verification, bearer credential issuance, and the
// profile lookup.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/auth"
	"github.com/dmitrijs2005/finledger/internal/server/config"
)

// AuthResult is returned by Authenticate: the asserted user id and the
// bearer credential the caller presents on subsequent requests.
type AuthResult struct {
	UserID      string
	AccessToken string
}

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewService builds the service with the signing secret and token lifetime
// injected from config at construction. Nothing is read from the environment
// per call.
func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {

	if name == "" || email == "" || password == "" {
		return nil, common.ErrorInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *Service) checkPassword(hash string, passwordCandidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passwordCandidate)) == nil
}

// Authenticate verifies the credentials and issues a bearer credential.
// Unknown email and password mismatch are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !s.checkPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	accessToken, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{UserID: user.ID, AccessToken: accessToken}, nil
}

// GetProfile is the read-only projection over the user store.
func (s *Service) GetProfile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}
