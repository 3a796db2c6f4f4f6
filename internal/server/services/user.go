// Package services implements the server-side business logic between the
// HTTP layer and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adventbox/daybox/internal/cryptox"
	"github.com/adventbox/daybox/internal/server/auth"
	"github.com/adventbox/daybox/internal/server/config"
	"github.com/adventbox/daybox/internal/server/models"
	"github.com/adventbox/daybox/internal/server/repositories/repomanager"
	"github.com/adventbox/daybox/internal/shared"
)

// LoginResult is what a successful login hands to the HTTP layer: the
// bearer token plus the account anchor the client resolves day offsets
// against.
type LoginResult struct {
	AccessToken string
	StartDate   time.Time
}

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates an account. The password is never stored: a random
// salt and an argon2id verifier derived from it are.
func (s *UserService) Register(ctx context.Context, username, password string, startDate time.Time) (*models.User, error) {

	if username == "" || password == "" {
		return nil, shared.ErrorValidation
	}

	salt := cryptox.GenerateSalt()

	user := &models.User{
		Username:  username,
		Salt:      salt,
		Verifier:  cryptox.DeriveVerifier([]byte(password), salt),
		StartDate: startDate,
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, shared.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password against the stored verifier and issues a
// bearer token. Unknown users and wrong passwords are indistinguishable
// to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorInvalidLoginPassword
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	candidate := cryptox.DeriveVerifier([]byte(password), user.Salt)
	if !cryptox.VerifierMatches(user.Verifier, candidate) {
		return nil, shared.ErrorInvalidLoginPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &LoginResult{AccessToken: token, StartDate: user.StartDate}, nil
}
