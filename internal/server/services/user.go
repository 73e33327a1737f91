// Package services contains the application services of the Poken server:
// account registration/login and profile document handling.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/poken-app/poken/internal/common"
	"github.com/poken-app/poken/internal/server/auth"
	"github.com/poken-app/poken/internal/server/config"
	"github.com/poken-app/poken/internal/server/models"
	"github.com/poken-app/poken/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users                       users.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		users:                       repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates an account and returns an access token, so a fresh
// signup is already logged in. A taken user id surfaces as
// common.ErrorDuplicateUserID.
func (s *UserService) Register(ctx context.Context, userName, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		UserName:     userName,
		PasswordHash: string(hash),
	}

	user, err = s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUserID) {
			return "", err
		}
		return "", common.ErrorInternal
	}

	return s.generateAccessToken(user.ID)
}

// Login verifies credentials and returns an access token. Unknown users and
// wrong passwords are indistinguishable: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, userName, password string) (string, error) {
	user, err := s.users.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	return s.generateAccessToken(user.ID)
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
