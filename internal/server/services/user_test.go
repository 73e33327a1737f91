package services

import (
	"context"
	"testing"
	"time"

	"github.com/poken-app/poken/internal/common"
	"github.com/poken-app/poken/internal/server/auth"
	"github.com/poken-app/poken/internal/server/config"
	"github.com/poken-app/poken/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.users[user.UserName]; exists {
		return nil, common.ErrorDuplicateUserID
	}
	f.users[user.UserName] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
	}
}

func TestUserService_Register_IssuesWorkingToken(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	s := NewUserService(repo, testConfig())

	token, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	user := repo.users["alice"]
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))

	userID, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestUserService_Register_DuplicateUserID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	s := NewUserService(repo, testConfig())

	_, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, common.ErrorDuplicateUserID)
}

func TestUserService_Login_Success(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	s := NewUserService(repo, testConfig())

	_, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	token, err := s.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	userID, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, repo.users["alice"].ID, userID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	s := NewUserService(repo, testConfig())

	_, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	s := NewUserService(newFakeUserRepo(), testConfig())

	_, err := s.Login(ctx, "ghost", "secret")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
