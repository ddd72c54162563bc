package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/server/auth"
	sm "github.com/fundunity/cmsdash/internal/server/models"
	usersrepo "github.com/fundunity/cmsdash/internal/server/repositories/users"
	"github.com/fundunity/cmsdash/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newUserService(t *testing.T, repo usersrepo.Repository) *UserService {
	t.Helper()
	return NewUserService(repo, "k", time.Hour, logging.Discard())
}

func seededUsers(t *testing.T) (*usersrepo.MemoryRepository, *sm.User) {
	t.Helper()
	repo := usersrepo.NewMemoryRepository()
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	u, err := repo.Create(context.Background(), &sm.User{Email: "admin@fundunity.id", Name: "Admin", PasswordHash: hash})
	require.NoError(t, err)
	return repo, u
}

type brokenUsersRepo struct{ err error }

func (b brokenUsersRepo) Create(context.Context, *sm.User) (*sm.User, error)       { return nil, b.err }
func (b brokenUsersRepo) GetUserByEmail(context.Context, string) (*sm.User, error) { return nil, b.err }
func (b brokenUsersRepo) GetUserByID(context.Context, int64) (*sm.User, error)     { return nil, b.err }
func (b brokenUsersRepo) Update(context.Context, *sm.User) error                   { return b.err }

// --- tests ---

func TestUserService_Login(t *testing.T) {
	repo, u := seededUsers(t)
	s := newUserService(t, repo)
	ctx := context.Background()

	token, profile, err := s.Login(ctx, " admin@fundunity.id ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, profile.ID)
	assert.Equal(t, "admin@fundunity.id", profile.Email)

	id, err := s.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, _, err = s.Login(ctx, "admin@fundunity.id", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = s.Login(ctx, "ghost@fundunity.id", "admin123")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_Login_RepoError(t *testing.T) {
	s := newUserService(t, brokenUsersRepo{err: errors.New("db down")})

	_, _, err := s.Login(context.Background(), "a@b.c", "x")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestUserService_UpdateAccount(t *testing.T) {
	repo, u := seededUsers(t)
	s := newUserService(t, repo)
	ctx := context.Background()

	profile, err := s.UpdateAccount(ctx, u.ID, "new@fundunity.id", "")
	require.NoError(t, err)
	assert.Equal(t, "new@fundunity.id", profile.Email)

	_, _, err = s.Login(ctx, "new@fundunity.id", "admin123")
	require.NoError(t, err, "password unchanged when empty")

	_, err = s.UpdateAccount(ctx, u.ID, "new@fundunity.id", "secret99")
	require.NoError(t, err)
	_, _, err = s.Login(ctx, "new@fundunity.id", "secret99")
	require.NoError(t, err)
}

func TestUserService_UpdateAccount_Invalid(t *testing.T) {
	repo, u := seededUsers(t)
	s := newUserService(t, repo)
	ctx := context.Background()

	_, err := s.UpdateAccount(ctx, u.ID, "not-an-email", "")
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "email", verrs[0].Field)

	_, err = s.UpdateAccount(ctx, u.ID, "a@b.c", "123")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.UpdateAccount(ctx, u.ID, "", "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.UpdateAccount(ctx, 999, "a@b.c", "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_UpdateAccount_PasswordOnly(t *testing.T) {
	repo, u := seededUsers(t)
	s := newUserService(t, repo)
	ctx := context.Background()

	profile, err := s.UpdateAccount(ctx, u.ID, "", "newpass1")
	require.NoError(t, err)
	assert.Equal(t, "admin@fundunity.id", profile.Email)

	_, _, err = s.Login(ctx, "admin@fundunity.id", "newpass1")
	require.NoError(t, err)
}

func TestUserService_UpdateAccount_EmailTaken(t *testing.T) {
	repo, u := seededUsers(t)
	_, err := repo.Create(context.Background(), &sm.User{Email: "other@fundunity.id"})
	require.NoError(t, err)

	s := newUserService(t, repo)
	_, err = s.UpdateAccount(context.Background(), u.ID, "other@fundunity.id", "")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	repo := usersrepo.NewMemoryRepository()
	s := newUserService(t, repo)
	ctx := context.Background()

	created, err := s.EnsureAdmin(ctx, "admin@fundunity.id", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.EnsureAdmin(ctx, "admin@fundunity.id", "other")
	require.NoError(t, err)
	assert.False(t, created)

	_, _, err = s.Login(ctx, "admin@fundunity.id", "admin123")
	require.NoError(t, err, "existing password is kept")

	created, err = s.EnsureAdmin(ctx, "", "x")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestUserService_EnsureAdmin_RepoError(t *testing.T) {
	s := newUserService(t, brokenUsersRepo{err: errors.New("db down")})

	_, err := s.EnsureAdmin(context.Background(), "admin@fundunity.id", "x")
	assert.Error(t, err)
}
