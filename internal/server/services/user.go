// Package services contains the business logic of the content API. This
// file implements UserService: admin login, account updates and seeding of
// the initial admin.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
	"github.com/fundunity/cmsdash/internal/server/auth"
	sm "github.com/fundunity/cmsdash/internal/server/models"
	"github.com/fundunity/cmsdash/internal/server/repositories/users"
	"github.com/fundunity/cmsdash/internal/validation"
)

const minPasswordLength = 6

type UserService struct {
	repo          users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	logger        logging.Logger
}

func NewUserService(repo users.Repository, secret string, tokenValidity time.Duration, logger logging.Logger) *UserService {
	return &UserService{
		repo:          repo,
		jwtSecret:     []byte(secret),
		tokenValidity: tokenValidity,
		logger:        logger,
	}
}

// Login checks the credentials and returns a signed token with the
// account's profile. Unknown emails and wrong passwords both yield
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", models.User{}, common.ErrorUnauthorized
		}
		return "", models.User{}, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", models.User{}, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	if !ok {
		return "", models.User{}, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", models.User{}, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "admin logged in", "user_id", user.ID)
	return token, user.Profile(), nil
}

// Authenticate resolves a bearer token to a user id.
func (s *UserService) Authenticate(token string) (int64, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

// UpdateAccount changes the email and the password of userID. Empty
// arguments leave the corresponding value unchanged, but at least one must
// be given.
func (s *UserService) UpdateAccount(ctx context.Context, userID int64, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)

	v := validation.New().
		Check(email != "" || password != "", "email", "email or password is required").
		Email("email", email)
	if password != "" {
		v.MinLength("password", password, minPasswordLength)
	}
	if err := v.Err(); err != nil {
		return models.User{}, err
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.User{}, common.ErrorUnauthorized
		}
		return models.User{}, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if email != "" {
		user.Email = email
	}
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) || errors.Is(err, common.ErrorNotFound) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "account updated", "user_id", user.ID, "password_changed", password != "")
	return user.Profile(), nil
}

// EnsureAdmin creates the admin account unless an account with that email
// already exists. It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" {
		return false, nil
	}

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	if _, err := s.repo.Create(ctx, &sm.User{Email: email, Name: "Admin", PasswordHash: hash}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "admin account created", "email", email)
	return true, nil
}
