// Package session holds the console's authentication state: the bearer
// token and profile of the signed-in administrator, mirrored to durable
// storage under the keys "token" and "user".
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/fundunity/cmsdash/internal/client/client"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
)

// DefaultLoginError is shown when the server gives no reason.
const DefaultLoginError = "Login failed. Please try again."

// Authenticator is the remote half of the session.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (client.LoginResult, error)
	UpdateAccount(ctx context.Context, upd client.AccountUpdate) (models.User, error)
}

// Store is safe for concurrent use. Network calls run outside the lock, so
// overlapping logins are resolved by whichever finishes last.
type Store struct {
	auth    Authenticator
	storage Storage
	log     logging.Logger

	mu      sync.RWMutex
	token   string
	user    *models.User
	lastErr string
}

func New(auth Authenticator, storage Storage, log logging.Logger) *Store {
	return &Store{auth: auth, storage: storage, log: log}
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// User returns a copy of the profile, if any.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// LastError is the message of the last failed login, or "".
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// Restore loads a previously persisted session.
func (s *Store) Restore(ctx context.Context) error {
	token, raw, err := s.storage.Load(ctx)
	if err != nil {
		return err
	}

	var user *models.User
	if len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			s.log.Warn(ctx, "stored user profile is unreadable", "error", err)
		} else {
			user = &u
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	if token != "" {
		s.log.Debug(ctx, "session restored")
	}
	return nil
}

// Login exchanges credentials for a token. On failure the previous session
// is kept and LastError explains what went wrong.
func (s *Store) Login(ctx context.Context, email, password string) error {
	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		msg := client.ErrorMessage(err)
		if msg == "" {
			msg = DefaultLoginError
		}
		s.mu.Lock()
		s.lastErr = msg
		s.mu.Unlock()

		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return err
	}
	if res.Token == "" {
		s.mu.Lock()
		s.lastErr = DefaultLoginError
		s.mu.Unlock()
		return errors.New("login response has no token")
	}

	user := res.User
	s.mu.Lock()
	s.token = res.Token
	s.user = &user
	s.lastErr = ""
	s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err == nil {
		err = s.storage.Save(ctx, res.Token, raw)
	}
	if err != nil {
		// the in-memory session stays valid for this run
		s.log.Warn(ctx, "session not persisted", "error", err)
	}

	s.log.Info(ctx, "logged in", "email", user.Email)
	return nil
}

// Logout clears the session in memory and storage. It cannot fail.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear stored session", "error", err)
	}
}

// UpdateProfile changes the account email and/or password on the server
// and stores the returned profile.
func (s *Store) UpdateProfile(ctx context.Context, upd client.AccountUpdate) (models.User, error) {
	if !s.IsAuthenticated() {
		return models.User{}, client.ErrUnauthorized
	}

	user, err := s.auth.UpdateAccount(ctx, upd)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	if user.Email == "" && s.user != nil {
		// server answered without a body
		user = *s.user
		if upd.Email != "" {
			user.Email = upd.Email
		}
	}
	s.user = &user
	s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err == nil {
		err = s.storage.SaveUser(ctx, raw)
	}
	if err != nil {
		s.log.Warn(ctx, "profile not persisted", "error", err)
	}
	return user, nil
}
