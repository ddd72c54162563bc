// Package models holds server-side persistence models that never leave the
// API as-is.
package models

import (
	"time"

	"github.com/fundunity/cmsdash/internal/models"
)

// User is an admin account. PasswordHash is a bcrypt hash.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the public part of the account returned on login.
func (u *User) Profile() models.User {
	return models.User{ID: u.ID, Email: u.Email, Name: u.Name}
}
