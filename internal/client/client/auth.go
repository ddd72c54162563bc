package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/fundunity/cmsdash/internal/models"
)

// LoginResult is the body of a successful login: an opaque bearer token and
// the profile of the signed-in administrator.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// AccountUpdate changes the signed-in account; empty fields are left as is.
type AccountUpdate struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// AuthClient talks to the account endpoints of the content API:
//
//	POST {origin}/v1/content/login     {email, password} -> {token, user}
//	PUT  {origin}/v1/content/account   {email?, password?} -> user
//
// Login is sent without a token unless one is already held; the server
// ignores it there.
type AuthClient struct {
	http   *HTTPClient
	origin string
}

func NewAuthClient(h *HTTPClient, origin string) *AuthClient {
	return &AuthClient{http: h, origin: strings.TrimRight(origin, "/")}
}

// Login exchanges credentials for a token. It does not store anything; the
// session decides what to keep. A rejected login is a *StatusError whose
// Message carries the server's explanation.
func (c *AuthClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out LoginResult
	if err := c.http.doJSON(ctx, http.MethodPost, c.origin+"/v1/content/login", in, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// UpdateAccount changes the email and/or password of the signed-in account
// and returns the updated profile. A 409 means the email is taken.
func (c *AuthClient) UpdateAccount(ctx context.Context, upd AccountUpdate) (models.User, error) {
	var out models.User
	if err := c.http.doJSON(ctx, http.MethodPut, c.origin+"/v1/content/account", upd, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}
