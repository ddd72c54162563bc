package cli

import (
	"context"
	"errors"

	"github.com/fundunity/cmsdash/internal/common"
)

// getSimpleText and getPassword are indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and opens a session. A failed login keeps
// any previous session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.session.ClearError()
	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.println("Login failed:", a.session.LastError())
		return err
	}

	a.println("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Not logged in")
		return nil
	}
	u, ok := a.session.User()
	if !ok {
		a.println("Logged in (no profile stored)")
		return nil
	}
	if u.Name != "" {
		a.println(u.Name, "<"+u.Email+">")
	} else {
		a.println(u.Email)
	}
	return nil
}

var errNotLoggedIn = errors.New("not logged in")

func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	a.println("Please login first")
	return errNotLoggedIn
}
