package cli

import (
	"context"

	"github.com/fundunity/cmsdash/internal/client/client"
	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/validation"
)

// ChangeEmail updates the account email.
func (a *App) ChangeEmail(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	current := ""
	if u, ok := a.session.User(); ok {
		current = u.Email
	}
	email, err := GetField(a.reader, "New email", current, a.out)
	if err != nil {
		return err
	}
	if err := validation.EmailChange(email); err != nil {
		a.report(err)
		return err
	}

	u, err := a.session.UpdateProfile(ctx, client.AccountUpdate{Email: email})
	if err != nil {
		a.report(err)
		return err
	}
	a.println("Email updated to", u.Email)
	return nil
}

// ChangePassword asks for the new password twice.
func (a *App) ChangePassword(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	pw, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := validation.PasswordChange(string(pw), string(confirm)); err != nil {
		a.report(err)
		return err
	}

	if _, err := a.session.UpdateProfile(ctx, client.AccountUpdate{Password: string(pw)}); err != nil {
		a.report(err)
		return err
	}
	a.println("Password updated")
	return nil
}
