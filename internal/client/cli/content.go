package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fundunity/cmsdash/internal/client/client"
	"github.com/fundunity/cmsdash/internal/client/screen"
	"github.com/fundunity/cmsdash/internal/validation"
)

var errNoScreen = errors.New("no screen selected")

// report prints err in a form suited to the console user.
func (a *App) report(err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		a.println("Please fix the following:")
		for _, fe := range verrs {
			a.println("  -", fe.Error())
		}
	case errors.Is(err, client.ErrUnauthorized):
		a.println("Not authorized:", messageOf(err), "(use 'login' to sign in again)")
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable:", err)
	default:
		a.println("Error:", messageOf(err))
	}
}

func messageOf(err error) string {
	if m := client.ErrorMessage(err); m != "" {
		return m
	}
	return err.Error()
}

func (a *App) screen() (contentScreen, error) {
	if a.current == nil {
		a.println("Select a screen first:", strings.Join(a.screenNames(), ", "))
		return nil, errNoScreen
	}
	return a.current, nil
}

// Use switches to the named screen and loads it.
func (a *App) Use(ctx context.Context, name string) error {
	s, ok := a.screens[strings.ToLower(name)]
	if !ok {
		a.println("Unknown screen:", name)
		a.println(helpScreens)
		return fmt.Errorf("unknown screen %q", name)
	}
	a.current = s

	if err := s.Mount(ctx); err != nil {
		a.report(err)
		return err
	}
	s.Render(a.out)
	return nil
}

// List reloads the current screen and prints it.
func (a *App) List(ctx context.Context) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	if err := s.Mount(ctx); err != nil {
		a.report(err)
		return err
	}
	s.Render(a.out)
	return nil
}

// Search filters the loaded collection without a network call.
func (a *App) Search(ctx context.Context, query string) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	s.Search(query)
	s.Render(a.out)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	return a.afterSave(s, s.Add(ctx, a.prompter()))
}

func (a *App) Edit(ctx context.Context, id int64) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	return a.afterSave(s, s.Edit(ctx, id, a.prompter()))
}

// Save retries the open draft.
func (a *App) Save(ctx context.Context) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	if s.State() == screen.Idle {
		a.println("Nothing to save")
		return nil
	}
	return a.afterSave(s, s.Save(ctx))
}

func (a *App) Cancel(ctx context.Context) error {
	s, err := a.screen()
	if err != nil {
		return err
	}
	s.Cancel()
	a.println("Changes discarded")
	return nil
}

func (a *App) afterSave(s contentScreen, err error) error {
	if err != nil {
		a.report(err)
		if s.State() != screen.Idle {
			a.println("The record is still open: 'save' to retry or 'cancel' to discard")
		}
		return err
	}
	a.println("Saved")
	s.Render(a.out)
	return nil
}

// Delete asks for confirmation and removes record id.
func (a *App) Delete(ctx context.Context, id int64) error {
	s, err := a.screen()
	if err != nil {
		return err
	}

	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete %s %d?", s.Name(), id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled")
		return nil
	}

	if err := s.Delete(ctx, id, true); err != nil {
		a.report(err)
		return err
	}
	a.println("Deleted")
	s.Render(a.out)
	return nil
}
