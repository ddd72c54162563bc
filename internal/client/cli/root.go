package cli

import (
	"context"
	"fmt"

	"github.com/fundunity/cmsdash/internal/client/screen"
)

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.session.User(); ok && a.isLoggedIn() {
		s = u.Email
	} else if a.isLoggedIn() {
		s = "logged in"
	}
	if a.current != nil {
		if s != "" {
			s += " "
		}
		s += a.current.Name()
		if q := a.current.Query(); q != "" {
			s += fmt.Sprintf(" ?%q", q)
		}
		if st := a.current.State(); st != screen.Idle {
			s += " [" + st.String() + "]"
		}
	}
	if s != "" {
		s = fmt.Sprintf(" (%s)", s)
	}
	return s
}

// Root greets the user, offers a login when no session was restored, and
// runs the REPL.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to the FundUnity CMS console (type 'help' for commands)")

	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	} else if u, ok := a.session.User(); ok {
		a.println("Signed in as", u.Email)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
