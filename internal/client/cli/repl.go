package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Use(ctx context.Context, name string) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
	ChangeEmail(ctx context.Context) error
	ChangePassword(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: login, use <screen>, (l)ist, search <text>, help, exit"
	helpLoggedIn  = "Available commands: use <screen>, (l)ist, search <text>, add, edit <id>, save, cancel, " +
		"delete <id>, email, password, whoami, logout, help, exit"
	helpScreens = "Screens: aboutus, slider, programs, partners, transactions"
)

// runREPL is the read-eval-print loop of the admin console.
//
// It prints a prompt carrying the current status (from statusFn), reads one
// line from reader, takes the first word as the command and the rest of the
// line as its argument, then dispatches to a. The loop ends on EOF or when
// the user types "exit" or "quit".
//
// # Commands
//
//	Always:
//	  help                show the commands and screen names
//	  login               authenticate with email and password
//	  use <screen>        select aboutus, slider, programs, partners or transactions
//	  l | list            fetch and print the selected screen
//	  search <text>       filter the printed table; empty text clears the filter
//	  exit | quit         leave the program
//
//	Logged in:
//	  add                 prompt for a new record and save it
//	  edit <id>           prompt over a copy of record id and save it
//	  save                retry the save of a draft that was rejected
//	  cancel              discard the open draft
//	  delete | rm <id>    delete record id after a y/N confirmation
//	  email               change the account email
//	  password            change the account password
//	  whoami              show the signed-in profile
//	  logout              forget the session
//
// Handlers print their own errors, so the returned values are ignored here
// and a failed command never stops the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cms%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			printlnFn(helpScreens)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "use":
			if rest == "" {
				printlnFn("Usage: use <screen>")
				printlnFn(helpScreens)
				continue
			}
			_ = a.Use(ctx, rest)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, rest)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if id, ok := parseID(cmd, rest); ok {
				_ = a.Edit(ctx, id)
			}

		case "save":
			_ = a.Save(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete", "rm":
			if id, ok := parseID(cmd, rest); ok {
				_ = a.Delete(ctx, id)
			}

		case "email":
			_ = a.ChangeEmail(ctx)

		case "password":
			_ = a.ChangePassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// parseID reads a positive record id, printing usage when arg is not one.
func parseID(cmd, arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	return id, true
}
