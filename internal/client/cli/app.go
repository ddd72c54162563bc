package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fundunity/cmsdash/internal/client/client"
	"github.com/fundunity/cmsdash/internal/client/config"
	"github.com/fundunity/cmsdash/internal/client/screen"
	"github.com/fundunity/cmsdash/internal/client/session"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
)

// Screen names accepted by "use".
const (
	ScreenAboutUs      = "aboutus"
	ScreenSlider       = "slider"
	ScreenPrograms     = "programs"
	ScreenPartners     = "partners"
	ScreenTransactions = "transactions"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Store
	screens map[string]contentScreen
	current contentScreen
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database and wires the session and one screen per
// content type.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	a := newApp(c, db, log, bufio.NewReader(os.Stdin), os.Stdout)
	if err := a.session.Restore(ctx); err != nil {
		log.Warn(ctx, "stored session could not be read", "error", err)
	}
	return a, nil
}

func newApp(c *config.Config, db *sql.DB, log logging.Logger, in *bufio.Reader, out io.Writer) *App {
	a := &App{config: c, db: db, log: log, reader: in, out: out}

	// the HTTP client reads the token from the session on every request
	h := client.NewHTTPClient(client.TokenFunc(func() string { return a.session.Token() }), c.RequestTimeout)
	a.session = session.New(client.NewAuthClient(h, c.ContentOrigin), session.NewSQLStorage(db), log)

	res := client.Resources(c.ContentOrigin, c.TransactionOrigin)
	a.screens = map[string]contentScreen{
		ScreenAboutUs: newTypedScreen(
			screen.New[models.AboutUs](ScreenAboutUs, client.NewResourceClient[models.AboutUs](h, res.AboutUs), nil, log),
			aboutUsForm),
		ScreenSlider: newTypedScreen(
			screen.New[models.SliderImage](ScreenSlider, client.NewResourceClient[models.SliderImage](h, res.ImageSlider), nil, log),
			sliderForm),
		ScreenPrograms: newTypedScreen(
			screen.New[models.Program](ScreenPrograms, client.NewResourceClient[models.Program](h, res.Programs), nil, log),
			programForm),
		ScreenPartners: newTypedScreen(
			screen.New[models.Partner](ScreenPartners, client.NewResourceClient[models.Partner](h, res.Partners), nil, log),
			partnerForm),
		ScreenTransactions: newTypedScreen(
			screen.New[models.Transaction](ScreenTransactions, client.NewResourceClient[models.Transaction](h, res.Transaction),
				func() models.Transaction { return models.Transaction{Status: models.StatusPending} }, log),
			transactionForm),
	}
	return a
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) prompter() *prompter {
	return &prompter{reader: a.reader, out: a.out}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) screenNames() []string {
	names := make([]string, 0, len(a.screens))
	for n := range a.screens {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
