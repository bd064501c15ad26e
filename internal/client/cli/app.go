package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/shopfront/shopfront/internal/client/api"
	"github.com/shopfront/shopfront/internal/client/config"
	"github.com/shopfront/shopfront/internal/client/repositories/state"
	"github.com/shopfront/shopfront/internal/client/services"
	"github.com/shopfront/shopfront/internal/client/session"
	"github.com/shopfront/shopfront/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session store, the API client and the services behind the
// REPL commands.
type App struct {
	config  *config.Config
	db      *sql.DB
	store   *session.Store
	auth    services.AuthService
	catalog services.CatalogService
	profile services.ProfileService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := state.InitDatabase(ctx, c.StateDBPath)
	if err != nil {
		log.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	store := session.NewStore(state.NewSQLiteRepository(db))
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)

	return &App{
		config:  c,
		db:      db,
		store:   store,
		auth:    services.NewAuthService(apiClient, store, log),
		catalog: services.NewCatalogService(apiClient),
		profile: services.NewProfileService(apiClient, store, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores any persisted session, shows the initial catalog (the
// storefront's landing view) and enters the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	if err := a.store.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if user, ok := a.store.User(); ok {
		printlnFn("Welcome back,", user.Username)
	}

	_ = a.Products(ctx)
	_ = a.Categories(ctx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) Close(ctx context.Context) {
	if err := a.auth.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "error closing state database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) getStatus() string {
	if user, ok := a.store.User(); ok {
		return "(" + user.Username + ")"
	}
	return ""
}
