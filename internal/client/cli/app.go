// Package cli implements the interactive daybox client: a small REPL
// over the day-cell submission gateway.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adventbox/daybox/internal/client/api"
	"github.com/adventbox/daybox/internal/client/config"
	"github.com/adventbox/daybox/internal/client/daybox"
	"github.com/adventbox/daybox/internal/client/session"
	"github.com/adventbox/daybox/internal/client/store"
	"github.com/adventbox/daybox/internal/filex"
	"github.com/adventbox/daybox/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	meta    session.Repository
	mode    session.Mode
	api     *api.Client
	store   *store.DiskStore
	gateway *daybox.Gateway

	calendarID string
	cells      map[string]*daybox.Cell
	reader     *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	if err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, err
	}

	db, err := session.InitDatabase(ctx, filepath.Join(c.DataDir, "daybox.db"))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	meta := session.NewSQLiteRepository(db)
	mode, err := session.Load(ctx, meta)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: c,
		db:     db,
		meta:   meta,
		mode:   mode,
		api:    api.NewWithTimeout(c.ServerBaseURL, c.RequestTimeout),
		store:  store.Open(filepath.Join(c.DataDir, "calendars")),
		reader: bufio.NewReader(os.Stdin),
	}
	a.rebuildGateway()
	return a, nil
}

// rebuildGateway swaps the gateway after a mode change. Cells belong to
// a mode, so the cache resets with it.
func (a *App) rebuildGateway() {
	a.gateway = daybox.New(daybox.Config{
		Mode:      a.mode,
		API:       a.api,
		Store:     a.store,
		Validity:  consoleValidity{},
		Navigator: consoleNavigator{},
		Surface:   consoleSurface{},
		Logger:    logging.Discard(),
	})
	a.cells = make(map[string]*daybox.Cell)
}

func (a *App) isAuthenticated() bool {
	_, ok := a.mode.(session.Authenticated)
	return ok
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

// consoleNavigator stands in for the app's error-view redirect.
type consoleNavigator struct{}

func (consoleNavigator) RedirectError(message, status string) {
	if message == "" && status == "" {
		fmt.Println("-> redirected to the error view")
		return
	}
	fmt.Printf("-> redirected to the error view: %s (status %s)\n", message, status)
}

// consoleSurface mirrors the edit overlay: it is dismissed as soon as a
// submission starts.
type consoleSurface struct{}

func (consoleSurface) Dismiss() {
	fmt.Println("editor closed")
}

type consoleValidity struct{}

func (consoleValidity) SetDailyBoxesValid(valid bool) {
	if valid {
		fmt.Println("calendar has at least one synchronized box")
	}
}
