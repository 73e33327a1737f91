// Package cli is the interactive terminal frontend of the Poken client. It
// is a pure consumer of the core: it renders session state and calls the
// auth/sync services, receiving status and navigation signals through the
// injected notifier interfaces.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/poken-app/poken/internal/client/api"
	"github.com/poken-app/poken/internal/client/config"
	"github.com/poken-app/poken/internal/client/profilestore"
	"github.com/poken-app/poken/internal/client/repositories/profilecache"
	"github.com/poken-app/poken/internal/client/services"
	"github.com/poken-app/poken/internal/client/session"
	"github.com/poken-app/poken/internal/filex"
	"github.com/poken-app/poken/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Session
	auth    *services.AuthService
	sync    *services.SyncService
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	dsn, err := cacheLocation(c.CacheDSN)
	if err != nil {
		return nil, fmt.Errorf("cache dir error: %w", err)
	}

	db, err := profilecache.InitDatabase(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cache init error: %w", err)
	}

	store := profilestore.New(profilecache.NewSQLiteRepository(db), logger)

	app := &App{
		config: c,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	// the session rehydrates from the pre-auth cache record at startup
	sess := session.New(store.Load(ctx, ""))
	app.session = sess

	apiClient := api.New(c.APIBaseURL, sess, app,
		api.WithHTTPClient(&http.Client{Timeout: c.HTTPTimeout}),
		api.WithRetryAttempts(c.RequestRetryAttempts),
	)

	app.sync = services.NewSyncService(apiClient, sess, store, logger)
	app.auth = services.NewAuthService(apiClient, sess, app.sync, app, services.Callbacks{}, logger)

	return app, nil
}

// cacheLocation places a bare-filename DSN under a data subdirectory of the
// working dir, creating it if needed. Explicit paths are used as-is.
func cacheLocation(dsn string) (string, error) {
	if filepath.Dir(dsn) != "." || strings.HasPrefix(dsn, ":") {
		return dsn, nil
	}
	dir, err := filex.EnsureSubdDir("data")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dsn), nil
}

func (a *App) Run(ctx context.Context) {
	a.repl(ctx)
}

// SetStatus implements api.StatusNotifier: a one-line progress indicator
// while a request is in flight.
func (a *App) SetStatus(message string, busy bool) {
	if busy {
		fmt.Fprintln(a.out, "… "+message)
	}
}

// Toast implements part of services.Notifier.
func (a *App) Toast(message string, level services.ToastLevel) {
	fmt.Fprintf(a.out, "[%s] %s\n", level, message)
}

// SessionStarted implements the "authenticated, navigate to app" signal.
func (a *App) SessionStarted() {
	fmt.Fprintln(a.out, "--", a.session.CurrentUserID, "としてログイン中 --")
}

// SessionEnded implements the "session ended, navigate to login" signal.
func (a *App) SessionEnded() {
	fmt.Fprintln(a.out, "-- ログイン画面に戻ります --")
}
